package depgraph

import (
	"fmt"

	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/erraggy/oacontract/internal/pathutil"
	"github.com/erraggy/oacontract/parser"
)

// DereferenceFunc follows a schema reference to its concrete body.
// (*resolver.Resolver).Dereference satisfies it.
type DereferenceFunc func(ref string) (*parser.Schema, error)

// Build walks every named schema once and records, for each schema
// reference, the references its structure reaches through composition,
// array items, properties and schema-typed additionalProperties.
//
// Every schema becomes a vertex, even when it has no dependencies. When a
// reference is met, the edge fromRef -> target is always recorded, but the
// target is expanded only the first time fromRef expands anything. That
// bound keeps reference cycles from recursing forever.
func Build(schemas *sequencedmap.Map[string, *parser.Schema], deref DereferenceFunc) (*Graph, error) {
	w := &walker{
		graph:    New(),
		expanded: make(map[string]bool),
		deref:    deref,
	}

	for name := range schemas.Keys() {
		w.graph.AddVertex(pathutil.SchemaRef(name))
	}
	for name, schema := range schemas.All() {
		if err := w.visit(schema, pathutil.SchemaRef(name)); err != nil {
			return nil, err
		}
	}
	return w.graph, nil
}

// walker carries the state of one Build call.
type walker struct {
	graph    *Graph
	expanded map[string]bool
	deref    DereferenceFunc
}

func (w *walker) visit(node *parser.Schema, fromRef string) error {
	if node == nil {
		return nil
	}

	if node.IsRef() {
		w.graph.AddEdge(fromRef, node.Ref)
		if w.expanded[fromRef] {
			return nil
		}
		w.expanded[fromRef] = true

		target, err := w.deref(node.Ref)
		if err != nil {
			return fmt.Errorf("depgraph: %s: %w", fromRef, err)
		}
		return w.visit(target, node.Ref)
	}

	for _, members := range [][]*parser.Schema{node.AllOf, node.OneOf, node.AnyOf} {
		for _, member := range members {
			if err := w.visit(member, fromRef); err != nil {
				return err
			}
		}
	}

	if node.IsArrayLike() && node.Items != nil {
		if err := w.visit(node.Items, fromRef); err != nil {
			return err
		}
	}

	if node.IsObjectLike() {
		for _, prop := range node.Properties.All() {
			if err := w.visit(prop, fromRef); err != nil {
				return err
			}
		}
		if err := w.visit(node.AdditionalPropertiesSchema(), fromRef); err != nil {
			return err
		}
	}
	return nil
}
