package exports

import (
	"fmt"
	"iter"

	"github.com/erraggy/oacontract/ast"
	"github.com/erraggy/oacontract/depgraph"
	"github.com/erraggy/oacontract/internal/naming"
	"github.com/erraggy/oacontract/parser"
	"github.com/erraggy/oacontract/resolver"
)

// Entry is one exported schema definition.
type Entry struct {
	// Ref is the component reference, e.g. "#/components/schemas/Pet".
	Ref string
	// Name is the component name as written in the document.
	Name string
	// Identifier is the generated TypeScript name.
	Identifier string
	// Schema is the dereferenced body of the component.
	Schema *parser.Schema
	// Index is the position of the entry in emission order.
	Index int
}

// Collision groups component references that normalize to one identifier.
type Collision struct {
	Identifier string
	Refs       []string
}

// Rename records a schema whose identifier was reserved and had to be
// suffixed.
type Rename struct {
	Ref string
	// From is the reserved identifier the name normalized to.
	From string
	// To is the identifier the schema is exported as.
	To string
}

// Table maps schema references to their exported definitions, in an order
// where every definition comes after the definitions it references.
// A Table is read-only once built and safe for concurrent use.
type Table struct {
	entries    []*Entry
	byRef      map[string]*Entry
	graph      *depgraph.Graph
	collisions []Collision
	renames    []Rename
}

// Build creates the export table for the document behind res.
//
// The schemas section is turned into a dependency graph and sorted; each
// sorted reference is then dereferenced and given an identifier. A reference
// cycle among schemas fails the build with *oaserrors.CircularDependencyError.
func Build(res *resolver.Resolver, opts ...Option) (*Table, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	var doc *parser.Document
	if res != nil {
		doc = res.Document()
	}
	if doc == nil {
		return nil, fmt.Errorf("exports: document is nil")
	}

	schemas := parser.NewComponents().Schemas
	if doc.Components != nil {
		schemas = doc.Components.Schemas
	}

	graph, err := depgraph.Build(schemas, res.Dereference)
	if err != nil {
		return nil, fmt.Errorf("exports: %w", err)
	}
	order, err := depgraph.Sort(graph)
	if err != nil {
		return nil, fmt.Errorf("exports: %w", err)
	}

	t := &Table{
		entries: make([]*Entry, 0, len(order)),
		byRef:   make(map[string]*Entry, len(order)),
		graph:   graph,
	}
	reserved := map[string]bool{ast.FileIdent: true}
	for _, name := range cfg.reserved {
		reserved[name] = true
	}
	seen := make(map[string][]string)
	for _, ref := range order {
		parsed, err := resolver.ParseReference(ref)
		if err != nil {
			return nil, fmt.Errorf("exports: %w", err)
		}
		schema, err := res.Schema(ref)
		if err != nil {
			return nil, fmt.Errorf("exports: %w", err)
		}

		id := naming.Identifier(parsed.Name)
		if reserved[id] {
			from := id
			for reserved[id] {
				id += "Schema"
			}
			t.renames = append(t.renames, Rename{Ref: ref, From: from, To: id})
			cfg.logger.Warn("reserved identifier", "identifier", from, "ref", ref, "exported_as", id)
		}

		e := &Entry{
			Ref:        ref,
			Name:       parsed.Name,
			Identifier: id,
			Schema:     schema,
			Index:      len(t.entries),
		}
		t.entries = append(t.entries, e)
		t.byRef[ref] = e
		seen[e.Identifier] = append(seen[e.Identifier], ref)
	}

	for _, e := range t.entries {
		refs := seen[e.Identifier]
		if len(refs) < 2 || refs[0] != e.Ref {
			continue
		}
		t.collisions = append(t.collisions, Collision{Identifier: e.Identifier, Refs: refs})
		cfg.logger.Warn("identifier collision", "identifier", e.Identifier, "refs", refs)
	}

	cfg.logger.Debug("built export table",
		"entries", len(t.entries),
		"collisions", len(t.collisions),
		"renames", len(t.renames))
	return t, nil
}

// Lookup returns the entry for ref. A nil table holds no entries.
func (t *Table) Lookup(ref string) (*Entry, bool) {
	if t == nil {
		return nil, false
	}
	e, ok := t.byRef[ref]
	return e, ok
}

// Identifier returns the generated name for ref.
func (t *Table) Identifier(ref string) (string, bool) {
	e, ok := t.Lookup(ref)
	if !ok {
		return "", false
	}
	return e.Identifier, true
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns the entries in emission order.
func (t *Table) Entries() []*Entry {
	if t == nil {
		return nil
	}
	out := make([]*Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// All iterates entries in emission order, keyed by reference.
func (t *Table) All() iter.Seq2[string, *Entry] {
	return func(yield func(string, *Entry) bool) {
		if t == nil {
			return
		}
		for _, e := range t.entries {
			if !yield(e.Ref, e) {
				return
			}
		}
	}
}

// Graph returns the dependency graph the order was derived from.
func (t *Table) Graph() *depgraph.Graph {
	if t == nil {
		return nil
	}
	return t.graph
}

// Collisions lists identifiers shared by more than one component, ordered by
// the first entry using each identifier.
func (t *Table) Collisions() []Collision {
	if t == nil {
		return nil
	}
	return t.collisions
}

// Renames lists schemas exported under a suffixed identifier because their
// normalized name was reserved, in emission order.
func (t *Table) Renames() []Rename {
	if t == nil {
		return nil
	}
	return t.renames
}
