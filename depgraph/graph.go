package depgraph

import (
	"iter"
	"slices"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Graph is a directed dependency graph keyed by schema reference. Vertices
// keep insertion order and each vertex's edges keep discovery order without
// duplicates. A Graph is read-only once Build returns it.
type Graph struct {
	edges *sequencedmap.Map[string, *vertex]
}

type vertex struct {
	deps []string
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{edges: sequencedmap.New[string, *vertex]()}
}

// AddVertex adds ref with no edges. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(ref string) {
	g.vertex(ref)
}

func (g *Graph) vertex(ref string) *vertex {
	v, ok := g.edges.Get(ref)
	if !ok {
		v = &vertex{}
		g.edges.Set(ref, v)
	}
	return v
}

// AddEdge records that from depends on to, adding from as a vertex if needed.
func (g *Graph) AddEdge(from, to string) {
	v := g.vertex(from)
	if !slices.Contains(v.deps, to) {
		v.deps = append(v.deps, to)
	}
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return g.edges.Len()
}

// Vertices returns the vertices in insertion order.
func (g *Graph) Vertices() []string {
	return slices.Collect(g.edges.Keys())
}

// Edges returns the dependencies of ref in discovery order.
// The returned slice must not be modified.
func (g *Graph) Edges(ref string) []string {
	if v, ok := g.edges.Get(ref); ok {
		return v.deps
	}
	return nil
}

// All iterates over vertices and their edges in insertion order.
func (g *Graph) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for ref, v := range g.edges.All() {
			if !yield(ref, v.deps) {
				return
			}
		}
	}
}
