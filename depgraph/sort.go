package depgraph

import (
	"slices"

	"github.com/erraggy/oacontract/oaserrors"
)

// Sort orders the vertices of g so that every vertex comes after all of its
// dependencies. Vertices are visited depth-first in insertion order and their
// dependencies in edge order, so the result is deterministic.
//
// A dependency that is already on the current ancestor path closes a cycle;
// Sort then fails with *oaserrors.CircularDependencyError whose Path is the
// ancestor path followed by the closing vertex. References that appear only
// as edge targets are treated as having no dependencies.
func Sort(g *Graph) ([]string, error) {
	s := &sorter{
		graph:  g,
		done:   make(map[string]bool, g.Len()),
		onPath: make(map[string]bool),
		sorted: make([]string, 0, g.Len()),
	}
	for _, ref := range g.Vertices() {
		if err := s.visit(ref); err != nil {
			return nil, err
		}
	}
	return s.sorted, nil
}

type sorter struct {
	graph  *Graph
	done   map[string]bool
	onPath map[string]bool
	path   []string
	sorted []string
}

func (s *sorter) visit(ref string) error {
	if s.done[ref] {
		return nil
	}

	s.path = append(s.path, ref)
	s.onPath[ref] = true

	for _, dep := range s.graph.Edges(ref) {
		if s.onPath[dep] {
			return &oaserrors.CircularDependencyError{Path: append(slices.Clone(s.path), dep)}
		}
		if err := s.visit(dep); err != nil {
			return err
		}
	}

	s.path = s.path[:len(s.path)-1]
	delete(s.onPath, ref)
	s.done[ref] = true
	s.sorted = append(s.sorted, ref)
	return nil
}
