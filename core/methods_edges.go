package core

import (
	"fmt"
	"sort"
)

// AddEdge adds an edge between two already-added, distinct vertices and
// returns its generated ID. Parallel edges between the same ordered pair
// (or, in an undirected graph, the same unordered pair) are rejected.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == to {
		return "", fmt.Errorf("%w: %q", ErrSelfLoopNotAllowed, from)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertex(from) {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if !g.hasVertex(to) {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	for _, e := range g.edges {
		if e.From == from && e.To == to {
			return "", fmt.Errorf("%w: %q -> %q", ErrMultiEdgeNotAllowed, from, to)
		}
		if !g.directed && e.From == to && e.To == from {
			return "", fmt.Errorf("%w: %q -> %q", ErrMultiEdgeNotAllowed, from, to)
		}
	}

	id := fmt.Sprintf("e%d", g.nextEdgeID)
	g.nextEdgeID++
	g.edges[id] = &Edge{ID: id, From: from, To: to}
	return id, nil
}

// Edges returns every edge, ordered by ID in lexical string order. IDs are
// "e0", "e1", ..., so this matches insertion order only for the first ten
// edges ("e10" sorts before "e2").
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Directed reports whether the graph was constructed with WithDirected(true).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.directed
}
