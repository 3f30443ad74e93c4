// SPDX-License-Identifier: MIT
// wrapper.go builds a wl.Matrix from a core.Graph.
//
// Ω is realized as the graph's vertex IDs in sorted order; vertex i of the
// matrix is Vertices()[i] under that order. Raw caller-supplied color tags
// (arbitrary ints) are renumbered into the kernel's required layout —
// diagonal colors occupy a contiguous range starting at 0, off-diagonal
// colors occupy the contiguous range after — so the matrix handed to
// wl.Refine always satisfies coherence even if the caller's raw tags did
// not happen to be disjoint integers.

package graphwrap

import (
	"fmt"

	"github.com/vpetrenko/wlrefine/core"
	"github.com/vpetrenko/wlrefine/wl"
)

// VertexColorFunc assigns a raw color tag to a vertex, based on its ID.
// Vertices that should share an initial color must return the same tag.
type VertexColorFunc func(id string) int

// EdgeColorFunc assigns a raw color tag to the ordered pair (from, to).
// edge is nil and hasEdge is false when no edge exists from from to to;
// callers distinguishing "no edge" from an edge-type color should branch on
// hasEdge rather than on edge being non-nil.
type EdgeColorFunc func(from, to string, edge *core.Edge, hasEdge bool) int

// Build renders g into a coherent wl.Matrix using the supplied coloring
// functions, and returns the vertex ordering the matrix's rows and columns
// are indexed by. Diagonal cells are always colored by vertexColor;
// edgeColor is only consulted for u != v.
func Build(g *core.Graph, vertexColor VertexColorFunc, edgeColor EdgeColorFunc) (*wl.Matrix, []string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if vertexColor == nil || edgeColor == nil {
		return nil, nil, ErrNilColorFunc
	}

	order := g.Vertices() // already sorted by core.Graph's contract
	n := len(order)
	if n > wl.MaxN {
		return nil, nil, fmt.Errorf("%w: %d vertices, limit %d", ErrTooManyVertices, n, wl.MaxN)
	}
	if n == 0 {
		return nil, nil, fmt.Errorf("%w: graph has no vertices", ErrNilGraph)
	}

	// edgeByPair lets lookups run in O(1) per cell instead of scanning
	// every edge for each cell.
	type pair struct{ from, to string }
	edgeByPair := make(map[pair]*core.Edge)
	directed := g.Directed()
	for _, e := range g.Edges() {
		edgeByPair[pair{e.From, e.To}] = e
		if !directed {
			edgeByPair[pair{e.To, e.From}] = e
		}
	}

	rawDiag := make([]int, n)
	rawOff := make([][]int, n)
	for u := range rawOff {
		rawOff[u] = make([]int, n)
	}
	for u, uid := range order {
		rawDiag[u] = vertexColor(uid)
		for v, vid := range order {
			if u == v {
				continue
			}
			e, hasEdge := edgeByPair[pair{uid, vid}]
			rawOff[u][v] = edgeColor(uid, vid, e, hasEdge)
		}
	}

	diagRemap := make(map[int]wl.Color)
	offRemap := make(map[int]wl.Color)
	var nextDiag, nextOff wl.Color
	for _, c := range rawDiag {
		if _, ok := diagRemap[c]; !ok {
			diagRemap[c] = nextDiag
			nextDiag++
		}
	}
	for _, row := range rawOff {
		for _, c := range row {
			if _, ok := offRemap[c]; !ok {
				offRemap[c] = nextOff
				nextOff++
			}
		}
	}
	for c, local := range offRemap {
		offRemap[c] = local + nextDiag
	}

	m, err := wl.NewMatrix(n, nextDiag+nextOff)
	if err != nil {
		return nil, nil, err
	}
	for u := 0; u < n; u++ {
		m.Set(u, u, diagRemap[rawDiag[u]])
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			m.Set(u, v, offRemap[rawOff[u][v]])
		}
	}

	return m, order, nil
}

// SimpleGraphMatrix builds the matrix for the canonical unweighted simple
// graph encoding: a single vertex color (diagonal tag 2) and two edge
// colors (off-diagonal tags 0 for non-edge, 1 for edge).
func SimpleGraphMatrix(g *core.Graph) (*wl.Matrix, []string, error) {
	vertexColor := func(string) int { return 2 }
	edgeColor := func(from, to string, _ *core.Edge, hasEdge bool) int {
		if hasEdge {
			return 1
		}
		return 0
	}
	return Build(g, vertexColor, edgeColor)
}
