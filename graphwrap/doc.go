// Package graphwrap adapts a core.Graph into a wl.Matrix: the external
// graph-wrapper collaborator the refinement kernel expects at its boundary.
//
// The wrapper owns two responsibilities the kernel itself refuses to take
// on: choosing a vertex ordering (Ω is realized as the graph's vertex IDs in
// sorted order) and supplying the initial vertex/edge coloring. The wrapper
// renumbers whatever colors the caller supplies into the kernel's required
// layout — diagonal colors first, off-diagonal colors after — so the core
// never has to guess whether a caller's raw coloring already satisfies
// coherence.
//
//	go get github.com/vpetrenko/wlrefine/graphwrap
package graphwrap
