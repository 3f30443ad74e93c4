// Package wlrefine computes the Weisfeiler-Leman coherent refinement of a
// coloring of Ω × Ω for a finite set Ω = {0, …, n-1}.
//
// Given an n×n matrix of color indices, the kernel in wl/ iteratively
// refines the coloring until it is cellular: for every ordered triple of
// colors (i, j, k), the number of w completing an i-j path between cells of
// class k is constant across k. The refinement never coarsens and always
// terminates, because the palette can only grow and is bounded by n².
//
// Subpackages:
//
//	wl/        — the refinement kernel: cell contributions, signature
//	             encoding, palette management, and the fixed-point driver.
//	graphwrap/ — adapts a core.Graph into a coherent color matrix, the
//	             external graph-wrapper collaborator at the kernel's boundary.
//	format/    — the textual matrix format used at the CLI boundary.
//	core/      — a minimal thread-safe Vertex/Edge/Graph store, narrowed to
//	             the handful of operations graphwrap needs to realize Ω.
//	cmd/wlrefine/ — a single executable reading the textual format from
//	             stdin or a file and writing the refined matrix to stdout.
//
// Quick ASCII example of what refinement does to a 2×2 all-distinct input
// (already cellular, so its partition is unchanged; the colors are only
// renumbered so that diagonal colors come first):
//
//	0 1        0 2
//	2 3   -->  3 1
//
//	go get github.com/vpetrenko/wlrefine/wl
package wlrefine
