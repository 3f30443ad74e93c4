// Package wl computes the Weisfeiler-Leman coherent refinement of a
// coloring of Ω × Ω, where Ω = {0, …, n-1}.
//
// A coloring of the n×n cells is cellular iff, for every ordered triple of
// color classes (i, j, k), the count
//
//	p_ij^k = |{ w ∈ Ω : (u,w) ∈ class i ∧ (w,v) ∈ class j }|
//
// is the same for every cell (u,v) in class k. Refine reaches such a
// coloring by iteratively splitting classes until this holds,
// while keeping diagonal and off-diagonal colors in disjoint ranges
// (coherence).
//
// The package is organized around the four cooperating stages described by
// the algorithm:
//
//   - contributions.go builds, for each cell, the sequence of structure
//     constant contributions (A[u,w], A[w,v]) over w.
//   - signature.go packs and sorts that sequence into a canonical
//     fingerprint, using either a hashed or an interned strategy.
//   - palette.go assigns fingerprints to fresh color indices for the next
//     pass, keeping diagonal and off-diagonal pools separate and detecting
//     overflow.
//   - refine.go drives the fixed-point loop: validate, canonicalize, run
//     passes until the palette size stops growing, and enforce the n²-1
//     termination bound.
//
// Refine and RefineDetailed are the package's only entry points; Option,
// Strategy, Classify, and the sentinel errors configure and interpret a
// call, but nothing outside refine.go drives the loop itself.
package wl
