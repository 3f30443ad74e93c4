// SPDX-License-Identifier: MIT
// validate.go — input validation and initial canonicalization (§4.4 steps 1-2).
//
// Validation runs to completion before any refinement work begins: the
// driver either accepts the whole matrix or rejects it outright, never
// refines a malformed one partway.

package wl

import "fmt"

// validate scans a for the coherence invariants required before refinement:
// square shape, diagonal/off-diagonal disjointness, and a palette that is
// exactly the contiguous segment {0,…,d-1}.
func validate(a *Matrix) error {
	if a == nil {
		return fmt.Errorf("%w: nil matrix", ErrBadShape)
	}
	if a.N <= 0 || a.N > MaxN || len(a.Cells) != a.N*a.N {
		return fmt.Errorf("%w: n=%d, len(cells)=%d", ErrBadShape, a.N, len(a.Cells))
	}

	seenDiag := make(map[Color]struct{})
	seenOD := make(map[Color]struct{})
	for u := 0; u < a.N; u++ {
		for v := 0; v < a.N; v++ {
			c := a.At(u, v)
			if c >= a.D {
				return fmt.Errorf("%w: cell (%d,%d) has color %d >= declared d=%d", ErrNonContiguousPalette, u, v, c, a.D)
			}
			if u == v {
				seenDiag[c] = struct{}{}
			} else {
				seenOD[c] = struct{}{}
			}
		}
	}

	for c := range seenDiag {
		if _, clash := seenOD[c]; clash {
			return fmt.Errorf("%w: color %d used both on and off the diagonal", ErrDisjointViolation, c)
		}
	}

	observed := len(seenDiag) + len(seenOD)
	present := make([]bool, a.D)
	for c := range seenDiag {
		present[c] = true
	}
	for c := range seenOD {
		present[c] = true
	}
	for c := 0; c < observed; c++ {
		if !present[c] {
			return fmt.Errorf("%w: color %d never appears in the matrix", ErrNonContiguousPalette, c)
		}
	}

	if Color(observed) != a.D {
		return fmt.Errorf("%w: declared d=%d, observed %d distinct colors", ErrPaletteMismatch, a.D, observed)
	}

	return nil
}

// canonicalize relabels a validated matrix in place so diagonal colors
// occupy {0,…,dDiag-1} and off-diagonal colors occupy {dDiag,…,d-1} — the
// recommended (optional) pre-pass from §4.4 step 2. Within each range,
// colors are numbered by first appearance in row-major order, so a matrix
// already in this layout can still be renumbered; applying canonicalize to
// its own output changes nothing.
func canonicalize(a *Matrix) {
	diagRemap := make(map[Color]Color)
	odRemap := make(map[Color]Color)
	var nextDiag, nextOD Color

	for u := 0; u < a.N; u++ {
		for v := 0; v < a.N; v++ {
			c := a.At(u, v)
			if u == v {
				if _, ok := diagRemap[c]; !ok {
					diagRemap[c] = nextDiag
					nextDiag++
				}
			} else {
				if _, ok := odRemap[c]; !ok {
					odRemap[c] = nextOD
					nextOD++
				}
			}
		}
	}
	for c, local := range odRemap {
		odRemap[c] = local + nextDiag
	}

	for u := 0; u < a.N; u++ {
		for v := 0; v < a.N; v++ {
			c := a.At(u, v)
			if u == v {
				a.Set(u, v, diagRemap[c])
			} else {
				a.Set(u, v, odRemap[c])
			}
		}
	}
}
