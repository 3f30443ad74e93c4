// SPDX-License-Identifier: MIT
// refine.go — the Refinement Driver (§4.4).
//
// Orchestrates the fixed-point iteration: validate once, canonicalize, then
// alternate building per-cell signatures and rewriting a scratch matrix
// until the palette size stops growing. The loop is single-threaded and
// synchronous by design (§5) — no cancellation, no partial results.

package wl

import "fmt"

// Result summarizes a successful refinement: the new palette size, its
// diagonal/off-diagonal split, and how many passes it took to converge.
type Result struct {
	D         Color // total palette size d_out
	DDiagonal Color // diagonal colors occupy {0,…,DDiagonal-1}
	Passes    int
}

// Refine computes the coarsest cellular refinement of a's coloring,
// replacing a's contents in place on success. It returns the new palette
// size d_out (equivalently Result.D from RefineDetailed). On failure a is
// left in an unspecified state, and the returned error wraps one of the
// sentinels in errors.go — pass it to Classify for the three-way status
// taxonomy.
func Refine(a *Matrix, opts ...Option) (Color, error) {
	res, err := RefineDetailed(a, opts...)
	if err != nil {
		return 0, err
	}
	return res.D, nil
}

// RefineDetailed behaves like Refine but also reports the diagonal split
// and the pass count of the converged refinement.
func RefineDetailed(a *Matrix, opts ...Option) (Result, error) {
	if err := validate(a); err != nil {
		return Result{}, err
	}
	cfg := resolveOptions(opts...)

	canonicalize(a)

	n := a.N
	maxPasses := n*n - 1
	if cfg.maxPasses > 0 && cfg.maxPasses < maxPasses {
		maxPasses = cfg.maxPasses
	}

	scratch, err := NewMatrix(n, 0)
	if err != nil {
		return Result{}, err
	}
	keys, err := safeAllocKeys(n)
	if err != nil {
		return Result{}, err
	}

	pm := newPaletteManager(cfg.strategy)
	d := a.D
	var dDiag Color

	for pass := 0; ; pass++ {
		pm.beginPass()

		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				buildContributionKeys(a, u, v, keys)
				sortKeys(keys)
				local := pm.assign(u == v, keys)
				scratch.Set(u, v, local)
			}
		}

		dPrime, dDiagPrime, offset, err := pm.finalizePass()
		if err != nil {
			return Result{}, err
		}

		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				local := scratch.At(u, v)
				a.Set(u, v, offset(u == v, local))
			}
		}
		a.D = dPrime
		dDiag = dDiagPrime

		converged := dPrime == d
		d = dPrime
		if converged {
			return Result{D: d, DDiagonal: dDiag, Passes: pass + 1}, nil
		}
		if pass+1 >= maxPasses {
			return Result{}, fmt.Errorf("%w: after %d passes, palette still growing (d=%d)", ErrTooManyPasses, pass+1, d)
		}
	}
}
