// SPDX-License-Identifier: MIT
// contributions.go — the Cell Contribution Builder (§4.1).
//
// For a fixed cell (u,v), enumerates w ∈ {0,…,n-1} and emits the packed key
// for each ordered pair (A[u,w], A[w,v]). The builder is a pure function of
// its inputs: it never mutates the matrix, and the multiset it produces —
// not the order it's produced in — is what defines cellular refinement.
// Canonicalizing that multiset is the encoder's job (signature.go).

package wl

// packKey encodes a contribution pair (c1,c2) as a single uint64 under the
// current palette size d, via the bijection {0,…,d-1}² → {0,…,d²-1}.
// Guaranteed to fit in 64 bits because the palette manager never lets d
// exceed MaxPaletteSize (§4.3 overflow guard).
func packKey(c1, c2 Color, d Color) uint64 {
	return uint64(c1)*uint64(d) + uint64(c2)
}

// buildContributionKeys fills keys[0:n] with the packed contribution key for
// cell (u,v), one per w in ascending order. keys must have length a.N; the
// caller owns and reuses this buffer across cells within a pass.
func buildContributionKeys(a *Matrix, u, v int, keys []uint64) {
	n := a.N
	d := a.D
	rowU := u * n
	for w := 0; w < n; w++ {
		c1 := a.Cells[rowU+w]
		c2 := a.Cells[w*n+v]
		keys[w] = packKey(c1, c2, d)
	}
}
