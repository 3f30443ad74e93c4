// SPDX-License-Identifier: MIT
// palette.go — the Palette Manager (§4.3).
//
// Translates cell signatures into new color indices for the next pass,
// keeping diagonal and off-diagonal pools in two separate signature tables
// so the output can never assign the same value to a diagonal and an
// off-diagonal cell. Tables are scoped to a single pass: begin fresh,
// finalize, discard.

package wl

import "fmt"

// paletteManager owns the two per-pass signature tables and the pass-end
// concatenation into a single contiguous palette.
type paletteManager struct {
	strategy Strategy
	diag     *signatureTable // M_D
	offDiag  *signatureTable // M_OD
}

func newPaletteManager(strategy Strategy) *paletteManager {
	return &paletteManager{strategy: strategy}
}

// beginPass clears the signature tables, starting a fresh pass.
func (p *paletteManager) beginPass() {
	p.diag = newSignatureTable(p.strategy)
	p.offDiag = newSignatureTable(p.strategy)
}

// assign returns the color index for sortedKeys within the diagonal or
// off-diagonal pool, creating one if this signature hasn't been seen yet
// this pass. The returned index is local to its pool; finalizePass offsets
// off-diagonal indices once both pool sizes are known.
func (p *paletteManager) assign(diagonalCell bool, sortedKeys []uint64) Color {
	if diagonalCell {
		return p.diag.assign(sortedKeys)
	}
	return p.offDiag.assign(sortedKeys)
}

// finalizePass concatenates the two pools into one palette: diagonal colors
// occupy {0,…,dDiag-1}, off-diagonal colors occupy {dDiag,…,d-1}. It
// returns the new sizes and an offset function translating a pool-local
// index into its final color, or ErrOverflow if the combined palette (or
// its packed-key arithmetic two passes out) would not fit the representable
// ceiling.
func (p *paletteManager) finalizePass() (d, dDiag Color, offset func(diagonalCell bool, local Color) Color, err error) {
	dDiag = p.diag.next
	dOD := p.offDiag.next

	total := uint64(dDiag) + uint64(dOD)
	if total >= uint64(MaxPaletteSize) {
		return 0, 0, nil, fmt.Errorf("%w: refined palette size %d >= ceiling %d", ErrOverflow, total, MaxPaletteSize)
	}
	d = Color(total)

	// Defensive re-check of the packed-key arithmetic headroom named in
	// §4.3: d*d + d - 1 must still fit a uint64. With d < MaxPaletteSize
	// (2^16) this can never come close to overflowing 64 bits, but the
	// check documents the invariant the ceiling exists to protect.
	if uint64(d)*uint64(d)+uint64(d) < uint64(d) {
		return 0, 0, nil, fmt.Errorf("%w: packed-key arithmetic would overflow for d=%d", ErrOverflow, d)
	}

	offset = func(diagonalCell bool, local Color) Color {
		if diagonalCell {
			return local
		}
		return local + dDiag
	}
	return d, dDiag, offset, nil
}
