// SPDX-License-Identifier: MIT
// errors.go — sentinel error set for the wl package.
//
// All failures returned by Refine wrap exactly one of the sentinels below.
// Callers should branch with errors.Is, or call Classify to recover the
// three-way error taxonomy from §7 of the design (malformed input, out of
// memory, overflow) without enumerating every granular sentinel.

package wl

import "errors"

var (
	// ErrBadShape indicates n <= 0 or the cell slice length does not equal n*n.
	ErrBadShape = errors.New("wl: matrix shape is invalid")

	// ErrPaletteMismatch indicates the declared palette size d does not equal
	// the number of distinct color values actually present in the matrix.
	ErrPaletteMismatch = errors.New("wl: declared palette size does not match observed colors")

	// ErrNonContiguousPalette indicates the observed color values are not the
	// initial segment {0, …, d-1} (a gap or an out-of-range value was found).
	ErrNonContiguousPalette = errors.New("wl: color values are not a contiguous initial segment")

	// ErrDisjointViolation indicates a color value appears both on and off
	// the diagonal, violating coherence.
	ErrDisjointViolation = errors.New("wl: diagonal and off-diagonal colors are not disjoint")

	// ErrOverflow indicates the refined palette size would exceed the
	// representable ceiling (MaxPaletteSize) or its packed-key arithmetic
	// would not fit the 64-bit accumulator.
	ErrOverflow = errors.New("wl: palette size exceeds the representable limit")

	// ErrOutOfMemory indicates a required allocation failed.
	ErrOutOfMemory = errors.New("wl: required allocation failed")

	// ErrTooManyPasses indicates the driver exceeded its n²-1 termination
	// bound without converging — a guard against a logic error, since the
	// algorithm is monotone and should always converge within that bound.
	ErrTooManyPasses = errors.New("wl: exceeded termination bound without converging")
)

// Status classifies a Refine error into the three-kind taxonomy the design
// reports to callers: malformed input, out of memory, or overflow.
type Status int

const (
	// StatusOK indicates refinement succeeded.
	StatusOK Status = iota
	// StatusMalformedInput indicates the input violated a shape or coherence invariant.
	StatusMalformedInput
	// StatusOutOfMemory indicates a required allocation failed.
	StatusOutOfMemory
	// StatusOverflow indicates the palette outgrew the representable ceiling.
	StatusOverflow
	// StatusInternal indicates the termination-bound guard tripped; this
	// should never happen for well-formed input and signals a logic error.
	StatusInternal
)

// String implements fmt.Stringer for Status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMalformedInput:
		return "malformed_input"
	case StatusOutOfMemory:
		return "out_of_memory"
	case StatusOverflow:
		return "overflow"
	case StatusInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Classify maps an error returned by Refine to its Status. A nil error
// classifies as StatusOK.
func Classify(err error) Status {
	if err == nil {
		return StatusOK
	}
	switch {
	case errors.Is(err, ErrBadShape),
		errors.Is(err, ErrPaletteMismatch),
		errors.Is(err, ErrNonContiguousPalette),
		errors.Is(err, ErrDisjointViolation):
		return StatusMalformedInput
	case errors.Is(err, ErrOutOfMemory):
		return StatusOutOfMemory
	case errors.Is(err, ErrOverflow):
		return StatusOverflow
	case errors.Is(err, ErrTooManyPasses):
		return StatusInternal
	default:
		return StatusInternal
	}
}
