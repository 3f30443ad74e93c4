// SPDX-License-Identifier: MIT
// options.go — functional configuration for Refine.
//
// Mirrors the WithX(...)/resolve pattern used elsewhere in this codebase for
// adapter configuration: options are unexported fields on a config struct,
// resolved once at the start of a call, never mutated afterward.

package wl

// Strategy selects how the signature encoder canonicalizes a cell's sorted
// contribution sequence into a color-bucket key (§4.2 of the design).
type Strategy int

const (
	// StrategyIntern keys directly on the sorted contribution sequence
	// (encoded as bytes), so two cells with the same multiset always land
	// in the same map bucket with no possibility of collision.
	StrategyIntern Strategy = iota

	// StrategyHash keys on a 64-bit FNV-1a fingerprint of the sorted
	// sequence, with a full-equality check on hash collision. Cheaper per
	// comparison once n is large enough that interned keys get long, at
	// the cost of keeping the sorted sequence around for the tie-break.
	StrategyHash

	// StrategyHashBlake2 is StrategyHash with BLAKE2b in place of FNV-1a as
	// the fingerprint function. Same collision-resolution contract; useful
	// when a cryptographic-quality avalanche is worth its extra cost, e.g.
	// for adversarially constructed inputs in a golden-file test suite.
	StrategyHashBlake2
)

// config holds resolved Refine options.
type config struct {
	strategy  Strategy
	maxPasses int // 0 means "use the n²-1 bound from the design"
}

// Option configures a Refine call.
type Option func(*config)

// WithSignatureStrategy selects the fingerprinting strategy used by the
// contribution encoder. The default is StrategyIntern.
func WithSignatureStrategy(s Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithMaxPasses caps the number of refinement passes below the design's
// n²-1 termination bound. A non-positive value restores the default bound.
// Exceeding the cap without converging is reported as ErrTooManyPasses,
// exactly like exceeding the n²-1 bound itself.
func WithMaxPasses(n int) Option {
	return func(c *config) { c.maxPasses = n }
}

// resolveOptions applies opts over the default configuration.
func resolveOptions(opts ...Option) config {
	cfg := config{strategy: StrategyIntern}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
