package format

import "errors"

var (
	// ErrMalformed indicates the input does not conform to the textual
	// matrix format: missing fields or too few cell tokens, a non-integer
	// token, or a token out of range. Line breaks are not significant, so
	// the length of an individual row is not checked.
	ErrMalformed = errors.New("format: malformed matrix text")
)
