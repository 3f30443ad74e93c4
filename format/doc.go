// Package format implements the textual matrix format used at the CLI
// boundary:
//
//	<d>
//	<n>
//	<row_0 tokens separated by whitespace>
//	...
//	<row_{n-1} tokens>
//
// Tokens are non-negative decimal integers strictly less than d. Whitespace
// between tokens is any non-empty run of spaces, tabs, or newlines. Write
// produces the identical layout: d, then n, then n rows of n
// space-separated tokens, one row per line.
package format
