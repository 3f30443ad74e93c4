// SPDX-License-Identifier: MIT
// format.go implements Parse and Write for the textual matrix format.

package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/vpetrenko/wlrefine/wl"
)

// Parse reads a matrix in the textual format from r: a declared palette
// size d, a declared dimension n, and n rows of n whitespace-separated
// tokens. Every wrapping error is ErrMalformed.
func Parse(r io.Reader) (*wl.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	nextToken := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("%w: reading %s: %v", ErrMalformed, what, err)
			}
			return "", fmt.Errorf("%w: unexpected end of input reading %s", ErrMalformed, what)
		}
		return sc.Text(), nil
	}
	nextUint := func(what string, max uint64) (uint64, error) {
		tok, err := nextToken(what)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not a non-negative integer", ErrMalformed, what, tok)
		}
		if v > max {
			return 0, fmt.Errorf("%w: %s %d exceeds the supported range", ErrMalformed, what, v)
		}
		return v, nil
	}

	d, err := nextUint("d", uint64(wl.MaxPaletteSize))
	if err != nil {
		return nil, err
	}
	n64, err := nextUint("n", uint64(wl.MaxN))
	if err != nil {
		return nil, err
	}
	n := int(n64)

	m, err := wl.NewMatrix(n, wl.Color(d))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if n > 0 && d == 0 {
		return nil, fmt.Errorf("%w: d=0 admits no valid cell tokens", ErrMalformed)
	}

	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			c, err := nextUint(fmt.Sprintf("cell (%d,%d)", u, v), d-1)
			if err != nil {
				return nil, err
			}
			m.Set(u, v, wl.Color(c))
		}
	}

	return m, nil
}

// Write renders m in the textual matrix format: d, then n, then n rows of n
// space-separated tokens, one row per line.
func Write(w io.Writer, m *wl.Matrix) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n%d\n", m.D, m.N); err != nil {
		return err
	}
	for u := 0; u < m.N; u++ {
		for v := 0; v < m.N; v++ {
			if v > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%d", m.At(u, v)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
