// Command wlrefine computes the coarsest cellular refinement of a coloring
// of Ω × Ω, read in the textual matrix format from standard input or from a
// file given as the sole positional argument, and writes the refined
// matrix in the same format to standard output.
//
// Usage:
//
//	wlrefine [-strategy intern|hash|blake2] [-max-passes N] [-debug] [file]
//
// With no file argument, the matrix is read from standard input.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vpetrenko/wlrefine/format"
	"github.com/vpetrenko/wlrefine/wl"
)

var (
	strategyFlag  = flag.String("strategy", "intern", "Signature strategy: intern, hash, or blake2")
	maxPassesFlag = flag.Int("max-passes", 0, "Cap on refinement passes (0 uses the default n²-1 bound)")
	debugFlag     = flag.Bool("debug", false, "Emit pass-count diagnostics to standard output")
)

func main() {
	flag.Parse()

	strategy, err := parseStrategy(*strategyFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	in, closeIn, err := openInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeIn()

	m, err := format.Parse(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := []wl.Option{wl.WithSignatureStrategy(strategy)}
	if *maxPassesFlag > 0 {
		opts = append(opts, wl.WithMaxPasses(*maxPassesFlag))
	}

	res, err := wl.RefineDetailed(m, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (%s)\n", err, wl.Classify(err))
		os.Exit(1)
	}

	if *debugFlag {
		fmt.Printf("passes=%d d=%d d_diag=%d\n", res.Passes, res.D, res.DDiagonal)
	}

	if err := format.Write(os.Stdout, m); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseStrategy(s string) (wl.Strategy, error) {
	switch s {
	case "intern":
		return wl.StrategyIntern, nil
	case "hash":
		return wl.StrategyHash, nil
	case "blake2":
		return wl.StrategyHashBlake2, nil
	default:
		return 0, fmt.Errorf("unknown -strategy %q (want intern, hash, or blake2)", s)
	}
}

// openInput returns stdin when args is empty, or the named file as args[0].
// When err is nil, the returned close function is always safe to call.
func openInput(args []string) (*os.File, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	if len(args) > 1 {
		return nil, nil, fmt.Errorf("unexpected extra arguments: %v", args[1:])
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", args[0], err)
	}
	return f, func() { f.Close() }, nil
}
