package graphwrap

import "errors"

var (
	// ErrNilGraph indicates a nil *core.Graph, or a graph with no vertices,
	// was passed to a builder.
	ErrNilGraph = errors.New("graphwrap: graph is nil")

	// ErrTooManyVertices indicates the graph has more vertices than
	// wl.MaxN, the kernel's supported domain size.
	ErrTooManyVertices = errors.New("graphwrap: graph exceeds the refinement kernel's vertex limit")

	// ErrNilColorFunc indicates a required vertex or edge color function was nil.
	ErrNilColorFunc = errors.New("graphwrap: color function is nil")
)
