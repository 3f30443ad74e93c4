// Package core defines the minimal Vertex/Edge/Graph storage that
// graphwrap renders into a wl.Matrix.
//
// This is not a general-purpose graph library: it keeps only the
// operations graphwrap actually calls — add a vertex, add an edge between
// two existing vertices, and enumerate both in a stable order. Weighting,
// multi-edges, self-loops and per-edge direction overrides are all
// rejected rather than configured, because the refinement kernel only
// ever consumes simple graphs (spec.md §6's "unweighted simple graph"
// encoding). A single mutex guards the whole Graph; there is no separate
// adjacency index to protect, so the teacher's split vertex/edge locks
// would buy nothing here.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrDuplicateVertex     - AddVertex called twice for the same ID.
//	ErrVertexNotFound      - AddEdge referenced a vertex that was never added.
//	ErrSelfLoopNotAllowed  - edge endpoints are identical.
//	ErrMultiEdgeNotAllowed - edge already exists between the two endpoints.
package core
