package core

import "errors"

// Sentinel errors for Graph construction. Kept as package-level vars so
// callers can errors.Is against a specific cause, matching the sentinel
// convention used throughout this module.
var (
	// ErrEmptyVertexID indicates AddVertex was called with an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called twice for the same ID.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates AddEdge referenced an ID with no matching vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoopNotAllowed indicates an edge's two endpoints were identical.
	ErrSelfLoopNotAllowed = errors.New("core: self-loops are not allowed")

	// ErrMultiEdgeNotAllowed indicates an edge already exists between the
	// requested endpoints (in the relevant direction).
	ErrMultiEdgeNotAllowed = errors.New("core: parallel edges are not allowed")
)
