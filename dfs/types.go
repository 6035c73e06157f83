// Package dfs defines the visitation states and sentinel errors shared by
// topological sort and cycle detection.
package dfs

import "errors"

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// TopologicalSort or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified root vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)
