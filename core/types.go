// Package core defines the Graph, Node and Edge types and the sentinel errors
// shared by every graph operation.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative edge cost.
	ErrBadWeight = errors.New("core: edge cost must be non-negative")
)

// Edge is a directed leg From→To with an additive Weight (travel time).
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the non-negative cost of the leg.
	Weight int64
}

// Node is a read-only snapshot of one vertex and its outgoing edges.
type Node struct {
	// ID is the unique identifier of the vertex.
	ID string

	// Edges lists outgoing edges in insertion order.
	Edges []Edge
}

// vertex is the internal, mutable record behind a Node.
//   - out keeps neighbor IDs in first-insertion order.
//   - cost maps neighbor ID → current edge weight.
type vertex struct {
	id   string
	out  []string
	cost map[string]int64
}

// Graph is the directed, weighted travel graph.
//
// mu guards every field. order records vertex creation order so that
// Edges() and Reverse() are deterministic without sorting.
type Graph struct {
	mu sync.RWMutex

	vertices  map[string]*vertex // vertex ID → record
	order     []string           // vertex IDs in creation order
	edgeCount int                // number of distinct (from,to) pairs
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]*vertex),
	}
}
