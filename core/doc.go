// Package core provides the in-memory travel graph used by the route planner:
// a directed, weighted, append-only store of legs between named waypoints.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Directed edges only: AddEdge(from,to,cost) records the leg from→to.
//   - Non-negative integer costs (travel + stay time in minutes).
//   - At most one edge per (from,to) pair: a repeated AddEdge overwrites the
//     cost but keeps the edge at its original insertion position.
//   - Lazy vertex creation: AddEdge creates both endpoints when missing.
//   - No removal: vertices and edges live as long as the Graph.
//
// Deterministic iteration:
//
//   - Neighbors(id) and Node(id).Edges return outgoing edges in insertion order.
//     Solvers use this order to break ties between equal-cost neighbors, so
//     results are reproducible across runs.
//   - Vertices() returns IDs sorted lexicographically.
//   - Edges() walks vertices in creation order and edges in insertion order.
//
// Core Methods:
//
//	AddVertex(id string) error                 // O(1), idempotent
//	HasVertex(id string) bool                  // O(1)
//	AddEdge(from, to string, cost int64) error // O(1) amortized
//	HasEdge(from, to string) bool              // O(1)
//	Weight(from, to string) (int64, error)     // O(1)
//	Node(id string) (*Node, error)             // O(d) snapshot
//	Neighbors(id string) ([]Edge, error)       // O(d), insertion order
//	Vertices() []string                        // O(V·log V)
//	Edges() []Edge                             // O(V+E)
//	VertexCount(), EdgeCount() int             // O(1)
//	Reverse() *Graph                           // O(V+E) transposed copy
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – vertex was never created
//	ErrEdgeNotFound   – no edge between the given endpoints
//	ErrBadWeight      – negative edge cost
//
// Concurrency: a single sync.RWMutex guards the store. Reads may run in
// parallel; the planner only mutates the graph during its load phase.
package core
