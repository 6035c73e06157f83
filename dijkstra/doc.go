// Package dijkstra provides Dijkstra's shortest-path algorithm on the
// travel graph (non-negative edge costs).
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction (predecessor map).
//
// In the planner it backs the "dijkstra" solve strategy: run on the reversed
// graph from Goal, dist[v] is the minimal cost from v to Goal, and prev[v]
// is v's next hop toward Goal. Unlike the memoized strategies it tolerates
// cycles.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     Source not set.
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  Source does not exist in the graph.
//   - ErrNegativeWeight:  an edge with negative weight (defensive; core rejects them).
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[string]int64, prev map[string]string, err error)
//
//	  - dist: map[v] = minimal distance from Source to v, or math.MaxInt64 if unreachable.
//	  - prev: map[v] = predecessor of v on one shortest path, "" for Source and
//	          unreachable vertices. Nil unless WithReturnPath() is set.
//
// Thread safety:
//
//   - Dijkstra only reads the graph; concurrent runs on an unchanging graph are safe.
package dijkstra
