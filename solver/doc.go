// Package solver computes the minimum total cost from any node of the travel
// graph to the terminal node (Goal) and records, for every expanded node, the
// next hop on one optimal path (its backpointer).
//
// Tables:
//
//   - Memo: node ID → minimal total cost to Goal. Written once per node.
//     Memo[Goal] = 0.
//   - Backpointers: node ID → best next node. Absent for Goal and for nodes
//     without outgoing edges.
//
// For every node n with at least one neighbor:
//
//	Memo[n] = min over edges n→v of (w(n,v) + Memo[v])
//
// and Backpointers[n] is the first v, in edge insertion order, achieving it.
//
// Unreachable Goal is a normal result: the cost is Infinity (math.MaxInt64)
// and sums saturate at Infinity instead of overflowing. A node whose
// neighbors are all unreachable still points at its first neighbor, so route
// reconstruction walks to the dead end.
//
// Strategies:
//
//	StrategyMemo        – top-down memoized recursion (default).
//	StrategyTopological – bottom-up over the reverse topological order of the
//	                      subgraph reachable from the start (no recursion).
//	StrategyDijkstra    – Dijkstra from Goal on the reversed graph. Works on
//	                      cyclic graphs. Ties follow edge insertion order as
//	                      in the other strategies, except where that would
//	                      close a backpointer cycle; those nodes take their
//	                      shortest-path tree parent instead.
//
// Errors:
//
//	ErrNilGraph        – nil graph passed to New
//	ErrUnknownStrategy – unsupported Strategy value
//	ErrEmptyStart      – Solve("")
//	core.ErrVertexNotFound (wrapped) – start node absent from the graph
//	dfs.ErrCycleDetected  (wrapped) – cycle reachable from the start (memo/topological)
//
// A Solver is not safe for concurrent use; build one per goroutine.
package solver
