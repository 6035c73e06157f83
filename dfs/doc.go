// Package dfs implements depth‑first machinery on a core.Graph: topological
// ordering of the subgraph reachable from a root, and cycle detection.
//
// What:
//
//   - TopologicalSort: computes a linear ordering of vertices such that for
//     every edge u→v, u appears before v. With WithRoot the ordering covers
//     only vertices reachable from the root; WithSink marks a vertex whose
//     outgoing edges are not followed (the planner's Goal).
//   - DetectCycles: enumerates all simple cycles found through back edges,
//     using vertex coloring (White, Gray, Black) and canonical rotation for
//     deduplication.
//
// Why:
//   - The route solver evaluates costs bottom-up in reverse topological order,
//     which needs an order and a guarantee that no cycle is reachable.
//   - The CLI check command reports cycles in an adjacency file before a
//     solve would reject it.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V+L_max)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  root vertex ID not in graph
//   - ErrCycleDetected        cycle discovered during TopologicalSort
//   - context.Canceled        sort canceled via WithCancelContext
package dfs
