// Package bfs provides breadth-first search over a core.Graph, returning
// hop counts (legs, not cost), parent links, and reach order.
//
// The planner uses it for cheap structural checks before any cost is
// computed: which nodes the start can reach, how many legs the goal is
// away at minimum, and one route that achieves that minimum.
//
// Determinism
//
//	core.Graph.Neighbors returns edges in insertion order and BFS reaches
//	neighbors in that order, so Order and Parent are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "Start", bfs.WithContext(ctx), bfs.WithMaxLegs(4))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors or an OnReach error
//	}
//	path, err := res.PathTo("Goal") // ErrUnreached when Goal was never reached
//
// Options
//
//   - WithContext(ctx):     cancellation.
//   - WithMaxLegs(n):       do not go further than n legs from the start.
//   - WithLegFilter(keep):  follow only legs with keep(from, to) == true.
//   - AvoidNodes(ids...):   never enter the listed nodes.
//   - WithOnReach(fn):      called once per reached node.
package bfs
