package solver

import (
	"fmt"

	"github.com/katalvlaran/travelroute/core"
	"github.com/katalvlaran/travelroute/dijkstra"
)

// solveShortestTree runs Dijkstra from the goal on the reversed graph to get
// every node's cost to the goal, then fills the tables for the nodes reachable
// from start (goal not expanded). Backpointers follow the same first-minimal
// rule as the other strategies; the Dijkstra tree is only used to break
// zero-cost tie cycles, which cyclic graphs can produce.
func (s *Solver) solveShortestTree(start string) (int64, error) {
	dist := map[string]int64{}
	tree := map[string]string{}
	if s.g.HasVertex(s.opts.Goal) {
		var err error
		dist, tree, err = dijkstra.Dijkstra(s.g.Reverse(),
			dijkstra.Source(s.opts.Goal),
			dijkstra.WithReturnPath(),
		)
		if err != nil {
			return 0, fmt.Errorf("solver: %w", err)
		}
	}
	costOf := func(v string) int64 {
		if v == s.opts.Goal {
			return 0
		}
		if d, ok := dist[v]; ok {
			return d
		}
		return Infinity
	}

	// Forward walk over the reachable part, goal excluded from expansion.
	stack := []string{start}
	seen := map[string]bool{start: true}
	var expanded []string
	var id string
	var edges []core.Edge
	var err error
	for len(stack) > 0 {
		if err = s.opts.Ctx.Err(); err != nil {
			return 0, err
		}
		id = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := s.memo[id]; ok {
			s.stats.MemoHits++
			continue
		}
		if id == s.opts.Goal {
			s.memo[id] = 0
			continue
		}
		if edges, err = s.g.Neighbors(id); err != nil {
			return 0, fmt.Errorf("solver: %w", err)
		}
		s.stats.Expanded++
		expanded = append(expanded, id)
		s.record(id, edges, costOf)

		for i := len(edges) - 1; i >= 0; i-- {
			if !seen[edges[i].To] {
				seen[edges[i].To] = true
				stack = append(stack, edges[i].To)
			}
		}
	}
	s.breakTieCycles(expanded, tree)

	return s.memo[start], nil
}

// breakTieCycles removes backpointer cycles among nodes. On a cyclic graph
// two nodes joined by zero-cost legs can each pick the other as their first
// minimal neighbor, and nodes that cannot reach the goal can point at each
// other. Every node on such a cycle falls back to its Dijkstra tree parent,
// or loses its backpointer when it has none. Tree parents never form a
// cycle, so each pass converts at least one tie pointer and the loop ends.
// On an acyclic graph no cycle exists and nothing changes.
func (s *Solver) breakTieCycles(nodes []string, tree map[string]string) {
	const (
		unvisited = iota
		onPath
		done
	)
	for changed := true; changed; {
		changed = false
		state := make(map[string]int, len(nodes))
		for _, id := range nodes {
			var path []string
			cur, ok := id, true
			for ok && state[cur] == unvisited {
				state[cur] = onPath
				path = append(path, cur)
				cur, ok = s.next[cur]
			}
			if ok && state[cur] == onPath {
				i := len(path) - 1
				for path[i] != cur {
					i--
				}
				for _, p := range path[i:] {
					if parent := tree[p]; parent != "" {
						s.next[p] = parent
					} else {
						delete(s.next, p)
					}
				}
				changed = true
			}
			for _, p := range path {
				state[p] = done
			}
		}
	}
}
