package solver

import (
	"fmt"

	"github.com/katalvlaran/travelroute/dfs"
)

// solveTopological evaluates the subgraph reachable from start bottom-up:
// in reverse topological order every neighbor is known before its predecessor.
func (s *Solver) solveTopological(start string) (int64, error) {
	order, err := dfs.TopologicalSort(s.g,
		dfs.WithRoot(start),
		dfs.WithSink(s.opts.Goal),
		dfs.WithCancelContext(s.opts.Ctx),
	)
	if err != nil {
		return 0, fmt.Errorf("solver: %w", err)
	}

	costOf := func(v string) int64 { return s.memo[v] }
	var id string
	for i := len(order) - 1; i >= 0; i-- {
		id = order[i]
		if _, ok := s.memo[id]; ok {
			s.stats.MemoHits++
			continue
		}
		if id == s.opts.Goal {
			s.memo[id] = 0
			continue
		}
		edges, err := s.g.Neighbors(id)
		if err != nil {
			return 0, fmt.Errorf("solver: %w", err)
		}
		s.stats.Expanded++
		s.record(id, edges, costOf)
	}

	return s.memo[start], nil
}
