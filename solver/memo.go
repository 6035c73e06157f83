package solver

import (
	"fmt"

	"github.com/katalvlaran/travelroute/dfs"
)

// solveMemo is the top-down memoized recursion. onPath holds the nodes on the
// current recursion path; meeting one again means a cycle.
func (s *Solver) solveMemo(id string, onPath map[string]bool) (int64, error) {
	if c, ok := s.memo[id]; ok {
		s.stats.MemoHits++
		return c, nil
	}
	if err := s.opts.Ctx.Err(); err != nil {
		return 0, err
	}
	if id == s.opts.Goal {
		s.memo[id] = 0
		return 0, nil
	}
	if onPath[id] {
		return 0, fmt.Errorf("solver: %w at %q", dfs.ErrCycleDetected, id)
	}

	edges, err := s.g.Neighbors(id)
	if err != nil {
		return 0, fmt.Errorf("solver: %w", err)
	}
	s.stats.Expanded++

	onPath[id] = true
	for _, e := range edges {
		if _, err = s.solveMemo(e.To, onPath); err != nil {
			return 0, err
		}
	}
	delete(onPath, id)

	return s.record(id, edges, func(v string) int64 { return s.memo[v] }), nil
}
