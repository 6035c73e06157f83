package solver

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/katalvlaran/travelroute/core"
)

// Solver owns the memo and backpointer tables for one graph and one goal.
type Solver struct {
	g     *core.Graph
	opts  Options
	memo  map[string]int64
	next  map[string]string
	stats Stats
}

// New creates a Solver over g.
// Errors: ErrNilGraph, ErrUnknownStrategy.
func New(g *core.Graph, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, err := ParseStrategy(string(cfg.Strategy)); err != nil {
		return nil, err
	}
	s := &Solver{g: g, opts: cfg}
	s.Reset()

	return s, nil
}

// Solve returns the minimal total cost from start to the goal, filling the
// memo and backpointer tables on the way. Repeated calls are answered from
// the memo table and leave both tables unchanged.
//
// Infinity is returned, without error, when the goal is unreachable.
func (s *Solver) Solve(start string) (int64, error) {
	if start == "" {
		return 0, ErrEmptyStart
	}
	if c, ok := s.memo[start]; ok {
		s.stats.MemoHits++
		s.stats.Solves++

		return c, nil
	}
	if start == s.opts.Goal {
		s.memo[start] = 0
		s.stats.Solves++

		return 0, nil
	}
	if !s.g.HasVertex(start) {
		return 0, fmt.Errorf("solver: start %q: %w", start, core.ErrVertexNotFound)
	}

	var (
		cost int64
		err  error
	)
	switch s.opts.Strategy {
	case StrategyTopological:
		cost, err = s.solveTopological(start)
	case StrategyDijkstra:
		cost, err = s.solveShortestTree(start)
	default:
		cost, err = s.solveMemo(start, make(map[string]bool))
	}
	if err != nil {
		return 0, err
	}
	s.stats.Solves++

	s.opts.Logger.Debug("solver: solved",
		slog.String("start", start),
		slog.String("goal", s.opts.Goal),
		slog.String("strategy", string(s.opts.Strategy)),
		slog.Int64("cost", cost),
		slog.Bool("reachable", IsReachable(cost)),
		slog.Int("expanded", s.stats.Expanded),
	)

	return cost, nil
}

// Cost returns the memoized cost of id.
func (s *Solver) Cost(id string) (int64, bool) {
	c, ok := s.memo[id]

	return c, ok
}

// Next returns the backpointer of id: the next node on an optimal path.
func (s *Solver) Next(id string) (string, bool) {
	n, ok := s.next[id]

	return n, ok
}

// Memo returns a copy of the memo table.
func (s *Solver) Memo() map[string]int64 { return maps.Clone(s.memo) }

// Backpointers returns a copy of the backpointer table.
func (s *Solver) Backpointers() map[string]string { return maps.Clone(s.next) }

// Goal returns the terminal node ID.
func (s *Solver) Goal() string { return s.opts.Goal }

// Strategy returns the evaluation strategy.
func (s *Solver) Strategy() Strategy { return s.opts.Strategy }

// Stats returns counters accumulated since construction or Reset.
func (s *Solver) Stats() Stats { return s.stats }

// Reset clears both tables and the counters.
func (s *Solver) Reset() {
	s.memo = make(map[string]int64)
	s.next = make(map[string]string)
	s.stats = Stats{Strategy: s.opts.Strategy}
}

// addCost returns a+b, saturating at Infinity. Both operands are non-negative.
func addCost(a, b int64) int64 {
	if a >= Infinity-b {
		return Infinity
	}

	return a + b
}

// record picks the best edge of id given the costs of its neighbors and
// writes both tables. costOf must know every neighbor.
// The first neighbor reaching the minimum wins.
func (s *Solver) record(id string, edges []core.Edge, costOf func(string) int64) int64 {
	best, via := Infinity, ""
	var total int64
	for _, e := range edges {
		total = addCost(e.Weight, costOf(e.To))
		if via == "" || total < best {
			best, via = total, e.To
		}
	}
	if via != "" {
		s.next[id] = via
	}
	s.memo[id] = best

	return best
}
