package bfs

import (
	"fmt"

	"github.com/katalvlaran/travelroute/core"
)

// search is the state of one BFS run. res.Order doubles as the queue:
// head indexes the next node to expand.
type search struct {
	g    *core.Graph
	opts Options
	res  *Result
}

// BFS walks g from start counting legs, not cost. Legs out of a node are
// followed in insertion order, so Order and Parent are deterministic.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ErrNeighbors, the context's error, or the OnReach error wrapped with the
// node id. On error the partial Result is returned.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	s := &search{
		g:    g,
		opts: o,
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, n),
			Legs:   make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	if err := s.reach(start, 0, ""); err != nil {
		return s.res, err
	}

	return s.res, s.run()
}

func (s *search) run() error {
	for head := 0; head < len(s.res.Order); head++ {
		if err := s.opts.Ctx.Err(); err != nil {
			return err
		}
		if err := s.expand(s.res.Order[head]); err != nil {
			return err
		}
	}

	return nil
}

// expand reaches every unseen, kept neighbor of id.
func (s *search) expand(id string) error {
	legs := s.res.Legs[id]
	if s.opts.MaxLegs > 0 && legs >= s.opts.MaxLegs {
		return nil
	}
	edges, err := s.g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: legs out of %q: %v", ErrNeighbors, id, err)
	}
	for _, e := range edges {
		if s.res.Reached(e.To) || !s.opts.Keep(id, e.To) {
			continue
		}
		if err = s.reach(e.To, legs+1, id); err != nil {
			return err
		}
	}

	return nil
}

func (s *search) reach(id string, legs int, from string) error {
	s.res.Legs[id] = legs
	if from != "" {
		s.res.Parent[id] = from
	}
	s.res.Order = append(s.res.Order, id)
	if err := s.opts.OnReach(id, legs); err != nil {
		return fmt.Errorf("bfs: reaching %q: %w", id, err)
	}

	return nil
}
