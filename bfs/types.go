package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors wraps a failure to list the legs out of a node.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrUnreached is returned by PathTo for a node the search never reached.
	ErrUnreached = errors.New("bfs: vertex not reached")
)

// Option tunes a search. An invalid value is kept until BFS runs and is
// reported as ErrOptionViolation.
type Option func(*Options)

// Options is the resolved configuration of one search.
type Options struct {
	Ctx context.Context

	// MaxLegs stops expansion of nodes this many legs from the start.
	// Zero means unlimited.
	MaxLegs int

	// Keep reports whether the leg from→to may be followed.
	Keep func(from, to string) bool

	// OnReach runs once per node, in reach order. A non-nil error aborts
	// the search.
	OnReach func(id string, legs int) error

	err error
}

func defaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Keep:    func(string, string) bool { return true },
		OnReach: func(string, int) error { return nil },
	}
}

// WithContext sets the context checked before each node is expanded.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxLegs limits the search to nodes at most n legs from the start.
// n == 0 removes the limit; n < 0 is an ErrOptionViolation.
func WithMaxLegs(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max legs cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLegs = n
	}
}

// WithLegFilter follows only the legs for which keep returns true.
func WithLegFilter(keep func(from, to string) bool) Option {
	return func(o *Options) {
		if keep != nil {
			o.Keep = keep
		}
	}
}

// AvoidNodes never enters any of ids. The start node is still expanded
// even when listed.
func AvoidNodes(ids ...string) Option {
	avoid := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		avoid[id] = struct{}{}
	}
	return WithLegFilter(func(_, to string) bool {
		_, skip := avoid[to]
		return !skip
	})
}

// WithOnReach registers fn to run for every reached node.
func WithOnReach(fn func(id string, legs int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReach = fn
		}
	}
}

// Result is the BFS tree rooted at the start node.
type Result struct {
	Start  string
	Order  []string          // reach order
	Legs   map[string]int    // fewest legs from Start
	Parent map[string]string // previous node on one fewest-legs path
}

// Reached reports whether id was reached.
func (r *Result) Reached(id string) bool {
	_, ok := r.Legs[id]
	return ok
}

// PathTo returns a fewest-legs path from Start to dest, both included.
func (r *Result) PathTo(dest string) ([]string, error) {
	n, ok := r.Legs[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnreached, dest)
	}
	path := make([]string, 0, n+1)
	for cur := dest; cur != r.Start; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	path = append(path, r.Start)
	slices.Reverse(path)

	return path, nil
}
