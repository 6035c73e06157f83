// Package dfs provides topological sort on directed graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the explored part of the graph contains a cycle, ErrCycleDetected is returned.
//
// The traversal is iterative (explicit stack of frames), so deep chains do not
// grow the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (frame stack and state map)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/travelroute/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort.
type topoOptions struct {
	ctx  context.Context // allows cancellation; defaults to Background
	root string          // if non-empty, sort only vertices reachable from root
	sink string          // if non-empty, never expand this vertex's edges
}

// defaultTopoOptions returns the default options (Background context, whole graph).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithRoot restricts the ordering to vertices reachable from id.
// The root is always first in the result.
func WithRoot(id string) TopoOption {
	return func(o *topoOptions) {
		o.root = id
	}
}

// WithSink marks id as terminal: it is ordered like any other vertex but its
// outgoing edges are not followed.
func WithSink(id string) TopoOption {
	return func(o *topoOptions) {
		o.sink = id
	}
}

// frame is one level of the explicit DFS stack.
type frame struct {
	id    string      // vertex being expanded
	edges []core.Edge // its outgoing edges (insertion order)
	next  int         // index of the next edge to follow
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph    // the graph being sorted
	opts  topoOptions    // traversal options
	state map[string]int // visitation state: White, Gray, Black
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of g.
// If g is nil, returns ErrGraphNil.
// If WithRoot names a missing vertex, returns ErrStartVertexNotFound.
// If a cycle is detected, returns an error wrapping ErrCycleDetected.
// If neighbor lookup fails, returns an error wrapping ErrNeighborFetch.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Resolve roots: a single root, or every vertex in sorted order
	var roots []string
	if opts.root != "" {
		if !g.HasVertex(opts.root) {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, opts.root)
		}
		roots = []string{opts.root}
	} else {
		roots = g.Vertices()
	}
	// 4. Initialize sorter state
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, g.VertexCount()),
		order: make([]string, 0, g.VertexCount()),
	}
	// 5. Drive DFS from every unvisited root
	for _, v := range roots {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 6. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit runs an iterative DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id string) error {
	top, err := t.enter(id)
	if err != nil {
		return err
	}
	stack := []*frame{top}

	var f *frame
	var e core.Edge
	for len(stack) > 0 {
		// 1. Cancellation check per step
		select {
		case <-t.opts.ctx.Done():
			return t.opts.ctx.Err()
		default:
		}

		f = stack[len(stack)-1]
		// 2. All edges done: finish the vertex (Black) and record post-order
		if f.next == len(f.edges) {
			t.state[f.id] = Black
			t.order = append(t.order, f.id)
			stack = stack[:len(stack)-1]
			continue
		}
		e = f.edges[f.next]
		f.next++

		switch t.state[e.To] {
		case Gray:
			// 3. Back edge: the target is on the current path
			return fmt.Errorf("%w: via %s→%s", ErrCycleDetected, e.From, e.To)
		case Black:
			// 4. Already fully processed
			continue
		}
		// 5. Descend into the White neighbor
		child, err := t.enter(e.To)
		if err != nil {
			return err
		}
		stack = append(stack, child)
	}

	return nil
}

// enter marks id Gray and fetches its outgoing edges, unless id is the sink.
func (t *topoSorter) enter(id string) (*frame, error) {
	t.state[id] = Gray
	if t.opts.sink != "" && id == t.opts.sink {
		return &frame{id: id}, nil
	}
	edges, err := t.graph.Neighbors(id)
	if err != nil {
		// Wrap in sentinel ErrNeighborFetch so callers can check via errors.Is
		return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}

	return &frame{id: id, edges: edges}, nil
}
