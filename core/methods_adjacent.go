// File: methods_adjacent.go
// Role: Neighborhood APIs (Node, Neighbors) and the transposed copy (Reverse).
// Determinism:
//   - Neighbors() and Node().Edges follow edge insertion order.
// Concurrency:
//   - All methods hold the read lock for a consistent snapshot.

package core

import "fmt"

// Node returns a snapshot of vertex id and its outgoing edges.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex was never created.
//
// Complexity: O(d) where d is the out-degree.
func (g *Graph) Node(id string) (*Node, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	return &Node{ID: id, Edges: edges}, nil
}

// Neighbors returns the outgoing edges of id in insertion order.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Under the read lock, resolve the vertex (ErrVertexNotFound).
//   - Stage 3: Copy edges in insertion order; the caller owns the slice.
//
// Complexity: O(d).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]Edge, len(v.out))
	for i, to := range v.out {
		out[i] = Edge{From: id, To: to, Weight: v.cost[to]}
	}

	return out, nil
}

// Reverse returns a new Graph with every edge transposed (to→from).
// All vertices are preserved, including isolated ones. Vertex creation order
// is kept, and reversed edges are inserted in Edges() order, so the result is
// deterministic.
//
// Complexity: O(V+E).
func (g *Graph) Reverse() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r := NewGraph()
	for _, id := range g.order {
		r.ensureVertex(id)
	}
	var v *vertex
	var dst *vertex
	for _, id := range g.order {
		v = g.vertices[id]
		for _, to := range v.out {
			dst = r.vertices[to]
			if _, exists := dst.cost[id]; !exists {
				dst.out = append(dst.out, id)
				r.edgeCount++
			}
			dst.cost[id] = v.cost[to]
		}
	}

	return r
}
