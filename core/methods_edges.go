// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() walks vertices in creation order, then each vertex's edges in
//     insertion order.
//   - Overwriting an edge keeps its original position.
// Concurrency:
//   - Mutations under mu write lock, read queries under mu read lock.

package core

import "fmt"

// AddEdge records the directed edge from→to with the given cost.
//
// Steps:
//  1. Validate IDs (ErrEmptyVertexID) and cost (ErrBadWeight).
//  2. Lock, create missing endpoints with no neighbors.
//  3. If from→to already exists, overwrite its cost in place.
//  4. Otherwise append to from's neighbor order.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, cost int64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if cost < 0 {
		return fmt.Errorf("%w: %s→%s cost=%d", ErrBadWeight, from, to, cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure endpoints exist
	src := g.ensureVertex(from)
	g.ensureVertex(to)

	// 3) Overwrite keeps position; 4) new edges go to the back
	if _, exists := src.cost[to]; !exists {
		src.out = append(src.out, to)
		g.edgeCount++
	}
	src.cost[to] = cost

	return nil
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	src, ok := g.vertices[from]
	if !ok {
		return false
	}
	_, ok = src.cost[to]

	return ok
}

// Weight returns the cost of from→to.
// Errors: ErrVertexNotFound if from is missing, ErrEdgeNotFound if the edge is.
func (g *Graph) Weight(from, to string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	src, ok := g.vertices[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	w, ok := src.cost[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// Edges returns every edge, vertices in creation order and edges in insertion order.
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	var v *vertex
	for _, id := range g.order {
		v = g.vertices[id]
		for _, to := range v.out {
			out = append(out, Edge{From: id, To: to, Weight: v.cost[to]})
		}
	}

	return out
}

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
