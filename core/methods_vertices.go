// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, register the vertex unless present.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	out := make([]string, len(g.order))
	copy(out, g.order)
	g.mu.RUnlock()

	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// ensureVertex returns the record for id, creating it when absent.
// Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) *vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &vertex{id: id, cost: make(map[string]int64)}
	g.vertices[id] = v
	g.order = append(g.order, id)

	return v
}
