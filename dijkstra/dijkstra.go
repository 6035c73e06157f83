// Package dijkstra implements Dijkstra's shortest-path algorithm.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - Every vertex reachable from Source is settled; there is no distance cap.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Equal-distance heap entries pop in push order, so results are deterministic
//     for a given graph.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/travelroute/core"
)

// Dijkstra computes shortest distances from Options.Source to all vertices of g.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 3) Prepare state
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options.
	dist    map[string]int64  // vertex ID → current best distance from Source.
	prev    map[string]string // vertex ID → predecessor on the shortest path.
	visited map[string]bool   // finalized vertices.
	pq      nodePQ            // lazy min-heap.
	seq     uint64            // push counter for stable ordering of equal distances.
}

// init sets dist[v] = +∞ for all v, dist[Source] = 0 and seeds the heap.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.MaxInt64
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// process repeatedly extracts the closest unvisited vertex and relaxes its edges.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve distances through each outgoing edge of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var newDist int64
	for _, e := range neighbors {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
		}
		// saturate instead of overflowing on huge weights
		if e.Weight > math.MaxInt64-r.dist[u] {
			continue
		}
		newDist = r.dist[u] + e.Weight
		// strict: the first predecessor to reach a distance keeps it
		if newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		r.prev[e.To] = u
		r.push(e.To, newDist)
	}

	return nil
}

// push adds a heap entry tagged with the next sequence number.
func (r *runner) push(id string, dist int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
	seq  uint64 // push order, breaks distance ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop moves the minimum there).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
