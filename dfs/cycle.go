// Package dfs implements cycle detection for directed core.Graphs.
// DetectCycles enumerates the simple cycles closed by back edges, using
// depth-first search with three-color marking. Each cycle is reported in its
// canonical (lexicographically minimal) rotation via Booth's algorithm, and
// the final list is sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (V=#vertices, E=#edges, C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)     (recursion stack + state map + cycle storage)
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/travelroute/core"
)

// DetectCycles inspects graph g for cycles.
// Returns (true, cycles, nil) if any cycles are found;
// if no cycles, returns (false, nil, nil).
// A nil graph is treated as cycle-free.
// Each cycle is closed: [v0, v1, ..., v0].
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}

	// 2) Prepare visitation state
	verts := g.Vertices()                         // sorted list of vertex IDs
	state := make(map[string]int, len(verts))     // White/Gray/Black per vertex
	path := make([]string, 0, len(verts))         // current DFS path
	seen := make(map[string]struct{}, len(verts)) // canonical signatures
	var cycles [][]string

	// 3) Launch DFS from each unvisited vertex
	for _, v := range verts {
		if state[v] == White {
			if err := dfsVisit(g, v, state, &path, seen, &cycles); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	// 4) Deterministic output order
	sort.Slice(cycles, func(i, j int) bool {
		return JoinSig(cycles[i]) < JoinSig(cycles[j])
	})

	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// dfsVisit performs recursive DFS from vertex id and records every back edge
// Gray→Gray as a cycle.
func dfsVisit(
	g *core.Graph,
	id string,
	state map[string]int,
	path *[]string,
	seen map[string]struct{},
	cycles *[][]string,
) error {
	state[id] = Gray
	*path = append(*path, id)

	edges, err := g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("Neighbors(%q): %w", id, err)
	}

	for _, e := range edges {
		switch state[e.To] {
		case White:
			if err = dfsVisit(g, e.To, state, path, seen, cycles); err != nil {
				return err
			}
		case Gray:
			// back edge closes the cycle path[idx(e.To):] → e.To
			recordCycle(e.To, *path, seen, cycles)
		}
	}

	// Backtrack
	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil
}

// recordCycle extracts the cycle that starts at start on path, canonicalizes
// it, and appends it to cycles unless its signature was seen before.
func recordCycle(
	start string,
	path []string,
	seen map[string]struct{},
	cycles *[][]string,
) {
	idx := IndexOf(path, start)
	base := append([]string(nil), path[idx:]...)

	// Directed cycles only rotate; reversing would describe a different cycle.
	rot := MinimalRotation(base)
	closed := append(rot, rot[0])
	sig := JoinSig(closed)
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, closed)
	}
}
