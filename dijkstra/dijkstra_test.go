// Package dijkstra_test contains unit tests for the Dijkstra implementation.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/travelroute/core"
	"github.com/katalvlaran/travelroute/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewGraph())
	if err != dijkstra.ErrEmptySource {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("X"))
	if !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func buildDetour(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []core.Edge{
		{From: "Start", To: "W11", Weight: 2},
		{From: "W11", To: "W12", Weight: 2},
		{From: "W12", To: "Goal", Weight: 2},
		{From: "Start", To: "Goal", Weight: 10},
	} {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

func TestDijkstra_PrefersCheaperDetour(t *testing.T) {
	g := buildDetour(t)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Start"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist["Goal"] != 6 {
		t.Errorf("dist[Goal] = %d; want 6", dist["Goal"])
	}
	if prev["Goal"] != "W12" || prev["W12"] != "W11" || prev["W11"] != "Start" {
		t.Errorf("unexpected predecessor chain: %v", prev)
	}
	if prev["Start"] != "" {
		t.Errorf("prev[Start] = %q; want empty", prev["Start"])
	}
}

func TestDijkstra_NoReturnPath(t *testing.T) {
	_, prev, err := dijkstra.Dijkstra(buildDetour(t), dijkstra.Source("Start"))
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Errorf("expected nil predecessor map, got %v", prev)
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("Start", "A", 1)
	_ = g.AddVertex("Goal")

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Start"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist["Goal"] != math.MaxInt64 {
		t.Errorf("dist[Goal] = %d; want MaxInt64", dist["Goal"])
	}
	if prev["Goal"] != "" {
		t.Errorf("prev[Goal] = %q; want empty", prev["Goal"])
	}
}

func TestDijkstra_ReverseGivesCostToGoal(t *testing.T) {
	g := buildDetour(t)
	dist, prev, err := dijkstra.Dijkstra(g.Reverse(), dijkstra.Source("Goal"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int64{"Goal": 0, "W12": 2, "W11": 4, "Start": 6}
	for v, d := range want {
		if dist[v] != d {
			t.Errorf("dist[%s] = %d; want %d", v, dist[v], d)
		}
	}
	// on the reversed graph prev is the next hop toward Goal
	if prev["Start"] != "W11" {
		t.Errorf("next hop of Start = %q; want W11", prev["Start"])
	}
}

func TestDijkstra_TolerantOfCycles(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "A", 1)
	_ = g.AddEdge("B", "Goal", 4)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["Goal"] != 5 {
		t.Errorf("dist[Goal] = %d; want 5", dist["Goal"])
	}
}

func TestDijkstra_SettlesEveryReachableVertex(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(buildDetour(t), dijkstra.Source("Start"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	for id, d := range dist {
		if d == math.MaxInt64 {
			t.Errorf("dist[%s] unreachable; every vertex of the detour graph is reachable", id)
		}
	}
	if prev["Start"] != "" {
		t.Errorf("prev[Start] = %q; want empty", prev["Start"])
	}
}

func TestDijkstra_TieKeepsFirstPredecessor(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("S", "A", 1)
	_ = g.AddEdge("S", "B", 1)
	_ = g.AddEdge("A", "T", 1)
	_ = g.AddEdge("B", "T", 1)

	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("S"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if prev["T"] != "A" {
		t.Errorf("prev[T] = %q; want A (first pushed of the tie)", prev["T"])
	}
}
