package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/travelroute/bfs"
	"github.com/katalvlaran/travelroute/core"
)

// legs builds a directed graph from "from>to" pairs; weights are irrelevant to BFS.
func legs(t *testing.T, pairs ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, p := range pairs {
		ends := strings.Split(p, ">")
		if err := g.AddEdge(ends[0], ends[1], int64(i*7)); err != nil {
			t.Fatalf("AddEdge(%s): %v", p, err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxLegs(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Legs["A"]; d != 0 {
		t.Errorf("Legs[A] = %d; want 0", d)
	}
}

// TestBFS_LegsIgnoreCost checks that Legs counts legs even when the
// fewest-leg route is the expensive one.
func TestBFS_LegsIgnoreCost(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("Start", "Goal", 100)
	_ = g.AddEdge("Start", "A", 1)
	_ = g.AddEdge("A", "Goal", 1)

	res, err := bfs.BFS(g, "Start")
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Legs["Goal"]; got != 1 {
		t.Errorf("Legs[Goal] = %d; want 1", got)
	}
	path, err := res.PathTo("Goal")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Start", "Goal"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(Goal) = %v; want %v", path, want)
	}
}

// TestBFS_DirectedOnly ensures edges are followed From→To only.
func TestBFS_DirectedOnly(t *testing.T) {
	g := legs(t, "X>Y", "P>X")

	resX, _ := bfs.BFS(g, "X")
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	if resX.Reached("P") {
		t.Error("P reached against edge direction")
	}
	resP, _ := bfs.BFS(g, "P")
	if !reflect.DeepEqual(resP.Order, []string{"P", "X", "Y"}) {
		t.Errorf("From P: got %v; want [P X Y]", resP.Order)
	}
}

// TestBFS_InsertionOrder checks that neighbors are enqueued in leg order.
func TestBFS_InsertionOrder(t *testing.T) {
	g := legs(t, "S>C", "S>A", "S>B", "A>D")
	res, _ := bfs.BFS(g, "S")
	if want := []string{"S", "C", "A", "B", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_MaxLegs verifies WithMaxLegs for positive, zero (no limit), and large limits.
func TestBFS_MaxLegs(t *testing.T) {
	g := legs(t, "A>B", "B>C")
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxLegs(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxLegs=1: got %v; want [A B]", res.Order)
	}
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxLegs(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxLegs=0: got %v; want [A B C]", res.Order)
	}
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxLegs(10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxLegs=10: got %v; want [A B C]", res.Order)
	}
}

// TestBFS_LegFilter shows how filtering prunes certain legs.
func TestBFS_LegFilter(t *testing.T) {
	g := legs(t, "A>B", "B>C")
	res, _ := bfs.BFS(g, "A",
		bfs.WithLegFilter(func(from, to string) bool {
			return !(from == "B" && to == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("LegFilter: got %v; want %v", res.Order, want)
	}
}

// TestBFS_AvoidNodes routes around an avoided node and keeps the start.
func TestBFS_AvoidNodes(t *testing.T) {
	g := legs(t, "S>A", "A>G", "S>B", "B>C", "C>G")
	res, err := bfs.BFS(g, "S", bfs.AvoidNodes("A", "S"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached("A") {
		t.Error("avoided node A was reached")
	}
	path, err := res.PathTo("G")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"S", "B", "C", "G"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(G) = %v; want %v", path, want)
	}
}

// TestBFS_SelfLoopAndCycle ensures loops and cycles do not enqueue twice.
func TestBFS_SelfLoopAndCycle(t *testing.T) {
	g := legs(t, "A>A", "A>B", "B>A")
	res, _ := bfs.BFS(g, "A")
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop/Cycle: got %v; want %v", res.Order, want)
	}
}

// TestBFS_OnReach asserts that the hook fires once per node with its legs.
func TestBFS_OnReach(t *testing.T) {
	g := legs(t, "A>B", "B>C", "A>C")

	var seen []string
	_, err := bfs.BFS(g, "A", bfs.WithOnReach(func(id string, n int) error {
		seen = append(seen, id+"@"+strconv.Itoa(n))
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A@0", "B@1", "C@1"}; !reflect.DeepEqual(seen, want) {
		t.Errorf("OnReach = %v; want %v", seen, want)
	}
}

// TestBFS_ReachErrorAborts checks that an OnReach error stops the search.
func TestBFS_ReachErrorAborts(t *testing.T) {
	g := legs(t, "A>B", "B>C")
	stop := errors.New("stop")
	res, err := bfs.BFS(g, "A", bfs.WithOnReach(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped stop error, got %v", err)
	}
	if res.Reached("C") {
		t.Error("search continued past the failing hook")
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("X")
	res, _ := bfs.BFS(g, "X")
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	if _, err := res.PathTo("Y"); !errors.Is(err, bfs.ErrUnreached) {
		t.Errorf("PathTo unreachable: want ErrUnreached, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "v0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := legs(t, "A>B")
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, "A"); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
