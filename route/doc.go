// Package route turns solver backpointers into a concrete, priced route.
//
// A route is the ordered list of raw node IDs from the start to the goal (or
// to the dead end where backpointers run out). Each raw ID is collapsed by a
// simplifier (waypoint.Simplify by default) before it is looked up in the
// destination catalog, so many waypoint variants share one display name and
// one price.
//
// Reconstruction carries a visited-guard: a node met twice stops the walk and
// Build returns the partial route together with ErrBackpointerCycle. A route
// therefore never contains a node twice and never outgrows the graph.
package route
