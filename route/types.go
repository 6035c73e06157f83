package route

import (
	"errors"

	"github.com/katalvlaran/travelroute/destination"
)

// ErrBackpointerCycle indicates that following backpointers revisited a node.
var ErrBackpointerCycle = errors.New("route: backpointer cycle")

// ErrEmptyStart indicates Build was called with an empty start ID.
var ErrEmptyStart = errors.New("route: start ID is empty")

// Backpointers yields the next node on an optimal path. *solver.Solver
// satisfies it.
type Backpointers interface {
	Next(id string) (string, bool)
}

// Catalog resolves canonical IDs to destination records.
// *destination.Table satisfies it.
type Catalog interface {
	Lookup(id string) (destination.Record, bool)
}

// Route is an ordered list of raw node IDs.
type Route []string

// Stop is one resolved node of a route.
type Stop struct {
	ID        string // raw node ID
	Canonical string // simplified ID used for lookup
	Name      string // display name, or Canonical when unknown
	Price     int64  // 0 when unknown
	Known     bool   // a catalog record matched
}

// Report is the full outcome of planning one trip.
type Report struct {
	Start      string
	Goal       string
	Cost       int64 // total travel and stay time; solver.Infinity when unreachable
	Reachable  bool
	Route      Route
	Stops      []Stop
	Display    []string
	TotalPrice int64
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithGoal sets the terminal node ID. Empty values are ignored.
func WithGoal(id string) Option {
	return func(r *Reporter) {
		if id != "" {
			r.goal = id
		}
	}
}

// WithSimplifier replaces the ID simplifier. Nil is ignored.
func WithSimplifier(fn func(string) string) Option {
	return func(r *Reporter) {
		if fn != nil {
			r.simplify = fn
		}
	}
}
