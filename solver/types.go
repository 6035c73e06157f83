package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// Infinity is the cost of a node from which Goal cannot be reached.
const Infinity int64 = math.MaxInt64

// Default terminal and source identifiers of the travel graph.
const (
	DefaultGoal  = "Goal"
	DefaultStart = "Start"
)

var (
	// ErrNilGraph indicates that New received a nil graph.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrUnknownStrategy indicates an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")

	// ErrEmptyStart indicates Solve was called with an empty start ID.
	ErrEmptyStart = errors.New("solver: start ID is empty")
)

// Strategy selects how costs are evaluated.
type Strategy string

const (
	// StrategyMemo evaluates costs by top-down memoized recursion.
	StrategyMemo Strategy = "memo"

	// StrategyTopological evaluates costs bottom-up in reverse topological order.
	StrategyTopological Strategy = "topological"

	// StrategyDijkstra evaluates costs with Dijkstra on the reversed graph.
	StrategyDijkstra Strategy = "dijkstra"
)

// Strategies lists every supported Strategy.
var Strategies = []Strategy{StrategyMemo, StrategyTopological, StrategyDijkstra}

// ParseStrategy converts a name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if string(s) == name {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// IsReachable reports whether cost denotes a real path.
func IsReachable(cost int64) bool { return cost != Infinity }

// Options configures a Solver.
type Options struct {
	Goal     string          // terminal node ID
	Strategy Strategy        // evaluation strategy
	Ctx      context.Context // checked once per expanded node
	Logger   *slog.Logger    // debug output; discarded by default
}

// Option is a functional option for New.
type Option func(*Options)

// WithGoal sets the terminal node ID. Empty values are ignored.
func WithGoal(id string) Option {
	return func(o *Options) {
		if id != "" {
			o.Goal = id
		}
	}
}

// WithStrategy selects the evaluation strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithContext sets the cancellation context. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Goal="Goal", StrategyMemo, a background context and
// a discarding logger.
func DefaultOptions() Options {
	return Options{
		Goal:     DefaultGoal,
		Strategy: StrategyMemo,
		Ctx:      context.Background(),
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// Stats reports the work done by a Solver since construction or Reset.
type Stats struct {
	Strategy Strategy // strategy in use
	Solves   int      // Solve calls that returned without error
	Expanded int      // nodes whose edges were evaluated
	MemoHits int      // lookups answered from the memo table
}
