package route

import (
	"fmt"

	"github.com/katalvlaran/travelroute/solver"
	"github.com/katalvlaran/travelroute/waypoint"
)

// Reporter builds, prices and displays routes.
type Reporter struct {
	bp       Backpointers
	cat      Catalog
	goal     string
	simplify func(string) string
}

// New returns a Reporter reading backpointers from bp and records from cat.
// The goal defaults to solver.DefaultGoal and the simplifier to
// waypoint.Simplify.
func New(bp Backpointers, cat Catalog, opts ...Option) *Reporter {
	r := &Reporter{
		bp:       bp,
		cat:      cat,
		goal:     solver.DefaultGoal,
		simplify: waypoint.Simplify,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Build follows backpointers from start. The goal is appended when reached;
// otherwise the route ends at the last node with no backpointer.
//
// A repeated node stops the walk: the route built so far is returned with
// ErrBackpointerCycle.
func (r *Reporter) Build(start string) (Route, error) {
	if start == "" {
		return nil, ErrEmptyStart
	}

	var out Route
	visited := make(map[string]bool)
	cur, ok := start, true
	for ok && cur != r.goal {
		if visited[cur] {
			return out, fmt.Errorf("%w: %q repeats after %d stops", ErrBackpointerCycle, cur, len(out))
		}
		visited[cur] = true
		out = append(out, cur)
		cur, ok = r.bp.Next(cur)
	}
	if ok {
		out = append(out, cur)
	}

	return out, nil
}

// Stops resolves every node of rt against the catalog.
func (r *Reporter) Stops(rt Route) []Stop {
	stops := make([]Stop, len(rt))
	for i, id := range rt {
		s := Stop{ID: id, Canonical: r.simplify(id)}
		s.Name = s.Canonical
		if rec, ok := r.cat.Lookup(s.Canonical); ok {
			s.Name, s.Price, s.Known = rec.Name, rec.Price, true
		}
		stops[i] = s
	}

	return stops
}

// Price sums the prices of the matched stops of rt. Unmatched stops add 0.
func (r *Reporter) Price(rt Route) int64 {
	var total int64
	for _, s := range r.Stops(rt) {
		total += s.Price
	}

	return total
}

// Display returns one label per stop: the destination name when the
// simplified ID is cataloged, otherwise the simplified ID.
func (r *Reporter) Display(rt Route) []string {
	stops := r.Stops(rt)
	names := make([]string, len(stops))
	for i, s := range stops {
		names[i] = s.Name
	}

	return names
}

// Report assembles the full outcome for start given its solved cost.
// A backpointer cycle is returned as an error next to the partial report.
func (r *Reporter) Report(start string, cost int64) (Report, error) {
	rt, err := r.Build(start)
	rep := Report{
		Start:     start,
		Goal:      r.goal,
		Cost:      cost,
		Reachable: solver.IsReachable(cost),
		Route:     rt,
		Stops:     r.Stops(rt),
	}
	rep.Display = make([]string, len(rep.Stops))
	for i, s := range rep.Stops {
		rep.Display[i] = s.Name
		rep.TotalPrice += s.Price
	}

	return rep, err
}
