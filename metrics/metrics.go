package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/travelroute/route"
	"github.com/katalvlaran/travelroute/solver"
)

const namespace = "travelroute"

// Result label values.
const (
	ResultReachable   = "reachable"
	ResultUnreachable = "unreachable"
	ResultError       = "error"
)

// Collector owns the registry and every planner metric.
type Collector struct {
	reg *prometheus.Registry

	solveTotal    *prometheus.CounterVec
	expandedTotal prometheus.Counter
	memoHitsTotal prometheus.Counter
	routeCost     prometheus.Gauge
	routePrice    prometheus.Gauge
	routeStops    prometheus.Gauge
	solveDuration prometheus.Histogram
}

// New registers all metrics on a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Collector{
		reg: reg,
		solveTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solve_total",
			Help:      "Planning runs by strategy and result",
		}, []string{"strategy", "result"}),
		expandedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_expanded_total",
			Help:      "Nodes whose outgoing legs were evaluated",
		}),
		memoHitsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memo_hits_total",
			Help:      "Cost lookups answered from the memo table",
		}),
		routeCost: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "route_cost",
			Help:      "Total travel and stay time of the last planned route",
		}),
		routePrice: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "route_price",
			Help:      "Total price of the last planned route",
		}),
		routeStops: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "route_stops",
			Help:      "Number of nodes on the last planned route",
		}),
		solveDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Solve and report duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
	}
}

// ObservePlan records one finished run.
func (c *Collector) ObservePlan(stats solver.Stats, rep route.Report, d time.Duration) {
	result := ResultReachable
	cost := float64(rep.Cost)
	if !rep.Reachable {
		result = ResultUnreachable
		cost = math.Inf(1)
	}
	c.solveTotal.WithLabelValues(string(stats.Strategy), result).Inc()
	c.expandedTotal.Add(float64(stats.Expanded))
	c.memoHitsTotal.Add(float64(stats.MemoHits))
	c.routeCost.Set(cost)
	c.routePrice.Set(float64(rep.TotalPrice))
	c.routeStops.Set(float64(len(rep.Route)))
	c.solveDuration.Observe(d.Seconds())
}

// ObserveError records a run that failed before a report existed.
func (c *Collector) ObserveError(strategy solver.Strategy) {
	c.solveTotal.WithLabelValues(string(strategy), ResultError).Inc()
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// WriteFile writes every metric to path in the text exposition format.
func (c *Collector) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
