package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/travelroute/config"
	"github.com/katalvlaran/travelroute/loader"
	"github.com/katalvlaran/travelroute/metrics"
	"github.com/katalvlaran/travelroute/route"
	"github.com/katalvlaran/travelroute/solver"
)

func newPlanCmd(rf *rootFlags) *cobra.Command {
	var destinations, graph, start, goal, strategy, currency, metricsFile string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Find the minimum-time route from start to goal and price it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, rf, map[string]*string{
				"destinations": &destinations,
				"graph":        &graph,
				"start":        &start,
				"goal":         &goal,
				"strategy":     &strategy,
				"currency":     &currency,
				"metrics-file": &metricsFile,
			})
			if err != nil {
				return err
			}
			return runPlan(cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&destinations, "destinations", "", "destination catalog file (default destination.txt)")
	cmd.Flags().StringVar(&graph, "graph", "", "travel legs file (default adjacent.txt)")
	cmd.Flags().StringVar(&start, "start", "", "start node (default Start)")
	cmd.Flags().StringVar(&goal, "goal", "", "goal node (default Goal)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "memo|topological|dijkstra (default memo)")
	cmd.Flags().StringVar(&currency, "currency", "", "price prefix (default Rp.)")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	return cmd
}

func runPlan(cmd *cobra.Command, cfg *config.Config) error {
	ctx := cmd.Context()
	logger := newLogger(cmd.ErrOrStderr(), cfg)
	strategy, err := cfg.SolverStrategy()
	if err != nil {
		return err
	}
	collector := metrics.New()
	defer func() {
		if cfg.MetricsFile == "" {
			return
		}
		if werr := collector.WriteFile(cfg.MetricsFile); werr != nil {
			logger.Error("metrics dump failed", "error", werr)
		}
	}()

	ds, err := loader.Load(ctx, cfg.Destinations, cfg.Graph)
	if err != nil {
		collector.ObserveError(strategy)
		return err
	}
	logger.Info("inputs loaded",
		"graph", cfg.Graph,
		"vertices", ds.Graph.VertexCount(),
		"edges", ds.Graph.EdgeCount(),
		"destinations", ds.Destinations.Len(),
	)

	began := time.Now()
	s, err := solver.New(ds.Graph,
		solver.WithGoal(cfg.Goal),
		solver.WithStrategy(strategy),
		solver.WithContext(ctx),
		solver.WithLogger(logger),
	)
	if err != nil {
		collector.ObserveError(strategy)
		return err
	}
	cost, err := s.Solve(cfg.Start)
	if err != nil {
		collector.ObserveError(strategy)
		return fmt.Errorf("plan %s → %s: %w", cfg.Start, cfg.Goal, err)
	}
	rep, err := route.New(s, ds.Destinations, route.WithGoal(cfg.Goal)).Report(cfg.Start, cost)
	if err != nil {
		logger.Warn("route reconstruction stopped early", "error", err)
	}
	collector.ObservePlan(s.Stats(), rep, time.Since(began))
	logger.Info("route planned",
		"strategy", strategy,
		"reachable", rep.Reachable,
		"stops", len(rep.Route),
		"expanded", s.Stats().Expanded,
	)

	return printReport(cmd.OutOrStdout(), rep, cfg.Currency)
}

// printReport writes the console report.
func printReport(w io.Writer, rep route.Report, currency string) error {
	var b strings.Builder
	if rep.Reachable {
		fmt.Fprintf(&b, "Minimum total travel and stay time: %d minutes.\n", rep.Cost)
		b.WriteString("Optimal Route: \n")
	} else {
		fmt.Fprintf(&b, "No route from %s to %s.\n", rep.Start, rep.Goal)
		b.WriteString("Partial Route: \n")
	}
	b.WriteString(strings.Join(rep.Display, " -> "))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Total Price: %s%d\n", currency, rep.TotalPrice)

	_, err := io.WriteString(w, b.String())
	return err
}
