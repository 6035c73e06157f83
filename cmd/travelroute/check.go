package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/travelroute/bfs"
	"github.com/katalvlaran/travelroute/dfs"
	"github.com/katalvlaran/travelroute/loader"
)

var errCyclicGraph = errors.New("graph has cycles")

func newCheckCmd(rf *rootFlags) *cobra.Command {
	var (
		destinations, graph, start, goal string
		maxLegs                          int
		avoid                            []string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the input files and report graph statistics, reachability and cycles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, rf, map[string]*string{
				"destinations": &destinations,
				"graph":        &graph,
				"start":        &start,
				"goal":         &goal,
			})
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)

			ds, err := loader.Load(cmd.Context(), cfg.Destinations, cfg.Graph)
			if err != nil {
				return err
			}
			hasCycle, cycles, err := dfs.DetectCycles(ds.Graph)
			if err != nil {
				return err
			}
			logger.Debug("graph checked", "cycles", len(cycles))

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "vertices: %d\n", ds.Graph.VertexCount())
			_, _ = fmt.Fprintf(out, "edges: %d\n", ds.Graph.EdgeCount())
			_, _ = fmt.Fprintf(out, "destinations: %d\n", ds.Destinations.Len())
			for _, id := range []string{cfg.Start, cfg.Goal} {
				if !ds.Graph.HasVertex(id) {
					_, _ = fmt.Fprintf(out, "missing node: %s\n", id)
				}
			}
			if ds.Graph.HasVertex(cfg.Start) {
				res, err := bfs.BFS(ds.Graph, cfg.Start,
					bfs.WithContext(cmd.Context()),
					bfs.WithMaxLegs(maxLegs),
					bfs.AvoidNodes(avoid...),
					bfs.WithOnReach(func(id string, legs int) error {
						logger.Debug("node reached", "node", id, "legs", legs)
						return nil
					}),
				)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "reachable from %s: %d\n", cfg.Start, len(res.Order))
				if path, err := res.PathTo(cfg.Goal); err == nil {
					_, _ = fmt.Fprintf(out, "%s reachable in %d legs\n", cfg.Goal, res.Legs[cfg.Goal])
					_, _ = fmt.Fprintf(out, "fewest legs: %s\n", strings.Join(path, " -> "))
				} else if maxLegs > 0 {
					_, _ = fmt.Fprintf(out, "%s unreachable from %s within %d legs\n", cfg.Goal, cfg.Start, maxLegs)
				} else {
					_, _ = fmt.Fprintf(out, "%s unreachable from %s\n", cfg.Goal, cfg.Start)
				}
			}
			if !hasCycle {
				_, _ = fmt.Fprintln(out, "cycles: none")
				return nil
			}
			_, _ = fmt.Fprintf(out, "cycles: %d\n", len(cycles))
			for _, c := range cycles {
				_, _ = fmt.Fprintf(out, "  %s\n", strings.Join(c, " -> "))
			}
			return fmt.Errorf("%w: %d found", errCyclicGraph, len(cycles))
		},
	}
	cmd.Flags().StringVar(&destinations, "destinations", "", "destination catalog file (default destination.txt)")
	cmd.Flags().StringVar(&graph, "graph", "", "travel legs file (default adjacent.txt)")
	cmd.Flags().StringVar(&start, "start", "", "start node (default Start)")
	cmd.Flags().StringVar(&goal, "goal", "", "goal node (default Goal)")
	cmd.Flags().IntVar(&maxLegs, "max-legs", 0, "only explore this many legs from start (0 = unlimited)")
	cmd.Flags().StringSliceVar(&avoid, "avoid", nil, "nodes the reachability check must not pass through")
	return cmd
}
