// Command travelroute plans the cheapest trip through a travel graph and
// prices it against a destination catalog.
//
//	travelroute plan --graph adjacent.txt --destinations destination.txt
//	travelroute check --graph adjacent.txt
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/travelroute/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var rf rootFlags

	root := &cobra.Command{
		Use:           "travelroute",
		Short:         "Minimum-time travel route planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&rf.configPath, "config", "", "YAML config file (optional)")
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")

	root.AddCommand(newPlanCmd(&rf))
	root.AddCommand(newCheckCmd(&rf))
	return root
}

// loadConfig reads the config file and applies every flag the user set.
// overrides maps flag names to the config field they replace.
func loadConfig(cmd *cobra.Command, rf *rootFlags, overrides map[string]*string) (*config.Config, error) {
	cfg, err := config.Load(rf.configPath)
	if err != nil {
		return nil, err
	}
	if rf.logLevel != "" {
		cfg.LogLevel = rf.logLevel
	}
	fields := map[string]*string{
		"destinations": &cfg.Destinations,
		"graph":        &cfg.Graph,
		"start":        &cfg.Start,
		"goal":         &cfg.Goal,
		"strategy":     &cfg.Strategy,
		"currency":     &cfg.Currency,
		"metrics-file": &cfg.MetricsFile,
	}
	for name, val := range overrides {
		if cmd.Flags().Changed(name) {
			*fields[name] = *val
		}
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the per-run logger tagged with a fresh run_id.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	return slog.New(h).With(slog.String("run_id", uuid.NewString()))
}
