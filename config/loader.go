package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/travelroute/solver"
)

var validate = validator.New()

// Default returns the configuration of the original console program: the two
// input files in the working directory, Start to Goal, memoized recursion.
func Default() *Config {
	return &Config{
		Destinations: "destination.txt",
		Graph:        "adjacent.txt",
		Start:        solver.DefaultStart,
		Goal:         solver.DefaultGoal,
		Strategy:     string(solver.StrategyMemo),
		Currency:     "Rp.",
		LogLevel:     "info",
	}
}

// Load reads the YAML file at path over Default and validates the result.
// An empty path yields Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// SolverStrategy returns Strategy as a solver.Strategy.
func (c *Config) SolverStrategy() (solver.Strategy, error) {
	return solver.ParseStrategy(c.Strategy)
}

// SlogLevel returns LogLevel as a slog.Level, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}
