package config

import "errors"

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration structure.
type Config struct {
	Destinations string `yaml:"destinations" validate:"required"`
	Graph        string `yaml:"graph" validate:"required"`
	Start        string `yaml:"start" validate:"required"`
	Goal         string `yaml:"goal" validate:"required"`
	Strategy     string `yaml:"strategy" validate:"oneof=memo topological dijkstra"`
	Currency     string `yaml:"currency"`
	LogLevel     string `yaml:"log_level" validate:"oneof=debug info warn error"`
	MetricsFile  string `yaml:"metrics_file"` // empty disables the metrics dump
}
