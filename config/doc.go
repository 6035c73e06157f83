// Package config loads the YAML configuration of the travelroute CLI.
//
// Example config.yml:
//
//	destinations: data/destination.txt
//	graph: data/adjacent.txt
//	start: Start
//	goal: Goal
//	strategy: memo          # memo | topological | dijkstra
//	currency: "Rp."
//	log_level: info         # debug | info | warn | error
//	metrics_file: out/travelroute.prom
//
// Fields missing from the file keep their Default values. Command-line flags
// override the file (see cmd/travelroute).
package config
