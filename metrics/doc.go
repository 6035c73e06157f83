// Package metrics records planning runs as Prometheus metrics.
//
// The CLI is a batch process, so nothing is served over HTTP: each run fills
// a private registry and, when configured, dumps it in the text exposition
// format with WriteFile (suitable for the node_exporter textfile collector).
//
//	travelroute_solve_total{strategy,result}  counter  result: reachable|unreachable|error
//	travelroute_nodes_expanded_total          counter
//	travelroute_memo_hits_total               counter
//	travelroute_route_cost                    gauge    +Inf when unreachable
//	travelroute_route_price                   gauge
//	travelroute_route_stops                   gauge
//	travelroute_solve_duration_seconds        histogram
package metrics
