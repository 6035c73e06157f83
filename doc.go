// Package travelroute plans the fastest trip through a travel graph and prices
// it against a destination catalog.
//
// 🚀 What is travelroute?
//
//	A small, deterministic planner that brings together:
//		• Graph store: directed legs with travel-and-stay time as cost
//		• Destination catalog: canonical ID → display name & price
//		• Waypoint simplifier: transit variants (W13, W43) → destination (W3)
//		• Shortest-path solver: memoized DP with backpointers, plus
//		  topological and Dijkstra strategies
//		• Route reporter: rebuild, price and display the optimal route
//		• CLI: `travelroute plan` / `travelroute check`
//
// ✨ Guarantees
//
//   - Deterministic: ties resolve to the first leg in input order
//   - Total: an unreachable Goal is a result (Infinity), never an overflow
//   - Safe: cycles are reported, and route rebuilding cannot loop
//
// Packages:
//
//	core/       : directed weighted graph, insertion-ordered adjacency
//	destination/: destination catalog (sealed after load)
//	waypoint/   : identifier simplifier
//	solver/     : memo & backpointer tables, three evaluation strategies
//	route/      : route reconstruction, pricing, display
//	dfs/        : topological order (with root/sink) and cycle detection
//	bfs/        : leg-count reachability for input checks
//	dijkstra/   : single-source shortest paths (used on the reversed graph)
//	loader/     : destination.txt / adjacent.txt parsers
//	config/     : YAML configuration with validation
//	metrics/    : Prometheus textfile metrics per run
//	cmd/travelroute: cobra CLI
//
// Quick start:
//
//	ds, _ := loader.Load(ctx, "destination.txt", "adjacent.txt")
//	s, _ := solver.New(ds.Graph)
//	cost, _ := s.Solve("Start")
//	rep, _ := route.New(s, ds.Destinations).Report("Start", cost)
//	fmt.Println(rep.Cost, strings.Join(rep.Display, " -> "), rep.TotalPrice)
package travelroute
