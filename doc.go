// Package ugraph is an in-memory, undirected, unweighted multigraph with
// traversal-based queries: reachability, shortest hop paths, distances and
// connected components.
//
// 🚀 What is ugraph?
//
//	A small, thread-safe graph library built around one store and a few
//	query packages:
//		• core/          Graph store: labeled vertices, ordered neighbor sequences
//		• bfs/           breadth-first walk with depth, parent and early-exit target
//		• dfs/           depth-first walk, recursive and iterative
//		• paths/         ShortestPath, Distance, Reachable, Distances
//		• connectivity/  Components, Count, IsConnected
//		• builder/       deterministic fixtures (cycle, path, star, grid, G(n,p), ...)
//		• metrics/       Prometheus collector for graph size and component count
//
// ✨ Behavior worth knowing
//
//   - Neighbor sequences keep edge insertion order and drive every traversal,
//     so results are reproducible for a given construction order.
//   - Parallel edges are kept; self-loops are allowed.
//   - Mutations that reference a missing vertex are no-ops returning false,
//     reported at Debug level on the graph's zap logger.
//   - Unreachable targets are ordinary results: Distance returns -1 and
//     ShortestPath returns [start].
//   - Every query opens an OpenTelemetry span and records latency metrics on
//     the global providers; install an SDK to export them.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D      E
//
//	BFS from A:           [A B C D]
//	recursive DFS from A: [A B D C]
//	ShortestPath A→D:     [A B D]
//	Distance A→E:         -1
//	Components:           [[A B C D] [E]]
//
//	go get github.com/katalvlaran/ugraph
package ugraph
