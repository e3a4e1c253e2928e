// Package paths answers shortest-path and hop-distance questions on a
// core.Graph. Every query is a breadth-first walk (package bfs) that records
// per-vertex state at first discovery and stops as soon as the target is
// dequeued.
//
// Queries:
//
//	ShortestPath(g, start, end) → []string  // start…end, or [start] if unreachable
//	Distance(g, start, end)     → int       // hop count, or -1 if unreachable
//	Reachable(g, start, end)    → bool
//	Distances(g, start)         → map[string]int
//
// Unreachable targets are ordinary results, not errors: Distance returns -1
// and ShortestPath returns the single-element path [start]. An end vertex
// that does not exist behaves exactly like an unreachable one.
//
// Ties between equally short paths are broken by discovery order: the first
// vertex to discover another stays its predecessor.
//
// Distance counts edges. WithCountVertices makes it count the vertices on
// the path instead (edges + 1), the figure some callers call "path length".
//
// Errors:
//
//	ErrGraphNil             graph pointer is nil
//	ErrStartVertexNotFound  start vertex is absent (checked before any walk)
//	context errors          via WithContext
package paths
