// Package dfs implements depth‑first traversal on a core.Graph in two
// flavors whose visit orders intentionally differ.
//
// What:
//
//   - Recursive: pre‑order walk. Mark the vertex, append it to Order, then
//     recurse into each unvisited neighbor in neighbor-sequence order. A vertex
//     is appended exactly once, at the moment it is first discovered.
//   - Iterative: last‑in‑first‑out frontier. Push start (marked); loop: pop,
//     append, then mark-and-push every unvisited neighbor in forward order.
//     Because neighbors are pushed forward but popped in reverse, the order
//     differs from Recursive whenever a vertex has two or more unvisited
//     neighbors. This divergence is part of the contract.
//
// Example (square A–B, A–C, B–D, C–D, edges added in that order):
//
//	Recursive(g, "A") → [A B D C]
//	Iterative(g, "A") → [A C D B]
//
// Resource safety:
//
//	Recursive consumes call-stack depth proportional to the longest simple
//	path it explores. Use WithMaxRecursionDepth to bound it (ErrDepthLimit),
//	or Iterative, whose frontier lives on the heap.
//
// Complexity:
//
//   - Time O(V+E), Memory O(V) for both variants.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph (checked first)
//   - ErrDepthLimit           Recursive exceeded WithMaxRecursionDepth
//   - ErrNeighbors            a vertex vanished mid-walk
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit
package dfs
