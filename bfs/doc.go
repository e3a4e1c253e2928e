// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex,
//     using a first-in-first-out frontier.
//   - A vertex is marked visited when it is enqueued, so it is enqueued once.
//   - Neighbors are enqueued in the order of the vertex's neighbor sequence,
//     which is edge insertion order in core.Graph.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence (level order)
//   - Depth:  vertex → hop distance from start, set at first discovery
//   - Parent: vertex → predecessor in the BFS tree, set at first discovery
//   - Found:  whether the WithTarget vertex was reached
//   - Supports functional hooks at three stages (OnEnqueue, OnDequeue, OnVisit),
//     neighbor filtering, a depth limit, and early stop at a target vertex.
//
// Determinism
//
//	core.Graph keeps neighbor sequences in insertion order, and BFS never
//	reorders them, so the visit sequence is fully reproducible. Ties between
//	equally short paths are broken by discovery order: the first predecessor
//	to discover a vertex is its Parent forever.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, Depth, Parent and visited set
//
// Usage
//
//	res, err := bfs.BFS(g, "A")
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//		// a context error, or a wrapped OnVisit error
//	}
//
//	// Stop as soon as "D" is dequeued, then rebuild the path to it.
//	res, err = bfs.BFS(g, "A", bfs.WithTarget("D"))
//	if err == nil && res.Found {
//		path, _ := res.PathTo("D")
//	}
//
// Options
//
//   - WithContext(ctx):        cancellation.
//   - WithMaxDepth(d):         do not enqueue beyond depth d (>0); 0 means no limit.
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr,neighbor)==false.
//   - WithTarget(id):          stop right after id is visited.
//   - WithOnEnqueue / WithOnDequeue / WithOnVisit: hooks.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist; reported
//     before any traversal state is allocated.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if a vertex disappears mid-walk.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
