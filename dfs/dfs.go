// Package dfs implements recursive and iterative depth‑first traversal on core.Graph.
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/internal/telemetry"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph     // underlying graph
	opts  DFSOptions      // traversal options
	ctx   context.Context // span context, cancelled with opts.Ctx
	res   *DFSResult      // result collector
}

// prepare validates input and applies options. No traversal state is
// allocated unless the start vertex exists.
func prepare(g *core.Graph, startID string, opts []Option) (DFSOptions, error) {
	if g == nil {
		return DFSOptions{}, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !g.HasVertex(startID) {
		return DFSOptions{}, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	return dopts, nil
}

// Recursive performs a pre-order depth-first walk from startID using the
// call stack: each vertex is appended when first discovered, then each of
// its unvisited neighbors is explored in neighbor-sequence order.
func Recursive(g *core.Graph, startID string, opts ...Option) (res *DFSResult, err error) {
	dopts, err := prepare(g, startID, opts)
	if err != nil {
		return nil, err
	}
	ctx, finish := telemetry.StartQuery(dopts.Ctx, "dfs.Recursive", startID)
	defer func() { finish(len(res.Order), err) }()

	w := &dfsWalker{graph: g, opts: dopts, ctx: ctx, res: newResult(g.VertexCount())}

	return w.res, w.traverse(startID, 0)
}

// traverse visits vertex id at the given depth, then recurses to neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	if err := w.checkpoint(); err != nil {
		return err
	}
	if w.opts.MaxRecursionDepth >= 0 && depth > w.opts.MaxRecursionDepth {
		return fmt.Errorf("%w: depth %d at %q", ErrDepthLimit, depth, id)
	}
	if err := w.discover(id, depth); err != nil {
		return err
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: Neighbors(%q): %v", ErrNeighbors, id, err)
	}
	for _, nid := range nbs {
		if w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// Iterative performs a depth-first walk from startID with an explicit LIFO
// frontier. A vertex is marked when pushed and appended when popped; its
// unvisited neighbors are pushed in forward order and therefore popped in
// reverse. The resulting order may differ from Recursive.
func Iterative(g *core.Graph, startID string, opts ...Option) (res *DFSResult, err error) {
	dopts, err := prepare(g, startID, opts)
	if err != nil {
		return nil, err
	}
	ctx, finish := telemetry.StartQuery(dopts.Ctx, "dfs.Iterative", startID)
	defer func() { finish(len(res.Order), err) }()

	n := g.VertexCount()
	w := &dfsWalker{graph: g, opts: dopts, ctx: ctx, res: newResult(n)}

	stack := make([]string, 0, n)
	stack = append(stack, startID)
	w.res.Visited[startID] = true
	w.res.Depth[startID] = 0

	for len(stack) > 0 {
		if err = w.checkpoint(); err != nil {
			return w.res, err
		}
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err = w.discover(id, w.res.Depth[id]); err != nil {
			return w.res, err
		}

		nbs, nerr := g.Neighbors(id)
		if nerr != nil {
			return w.res, fmt.Errorf("%w: Neighbors(%q): %v", ErrNeighbors, id, nerr)
		}
		for _, nid := range nbs {
			if w.res.Visited[nid] {
				continue
			}
			w.res.Visited[nid] = true
			w.res.Parent[nid] = id
			w.res.Depth[nid] = w.res.Depth[id] + 1
			stack = append(stack, nid)
		}
	}

	return w.res, nil
}

// discover marks id, records its depth, appends it to Order and runs OnVisit.
func (w *dfsWalker) discover(id string, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	return nil
}

// checkpoint reports context cancellation.
func (w *dfsWalker) checkpoint() error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
		return nil
	}
}
