// Package connectivity partitions a core.Graph into connected components by
// repeated breadth-first walks.
//
// Components iterates the vertex set in insertion order. Every vertex not yet
// covered becomes the root of a new component, whose members are listed in
// BFS order from that root. The union of all components is the vertex set,
// each vertex exactly once.
//
// Complexity: O(V + E) time, O(V) memory.
package connectivity

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ugraph/bfs"
	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/internal/telemetry"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("connectivity: graph is nil")

// Option configures a connectivity query.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext sets a context for cancellation between and within walks.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Components lists the connected components of g in discovery order.
// Within a component vertices appear in breadth-first order from its root,
// the first vertex of that component in g.Vertices(). An empty graph has no
// components.
func Components(g *core.Graph, opts ...Option) (comps [][]string, err error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	ctx, finish := telemetry.StartQuery(o.ctx, "connectivity.Components", "")
	defer func() { finish(len(comps), err) }()

	comps = make([][]string, 0)
	err = walk(ctx, g, func(order []string) {
		comps = append(comps, order)
	})
	if err != nil {
		return nil, err
	}

	return comps, nil
}

// Count returns the number of connected components of g.
func Count(g *core.Graph, opts ...Option) (n int, err error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	ctx, finish := telemetry.StartQuery(o.ctx, "connectivity.Count", "")
	defer func() { finish(n, err) }()

	err = walk(ctx, g, func([]string) { n++ })
	if err != nil {
		return 0, err
	}

	return n, nil
}

// IsConnected reports whether g has at most one component. The empty graph
// and a single vertex are connected.
func IsConnected(g *core.Graph, opts ...Option) (bool, error) {
	n, err := Count(g, opts...)
	if err != nil {
		return false, err
	}

	return n <= 1, nil
}

// walk runs one BFS per uncovered vertex and hands each visit order to emit.
func walk(ctx context.Context, g *core.Graph, emit func(order []string)) error {
	visited := make(map[string]bool, g.VertexCount())
	for _, root := range g.Vertices() {
		if visited[root] {
			continue
		}
		res, err := bfs.BFS(g, root, bfs.WithContext(ctx))
		if errors.Is(err, bfs.ErrStartVertexNotFound) {
			// removed by a concurrent writer after the snapshot
			continue
		}
		if err != nil {
			return fmt.Errorf("connectivity: walk from %q: %w", root, err)
		}
		for _, v := range res.Order {
			visited[v] = true
		}
		emit(res.Order)
	}

	return nil
}
