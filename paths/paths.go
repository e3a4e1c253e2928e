package paths

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ugraph/bfs"
	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/internal/telemetry"
)

// Unreachable is the Distance reported when end cannot be reached from start.
const Unreachable = -1

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("paths: start vertex not found")
)

// Option configures a path query.
type Option func(*options)

type options struct {
	ctx           context.Context
	countVertices bool
}

// WithContext sets a context for cancellation of the underlying walk.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithCountVertices makes Distance count the vertices on the shortest path
// (hop count + 1) instead of its edges. Unreachable stays -1.
func WithCountVertices() Option {
	return func(o *options) { o.countVertices = true }
}

func resolve(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ShortestPath returns a minimum-hop path from start to end, both inclusive.
// If end is unreachable (or absent) the result is the single-element path
// [start]; this is a sentinel, not an error.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (p []string, err error) {
	o := resolve(opts)
	if err = validate(g, start); err != nil {
		return nil, err
	}
	ctx, finish := telemetry.StartQuery(o.ctx, "paths.ShortestPath", start)
	defer func() { finish(len(p), err) }()

	res, err := bfs.BFS(g, start, bfs.WithContext(ctx), bfs.WithTarget(end))
	if err != nil {
		return nil, translate(err)
	}
	if !res.Found {
		return []string{start}, nil
	}

	return res.PathTo(end)
}

// Distance returns the number of edges on a shortest path from start to end,
// or Unreachable (-1). With WithCountVertices it returns the number of
// vertices on that path instead.
func Distance(g *core.Graph, start, end string, opts ...Option) (d int, err error) {
	o := resolve(opts)
	if err = validate(g, start); err != nil {
		return Unreachable, err
	}
	ctx, finish := telemetry.StartQuery(o.ctx, "paths.Distance", start)
	defer func() { finish(max(d, 0), err) }()

	res, err := bfs.BFS(g, start, bfs.WithContext(ctx), bfs.WithTarget(end))
	if err != nil {
		return Unreachable, translate(err)
	}
	if !res.Found {
		return Unreachable, nil
	}
	if o.countVertices {
		return res.Depth[end] + 1, nil
	}

	return res.Depth[end], nil
}

// Reachable reports whether end can be reached from start.
func Reachable(g *core.Graph, start, end string, opts ...Option) (bool, error) {
	d, err := Distance(g, start, end, opts...)
	if err != nil {
		return false, err
	}

	return d != Unreachable, nil
}

// Distances returns the hop distance from start to every vertex reachable
// from it, start included (distance 0).
func Distances(g *core.Graph, start string, opts ...Option) (dist map[string]int, err error) {
	o := resolve(opts)
	if err = validate(g, start); err != nil {
		return nil, err
	}
	ctx, finish := telemetry.StartQuery(o.ctx, "paths.Distances", start)
	defer func() { finish(len(dist), err) }()

	res, err := bfs.BFS(g, start, bfs.WithContext(ctx))
	if err != nil {
		return nil, translate(err)
	}

	return res.Depth, nil
}

// validate checks the graph and start vertex before any walk begins.
func validate(g *core.Graph, start string) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	return nil
}

// translate maps bfs sentinels onto this package's, keeping the cause.
func translate(err error) error {
	if errors.Is(err, bfs.ErrStartVertexNotFound) {
		return fmt.Errorf("%w: %w", ErrStartVertexNotFound, err)
	}

	return err
}
