// Package dfs defines types and options for depth-first traversal,
// including cancellation, a pre-order hook and a recursion depth guard.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// Recursive or Iterative.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrDepthLimit indicates Recursive would exceed the configured
	// maximum recursion depth.
	ErrDepthLimit = errors.New("dfs: recursion depth limit exceeded")

	// ErrNeighbors is returned when a vertex disappears during the walk.
	ErrNeighbors = errors.New("dfs: neighbor iteration error")
)

// noDepthLimit disables the recursion guard.
const noDepthLimit = -1

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked right after a vertex is appended to
	// Order. Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// MaxRecursionDepth, if non-negative, is the deepest recursion level
	// Recursive may reach (start is level 0). Ignored by Iterative.
	// Default is -1 (no limit).
	MaxRecursionDepth int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No visit hook
//   - No recursion limit (MaxRecursionDepth = -1)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:               context.Background(),
		OnVisit:           nil,
		MaxRecursionDepth: noDepthLimit,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxRecursionDepth bounds the recursion of Recursive to limit levels
// below the start vertex. A negative limit disables the guard.
func WithMaxRecursionDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			limit = noDepthLimit
		}
		o.MaxRecursionDepth = limit
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they were appended.
	Order []string

	// Depth maps each vertex ID to its depth in the DFS tree.
	Depth map[string]int

	// Parent maps each vertex ID to the ID of the vertex from which it was first discovered.
	// The start vertex does not appear in this map.
	Parent map[string]string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool
}

func newResult(n int) *DFSResult {
	return &DFSResult{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
}
