// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLogger sets the structured logger used for mutation diagnostics.
// A nil logger is ignored and the no-op default is kept.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph is the core in-memory undirected multigraph.
//
// order keeps vertex labels in insertion order; adjacency maps each label to
// its ordered neighbor sequence. Both are guarded by mu.
type Graph struct {
	mu sync.RWMutex

	log *zap.Logger

	// Storage
	order     []string            // vertex labels, insertion order
	adjacency map[string][]string // label → ordered neighbor labels
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		log:       zap.NewNop(),
		adjacency: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Logger returns the logger the graph was configured with.
func (g *Graph) Logger() *zap.Logger {
	return g.log
}
