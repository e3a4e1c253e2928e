// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns labels in insertion order.
//
// Concurrency:
//   - Mutations hold mu for writing, queries hold mu for reading.

package core

import "go.uber.org/zap"

// AddVertex inserts id with an empty neighbor sequence if it is absent.
// Re-adding an existing label is a no-op and leaves its neighbors untouched.
//
// Returns true if the vertex was created, false if it already existed.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[id]; exists {
		g.log.Debug("core: vertex already present",
			zap.String("op", "AddVertex"),
			zap.String("vertex", id),
		)
		return false
	}
	g.adjacency[id] = []string{}
	g.order = append(g.order, id)

	return true
}

// RemoveVertex deletes id after removing the edge to every neighbor recorded
// for it. Removing an absent vertex is a no-op.
//
// Returns true if the vertex existed and was removed.
// Complexity: O(deg(id)·d + V) where d is the largest neighbor degree.
func (g *Graph) RemoveVertex(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, exists := g.adjacency[id]
	if !exists {
		g.log.Debug("core: vertex not found, nothing removed",
			zap.String("op", "RemoveVertex"),
			zap.String("vertex", id),
		)
		return false
	}
	// nbrs is a snapshot: removeEdgeLocked replaces the slices it filters.
	for _, n := range nbrs {
		g.removeEdgeLocked(id, n)
	}
	delete(g.adjacency, id)
	for i, v := range g.order {
		if v == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return true
}

// HasVertex reports whether a vertex with the given label exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[id]

	return exists
}

// Vertices returns a copy of all vertex labels in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns the length of id's neighbor sequence. Parallel edges count
// once per occurrence and a self-loop counts twice.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}
