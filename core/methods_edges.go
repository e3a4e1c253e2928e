// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Policy:
//   - Edges exist only between vertices that already exist; AddEdge never
//     creates endpoints.
//   - Both endpoints' sequences are updated under one write lock so that
//     symmetry holds whenever the lock is released.

package core

import "go.uber.org/zap"

// AddEdge connects a and b by appending b to a's neighbor sequence and a to
// b's. Repeating the call appends a parallel edge.
//
// Returns false (and changes nothing) if either endpoint is absent.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasBothLocked("AddEdge", a, b) {
		return false
	}
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)

	return true
}

// RemoveEdge removes every occurrence of b from a's sequence and every
// occurrence of a from b's, dropping all parallel edges between the pair.
//
// Returns false (and changes nothing) if either endpoint is absent. When both
// exist it returns true even if they shared no edge.
// Complexity: O(deg(a) + deg(b)).
func (g *Graph) RemoveEdge(a, b string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasBothLocked("RemoveEdge", a, b) {
		return false
	}
	g.removeEdgeLocked(a, b)

	return true
}

// HasEdge reports whether at least one edge joins a and b.
// Complexity: O(deg(a)).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, n := range g.adjacency[a] {
		if n == b {
			return true
		}
	}

	return false
}

// Neighbors returns a copy of id's neighbor sequence in edge insertion order,
// with one entry per parallel edge.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// EdgeCount returns the number of edges, counting each parallel edge.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, nbrs := range g.adjacency {
		total += len(nbrs)
	}

	return total / 2
}

// hasBothLocked reports whether both endpoints exist, logging the no-op
// otherwise. Caller must hold mu.
func (g *Graph) hasBothLocked(op, a, b string) bool {
	_, okA := g.adjacency[a]
	_, okB := g.adjacency[b]
	if okA && okB {
		return true
	}
	g.log.Debug("core: endpoint not found, edge mutation ignored",
		zap.String("op", op),
		zap.String("from", a),
		zap.String("to", b),
		zap.Bool("from_exists", okA),
		zap.Bool("to_exists", okB),
	)

	return false
}

// removeEdgeLocked filters b out of a's sequence and a out of b's.
// Fresh slices are stored so that callers iterating an older sequence
// (RemoveVertex) are unaffected. Caller must hold mu.
func (g *Graph) removeEdgeLocked(a, b string) {
	g.adjacency[a] = without(g.adjacency[a], b)
	g.adjacency[b] = without(g.adjacency[b], a)
}

// without returns a new slice holding every element of s except x.
func without(s []string, x string) []string {
	out := make([]string, 0, len(s))
	for _, v := range s {
		if v != x {
			out = append(out, v)
		}
	}

	return out
}
