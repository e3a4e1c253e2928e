// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - The clone keeps vertex insertion order and every neighbor sequence verbatim,
//     so traversals on the clone return exactly what they return on the source.

package core

// Clone returns a deep copy of the Graph: vertex order, adjacency and logger.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithLogger(g.log))
	clone.order = make([]string, len(g.order))
	copy(clone.order, g.order)
	for id, nbrs := range g.adjacency {
		cp := make([]string, len(nbrs))
		copy(cp, nbrs)
		clone.adjacency[id] = cp
	}

	return clone
}
