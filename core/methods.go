// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Whole-graph snapshots and maintenance.

package core

// AdjacencyList returns a deep copy of the label → neighbor-sequence mapping.
// Mutating the result never affects the graph.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		cp := make([]string, len(nbrs))
		copy(cp, nbrs)
		out[id] = cp
	}

	return out
}

// Clear removes every vertex and edge. The logger is preserved.
// Complexity: O(1) plus garbage collection of the old storage.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.order = nil
	g.adjacency = make(map[string][]string)
}
