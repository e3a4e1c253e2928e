// Package core provides the in-memory undirected Graph store used by every
// traversal and query package in ugraph.
//
// The Graph G = (V,E) is a mapping from vertex label to an ordered sequence
// of neighbor labels:
//
//   - Undirected: AddEdge(a,b) appends b to a's sequence and a to b's.
//   - Unweighted: edges carry no attributes beyond their endpoints.
//   - Multigraph: a repeated AddEdge appends a second occurrence; parallel
//     edges are never deduplicated.
//   - Self-loops are not rejected: AddEdge(v,v) records v twice in v's sequence.
//   - Ordered: neighbor sequences keep edge insertion order, and the vertex
//     set keeps vertex insertion order. Both orders are observable and drive
//     traversal order in bfs, dfs, paths and connectivity.
//
// Invariants (hold after every mutation returns):
//
//	Symmetry:      v occurs m times in N(u) ⇔ u occurs m times in N(v).
//	No dangling:   every label in any N(u) is a vertex of the graph.
//	Fresh vertex:  a newly added vertex has an empty sequence.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) bool     // O(1); false if already present
//	RemoveVertex(id string) bool  // O(deg(v)·d + V); false if absent
//	HasVertex(id string) bool     // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b string) bool     // O(1) amortized; false if an endpoint is absent
//	RemoveEdge(a, b string) bool  // O(deg(a)+deg(b)); false if an endpoint is absent
//	HasEdge(a, b string) bool     // O(deg(a))
//
//	// Query
//	Neighbors(id string) ([]string, error) // O(d) copy, insertion order
//	Degree(id string) (int, error)         // O(1)
//	Vertices() []string                    // O(V) copy, insertion order
//	VertexCount() int, EdgeCount() int
//	AdjacencyList() map[string][]string    // O(V+E) deep copy
//
//	// Maintenance
//	Clear()
//	Clone() *Graph
//
// Mutations never fail loudly: a mutation that references a missing vertex is
// a no-op that returns false and emits a Debug entry on the configured zap
// logger (zap.NewNop by default, so nothing is written unless asked).
//
// Concurrency: a single sync.RWMutex guards the store. Mutations take the
// write lock; queries take the read lock.
//
// Errors:
//
//	ErrVertexNotFound – query against a missing vertex
package core
