// Package builder assembles deterministic core.Graph fixtures from
// composable topology constructors.
//
// A Constructor is a closure over its size parameters; BuildGraph creates a
// graph, resolves BuilderOptions into one configuration and applies each
// constructor in order:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSymbolIDs()},
//		builder.Cycle(4),
//	)
//	// A:[B D] B:[A C] C:[B D] D:[C A]
//
// Constructors:
//
//	Cycle(n)                n ≥ 3, edges i–(i+1)%n
//	Path(n)                 n ≥ 2, edges (i-1)–i
//	Star(n)                 n ≥ 2, hub "Center" with leaves idFn(1..n-1)
//	Wheel(n)                n ≥ 4, Cycle(n-1) plus hub "Center"
//	Complete(n)             n ≥ 1, every pair i<j
//	CompleteBipartite(a,b)  a,b ≥ 1, IDs L0.. and R0..
//	Grid(rows, cols)        rows,cols ≥ 1, IDs "r,c", 4-neighborhood
//	RandomSparse(n, p)      n ≥ 1, p ∈ [0,1], G(n,p) with a seeded RNG
//
// Edge emission order is fixed per constructor, so the neighbor sequences,
// and therefore every traversal order, are reproducible.
//
// Options: WithIDScheme, WithSymbolIDs, WithExcelColumnIDs, WithPrefixIDs,
// WithSeed, WithRand, WithPartitionPrefix. Option constructors panic on nil
// arguments; constructors return sentinel errors (ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource, ErrIDScheme, ErrConstructFailed).
package builder
