package builder_test

import (
	"fmt"

	"github.com/katalvlaran/ugraph/bfs"
	"github.com/katalvlaran/ugraph/builder"
)

// ExampleBuildGraph builds a labeled 4-cycle and walks it breadth-first.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	res, _ := bfs.BFS(g, "A")
	fmt.Println(res.Order)
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output:
	// [A B D C]
	// 4 4
}

// ExampleGrid builds a 2×2 grid with "r,c" coordinate IDs.
func ExampleGrid() {
	g, _ := builder.BuildGraph(nil, nil, builder.Grid(2, 2))
	for _, v := range g.Vertices() {
		nbrs, _ := g.Neighbors(v)
		fmt.Println(v, nbrs)
	}
	// Output:
	// 0,0 [0,1 1,0]
	// 0,1 [0,0 1,1]
	// 1,0 [0,0 1,1]
	// 1,1 [0,1 1,0]
}
