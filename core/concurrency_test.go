// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ugraph/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls on one hub
// all land and keep both sides symmetric.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	g.AddVertex("X")
	for i := 0; i < num; i++ {
		g.AddVertex(fmt.Sprintf("V%d", i))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddEdge("X", fmt.Sprintf("V%d", id))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	requireSymmetric(t, g)
}

// TestConcurrentMutateAndRead mixes removals with readers to surface races
// under -race.
func TestConcurrentMutateAndRead(t *testing.T) {
	g := core.NewGraph()
	const num = 100
	g.AddVertex("Base")
	for i := 0; i < num; i++ {
		id := fmt.Sprintf("V%d", i)
		g.AddVertex(id)
		g.AddEdge("Base", id)
	}

	var wg sync.WaitGroup
	wg.Add(2 * num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			g.RemoveVertex(fmt.Sprintf("V%d", id))
		}(i)
		go func() {
			defer wg.Done()
			_ = g.AdjacencyList()
			_, _ = g.Neighbors("Base")
			_ = g.EdgeCount()
		}()
	}
	wg.Wait()

	nbs, err := g.Neighbors("Base")
	require.NoError(t, err)
	require.Empty(t, nbs)
	require.Equal(t, []string{"Base"}, g.Vertices())
}
