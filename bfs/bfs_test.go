package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ugraph/bfs"
	"github.com/katalvlaran/ugraph/core"
)

// square builds the 4-cycle A–B, A–C, B–D, C–D with edges added in that order.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C", "D"} {
		require.True(t, g.AddVertex(v))
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		require.True(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	res, err := bfs.BFS(g, "missing")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	g.AddVertex("A")
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_MissingStartSkipsHooks ensures nothing runs before the NotFound check.
func TestBFS_MissingStartSkipsHooks(t *testing.T) {
	g := core.NewGraph()
	called := false
	_, err := bfs.BFS(g, "ghost", bfs.WithOnEnqueue(func(string, int) { called = true }))
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	assert.False(t, called)
}

func TestBFS_Square(t *testing.T) {
	res, err := bfs.BFS(square(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, res.Depth)
	// D is discovered from B first; C never overwrites it.
	assert.Equal(t, map[string]string{"B": "A", "C": "A", "D": "B"}, res.Parent)
	assert.False(t, res.Found)
}

func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Empty(t, res.Parent)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"X", "Y", "P", "Q"} {
		g.AddVertex(v)
	}
	g.AddEdge("X", "Y")
	g.AddEdge("P", "Q")

	resX, err := bfs.BFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, resX.Order)

	resP, err := bfs.BFS(g, "P")
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "Q"}, resP.Order)
}

// TestBFS_ParallelEdgesVisitOnce checks that duplicate neighbor entries are ignored.
func TestBFS_ParallelEdgesVisitOnce(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")
	g.AddVertex("B")
	g.AddEdge("A", "B")
	g.AddEdge("A", "B")
	g.AddEdge("A", "A")

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_NeighborOrderFollowsInsertion(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"S", "Z", "M", "A"} {
		g.AddVertex(v)
	}
	g.AddEdge("S", "Z")
	g.AddEdge("S", "M")
	g.AddEdge("S", "A")

	res, err := bfs.BFS(g, "S")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "Z", "M", "A"}, res.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	res, err := bfs.BFS(square(t), "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return nbr != "B"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, res.Order)
	assert.Equal(t, "C", res.Parent["D"])
}

func TestBFS_Target(t *testing.T) {
	g := square(t)

	res, err := bfs.BFS(g, "A", bfs.WithTarget("C"))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithTarget("nowhere"))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithTarget("A"))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A"}, res.Order)
}

func TestBFSResult_PathTo(t *testing.T) {
	res, err := bfs.BFS(square(t), "A")
	require.NoError(t, err)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path)

	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)

	_, err = res.PathTo("Q")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_Hooks(t *testing.T) {
	var enq, deq []string
	res, err := bfs.BFS(square(t), "A",
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id string, _ int) { deq = append(deq, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, enq)
	assert.Equal(t, res.Order, deq)
}

func TestBFS_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	res, err := bfs.BFS(square(t), "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

func TestBFS_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(square(t), "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_NeighborsVanish removes a queued vertex from inside a hook.
func TestBFS_NeighborsVanish(t *testing.T) {
	g := square(t)
	_, err := bfs.BFS(g, "A", bfs.WithOnDequeue(func(id string, _ int) {
		if id == "B" {
			g.RemoveVertex("C")
		}
	}))
	// C was queued by A before the removal and fails on expansion.
	assert.ErrorIs(t, err, bfs.ErrNeighbors)
}
