package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusgraph/bfs"
	"github.com/katalvlaran/campusgraph/core"
	"github.com/katalvlaran/campusgraph/graph"
)

// build creates nodes 0..n-1 and the given edges.
func build(t *testing.T, n int, edges ...core.Edge) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i := 0; i < n; i++ {
		require.NoError(t, g.Add(core.Building{ID: i}))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

func campus(t *testing.T) *graph.Graph {
	return build(t, 7,
		core.Edge{From: 0, To: 1, Weight: 4}, core.Edge{From: 0, To: 2, Weight: 2},
		core.Edge{From: 1, To: 2, Weight: 1}, core.Edge{From: 2, To: 3, Weight: 3},
		core.Edge{From: 3, To: 4, Weight: 2}, core.Edge{From: 4, To: 6, Weight: 6},
		core.Edge{From: 1, To: 5, Weight: 7}, core.Edge{From: 5, To: 6, Weight: 5},
	)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, graph.ErrGraphNil)

	g := build(t, 1)
	_, err = bfs.BFS(g, 7)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_CampusOrder pins the visit order on the sample campus.
func TestBFS_CampusOrder(t *testing.T) {
	res, err := bfs.BFS(campus(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5, 3, 6, 4}, core.IDs(res.Order))
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 5: 2, 3: 2, 6: 3, 4: 3}, res.Depth)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 4}, path)
}

// TestBFS_VisitsEachReachableOnce also covers parallel edges and loops.
func TestBFS_VisitsEachReachableOnce(t *testing.T) {
	g := build(t, 5,
		core.Edge{From: 0, To: 1}, core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 1},
		core.Edge{From: 1, To: 2}, core.Edge{From: 2, To: 0},
		core.Edge{From: 3, To: 4},
	)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, core.IDs(res.Order))
	assert.Len(t, res.Order, 3)

	_, err = res.PathTo(4)
	assert.Error(t, err)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(campus(t), 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, core.IDs(res.Order))
}

func TestBFS_Hooks(t *testing.T) {
	var enq []int
	stop := errors.New("stop")
	res, err := bfs.BFS(campus(t), 0,
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }),
		bfs.WithOnVisit(func(b core.Building, _ int) error {
			if b.ID == 5 {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2, 5}, core.IDs(res.Order))
	assert.Equal(t, []int{0, 1, 2, 5, 3}, enq)
}
