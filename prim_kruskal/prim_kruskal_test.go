package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusgraph/core"
	"github.com/katalvlaran/campusgraph/graph"
	"github.com/katalvlaran/campusgraph/prim_kruskal"
)

func build(t testing.TB, n int, edges ...core.Edge) *graph.Graph {
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

var campusEdges = []core.Edge{
	{From: 0, To: 1, Weight: 4}, {From: 0, To: 2, Weight: 2}, {From: 1, To: 2, Weight: 1},
	{From: 2, To: 3, Weight: 3}, {From: 3, To: 4, Weight: 2}, {From: 4, To: 6, Weight: 6},
	{From: 1, To: 5, Weight: 7}, {From: 5, To: 6, Weight: 5},
}

// TestKruskal_CampusGolden pins the accepted edges and their order.
func TestKruskal_CampusGolden(t *testing.T) {
	mst, total, err := prim_kruskal.Kruskal(build(t, 7, campusEdges...))
	require.NoError(t, err)
	want := []core.Edge{
		{From: 1, To: 2, Weight: 1}, {From: 0, To: 2, Weight: 2}, {From: 3, To: 4, Weight: 2},
		{From: 2, To: 3, Weight: 3}, {From: 5, To: 6, Weight: 5}, {From: 4, To: 6, Weight: 6},
	}
	assert.Equal(t, want, mst)
	assert.Equal(t, int64(19), total)
}

func TestKruskal_EmptyAndSingle(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	require.ErrorIs(t, err, graph.ErrGraphNil)

	mst, total, err := prim_kruskal.Kruskal(graph.New())
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)

	mst, _, err = prim_kruskal.Kruskal(build(t, 1, core.Edge{From: 0, To: 0, Weight: 3}))
	require.NoError(t, err)
	assert.Empty(t, mst, "self-loops never enter the tree")
}

func TestKruskal_Forest(t *testing.T) {
	g := build(t, 5,
		core.Edge{From: 0, To: 1, Weight: 3}, core.Edge{From: 1, To: 2, Weight: 1},
		core.Edge{From: 0, To: 2, Weight: 2}, core.Edge{From: 3, To: 4, Weight: 9})
	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, mst, 3)
	assert.Equal(t, int64(12), total)
}

// TestKruskal_TieBreakFollowsCollectionOrder checks the stable sort contract.
func TestKruskal_TieBreakFollowsCollectionOrder(t *testing.T) {
	g := build(t, 3,
		core.Edge{From: 1, To: 2, Weight: 1}, core.Edge{From: 0, To: 2, Weight: 1},
		core.Edge{From: 0, To: 1, Weight: 1})
	mst, _, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	// collected under node 0 first: (0,2) then (0,1); (1,2) closes the cycle
	assert.Equal(t, []core.Edge{{From: 0, To: 2, Weight: 1}, {From: 0, To: 1, Weight: 1}}, mst)
}

// bruteForceMSF returns the minimum weight of any acyclic edge subset with
// |V| - components edges.
func bruteForceMSF(n int, edges []core.Edge) int64 {
	comp := prim_kruskal.NewDisjointSet(ids(n))
	components := n
	for _, e := range edges {
		if comp.Union(e.From, e.To) {
			components--
		}
	}
	need := n - components

	best := int64(-1)
	for mask := 0; mask < 1<<len(edges); mask++ {
		ds := prim_kruskal.NewDisjointSet(ids(n))
		var w int64
		cnt := 0
		ok := true
		for i, e := range edges {
			if mask&(1<<i) == 0 {
				continue
			}
			if !ds.Union(e.From, e.To) {
				ok = false
				break
			}
			w += e.Weight
			cnt++
		}
		if ok && cnt == need && (best < 0 || w < best) {
			best = w
		}
	}

	return best
}

func ids(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// TestKruskal_MatchesBruteForce compares against exhaustive search on small graphs.
func TestKruskal_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 40; round++ {
		n := 2 + r.Intn(5)
		m := 1 + r.Intn(9)
		edges := make([]core.Edge, 0, m)
		for i := 0; i < m; i++ {
			u, v := r.Intn(n), r.Intn(n)
			if u == v {
				continue
			}
			edges = append(edges, core.Edge{From: u, To: v, Weight: int64(r.Intn(10))})
		}
		mst, total, err := prim_kruskal.Kruskal(build(t, n, edges...))
		require.NoError(t, err)
		require.LessOrEqual(t, len(mst), n-1)
		require.Equal(t, bruteForceMSF(n, edges), total, "round %d edges %v", round, edges)

		// acyclic
		ds := prim_kruskal.NewDisjointSet(ids(n))
		for _, e := range mst {
			require.True(t, ds.Union(e.From, e.To))
		}
	}
}

func TestPrim_Campus(t *testing.T) {
	g := build(t, 7, campusEdges...)
	mst, total, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(19), total)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 2, Weight: 2}, {From: 2, To: 1, Weight: 1}, {From: 2, To: 3, Weight: 3},
		{From: 3, To: 4, Weight: 2}, {From: 4, To: 6, Weight: 6}, {From: 6, To: 5, Weight: 5},
	}, mst)
}

func TestPrim_Errors(t *testing.T) {
	_, _, err := prim_kruskal.Prim(nil, 0)
	require.ErrorIs(t, err, graph.ErrGraphNil)

	_, _, err = prim_kruskal.Prim(build(t, 2), 5)
	require.ErrorIs(t, err, prim_kruskal.ErrRootNotFound)

	_, _, err = prim_kruskal.Prim(build(t, 3, core.Edge{From: 0, To: 1, Weight: 1}), 0)
	require.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	mst, total, err := prim_kruskal.Prim(build(t, 1), 0)
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)
}

func TestMST_WeightOverflow(t *testing.T) {
	g := build(t, 3,
		core.Edge{From: 0, To: 1, Weight: 1}, core.Edge{From: 1, To: 2, Weight: math.MaxInt64})

	_, _, err := prim_kruskal.Kruskal(g)
	require.ErrorIs(t, err, prim_kruskal.ErrWeightOverflow)
	_, _, err = prim_kruskal.Prim(g, 0)
	require.ErrorIs(t, err, prim_kruskal.ErrWeightOverflow)

	mst, total, err := prim_kruskal.Kruskal(build(t, 2, core.Edge{From: 0, To: 1, Weight: math.MaxInt64}))
	require.NoError(t, err)
	assert.Len(t, mst, 1)
	assert.Equal(t, int64(math.MaxInt64), total)
}

func TestCompute_Dispatch(t *testing.T) {
	g := build(t, 7, campusEdges...)

	_, kw, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	_, pw, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(4))
	require.NoError(t, err)
	assert.Equal(t, kw, pw)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	require.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestDisjointSet(t *testing.T) {
	ds := prim_kruskal.NewDisjointSet([]int{0, 2, 5})
	assert.False(t, ds.Connected(0, 5))
	assert.True(t, ds.Union(0, 5))
	assert.False(t, ds.Union(5, 0))
	assert.True(t, ds.Connected(0, 5))
	assert.True(t, ds.Union(2, 5))
	assert.Equal(t, ds.Find(0), ds.Find(2))
}

func BenchmarkKruskal(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	const n = 500
	var edges []core.Edge
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{From: i - 1, To: i, Weight: int64(1 + r.Intn(10))})
	}
	for i := 0; i < 1500; i++ {
		edges = append(edges, core.Edge{From: r.Intn(n), To: r.Intn(n), Weight: int64(1 + r.Intn(100))})
	}
	g := build(b, n, edges...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}
