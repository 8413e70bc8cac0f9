// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/campusgraph/core"
	"github.com/katalvlaran/campusgraph/graph"
)

// Kruskal computes the minimum spanning forest of g.
//
// Steps:
//  1. Collect each undirected edge once (u < v) via g.Edges(), in node then
//     adjacency order. Self-loops are never collected.
//  2. Stable-sort ascending by weight, so equal weights keep collection order.
//  3. Accept an edge iff its endpoints lie in different DisjointSet trees,
//     then union them.
//
// Returns the accepted edges in ascending-weight order and their total weight.
// A disconnected graph yields a forest (fewer than |V|-1 edges), not an error.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(g *graph.Graph) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, graph.ErrGraphNil
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds := NewDisjointSet(g.NodeIDs())
	mst := make([]core.Edge, 0, max(g.NodeCount()-1, 0))
	var (
		total int64
		err   error
	)
	for _, e := range edges {
		if !ds.Union(e.From, e.To) {
			continue // would close a cycle
		}
		if total, err = addWeight(total, e.Weight); err != nil {
			return nil, 0, err
		}
		mst = append(mst, e)
	}

	return mst, total, nil
}
