package prim_kruskal

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/campusgraph/core"
	"github.com/katalvlaran/campusgraph/graph"
)

// candidate is a frontier edge; seq breaks weight ties by push order.
type candidate struct {
	edge core.Edge
	seq  int
}

func byWeightThenSeq(a, b interface{}) int {
	x, y := a.(candidate), b.(candidate)
	if c := utils.Int64Comparator(x.edge.Weight, y.edge.Weight); c != 0 {
		return c
	}

	return utils.IntComparator(x.seq, y.seq)
}

// Prim grows a minimum spanning tree from root using a min-heap of frontier edges.
//
// Error Conditions:
//   - graph.ErrGraphNil : g is nil.
//   - ErrRootNotFound   : root is not a node of g.
//   - ErrDisconnected   : some node is unreachable from root.
//
// Edges are reported oriented away from the tree (From inside, To new),
// in the order they were accepted.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *graph.Graph, root int) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, graph.ErrGraphNil
	}
	if !g.HasNode(root) {
		return nil, 0, fmt.Errorf("%w: %d", ErrRootNotFound, root)
	}

	n := g.NodeCount()
	visited := make(map[int]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var (
		total int64
		err   error
	)
	pq := binaryheap.NewWith(byWeightThenSeq)
	seq := 0

	grow := func(u int) error {
		visited[u] = true
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, nb := range nbrs {
			if !visited[nb.ID] {
				pq.Push(candidate{edge: core.Edge{From: u, To: nb.ID, Weight: nb.Weight}, seq: seq})
				seq++
			}
		}
		return nil
	}

	if err := grow(root); err != nil {
		return nil, 0, err
	}
	for !pq.Empty() && len(mst) < n-1 {
		raw, _ := pq.Pop()
		c := raw.(candidate)
		if visited[c.edge.To] {
			continue
		}
		if total, err = addWeight(total, c.edge.Weight); err != nil {
			return nil, 0, err
		}
		mst = append(mst, c.edge)
		if err := grow(c.edge.To); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
