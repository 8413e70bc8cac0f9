// Package dijkstra implements Dijkstra's shortest-path algorithm on graph.Graph.
package dijkstra

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/campusgraph/graph"
)

// Dijkstra computes shortest distances from source to every node of g.
//
// Returns:
//
//   - dist: node ID → minimum distance (Infinity if unreachable).
//   - prev: predecessor map if WithReturnPath() was given, nil otherwise.
//     prev[v] == u means the shortest path to v goes through u; the source
//     and unreachable nodes have no entry.
//   - err:  graph.ErrGraphNil or ErrVertexNotFound.
//
// Relaxation uses the distance carried by the popped heap entry, and a
// node is pushed again every time its distance strictly improves. Stale
// entries are not filtered on pop: their relaxations can never beat the
// already-improved distances, so they are redundant but harmless.
func Dijkstra(g *graph.Graph, source int, opts ...Option) (map[int]int64, map[int]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, nil, graph.ErrGraphNil
	}
	if !g.HasNode(source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}

	r := &runner{
		g:    g,
		dist: make(map[int]int64, g.NodeCount()),
		pq:   binaryheap.NewWith(byDistThenID),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int]int, g.NodeCount())
	}

	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g    *graph.Graph
	dist map[int]int64
	prev map[int]int
	pq   *binaryheap.Heap // of nodeItem
}

// nodeItem is one (tentative distance, node) heap entry.
type nodeItem struct {
	id   int
	dist int64
}

// byDistThenID orders heap entries by distance, then by node ID.
func byDistThenID(a, b interface{}) int {
	x, y := a.(nodeItem), b.(nodeItem)
	if c := utils.Int64Comparator(x.dist, y.dist); c != 0 {
		return c
	}

	return utils.IntComparator(x.id, y.id)
}

func (r *runner) init(source int) {
	for _, id := range r.g.NodeIDs() {
		r.dist[id] = Infinity
	}
	r.dist[source] = 0
	r.pq.Push(nodeItem{id: source, dist: 0})
}

func (r *runner) process() error {
	for !r.pq.Empty() {
		raw, _ := r.pq.Pop()
		item := raw.(nodeItem)
		if err := r.relax(item); err != nil {
			return err
		}
	}

	return nil
}

// relax tries every edge out of item.id using the popped distance.
func (r *runner) relax(item nodeItem) error {
	nbrs, err := r.g.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", item.id, err)
	}
	for _, nb := range nbrs {
		if nb.Weight > Infinity-item.dist {
			continue // path length not representable; dest stays unreachable
		}
		cand := item.dist + nb.Weight
		if cand >= r.dist[nb.ID] {
			continue
		}
		r.dist[nb.ID] = cand
		if r.prev != nil {
			r.prev[nb.ID] = item.id
		}
		r.pq.Push(nodeItem{id: nb.ID, dist: cand})
	}

	return nil
}

// PathTo rebuilds the node path source → dest from a predecessor map.
func PathTo(prev map[int]int, source, dest int) ([]int, error) {
	path := []int{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %d from %d", ErrNoPath, dest, source)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
