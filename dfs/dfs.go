package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/campusgraph/core"
	"github.com/katalvlaran/campusgraph/graph"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *graph.Graph
	opts  DFSOptions
	stack *arraystack.Stack
	res   *DFSResult
}

// DFS performs an iterative depth-first traversal from startID.
//
// A vertex is pushed once per incident edge and processed only the first
// time it is popped; later pops of the same vertex are skipped. Neighbors
// are pushed in adjacency order and therefore popped in reverse, which is
// the observable order this package guarantees.
func DFS(g *graph.Graph, startID int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, graph.ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
	}

	n := g.NodeCount()
	w := &dfsWalker{
		graph: g,
		opts:  o,
		stack: arraystack.New(),
		res: &DFSResult{
			Order:   make([]core.Building, 0, n),
			Visited: make(map[int]bool, n),
		},
	}

	if err := w.run(startID); err != nil {
		return w.res, err
	}
	if o.FullTraversal {
		for _, id := range g.NodeIDs() {
			if w.res.Visited[id] {
				continue
			}
			if err := w.run(id); err != nil {
				return w.res, err
			}
		}
	}

	return w.res, nil
}

// run drains the stack seeded with root.
func (w *dfsWalker) run(root int) error {
	w.push(root)
	for !w.stack.Empty() {
		raw, _ := w.stack.Pop()
		u := raw.(int)
		if w.res.Visited[u] {
			continue
		}
		w.res.Visited[u] = true

		b, _ := w.graph.Node(u)
		w.res.Order = append(w.res.Order, b)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(b); err != nil {
				return fmt.Errorf("dfs: OnVisit error at %d: %w", u, err)
			}
		}

		nbrs, err := w.graph.Neighbors(u)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %d: %w", u, err)
		}
		for _, nb := range nbrs {
			w.push(nb.ID)
		}
	}

	return nil
}

func (w *dfsWalker) push(id int) {
	w.stack.Push(id)
	w.res.Pushes++
}
