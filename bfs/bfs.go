// Package bfs provides breadth-first search over a graph.Graph,
// returning visit order, hop distances and parent links.
package bfs

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/campusgraph/graph"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *graph.Graph
	opts    BFSOptions
	queue   *linkedlistqueue.Queue
	visited map[int]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
// The visited set is seeded with startID, and every neighbor is enqueued
// exactly once, at first discovery, in adjacency order.
// Returns graph.ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// or any error returned by the OnVisit hook.
func BFS(g *graph.Graph, startID int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, graph.ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   linkedlistqueue.New(),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(startID, 0, startID)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != id {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue.Enqueue(queueItem{id: id, depth: d})
}

// loop drains the FIFO queue.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		raw, _ := w.queue.Dequeue()
		item := raw.(queueItem)
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit appends the Building to Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	b, _ := w.graph.Node(item.id)
	w.res.Order = append(w.res.Order, b)
	if err := w.opts.OnVisit(b, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors enqueues every unseen neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nbrs, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nb := range nbrs {
		if !w.visited[nb.ID] {
			w.enqueue(nb.ID, next, item.id)
		}
	}

	return nil
}
