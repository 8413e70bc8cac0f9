// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: node catalog and symmetric adjacency lists.

package graph

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/campusgraph/core"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrUnknownNode indicates an operation referenced an ID that was never added.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrGraphNil is returned by algorithm packages when handed a nil *Graph.
	ErrGraphNil = errors.New("graph: graph is nil")
)

// Neighbor is one adjacency entry: the far endpoint and the edge weight.
type Neighbor struct {
	ID     int
	Weight int64
}

// String renders the Neighbor as "(id, weight)".
func (n Neighbor) String() string { return fmt.Sprintf("(%d, %d)", n.ID, n.Weight) }

// Graph is a weighted undirected multigraph. Not safe for concurrent mutation.
type Graph struct {
	// nodes: int → core.Building, insertion ordered
	nodes *linkedhashmap.Map

	// adjacency: int → []Neighbor, same key order as nodes
	adjacency *linkedhashmap.Map

	edgeCount int
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:     linkedhashmap.New(),
		adjacency: linkedhashmap.New(),
	}
}

// Add registers b. Idempotent for the same ID: the payload is replaced, the
// adjacency list is preserved.
func (g *Graph) Add(b core.Building) error {
	if err := b.Validate(); err != nil {
		return err
	}
	g.nodes.Put(b.ID, b)
	if _, ok := g.adjacency.Get(b.ID); !ok {
		g.adjacency.Put(b.ID, []Neighbor(nil))
	}

	return nil
}

// AddEdge connects u and v with weight w in both directions.
// Does not deduplicate: calling it twice yields two parallel edges.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if !g.HasNode(u) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, u)
	}
	if !g.HasNode(v) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, v)
	}
	if w < 0 {
		return fmt.Errorf("%w: %d-%d weight=%d", ErrNegativeWeight, u, v, w)
	}

	g.appendNeighbor(u, Neighbor{ID: v, Weight: w})
	g.appendNeighbor(v, Neighbor{ID: u, Weight: w})
	g.edgeCount++

	return nil
}

func (g *Graph) appendNeighbor(from int, n Neighbor) {
	raw, _ := g.adjacency.Get(from)
	list, _ := raw.([]Neighbor)
	g.adjacency.Put(from, append(list, n))
}

// HasNode reports whether id was added.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes.Get(id)
	return ok
}

// Node returns the Building registered under id.
func (g *Graph) Node(id int) (core.Building, bool) {
	raw, ok := g.nodes.Get(id)
	if !ok {
		return core.Building{}, false
	}

	return raw.(core.Building), true
}

// Nodes returns all Buildings in insertion order.
func (g *Graph) Nodes() []core.Building {
	out := make([]core.Building, 0, g.nodes.Size())
	it := g.nodes.Iterator()
	for it.Next() {
		out = append(out, it.Value().(core.Building))
	}

	return out
}

// NodeIDs returns all IDs in insertion order.
func (g *Graph) NodeIDs() []int {
	out := make([]int, 0, g.nodes.Size())
	for _, k := range g.nodes.Keys() {
		out = append(out, k.(int))
	}

	return out
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int { return g.nodes.Size() }

// EdgeCount returns the number of AddEdge calls that succeeded.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Neighbors returns a copy of the adjacency list of id, in insertion order.
func (g *Graph) Neighbors(id int) ([]Neighbor, error) {
	raw, ok := g.adjacency.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	list, _ := raw.([]Neighbor)

	return append([]Neighbor(nil), list...), nil
}

// Edges returns every undirected edge once, taking the copy stored under the
// smaller endpoint (u < v). Order follows node order, then adjacency order.
// Self-loops are not reported.
func (g *Graph) Edges() []core.Edge {
	out := make([]core.Edge, 0, g.edgeCount)
	it := g.adjacency.Iterator()
	for it.Next() {
		u := it.Key().(int)
		list, _ := it.Value().([]Neighbor)
		for _, n := range list {
			if u < n.ID {
				out = append(out, core.Edge{From: u, To: n.ID, Weight: n.Weight})
			}
		}
	}

	return out
}
