// Package dfs implements an iterative, stack-based depth-first traversal
// over a graph.Graph.
//
// Behavior
//
//	The traversal pops a vertex, skips it if already visited, otherwise records
//	it and pushes all of its neighbors in adjacency order. Because the stack is
//	LIFO, neighbors are explored in reverse adjacency order, and a vertex may be
//	pushed several times but is processed once. The resulting pre-order differs
//	from textbook recursive DFS; it is deterministic and part of the contract.
//
// Options
//
//   - WithOnVisit(fn)       hook on first pop; an error aborts traversal.
//   - WithFullTraversal()   continue from unvisited vertices (forest).
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(E) stack in the worst case (one push per adjacency entry).
//
// Errors
//
//   - graph.ErrGraphNil        if g is nil.
//   - ErrStartVertexNotFound   if startID is missing.
//   - wrapped OnVisit errors.
package dfs
