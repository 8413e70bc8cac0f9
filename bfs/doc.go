// Package bfs provides breadth-first search over a graph.Graph.
//
// What
//
//   - Iterative traversal with an explicit FIFO queue
//     (github.com/emirpasic/gods/queues/linkedlistqueue).
//   - The visited set is seeded with the start vertex; each neighbor is
//     marked and enqueued exactly once, when first discovered.
//   - Returns a BFSResult with Order (Buildings in visit order), Depth and Parent.
//   - Hooks: OnEnqueue on discovery, OnVisit on dequeue (may abort with an error).
//   - MaxDepth limit (d>0) or no limit (d==0).
//
// Determinism
//
//	Neighbors are expanded in adjacency insertion order, so the visit
//	sequence is fully reproducible for a given build sequence.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - graph.ErrGraphNil       if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - Wrapped OnVisit hook errors.
package bfs
