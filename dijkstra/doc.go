// Package dijkstra computes single-source shortest paths on a graph.Graph
// with non-negative edge weights.
//
// Algorithm
//
//	All distances start at Infinity except the source (0). A binary min-heap
//	(github.com/emirpasic/gods/trees/binaryheap) ordered by (distance, ID)
//	yields the next entry; each neighbor v of the popped node u is relaxed
//	when du + w < dist[v], and v is pushed again with its improved distance.
//	No settled set is kept: duplicate heap entries are allowed, and stale ones
//	are reprocessed harmlessly because their relaxations never succeed.
//
// Guarantees
//
//   - dist[source] == 0.
//   - For every edge (u, v, w) with dist[u] < Infinity: dist[v] <= dist[u] + w.
//   - Unreachable vertices keep dist == Infinity.
//
// Complexity (V vertices, E edges)
//
//   - Time:  O((V + E) log E) with lazy duplicates.
//   - Space: O(V + E).
//
// Negative weights are rejected at graph construction (graph.ErrNegativeWeight).
package dijkstra
