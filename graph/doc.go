// Package graph provides an adjacency-list, weighted, undirected graph over
// core.Building values keyed by Building.ID.
//
// What
//
//   - Add registers a Building and ensures an (initially empty) adjacency
//     entry exists. Re-adding the same ID replaces the stored Building but
//     keeps its adjacency and its position in iteration order.
//   - AddEdge(u, v, w) appends (v, w) to adjacency[u] and (u, w) to
//     adjacency[v]. Parallel edges are allowed and accumulate.
//   - Matrix materializes a dense (maxID+1)×(maxID+1) weight table
//     (last write wins on parallel edges).
//   - Edges lists each undirected edge once (u < v) in collection order.
//
// Determinism
//
//	Nodes and adjacency are held in insertion-ordered maps
//	(github.com/emirpasic/gods/maps/linkedhashmap), so Nodes(), Neighbors(),
//	Edges() and every traversal built on top of them are reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Add, AddEdge: O(1) amortized.
//   - Neighbors(id): O(deg(id)) copy.
//   - Edges: O(V + E). Matrix: O(maxID² + E).
//
// Errors
//
//   - core.ErrInvalidKey     on a negative Building ID.
//   - ErrUnknownNode         AddEdge/Neighbors reference an ID never added.
//   - ErrNegativeWeight      AddEdge with weight < 0.
package graph
