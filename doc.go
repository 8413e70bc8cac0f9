// Package campusgraph is an in-memory playground of classical data
// structures and graph algorithms, exercised over a small campus of
// labeled buildings.
//
// What is inside?
//
//   - Trees: an unbalanced BST and a self-balancing AVL tree keyed by building ID
//   - Graph: adjacency-list weighted undirected multigraph with a dense matrix view
//   - Traversals: BFS (FIFO queue), DFS (LIFO stack pre-order)
//   - Shortest paths: Dijkstra with lazy duplicate heap entries
//   - Minimum spanning trees: Kruskal (union-find), Prim
//   - Expressions: postfix → binary expression tree → float64 value
//
// Everything is organized in flat subpackages:
//
//	core/          — Building and Edge value types, ErrInvalidKey
//	bst/, avl/     — search trees
//	graph/         — Graph, Neighbor, adjacency matrix
//	bfs/, dfs/     — traversals with functional options and visit hooks
//	dijkstra/      — single-source shortest paths
//	prim_kruskal/  — MST algorithms and DisjointSet
//	expr/          — expression trees
//	dataset/       — embedded campus.yaml
//	report/        — the console report
//	cmd/campusgraph — CLI entry point
//
// The sample campus (edge weights in walking minutes):
//
//	Admin(0) ─4─ Lib(1) ─7─ Cafe(5) ─5─ Gym(6)
//	   │2       ╱1                       │6
//	CSE(2) ──────3────── DS(3) ─2─ Hostel(4)
//
// Nothing here is safe for concurrent mutation; each structure is built and
// queried by a single goroutine.
package campusgraph
