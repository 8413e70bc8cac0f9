// Package core defines the Building entity and the weighted Edge record
// shared by every tree, graph, and algorithm package in campusgraph.
//
// What
//
//   - Building is an immutable value record: a unique non-negative integer ID,
//     a human-readable Name, and a free-form Detail string.
//   - Edge is a resolved undirected connection (From, To, Weight) as reported
//     by graph.Edges and by the minimum-spanning-tree algorithms.
//
// Why
//
//	Trees and graphs hold Buildings by value, so the same Building may appear in
//	a BST, an AVL tree, and a Graph at once without any of them owning it.
//
// Key policy
//
//	IDs are the sort key of the trees and the row/column index of the dense
//	adjacency matrix, so a negative ID is rejected with ErrInvalidKey.
//
// Errors:
//
//	ErrInvalidKey – the Building ID is negative.
package core
