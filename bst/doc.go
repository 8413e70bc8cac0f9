// Package bst provides an unbalanced binary search tree of core.Building
// values keyed by Building.ID.
//
// What
//
//   - Insert descends from the root: smaller IDs go left, larger IDs go right,
//     and an equal ID replaces the stored Building in place (update semantics,
//     no duplicate nodes, no structural change).
//   - InOrder returns Buildings in ascending ID order (left, node, right).
//   - Height is recomputed recursively on every call (no cached heights):
//     0 for an empty tree, else 1 + max(height(left), height(right)).
//
// Why
//
//	The tree performs no rebalancing, so its shape depends on insertion order.
//	Inserting already-sorted keys degenerates into a linked list of height N;
//	compare with package avl, which keeps height O(log N) for the same data.
//
// Complexity
//
//   - Insert: O(h) time, O(1) extra space (iterative descent).
//   - InOrder, Height: O(N) time, O(h) recursion depth.
//
// Errors
//
//   - core.ErrInvalidKey if the inserted Building has a negative ID.
package bst
