// Package avl provides a height-balanced binary search tree of core.Building
// values keyed by Building.ID.
//
// What
//
//   - Insert is a recursive BST insert that recomputes each ancestor's cached
//     height on the way back up and rebalances with rotations.
//   - An equal ID replaces the stored Building in place; structure and heights
//     are left untouched.
//   - InOrder returns Buildings in ascending ID order.
//   - Validate re-derives heights and checks ordering and balance of every node.
//
// Rebalancing
//
//	After each insert, every ancestor computes balance = h(left) − h(right):
//
//	  balance >  1, key <  left.key   → rotate right           (left-left)
//	  balance >  1, key >  left.key   → rotate left(left), rotate right (left-right)
//	  balance < -1, key >  right.key  → rotate left            (right-right)
//	  balance < -1, key <  right.key  → rotate right(right), rotate left (right-left)
//
//	Rotations refresh the demoted node's height before the promoted one.
//
// Invariant
//
//	After every Insert: for all nodes, balance ∈ {−1, 0, 1} and
//	height = 1 + max(h(left), h(right)), with h(nil) = 0.
//
// Complexity
//
//   - Insert: O(log N) time, O(log N) recursion depth.
//   - InOrder: O(N).
//   - Height, Len: O(1).
//
// Errors
//
//   - core.ErrInvalidKey on a negative ID.
//   - ErrOrder / ErrUnbalanced / ErrHeight from Validate when an invariant is broken.
package avl
