package avl

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusgraph/core"
)

// Sentinel errors reported by Validate.
var (
	// ErrOrder indicates that a node's key is not strictly between its subtree bounds.
	ErrOrder = errors.New("avl: ordering violated")

	// ErrUnbalanced indicates a node whose balance factor is outside {-1, 0, 1}.
	ErrUnbalanced = errors.New("avl: balance factor out of range")

	// ErrHeight indicates a node whose cached height disagrees with its children.
	ErrHeight = errors.New("avl: stale cached height")
)

// node is one owned subtree; height counts nodes on the longest downward path.
type node struct {
	b      core.Building
	left   *node
	right  *node
	height int
}

// Tree is a self-balancing AVL tree. The zero value is an empty tree.
type Tree struct {
	root *node
	size int
}

// New returns an empty Tree.
func New() *Tree { return &Tree{} }

// Insert adds b, or replaces the Building stored under b.ID, and rebalances.
func (t *Tree) Insert(b core.Building) error {
	if err := b.Validate(); err != nil {
		return err
	}
	var added bool
	t.root, added = t.insert(t.root, b)
	if added {
		t.size++
	}

	return nil
}

func (t *Tree) insert(n *node, b core.Building) (*node, bool) {
	if n == nil {
		return &node{b: b, height: 1}, true
	}

	var added bool
	switch {
	case b.ID < n.b.ID:
		n.left, added = t.insert(n.left, b)
	case b.ID > n.b.ID:
		n.right, added = t.insert(n.right, b)
	default:
		n.b = b
		return n, false
	}

	update(n)
	d := balance(n)

	// left heavy
	if d > 1 {
		if b.ID < n.left.b.ID {
			return rotateRight(n), added
		}
		n.left = rotateLeft(n.left)
		return rotateRight(n), added
	}

	// right heavy
	if d < -1 {
		if b.ID > n.right.b.ID {
			return rotateLeft(n), added
		}
		n.right = rotateRight(n.right)
		return rotateLeft(n), added
	}

	return n, added
}

func height(n *node) int {
	if n == nil {
		return 0
	}

	return n.height
}

func update(n *node) { n.height = 1 + max(height(n.left), height(n.right)) }

func balance(n *node) int { return height(n.left) - height(n.right) }

// rotateRight promotes y's left child:
//
//	    y            x
//	   / \          / \
//	  x   C  ==>   A   y
//	 / \              / \
//	A   t            t   C
func rotateRight(y *node) *node {
	x := y.left
	t := x.right
	x.right = y
	y.left = t
	update(y)
	update(x)

	return x
}

// rotateLeft promotes x's right child:
//
//	  x                y
//	 / \              / \
//	A   y    ==>     x   C
//	   / \          / \
//	  t   C        A   t
func rotateLeft(x *node) *node {
	y := x.right
	t := y.left
	y.left = x
	x.right = t
	update(x)
	update(y)

	return y
}

// Get returns the Building stored under id.
func (t *Tree) Get(id int) (core.Building, bool) {
	cur := t.root
	for cur != nil {
		switch {
		case id < cur.b.ID:
			cur = cur.left
		case id > cur.b.ID:
			cur = cur.right
		default:
			return cur.b, true
		}
	}

	return core.Building{}, false
}

// InOrder returns every stored Building in ascending ID order.
func (t *Tree) InOrder() []core.Building {
	out := make([]core.Building, 0, t.size)
	return inorder(t.root, out)
}

func inorder(n *node, acc []core.Building) []core.Building {
	if n == nil {
		return acc
	}
	acc = inorder(n.left, acc)
	acc = append(acc, n.b)

	return inorder(n.right, acc)
}

// Height returns the cached height of the root (0 when empty).
func (t *Tree) Height() int { return height(t.root) }

// Len returns the number of distinct keys stored.
func (t *Tree) Len() int { return t.size }

// Validate walks the whole tree and reports the first broken invariant.
func (t *Tree) Validate() error {
	_, err := validate(t.root, nil, nil)
	return err
}

// validate returns the recomputed height of n; lo and hi are exclusive key bounds.
func validate(n *node, lo, hi *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	id := n.b.ID
	if (lo != nil && id <= *lo) || (hi != nil && id >= *hi) {
		return 0, fmt.Errorf("%w: key %d", ErrOrder, id)
	}
	lh, err := validate(n.left, lo, &id)
	if err != nil {
		return 0, err
	}
	rh, err := validate(n.right, &id, hi)
	if err != nil {
		return 0, err
	}
	if d := lh - rh; d > 1 || d < -1 {
		return 0, fmt.Errorf("%w: key %d balance=%d", ErrUnbalanced, id, d)
	}
	h := 1 + max(lh, rh)
	if h != n.height {
		return 0, fmt.Errorf("%w: key %d cached=%d actual=%d", ErrHeight, id, n.height, h)
	}

	return h, nil
}
