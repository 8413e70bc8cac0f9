package bst

import "github.com/katalvlaran/campusgraph/core"

// node is one owned subtree of the BST.
type node struct {
	b     core.Building
	left  *node
	right *node
}

// Tree is an unbalanced binary search tree. The zero value is an empty tree.
type Tree struct {
	root *node
	size int
}

// New returns an empty Tree.
func New() *Tree { return &Tree{} }

// Insert places b into the tree, or replaces the Building already stored
// under b.ID. Returns core.ErrInvalidKey for a negative ID.
func (t *Tree) Insert(b core.Building) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if t.root == nil {
		t.root = &node{b: b}
		t.size++
		return nil
	}

	cur := t.root
	for {
		switch {
		case b.ID < cur.b.ID:
			if cur.left == nil {
				cur.left = &node{b: b}
				t.size++
				return nil
			}
			cur = cur.left
		case b.ID > cur.b.ID:
			if cur.right == nil {
				cur.right = &node{b: b}
				t.size++
				return nil
			}
			cur = cur.right
		default:
			// same key: replace payload, keep shape
			cur.b = b
			return nil
		}
	}
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

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int { return height(t.root) }

func height(n *node) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

// Len returns the number of distinct keys stored.
func (t *Tree) Len() int { return t.size }
