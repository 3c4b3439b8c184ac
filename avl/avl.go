// Package avl provides a height-balanced binary search tree (AVL tree)
// holding a set of ordered keys.
package avl

import "cmp"

// Tree is an AVL tree: a binary search tree where the heights of the
// two subtrees of every node differ by at most one. Not thread-safe.
type Tree[K cmp.Ordered] struct {
	root *node[K]
}

type node[K cmp.Ordered] struct {
	key    K
	height int // leaf height is 0
	left   *node[K]
	right  *node[K]
}

// New creates an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return new(Tree[K])
}

func height[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node[K]) update() {
	n.height = 1 + max(height(n.left), height(n.right))
}

// balance is left height minus right height.
func balance[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func rotateRight[K cmp.Ordered](y *node[K]) *node[K] {
	x := y.left
	y.left = x.right
	x.right = y
	y.update()
	x.update()
	return x
}

func rotateLeft[K cmp.Ordered](x *node[K]) *node[K] {
	y := x.right
	x.right = y.left
	y.left = x
	x.update()
	y.update()
	return y
}

// rebalance restores the AVL property at n after an insert or delete
// below it, using one of the four rotation cases.
func rebalance[K cmp.Ordered](n *node[K]) *node[K] {
	n.update()

	bf := balance(n)
	switch {
	case bf > 1:
		if balance(n.left) < 0 {
			n.left = rotateLeft(n.left) // left-right
		}
		return rotateRight(n)
	case bf < -1:
		if balance(n.right) > 0 {
			n.right = rotateRight(n.right) // right-left
		}
		return rotateLeft(n)
	}
	return n
}

// Insert adds key to the tree. Duplicates are a no-op.
func (tree *Tree[K]) Insert(key K) {
	tree.root = insert(tree.root, key)
}

func insert[K cmp.Ordered](n *node[K], key K) *node[K] {
	if n == nil {
		return &node[K]{key: key}
	}
	switch {
	case key < n.key:
		n.left = insert(n.left, key)
	case key > n.key:
		n.right = insert(n.right, key)
	default:
		return n // duplicate
	}
	return rebalance(n)
}

// Delete removes key from the tree. Deleting an absent key is a no-op.
// A two-child node is replaced by its in-order successor, then the
// successor is deleted from the right subtree and heights rebalance on
// the way back up.
func (tree *Tree[K]) Delete(key K) {
	tree.root = remove(tree.root, key)
}

func remove[K cmp.Ordered](n *node[K], key K) *node[K] {
	if n == nil {
		return nil
	}
	switch {
	case key < n.key:
		n.left = remove(n.left, key)
	case key > n.key:
		n.right = remove(n.right, key)
	default:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		successor := n.right
		for successor.left != nil {
			successor = successor.left
		}
		n.key = successor.key
		n.right = remove(n.right, successor.key)
	}
	return rebalance(n)
}

// Contains reports whether key is present.
func (tree *Tree[K]) Contains(key K) bool {
	n := tree.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of keys, tallied recursively.
func (tree *Tree[K]) Len() int {
	return count(tree.root)
}

func count[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return 1 + count(n.left) + count(n.right)
}

// Height returns the number of levels: 0 for an empty tree, 1 for a
// single node.
func (tree *Tree[K]) Height() int {
	return height(tree.root) + 1
}

// Keys implements iter.Seq[K], yielding every key in ascending order.
func (tree *Tree[K]) Keys(yield func(K) bool) {
	tree.root.walk(yield)
}

func (n *node[K]) walk(yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return n.left.walk(yield) && yield(n.key) && n.right.walk(yield)
}
