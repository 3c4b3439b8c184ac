// Package splay provides a self-adjusting binary search tree (splay
// tree) holding a set of ordered keys.
package splay

import "cmp"

// Tree is a splay tree: every access moves the touched key (or its
// closest neighbor) to the root with zig, zig-zig, and zig-zag
// rotations, so recently used keys stay cheap to reach.
//
// Because lookups restructure the tree, Contains is a mutating
// operation for locking purposes, even though the key set never
// changes. Not thread-safe.
type Tree[K cmp.Ordered] struct {
	root *node[K]
}

type node[K cmp.Ordered] struct {
	key   K
	left  *node[K]
	right *node[K]
}

// New creates an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return new(Tree[K])
}

func rotateRight[K cmp.Ordered](y *node[K]) *node[K] {
	x := y.left
	y.left = x.right
	x.right = y
	return x
}

func rotateLeft[K cmp.Ordered](x *node[K]) *node[K] {
	y := x.right
	x.right = y.left
	y.left = x
	return y
}

// splay brings the node holding key to the root, or the last node on
// the search path when key is absent.
func splay[K cmp.Ordered](root *node[K], key K) *node[K] {
	if root == nil || root.key == key {
		return root
	}

	if key < root.key {
		if root.left == nil {
			return root
		}
		if key < root.left.key {
			// zig-zig
			root.left.left = splay(root.left.left, key)
			root = rotateRight(root)
		} else if key > root.left.key {
			// zig-zag
			root.left.right = splay(root.left.right, key)
			if root.left.right != nil {
				root.left = rotateLeft(root.left)
			}
		}
		if root.left == nil {
			return root
		}
		return rotateRight(root)
	}

	if root.right == nil {
		return root
	}
	if key > root.right.key {
		// zig-zig
		root.right.right = splay(root.right.right, key)
		root = rotateLeft(root)
	} else if key < root.right.key {
		// zig-zag
		root.right.left = splay(root.right.left, key)
		if root.right.left != nil {
			root.right = rotateRight(root.right)
		}
	}
	if root.right == nil {
		return root
	}
	return rotateLeft(root)
}

// Insert adds key to the tree; the new key ends up at the root.
// Duplicates are a no-op apart from splaying the existing key up.
func (tree *Tree[K]) Insert(key K) {
	if tree.root == nil {
		tree.root = &node[K]{key: key}
		return
	}

	root := splay(tree.root, key)
	if root.key == key {
		tree.root = root
		return
	}

	// The closest key is at the root; attach in O(1).
	n := &node[K]{key: key}
	if key < root.key {
		n.right = root
		n.left = root.left
		root.left = nil
	} else {
		n.left = root
		n.right = root.right
		root.right = nil
	}
	tree.root = n
}

// Delete removes key from the tree. Deleting an absent key splays its
// neighbor but removes nothing.
func (tree *Tree[K]) Delete(key K) {
	if tree.root == nil {
		return
	}

	root := splay(tree.root, key)
	if root.key != key {
		tree.root = root
		return
	}

	if root.left == nil {
		tree.root = root.right
		return
	}

	// Splaying the left subtree with the deleted key walks down its
	// right spine, bringing max(left) to the top with an empty right
	// slot for the old right subtree.
	newRoot := splay(root.left, key)
	newRoot.right = root.right
	tree.root = newRoot
}

// Contains reports whether key is present, splaying the searched key
// (or its closest neighbor) to the root.
func (tree *Tree[K]) Contains(key K) bool {
	tree.root = splay(tree.root, key)
	return tree.root != nil && tree.root.key == key
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

// Height returns the number of levels: 0 for an empty tree. A splay
// tree carries no height bound; this walks the whole structure.
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

func height[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Keys implements iter.Seq[K], yielding every key in ascending order.
// Unlike Contains, traversal does not restructure the tree.
func (tree *Tree[K]) Keys(yield func(K) bool) {
	tree.root.walk(yield)
}

func (n *node[K]) walk(yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return n.left.walk(yield) && yield(n.key) && n.right.walk(yield)
}
