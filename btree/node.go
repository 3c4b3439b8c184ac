package btree

import "cmp"

// Node is a single B-Tree node. The key and child slices are allocated
// once at full capacity (2t-1 keys, 2t children) and never grow; the
// occupied prefix is tracked by n. Each node is owned exclusively by
// its parent, the root by the tree.
type Node[K cmp.Ordered] struct {
	n        int
	leaf     bool
	keys     []K
	children []*Node[K]
}

func newNode[K cmp.Ordered](t int, leaf bool) *Node[K] {
	node := &Node[K]{
		leaf: leaf,
		keys: make([]K, 2*t-1),
	}
	if !leaf {
		node.children = make([]*Node[K], 2*t)
	}
	return node
}

// Len returns the number of keys currently held by the node.
func (node *Node[K]) Len() int {
	return node.n
}

// Leaf reports whether the node has no children.
func (node *Node[K]) Leaf() bool {
	return node.leaf
}

// Key returns the key at index i, 0 <= i < Len().
func (node *Node[K]) Key(i int) K {
	return node.keys[i]
}

// Child returns the child at index i, 0 <= i <= Len().
// Only valid on internal nodes.
func (node *Node[K]) Child(i int) *Node[K] {
	return node.children[i]
}

// Search locates key in the subtree rooted at node. It returns the node
// holding the key and the key's index within it, or found == false when
// the key is absent. No side effects.
func (node *Node[K]) Search(key K) (*Node[K], int, bool) {
	for {
		i := node.findKey(key)
		if i < node.n && node.keys[i] == key {
			return node, i, true
		}
		if node.leaf {
			return nil, 0, false
		}
		node = node.children[i]
	}
}

// findKey returns the first index i with keys[i] >= key, or n when key
// is greater than every key in the node.
func (node *Node[K]) findKey(key K) int {
	i := 0
	for i < node.n && node.keys[i] < key {
		i++
	}
	return i
}

// Keys implements iter.Seq[K] over the subtree rooted at node,
// yielding keys in ascending order.
func (node *Node[K]) Keys(yield func(K) bool) {
	node.walk(yield)
}

// walk visits child 0, key 0, child 1, key 1, ..., key n-1, child n.
func (node *Node[K]) walk(yield func(K) bool) bool {
	if node.leaf {
		for i := 0; i < node.n; i++ {
			if !yield(node.keys[i]) {
				return false
			}
		}
		return true
	}
	for i := 0; i < node.n; i++ {
		if !node.children[i].walk(yield) {
			return false
		}
		if !yield(node.keys[i]) {
			return false
		}
	}
	return node.children[node.n].walk(yield)
}

func (node *Node[K]) count() int {
	total := node.n
	if !node.leaf {
		for i := 0; i <= node.n; i++ {
			total += node.children[i].count()
		}
	}
	return total
}

// max returns the largest key in the subtree: rightmost leaf, last key.
func (node *Node[K]) max() K {
	for !node.leaf {
		node = node.children[node.n]
	}
	return node.keys[node.n-1]
}

// min returns the smallest key in the subtree: leftmost leaf, first key.
func (node *Node[K]) min() K {
	for !node.leaf {
		node = node.children[0]
	}
	return node.keys[0]
}

// removeKey deletes the key at index i from a leaf by shifting the
// remainder left.
func (node *Node[K]) removeKey(i int) {
	copy(node.keys[i:node.n-1], node.keys[i+1:node.n])
	node.n--
	clear(node.keys[node.n : node.n+1])
}
