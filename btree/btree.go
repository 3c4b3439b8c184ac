// Package btree provides an in-memory B-Tree holding a set of ordered keys.
package btree

import "cmp"

// Tree is a multiway balanced search tree with minimum degree t:
// every node holds at most 2t-1 keys, every node except the root holds
// at least t-1, and all leaves sit at the same depth. Rebalancing is
// proactive: inserts split full nodes on the way down, deletes refill
// sparse nodes on the way down, so no operation ever backtracks.
//
// Not thread-safe. Reads (Search, Keys, Height, Len, Validate, Dump)
// may run concurrently with each other, never with a mutation.
//
// Example usage:
//
//	tree, _ := btree.New[int](3)
//	tree.Insert(10)
//	tree.Insert(20)
//	found := tree.Contains(10) // true
//
//	for key := range tree.Keys {
//		fmt.Println(key)
//	}
type Tree[K cmp.Ordered] struct {
	t      int
	root   *Node[K]
	tracer Tracer[K]
}

// New creates an empty tree with minimum degree t.
// Returns ErrMinDegree when t < 2.
//
// Common choices: t=2 is a 2-3-4 tree, t=3 gives 2 to 5 keys per node.
func New[K cmp.Ordered](t int) (*Tree[K], error) {
	if t < 2 {
		return nil, ErrMinDegree
	}
	return &Tree[K]{
		t:      t,
		root:   newNode[K](t, true),
		tracer: nop[K]{},
	}, nil
}

// MinDegree returns the minimum degree the tree was created with.
func (tree *Tree[K]) MinDegree() int {
	return tree.t
}

// Root returns the root node. Never nil. An empty tree is a leaf root
// with zero keys.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Reset discards every key and reinstalls an empty leaf root.
// The old nodes form a tree-shaped ownership graph with no external
// references, so the garbage collector reclaims them all.
func (tree *Tree[K]) Reset() {
	tree.root = newNode[K](tree.t, true)
}

// Insert adds key to the tree. Inserting a key that is already present
// is a no-op: the key set is unchanged, though full nodes met on the
// descent may already have been split (which preserves every invariant).
//
// This is the only operation that can increase the height, and it does
// so only by splitting a full root.
func (tree *Tree[K]) Insert(key K) {
	root := tree.root
	if root.n == 2*tree.t-1 {
		newRoot := newNode[K](tree.t, false)
		newRoot.children[0] = root
		tree.splitChild(newRoot, 0)
		tree.root = newRoot
		tree.tracer.RootSplit(newRoot.keys[0])
		root = newRoot
	}
	tree.insertNonFull(root, key)
}

// insertNonFull descends from node, which is guaranteed to have spare
// capacity, splitting any full child before stepping into it.
func (tree *Tree[K]) insertNonFull(node *Node[K], key K) {
	for {
		i := 0
		for i < node.n && node.keys[i] < key {
			i++
		}
		if i < node.n && node.keys[i] == key {
			return // already present
		}

		if node.leaf {
			copy(node.keys[i+1:node.n+1], node.keys[i:node.n])
			node.keys[i] = key
			node.n++
			return
		}

		if node.children[i].n == 2*tree.t-1 {
			tree.splitChild(node, i)
			// The median now sits at keys[i]; pick a side.
			if key == node.keys[i] {
				return
			}
			if key > node.keys[i] {
				i++
			}
		}
		node = node.children[i]
	}
}

// splitChild splits the full child at parent.children[i] into two nodes
// of t-1 keys each and promotes the median key into parent at index i.
// The caller guarantees parent has room, so the split never propagates.
func (tree *Tree[K]) splitChild(parent *Node[K], i int) {
	t := tree.t
	full := parent.children[i]
	assertSplit("splitChild", t, parent.n, full.n)

	sibling := newNode[K](t, full.leaf)
	sibling.n = t - 1
	copy(sibling.keys, full.keys[t:])
	if !full.leaf {
		copy(sibling.children, full.children[t:])
		clear(full.children[t:])
	}

	median := full.keys[t-1]
	full.n = t - 1
	clear(full.keys[full.n:])

	copy(parent.children[i+2:parent.n+2], parent.children[i+1:parent.n+1])
	parent.children[i+1] = sibling

	copy(parent.keys[i+1:parent.n+1], parent.keys[i:parent.n])
	parent.keys[i] = median
	parent.n++

	tree.tracer.Split(median)
}

// Search locates key starting from the root.
// See Node.Search for the result contract.
func (tree *Tree[K]) Search(key K) (*Node[K], int, bool) {
	return tree.root.Search(key)
}

// Contains reports whether key is present.
func (tree *Tree[K]) Contains(key K) bool {
	_, _, found := tree.root.Search(key)
	return found
}

// Keys implements iter.Seq[K], yielding every key in ascending order.
func (tree *Tree[K]) Keys(yield func(K) bool) {
	tree.root.walk(yield)
}

// Height returns the number of levels: 0 for an empty tree, 1 when the
// root is the only node. All leaves share a depth, so following the
// leftmost child chain is enough.
func (tree *Tree[K]) Height() int {
	node := tree.root
	if node.n == 0 && node.leaf {
		return 0
	}
	h := 1
	for !node.leaf {
		h++
		node = node.children[0]
	}
	return h
}

// Len returns the total number of keys, tallied recursively.
func (tree *Tree[K]) Len() int {
	return tree.root.count()
}
