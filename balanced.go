// Package balanced defines the common interface for the self-balancing
// search tree implementations in this repository.
//
// Three classic structures are provided as sub-packages:
//   - btree: multiway B-Tree with proactive split/merge rebalancing
//   - avl:   height-balanced binary search tree
//   - splay: self-adjusting binary search tree
//
// All of them store a set of totally-ordered keys (no duplicates, no
// values) and satisfy the Tree interface below, which is what the demo
// and benchmark drivers under cmd/ consume.
package balanced

import "cmp"

// Tree is the operation set shared by every tree in this repository.
// Implementations are not safe for concurrent mutation; reads may run
// concurrently with each other only if the caller guarantees no writer.
//
// Note: splay.Tree restructures itself on Contains (that is the point of
// a splay tree), so even Contains counts as a mutation for locking
// purposes there.
type Tree[K cmp.Ordered] interface {
	// Insert adds key to the set. Inserting a key that is already
	// present is a no-op, not an error.
	Insert(key K)

	// Delete removes key from the set. Deleting an absent key is a
	// no-op, not an error.
	Delete(key K)

	// Contains reports whether key is present.
	Contains(key K) bool

	// Len returns the number of keys currently stored.
	Len() int

	// Height returns the number of levels: 0 for an empty tree,
	// 1 for a tree whose root is the only node.
	Height() int

	// Keys implements iter.Seq[K], yielding every key in ascending
	// order. The sequence is restartable.
	Keys(yield func(K) bool)
}
