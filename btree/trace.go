package btree

import "cmp"

// Tracer observes the structural decisions the tree makes while
// rebalancing. Implementations must not touch the tree from a callback;
// the tree is mid-mutation when events fire.
//
// The original use case is teaching output: print a line per event and
// watch how a workload reshapes the tree.
type Tracer[K cmp.Ordered] interface {
	// Split fires when a full child is split and its median key is
	// promoted into the parent.
	Split(median K)

	// RootSplit fires when the root itself was the full node; the
	// tree grew one level.
	RootSplit(median K)

	// Merge fires when two minimal siblings and the separator key
	// between them are combined into one node.
	Merge(separator K)

	// BorrowLeft and BorrowRight fire when a key is rotated from a
	// sibling through the parent into an underfull node. moved is the
	// sibling key that went up into the parent.
	BorrowLeft(moved K)
	BorrowRight(moved K)

	// RootShrink fires when the root ran out of keys and its sole
	// child took over; the tree lost one level.
	RootShrink()
}

// Trace installs tr as the tree's observer. Passing nil restores the
// default no-op tracer.
func (tree *Tree[K]) Trace(tr Tracer[K]) {
	if tr == nil {
		tree.tracer = nop[K]{}
		return
	}
	tree.tracer = tr
}

type nop[K cmp.Ordered] struct{}

func (nop[K]) Split(K)       {}
func (nop[K]) RootSplit(K)   {}
func (nop[K]) Merge(K)       {}
func (nop[K]) BorrowLeft(K)  {}
func (nop[K]) BorrowRight(K) {}
func (nop[K]) RootShrink()   {}
