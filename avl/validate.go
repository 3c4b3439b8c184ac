package avl

import "cmp"

// Validate checks the binary-search ordering, the stored heights, and
// the AVL balance factor of every node. For tests and debugging.
func (tree *Tree[K]) Validate() bool {
	if _, ok := checkHeights(tree.root); !ok {
		return false
	}
	return checkOrder(tree.root, nil, nil)
}

// checkHeights recomputes subtree heights bottom-up and compares them
// with the stored values, rejecting any balance factor outside [-1, 1].
func checkHeights[K cmp.Ordered](n *node[K]) (int, bool) {
	if n == nil {
		return -1, true
	}
	hl, ok := checkHeights(n.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkHeights(n.right)
	if !ok {
		return 0, false
	}
	h := 1 + max(hl, hr)
	if n.height != h {
		return 0, false
	}
	if bf := hl - hr; bf < -1 || bf > 1 {
		return 0, false
	}
	return h, true
}

// checkOrder verifies the exclusive (min, max) key bounds down the tree.
func checkOrder[K cmp.Ordered](n *node[K], min, max *K) bool {
	if n == nil {
		return true
	}
	if min != nil && n.key <= *min {
		return false
	}
	if max != nil && n.key >= *max {
		return false
	}
	return checkOrder(n.left, min, &n.key) && checkOrder(n.right, &n.key, max)
}
