package btree

// Validate checks every structural invariant of the tree:
//
//  1. key-count bounds per node, the root exempt from the minimum
//  2. strictly increasing keys within each node
//  3. open-interval key bounds inherited down the tree
//  4. an internal node with n keys has n+1 non-nil children
//  5. all leaves at the same depth
//
// Intended for tests and debugging, not for the hot path.
func (tree *Tree[K]) Validate() bool {
	root := tree.root
	if root.n == 0 {
		// Only the fully empty tree may have a keyless root.
		return root.leaf
	}
	_, ok := root.validate(tree.t, nil, nil, -1, 0, true)
	return ok
}

// validate walks the subtree, carrying exclusive (min, max) bounds as
// pointers (nil means unbounded) and the depth the first visited leaf
// established (-1 until then). It returns the leaf depth of the subtree.
func (node *Node[K]) validate(t int, min, max *K, leafDepth, depth int, isRoot bool) (int, bool) {
	if node.n > 2*t-1 {
		return -1, false
	}
	if !isRoot && node.n < t-1 {
		return -1, false
	}

	for i := 0; i < node.n; i++ {
		key := node.keys[i]
		if min != nil && key <= *min {
			return -1, false
		}
		if max != nil && key >= *max {
			return -1, false
		}
		if i > 0 && key <= node.keys[i-1] {
			return -1, false
		}
	}

	if node.leaf {
		if leafDepth != -1 && depth != leafDepth {
			return -1, false
		}
		return depth, true
	}

	for i := 0; i <= node.n; i++ {
		child := node.children[i]
		if child == nil {
			return -1, false
		}

		childMin, childMax := min, max
		if i > 0 {
			childMin = &node.keys[i-1]
		}
		if i < node.n {
			childMax = &node.keys[i]
		}

		d, ok := child.validate(t, childMin, childMax, leafDepth, depth+1, false)
		if !ok {
			return -1, false
		}
		if leafDepth == -1 {
			leafDepth = d
		}
	}

	return leafDepth, true
}
