package btree

// Delete removes key from the tree. Deleting an absent key, or deleting
// from an empty tree, is a no-op.
//
// The descent is proactive: any child about to be entered is first
// topped up to at least t keys by borrowing from a sibling or merging
// with one, so underflow never has to be repaired upward afterwards.
// This is the only operation that can decrease the height, and it does
// so only when the root runs out of keys and hands over to its sole
// remaining child.
func (tree *Tree[K]) Delete(key K) {
	root := tree.root
	if root.n == 0 {
		return
	}

	tree.delete(root, key)

	if tree.root.n == 0 && !tree.root.leaf {
		tree.root = tree.root.children[0]
		tree.tracer.RootShrink()
	}
}

// delete removes key from the subtree rooted at node. node is visited
// only while it holds at least t keys (the root excepted), which the
// fill step below guarantees for every level.
func (tree *Tree[K]) delete(node *Node[K], key K) {
	t := tree.t
	i := node.findKey(key)

	if i < node.n && node.keys[i] == key {
		if node.leaf {
			node.removeKey(i)
			return
		}
		switch {
		case node.children[i].n >= t:
			// Replace with the predecessor from the left subtree,
			// then delete the predecessor down there.
			pred := node.children[i].max()
			node.keys[i] = pred
			tree.delete(node.children[i], pred)
		case node.children[i+1].n >= t:
			// Symmetric: successor from the right subtree.
			succ := node.children[i+1].min()
			node.keys[i] = succ
			tree.delete(node.children[i+1], succ)
		default:
			// Both neighbors are minimal: merge them around the key,
			// then delete the key from the merged node.
			tree.merge(node, i)
			tree.delete(node.children[i], key)
		}
		return
	}

	if node.leaf {
		return // key absent
	}

	// i may equal node.n, meaning the rightmost child.
	last := i == node.n

	if node.children[i].n < t {
		tree.fill(node, i)
	}

	// A merge in fill can swallow the rightmost child into its left
	// neighbor, shifting the descent index down by one.
	if last && i > node.n {
		tree.delete(node.children[i-1], key)
	} else {
		tree.delete(node.children[i], key)
	}
}

// fill brings children[i] up to at least t keys before a descent.
// Borrowing is preferred over merging since it keeps more nodes around
// for later deletes; merging pairs with the right sibling except at the
// last child index, where only a left sibling exists.
func (tree *Tree[K]) fill(node *Node[K], i int) {
	switch {
	case i > 0 && node.children[i-1].n >= tree.t:
		tree.borrowLeft(node, i)
	case i < node.n && node.children[i+1].n >= tree.t:
		tree.borrowRight(node, i)
	case i < node.n:
		tree.merge(node, i)
	default:
		tree.merge(node, i-1)
	}
}

// merge combines children[i], the separator keys[i], and children[i+1]
// into a single node of 2t-1 keys held at children[i]. Both children
// must hold exactly t-1 keys. The right node is unlinked and collected.
func (tree *Tree[K]) merge(node *Node[K], i int) {
	t := tree.t
	left := node.children[i]
	right := node.children[i+1]
	assertMerge("merge", t, left.n, right.n)

	separator := node.keys[i]
	left.keys[t-1] = separator
	copy(left.keys[t:], right.keys[:right.n])
	if !left.leaf {
		copy(left.children[t:], right.children[:right.n+1])
	}
	left.n = 2*t - 1

	copy(node.keys[i:node.n-1], node.keys[i+1:node.n])
	copy(node.children[i+1:node.n], node.children[i+2:node.n+1])
	node.n--
	clear(node.keys[node.n : node.n+1])
	node.children[node.n+1] = nil

	tree.tracer.Merge(separator)
}

// borrowLeft rotates the left sibling's largest key up into the parent
// and the parent's separator down into children[i].
func (tree *Tree[K]) borrowLeft(node *Node[K], i int) {
	child := node.children[i]
	sibling := node.children[i-1]

	moved := sibling.keys[sibling.n-1]

	copy(child.keys[1:child.n+1], child.keys[:child.n])
	if !child.leaf {
		copy(child.children[1:child.n+2], child.children[:child.n+1])
		child.children[0] = sibling.children[sibling.n]
		sibling.children[sibling.n] = nil
	}
	child.keys[0] = node.keys[i-1]
	node.keys[i-1] = moved

	child.n++
	sibling.n--
	clear(sibling.keys[sibling.n : sibling.n+1])

	tree.tracer.BorrowLeft(moved)
}

// borrowRight rotates the right sibling's smallest key up into the
// parent and the parent's separator down into children[i].
func (tree *Tree[K]) borrowRight(node *Node[K], i int) {
	child := node.children[i]
	sibling := node.children[i+1]

	moved := sibling.keys[0]

	child.keys[child.n] = node.keys[i]
	if !child.leaf {
		child.children[child.n+1] = sibling.children[0]
	}
	node.keys[i] = moved

	copy(sibling.keys[:sibling.n-1], sibling.keys[1:sibling.n])
	if !sibling.leaf {
		copy(sibling.children[:sibling.n], sibling.children[1:sibling.n+1])
		sibling.children[sibling.n] = nil
	}

	child.n++
	sibling.n--
	clear(sibling.keys[sibling.n : sibling.n+1])

	tree.tracer.BorrowRight(moved)
}
