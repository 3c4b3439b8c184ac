package avl

import (
	"fmt"
	"io"
)

// Dump writes a sideways view of the tree to w (right subtree on top),
// annotating each node with its height and balance factor. Unbalanced
// nodes are flagged.
func (tree *Tree[K]) Dump(w io.Writer) {
	tree.root.dump(w, 0)
}

func (n *node[K]) dump(w io.Writer, depth int) {
	if n == nil {
		return
	}

	n.right.dump(w, depth+1)

	for i := 0; i < depth*4; i++ {
		io.WriteString(w, " ")
	}
	bf := balance(n)
	fmt.Fprintf(w, "%v (h=%d, bf=%+d)", n.key, n.height, bf)
	if bf < -1 || bf > 1 {
		io.WriteString(w, " !!")
	}
	io.WriteString(w, "\n")

	n.left.dump(w, depth+1)
}
