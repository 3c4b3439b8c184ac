package splay

import (
	"fmt"
	"io"
)

// Dump writes a sideways view of the tree to w, right subtree on top.
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
	fmt.Fprintf(w, "%v\n", n.key)
	n.left.dump(w, depth+1)
}
