package btree

import (
	"fmt"
	"io"
)

// Dump writes an indented view of the tree structure to w, one node per
// line with its occupancy and leaf flag. Nodes violating the occupancy
// bounds are flagged, which makes Dump useful when a Validate failure
// needs locating by eye.
//
//	[10 20] (n=2, internal)
//	    [5 6 7] (n=3, leaf)
//	    [12 17] (n=2, leaf)
//	    [30] (n=1, leaf) !! UNDERFLOW
func (tree *Tree[K]) Dump(w io.Writer) {
	tree.root.dump(w, 0, tree.t)
}

func (node *Node[K]) dump(w io.Writer, depth, t int) {
	for i := 0; i < depth*4; i++ {
		io.WriteString(w, " ")
	}

	io.WriteString(w, "[")
	for i := 0; i < node.n; i++ {
		if i > 0 {
			io.WriteString(w, " ")
		}
		fmt.Fprintf(w, "%v", node.keys[i])
	}
	io.WriteString(w, "]")

	kind := "internal"
	if node.leaf {
		kind = "leaf"
	}
	fmt.Fprintf(w, " (n=%d, %s)", node.n, kind)

	if depth > 0 && node.n < t-1 {
		io.WriteString(w, " !! UNDERFLOW")
	}
	if node.n > 2*t-1 {
		io.WriteString(w, " !! OVERFLOW")
	}
	io.WriteString(w, "\n")

	if !node.leaf {
		for i := 0; i <= node.n; i++ {
			node.children[i].dump(w, depth+1, t)
		}
	}
}
