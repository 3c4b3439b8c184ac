package balanced_test

import (
	"fmt"

	"github.com/imyesung/balanced"
	"github.com/imyesung/balanced/avl"
	"github.com/imyesung/balanced/btree"
	"github.com/imyesung/balanced/splay"
)

var (
	_ balanced.Tree[int]    = (*btree.Tree[int])(nil)
	_ balanced.Tree[int]    = (*avl.Tree[int])(nil)
	_ balanced.Tree[int]    = (*splay.Tree[int])(nil)
	_ balanced.Tree[string] = (*btree.Tree[string])(nil)
)

// All three trees expose the same key set through the shared interface,
// whatever their internal shape.
func Example() {
	bt, _ := btree.New[int](2)
	trees := map[string]balanced.Tree[int]{
		"btree": bt,
		"avl":   avl.New[int](),
		"splay": splay.New[int](),
	}

	for _, tree := range trees {
		for _, key := range []int{42, 7, 19, 3, 25} {
			tree.Insert(key)
		}
		tree.Delete(19)
	}

	for _, name := range []string{"btree", "avl", "splay"} {
		tree := trees[name]
		var keys []int
		for key := range tree.Keys {
			keys = append(keys, key)
		}
		fmt.Printf("%s: %v len=%d\n", name, keys, tree.Len())
	}

	// Output:
	// btree: [3 7 25 42] len=4
	// avl: [3 7 25 42] len=4
	// splay: [3 7 25 42] len=4
}
