package btree_test

import (
	"fmt"
	"os"

	"github.com/imyesung/balanced/btree"
)

func Example() {
	tree, _ := btree.New[int](3)

	for _, key := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		tree.Insert(key)
	}

	var keys []int
	for key := range tree.Keys {
		keys = append(keys, key)
	}
	fmt.Println(keys)
	fmt.Println("count:", tree.Len())
	fmt.Println("height:", tree.Height())

	// Output:
	// [5 6 7 10 12 17 20 30]
	// count: 8
	// height: 2
}

func ExampleTree_Dump() {
	tree, _ := btree.New[int](3)
	for _, key := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		tree.Insert(key)
	}

	tree.Dump(os.Stdout)

	// Output:
	// [10] (n=1, internal)
	//     [5 6 7] (n=3, leaf)
	//     [12 17 20 30] (n=4, leaf)
}

func ExampleTree_Search() {
	tree, _ := btree.New[int](2)
	for i := 1; i <= 9; i++ {
		tree.Insert(i * 10)
	}

	node, idx, found := tree.Search(50)
	fmt.Println(found, node.Key(idx))

	_, _, found = tree.Search(55)
	fmt.Println(found)

	// Output:
	// true 50
	// false
}
