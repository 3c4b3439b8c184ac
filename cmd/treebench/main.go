// treebench times bulk insert, search, and delete sequences against
// the tree implementations in this repository.
//
// Usage:
//
//	treebench -tree btree -pattern random -n 100000 -trials 3
//	treebench -tree splay -pattern sorted -n 50000
//
// Patterns: random | sorted | reverse. For the B-Tree, -t sets the
// minimum degree.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/imyesung/balanced"
	"github.com/imyesung/balanced/avl"
	"github.com/imyesung/balanced/btree"
	"github.com/imyesung/balanced/splay"
)

func main() {
	treeFlag := flag.String("tree", "btree", "tree kind: btree | avl | splay")
	patternFlag := flag.String("pattern", "random", "key pattern: random | sorted | reverse")
	nFlag := flag.Int("n", 100_000, "number of keys per trial")
	trialsFlag := flag.Int("trials", 3, "number of trials")
	seedFlag := flag.Uint64("seed", 1, "seed for the random pattern")
	degreeFlag := flag.Int("t", 32, "minimum degree (btree only)")
	flag.Parse()

	keys, err := makeKeys(*patternFlag, *nFlag, *seedFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("tree=%s pattern=%s n=%d trials=%d\n",
		*treeFlag, *patternFlag, *nFlag, *trialsFlag)

	var sumInsert, sumSearch, sumDelete time.Duration
	height := 0

	for trial := 1; trial <= *trialsFlag; trial++ {
		tree, err := newTree(*treeFlag, *degreeFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		insert := timeOps(keys, tree.Insert)
		height = tree.Height()
		search := timeOps(keys, func(key int) { tree.Contains(key) })
		del := timeOps(keys, tree.Delete)

		sumInsert += insert
		sumSearch += search
		sumDelete += del

		fmt.Printf("trial %d: insert %8.1f ns/op  search %8.1f ns/op  delete %8.1f ns/op\n",
			trial, perOp(insert, *nFlag), perOp(search, *nFlag), perOp(del, *nFlag))
	}

	trials := *trialsFlag
	fmt.Printf("mean:    insert %8.1f ns/op  search %8.1f ns/op  delete %8.1f ns/op\n",
		perOp(sumInsert, *nFlag*trials),
		perOp(sumSearch, *nFlag*trials),
		perOp(sumDelete, *nFlag*trials))
	fmt.Println("height after inserts:", height)
}

func newTree(kind string, degree int) (balanced.Tree[int], error) {
	switch kind {
	case "btree":
		return btree.New[int](degree)
	case "avl":
		return avl.New[int](), nil
	case "splay":
		return splay.New[int](), nil
	}
	return nil, fmt.Errorf("unknown tree kind %q", kind)
}

func makeKeys(pattern string, n int, seed uint64) ([]int, error) {
	keys := make([]int, n)
	switch pattern {
	case "random":
		rnd := rand.New(rand.NewPCG(seed, seed))
		for i := range keys {
			keys[i] = rnd.IntN(n * 4)
		}
	case "sorted":
		for i := range keys {
			keys[i] = i
		}
	case "reverse":
		for i := range keys {
			keys[i] = n - i
		}
	default:
		return nil, fmt.Errorf("unknown pattern %q", pattern)
	}
	return keys, nil
}

func timeOps(keys []int, op func(int)) time.Duration {
	start := time.Now()
	for _, key := range keys {
		op(key)
	}
	return time.Since(start)
}

func perOp(d time.Duration, ops int) float64 {
	return float64(d.Nanoseconds()) / float64(ops)
}
