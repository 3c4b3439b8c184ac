// treedemo builds one of the trees from a key sequence and shows how
// the structure evolves, insert by insert.
//
// Usage:
//
//	treedemo                           # B-Tree, default key sequence
//	treedemo -tree avl                 # AVL tree instead
//	treedemo -t 2 -keys 1,2,3,4,5,6,7  # 2-3-4 tree, custom keys
//	treedemo -trace                    # print split/merge/borrow events
//	treedemo -del 1,2,3                # delete keys after the inserts
//	treedemo -step                     # wait for a keypress per insert
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/imyesung/balanced"
	"github.com/imyesung/balanced/avl"
	"github.com/imyesung/balanced/btree"
	"github.com/imyesung/balanced/splay"
)

// the insertion sequence from the original demo driver
const defaultKeys = "10,20,5,6,12,30,7,17,3,25,35,40,15,8,1"

// dumper is satisfied by all three tree packages.
type dumper interface {
	Dump(w io.Writer)
}

func main() {
	treeFlag := flag.String("tree", "btree", "tree kind: btree | avl | splay")
	degreeFlag := flag.Int("t", 3, "minimum degree (btree only)")
	keysFlag := flag.String("keys", defaultKeys, "comma-separated keys to insert")
	delFlag := flag.String("del", "", "comma-separated keys to delete after the inserts")
	traceFlag := flag.Bool("trace", false, "print structural events (btree only)")
	stepFlag := flag.Bool("step", false, "wait for a keypress between operations (q quits)")
	flag.Parse()

	keys, err := parseKeys(*keysFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	deletes, err := parseKeys(*delFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tree, err := newTree(*treeFlag, *degreeFlag, *traceFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("===== %s demo =====\n\n", *treeFlag)
	fmt.Println("insertion order:", keys)
	fmt.Println()

	for _, key := range keys {
		fmt.Printf("--- insert %d ---\n", key)
		tree.Insert(key)
		printInorder(tree)
		if *stepFlag && !waitKey() {
			return
		}
	}

	for _, key := range deletes {
		fmt.Printf("--- delete %d ---\n", key)
		tree.Delete(key)
		printInorder(tree)
		if *stepFlag && !waitKey() {
			return
		}
	}

	fmt.Println("\n===== final tree =====")
	if d, ok := tree.(dumper); ok {
		d.Dump(os.Stdout)
	}
	fmt.Println("height:", tree.Height())
	fmt.Println("count: ", tree.Len())
}

func newTree(kind string, degree int, trace bool) (balanced.Tree[int], error) {
	switch kind {
	case "btree":
		tree, err := btree.New[int](degree)
		if err != nil {
			return nil, err
		}
		if trace {
			tree.Trace(printTracer{})
		}
		return tree, nil
	case "avl":
		return avl.New[int](), nil
	case "splay":
		return splay.New[int](), nil
	}
	return nil, fmt.Errorf("unknown tree kind %q", kind)
}

func parseKeys(list string) ([]int, error) {
	if list == "" {
		return nil, nil
	}
	parts := strings.Split(list, ",")
	keys := make([]int, 0, len(parts))
	for _, part := range parts {
		key, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad key %q", part)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func printInorder(tree balanced.Tree[int]) {
	var sb strings.Builder
	for key := range tree.Keys {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", key)
	}
	if sb.Len() == 0 {
		fmt.Println("(empty tree)")
		return
	}
	fmt.Println(sb.String())
}

// waitKey blocks for a single keypress in raw mode.
// Returns false when the user asked to quit.
func waitKey() bool {
	old, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return true // not a terminal, keep going
	}
	defer term.Restore(int(os.Stdin.Fd()), old)

	var buf [1]byte
	if _, err := os.Stdin.Read(buf[:]); err != nil {
		return false
	}
	switch buf[0] {
	case 'q', 3, 27: // q, Ctrl+C, Esc
		return false
	}
	return true
}

// printTracer prints one line per structural event, in the spirit of
// the trace output the tree grew up with.
type printTracer struct{}

func (printTracer) Split(median int) {
	fmt.Printf("[split] median key %d promoted\n", median)
}

func (printTracer) RootSplit(median int) {
	fmt.Printf("[split] root was full, new root with median key %d\n", median)
}

func (printTracer) Merge(separator int) {
	fmt.Printf("[merge] children merged around key %d\n", separator)
}

func (printTracer) BorrowLeft(moved int) {
	fmt.Printf("[borrow] key %d from left sibling\n", moved)
}

func (printTracer) BorrowRight(moved int) {
	fmt.Printf("[borrow] key %d from right sibling\n", moved)
}

func (printTracer) RootShrink() {
	fmt.Println("[shrink] empty root replaced by its only child")
}
