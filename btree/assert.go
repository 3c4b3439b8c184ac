//go:build debug

package btree

import "fmt"

// assertSplit panics unless the child being split is exactly full and
// the parent has room for the promoted median.
// Only enabled with -tags debug.
func assertSplit(method string, t, parentKeys, childKeys int) {
	if childKeys != 2*t-1 {
		panic(fmt.Sprintf("%s: child has %d keys, want %d", method, childKeys, 2*t-1))
	}
	if parentKeys >= 2*t-1 {
		panic(fmt.Sprintf("%s: parent full with %d keys", method, parentKeys))
	}
}

// assertMerge panics unless both nodes being merged are minimal.
// Only enabled with -tags debug.
func assertMerge(method string, t, leftKeys, rightKeys int) {
	if leftKeys != t-1 || rightKeys != t-1 {
		panic(fmt.Sprintf("%s: merging %d and %d keys, want %d each", method, leftKeys, rightKeys, t-1))
	}
}
