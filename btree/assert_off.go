//go:build !debug

package btree

// assertSplit is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertSplit(string, int, int, int) {}

// assertMerge is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertMerge(string, int, int, int) {}
