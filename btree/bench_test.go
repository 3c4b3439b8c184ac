package btree

import (
	"math/rand/v2"
	"testing"
)

func benchKeys(n int, pattern string) []int {
	keys := make([]int, n)
	switch pattern {
	case "sorted":
		for i := range keys {
			keys[i] = i
		}
	case "reverse":
		for i := range keys {
			keys[i] = n - i
		}
	default:
		rnd := rand.New(rand.NewPCG(1, 1))
		for i := range keys {
			keys[i] = rnd.IntN(n * 4)
		}
	}
	return keys
}

func BenchmarkInsert(b *testing.B) {
	for _, pattern := range []string{"random", "sorted", "reverse"} {
		b.Run(pattern, func(b *testing.B) {
			keys := benchKeys(b.N, pattern)
			tree, _ := New[int](32)
			b.ResetTimer()
			for _, key := range keys {
				tree.Insert(key)
			}
		})
	}
}

func BenchmarkSearch(b *testing.B) {
	const size = 1 << 16
	tree, _ := New[int](32)
	for _, key := range benchKeys(size, "random") {
		tree.Insert(key)
	}
	keys := benchKeys(b.N, "random")
	b.ResetTimer()
	for _, key := range keys {
		tree.Contains(key)
	}
}

func BenchmarkDelete(b *testing.B) {
	keys := benchKeys(b.N, "random")
	tree, _ := New[int](32)
	for _, key := range keys {
		tree.Insert(key)
	}
	b.ResetTimer()
	for _, key := range keys {
		tree.Delete(key)
	}
}
