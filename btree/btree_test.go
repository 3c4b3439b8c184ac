package btree

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(tree *Tree[int]) []int {
	var keys []int
	for key := range tree.Keys {
		keys = append(keys, key)
	}
	return keys
}

func TestNewRejectsSmallDegree(t *testing.T) {
	for _, degree := range []int{-1, 0, 1} {
		_, err := New[int](degree)
		require.ErrorIs(t, err, ErrMinDegree)
	}

	tree, err := New[int](2)
	require.NoError(t, err)
	require.NotNil(t, tree.Root())
	require.True(t, tree.Root().Leaf())
	require.Equal(t, 0, tree.Len())
	require.Equal(t, 0, tree.Height())
	require.True(t, tree.Validate())
}

func TestInsertMaintainsInvariants(t *testing.T) {
	tree, err := New[int](3)
	require.NoError(t, err)

	keys := []int{10, 20, 5, 6, 12, 30, 7, 17, 3, 25, 35, 40, 15, 8, 1}
	for i, key := range keys {
		tree.Insert(key)
		require.True(t, tree.Validate(), "invalid after inserting %d", key)
		require.Equal(t, i+1, tree.Len())
		require.True(t, tree.Contains(key))
	}

	want := slices.Clone(keys)
	slices.Sort(want)
	require.Equal(t, want, collect(tree))
}

func TestInsertDuplicateIsNoop(t *testing.T) {
	tree, _ := New[int](3)

	for _, key := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		tree.Insert(key)
	}
	before := collect(tree)

	for _, key := range []int{10, 17, 5, 30} {
		tree.Insert(key)
		require.True(t, tree.Validate())
	}

	require.Equal(t, 8, tree.Len())
	require.Equal(t, before, collect(tree))
}

func TestSearch(t *testing.T) {
	tree, _ := New[int](2)
	for i := 1; i <= 50; i++ {
		tree.Insert(i * 2) // even keys only
	}

	for i := 1; i <= 50; i++ {
		node, idx, found := tree.Search(i * 2)
		require.True(t, found, "key %d", i*2)
		require.Equal(t, i*2, node.Key(idx))

		_, _, found = tree.Search(i*2 - 1)
		require.False(t, found, "key %d", i*2-1)
	}
}

func TestSearchSubtree(t *testing.T) {
	tree, _ := New[int](2)
	for i := 1; i <= 20; i++ {
		tree.Insert(i)
	}

	// Every key must be reachable from the root node directly.
	root := tree.Root()
	for i := 1; i <= 20; i++ {
		node, idx, found := root.Search(i)
		require.True(t, found)
		require.Equal(t, i, node.Key(idx))
	}
}

func TestScenarioDegree3(t *testing.T) {
	tree, _ := New[int](3)
	for _, key := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		tree.Insert(key)
	}

	require.Equal(t, 8, tree.Len())
	require.GreaterOrEqual(t, tree.Height(), 1)
	require.Equal(t, []int{5, 6, 7, 10, 12, 17, 20, 30}, collect(tree))
}

func TestScenarioDegree2DeleteShrinks(t *testing.T) {
	tree, _ := New[int](2)
	for i := 1; i <= 7; i++ {
		tree.Insert(i)
	}
	require.Greater(t, tree.Height(), 1)
	heightBefore := tree.Height()

	for _, key := range []int{1, 2, 3, 4, 5} {
		tree.Delete(key)
		require.True(t, tree.Validate(), "invalid after deleting %d", key)
		require.LessOrEqual(t, tree.Height(), heightBefore)
	}

	require.Equal(t, []int{6, 7}, collect(tree))
}

func TestDeleteFromEmptyTree(t *testing.T) {
	tree, _ := New[int](3)
	tree.Delete(42)
	require.True(t, tree.Validate())
	require.Equal(t, 0, tree.Len())
}

func TestDeleteAbsentKey(t *testing.T) {
	tree, _ := New[int](2)
	for i := 0; i < 30; i += 3 {
		tree.Insert(i)
	}
	before := collect(tree)

	tree.Delete(1)
	tree.Delete(29)
	tree.Delete(-5)
	require.True(t, tree.Validate())
	require.Equal(t, before, collect(tree))
}

func TestDeleteReinsert(t *testing.T) {
	tree, _ := New[int](3)
	for i := 1; i <= 40; i++ {
		tree.Insert(i)
	}

	tree.Delete(17)
	require.False(t, tree.Contains(17))
	require.Equal(t, 39, tree.Len())

	tree.Insert(17)
	require.True(t, tree.Contains(17))
	require.Equal(t, 40, tree.Len())
	require.True(t, tree.Validate())
}

func TestDeleteAllOrders(t *testing.T) {
	keys := make([]int, 64)
	for i := range keys {
		keys[i] = i
	}

	orders := map[string]func([]int){
		"ascending":  func([]int) {},
		"descending": func(s []int) { slices.Reverse(s) },
		"shuffled": func(s []int) {
			rnd := rand.New(rand.NewPCG(7, 7))
			rnd.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
		},
	}

	for name, permute := range orders {
		t.Run(name, func(t *testing.T) {
			tree, _ := New[int](2)
			for _, key := range keys {
				tree.Insert(key)
			}

			order := slices.Clone(keys)
			permute(order)
			for _, key := range order {
				tree.Delete(key)
				require.True(t, tree.Validate(), "invalid after deleting %d", key)
			}

			require.Equal(t, 0, tree.Len())
			require.True(t, tree.Root().Leaf())
			require.Equal(t, 0, tree.Height())
		})
	}
}

// TestInternalDeleteCases drives each deletion case explicitly: removal
// from a leaf, predecessor and successor replacement in internal nodes,
// and the merge-then-recurse path.
func TestInternalDeleteCases(t *testing.T) {
	build := func() *Tree[int] {
		tree, _ := New[int](2)
		for _, key := range []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15} {
			tree.Insert(key)
		}
		require.True(t, tree.Validate())
		return tree
	}

	// Deleting internal keys exercises predecessor/successor/merge
	// depending on the child occupancy met on the way.
	tree := build()
	present := []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15}
	for _, key := range []int{8, 12, 4, 10, 14} {
		tree.Delete(key)
		require.True(t, tree.Validate(), "invalid after deleting %d", key)

		i := slices.Index(present, key)
		present = slices.Delete(present, i, i+1)

		want := slices.Clone(present)
		slices.Sort(want)
		require.Equal(t, want, collect(tree))
	}
}

func TestReset(t *testing.T) {
	tree, _ := New[int](3)
	for i := 0; i < 100; i++ {
		tree.Insert(i)
	}

	tree.Reset()
	require.Equal(t, 0, tree.Len())
	require.Equal(t, 0, tree.Height())
	require.True(t, tree.Validate())

	tree.Insert(1)
	require.Equal(t, 1, tree.Len())
}

// TestRandomizedOperations performs randomized inserts and deletes
// against a reference map, validating the tree throughout.
// Change the seed to explore different operation sequences.
func TestRandomizedOperations(t *testing.T) {
	for _, degree := range []int{2, 3, 5} {
		tree, err := New[int](degree)
		require.NoError(t, err)

		rnd := rand.New(rand.NewPCG(42, uint64(degree)))
		ref := make(map[int]struct{})

		const ops = 3000
		const keySpace = 500

		for i := 0; i < ops; i++ {
			key := rnd.IntN(keySpace)
			if rnd.IntN(3) == 0 {
				tree.Delete(key)
				delete(ref, key)
			} else {
				tree.Insert(key)
				ref[key] = struct{}{}
			}

			require.True(t, tree.Validate(), "t=%d op=%d", degree, i)
			require.Equal(t, len(ref), tree.Len(), "t=%d op=%d", degree, i)
		}

		want := make([]int, 0, len(ref))
		for key := range ref {
			want = append(want, key)
		}
		slices.Sort(want)
		require.Equal(t, want, collect(tree))

		for key := 0; key < keySpace; key++ {
			_, wantFound := ref[key]
			require.Equal(t, wantFound, tree.Contains(key))
		}
	}
}

func TestKeysStopsEarly(t *testing.T) {
	tree, _ := New[int](2)
	for i := 0; i < 100; i++ {
		tree.Insert(i)
	}

	var got []int
	for key := range tree.Keys {
		got = append(got, key)
		if len(got) == 5 {
			break
		}
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, got)

	// The sequence restarts from the beginning.
	var restarted []int
	for key := range tree.Keys {
		restarted = append(restarted, key)
		if len(restarted) == 3 {
			break
		}
	}
	require.Equal(t, []int{0, 1, 2}, restarted)
}

func TestStringKeys(t *testing.T) {
	tree, _ := New[string](2)
	for _, key := range []string{"pear", "apple", "fig", "cherry", "plum", "date"} {
		tree.Insert(key)
	}

	require.True(t, tree.Validate())
	require.True(t, tree.Contains("fig"))
	require.False(t, tree.Contains("grape"))

	var got []string
	for key := range tree.Keys {
		got = append(got, key)
	}
	require.Equal(t, []string{"apple", "cherry", "date", "fig", "pear", "plum"}, got)

	tree.Delete("fig")
	require.False(t, tree.Contains("fig"))
	require.True(t, tree.Validate())
}

func TestHeightGrowsOnlyAtRoot(t *testing.T) {
	tree, _ := New[int](2)

	last := 0
	for i := 0; i < 200; i++ {
		tree.Insert(i)
		h := tree.Height()
		require.LessOrEqual(t, h-last, 1, "height jumped at key %d", i)
		require.GreaterOrEqual(t, h, last, "height fell during insert %d", i)
		last = h
	}
}
