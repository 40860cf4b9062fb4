package tree

import (
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestRbtreeInOrder(t *testing.T) {
	tree := NewRBTree[int]()
	tree.Insert(5, 3, 8, 1, 4, 7, 9)

	keys := make([]int, 0, 7)
	for node := range tree.InOrder() {
		keys = append(keys, node.Key())
	}
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, keys)

	// Restartable: a second range walks the whole tree again.
	keys = keys[:0]
	for node := range tree.InOrder() {
		keys = append(keys, node.Key())
	}
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, keys)
}

func TestRbtreeInOrder_EarlyStop(t *testing.T) {
	tree := NewRBTree[int]()
	tree.Insert(5, 3, 8, 1, 4, 7, 9)

	keys := make([]int, 0, 3)
	for node := range tree.InOrder() {
		keys = append(keys, node.Key())
		if len(keys) == 3 {
			break
		}
	}
	require.Equal(t, []int{1, 3, 4}, keys)
}

func TestRbtreePreOrder(t *testing.T) {
	tree := NewRBTree[int]()
	tree.Insert(1, 2, 0)
	// Fixed shape: root 1, left 0, right 2.

	keys := make([]int, 0, 3)
	for node := range tree.PreOrder() {
		keys = append(keys, node.Key())
	}
	require.Equal(t, []int{1, 0, 2}, keys)
}

func TestRbtreeKeys(t *testing.T) {
	tree := NewRBTree[uint64]()
	tree.Insert(9, 1, 4, 4, 2)

	require.Equal(t, []uint64{1, 2, 4, 4, 9}, slices.Collect(tree.Keys()))
}

func TestRbtreeIterators_EmptyTree(t *testing.T) {
	tree := NewRBTree[int]()
	for range tree.InOrder() {
		t.Fatal("no node expected from an empty tree")
	}
	for range tree.PreOrder() {
		t.Fatal("no node expected from an empty tree")
	}
	for range tree.Keys() {
		t.Fatal("no key expected from an empty tree")
	}
}

func TestRbNodeSubtreeTraversal(t *testing.T) {
	tree := NewRBTree[int]()
	for i := 0; i < 15; i++ {
		tree.Insert(i)
	}

	x, ok := tree.Search(11)
	require.True(t, ok)

	subKeys := make([]int, 0, 8)
	for node := range x.InOrder() {
		subKeys = append(subKeys, node.Key())
	}
	// The subtree walk stays below x, no ancestor leaks in.
	require.True(t, lo.EveryBy(subKeys, func(key int) bool {
		return key >= x.Min().Key() && key <= x.Max().Key()
	}))
	require.Equal(t, x.Min().Key(), subKeys[0])
	require.Equal(t, x.Max().Key(), subKeys[len(subKeys)-1])

	pre := make([]int, 0, 8)
	for node := range x.PreOrder() {
		pre = append(pre, node.Key())
	}
	require.Equal(t, x.Key(), pre[0])
	require.ElementsMatch(t, subKeys, pre)
}
