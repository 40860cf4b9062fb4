package tree

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRbtreeDuplicate(t *testing.T) {
	tree := NewRBTree[uint64]()
	tree.Insert(52, 47, 3, 35, 24)

	cp := tree.Duplicate()
	require.Equal(t, tree.Len(), cp.Len())
	require.NoError(t, Validate[uint64](cp))

	// Same keys, colors and shape, distinct node objects.
	orig := make([]RBNode[uint64], 0, 5)
	for node := range tree.PreOrder() {
		orig = append(orig, node)
	}
	copied := make([]RBNode[uint64], 0, 5)
	for node := range cp.PreOrder() {
		copied = append(copied, node)
	}
	require.Len(t, copied, len(orig))
	for i := range orig {
		require.Equal(t, orig[i].Key(), copied[i].Key())
		require.Equal(t, orig[i].Color(), copied[i].Color())
		require.NotSame(t, orig[i].(*rbNode[uint64]), copied[i].(*rbNode[uint64]))
	}

	// Mutating the copy leaves the source untouched.
	cp.Delete(47, 52).Insert(100)
	require.Equal(t, []uint64{3, 24, 35, 100}, slices.Collect(cp.Keys()))
	require.Equal(t, []uint64{3, 24, 35, 47, 52}, slices.Collect(tree.Keys()))
	require.NoError(t, Validate[uint64](tree))
	require.NoError(t, Validate[uint64](cp))
}

func TestRbtreeDuplicate_CopiesOptions(t *testing.T) {
	tree := NewRBTree[int](WithRBTreeDisableDuplicates[int]())
	tree.Insert(1, 2)

	cp := tree.Duplicate()
	require.ErrorIs(t, cp.InsertOne(1), ErrKeyAlreadyExists)
	require.Equal(t, int64(2), cp.Len())
}

func TestRbtreeDuplicate_EmptyTree(t *testing.T) {
	tree := NewRBTree[int]()
	cp := tree.Duplicate()
	require.Equal(t, int64(0), cp.Len())
	require.Nil(t, cp.Root())

	cp.Insert(1)
	require.Equal(t, int64(1), cp.Len())
	require.Equal(t, int64(0), tree.Len())
}

func TestRbNodeDuplicate_Subtree(t *testing.T) {
	tree := NewRBTree[int]()
	for i := 0; i < 15; i++ {
		tree.Insert(i)
	}

	x, ok := tree.Search(11)
	require.True(t, ok)

	cp := x.Duplicate()
	require.Nil(t, cp.Parent())
	require.Equal(t, x.Key(), cp.Key())
	require.Equal(t, x.Min().Key(), cp.Min().Key())
	require.Equal(t, x.Max().Key(), cp.Max().Key())

	want := make([]int, 0, 8)
	for node := range x.InOrder() {
		want = append(want, node.Key())
	}
	got := make([]int, 0, 8)
	for node := range cp.InOrder() {
		got = append(got, node.Key())
	}
	require.Equal(t, want, got)
}
