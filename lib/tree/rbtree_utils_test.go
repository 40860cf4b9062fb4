package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestValidate_HealthyTree(t *testing.T) {
	tree := NewRBTree[uint64]()
	for i := uint64(0); i < 100; i++ {
		tree.Insert(i)
	}
	require.NoError(t, RedViolationValidate[uint64](tree))
	require.NoError(t, BlackViolationValidate[uint64](tree))
	require.NoError(t, OrderViolationValidate[uint64](tree))
	require.NoError(t, SizeViolationValidate[uint64](tree))
	require.NoError(t, ParentLinkValidate[uint64](tree))
	require.NoError(t, Validate[uint64](tree))
}

func TestValidate_EmptyTree(t *testing.T) {
	tree := NewRBTree[uint64]()
	require.NoError(t, Validate[uint64](tree))
}

// The corrupt trees below are wired by hand, no tree entry point can
// produce them.

func TestRedViolationValidate_RedRoot(t *testing.T) {
	root := newRBNode[uint64](7, Red, nil)
	tree := &rbTree[uint64]{root: root, count: 1}
	require.Error(t, RedViolationValidate[uint64](tree))
}

func TestRedViolationValidate_RedRedEdge(t *testing.T) {
	root := newRBNode[uint64](7, Black, nil)
	child := newRBNode(3, Red, root)
	grandchild := newRBNode(1, Red, child)
	root.left = child
	child.left = grandchild
	tree := &rbTree[uint64]{root: root, count: 3}
	require.Error(t, RedViolationValidate[uint64](tree))
}

func TestBlackViolationValidate_UnevenBlackDepth(t *testing.T) {
	root := newRBNode[uint64](7, Black, nil)
	left := newRBNode(3, Black, root)
	right := newRBNode(9, Red, root)
	root.left = left
	root.right = right
	tree := &rbTree[uint64]{root: root, count: 3}
	require.Error(t, BlackViolationValidate[uint64](tree))
}

func TestOrderViolationValidate_SwappedKeys(t *testing.T) {
	root := newRBNode[uint64](3, Black, nil)
	left := newRBNode(7, Red, root)
	root.left = left
	tree := &rbTree[uint64]{root: root, count: 2}
	require.Error(t, OrderViolationValidate[uint64](tree))
}

func TestSizeViolationValidate_CountMismatch(t *testing.T) {
	root := newRBNode[uint64](7, Black, nil)
	tree := &rbTree[uint64]{root: root, count: 2}
	require.Error(t, SizeViolationValidate[uint64](tree))

	empty := &rbTree[uint64]{count: 1}
	require.Error(t, SizeViolationValidate[uint64](empty))
}

func TestParentLinkValidate_DanglingBackRef(t *testing.T) {
	root := newRBNode[uint64](7, Black, nil)
	stray := newRBNode[uint64](3, Red, nil) // parent left nil on purpose
	root.left = stray
	tree := &rbTree[uint64]{root: root, count: 2}
	require.Error(t, ParentLinkValidate[uint64](tree))
}

func TestValidate_CombinesFindings(t *testing.T) {
	// Red root and a count mismatch at once.
	root := newRBNode[uint64](7, Red, nil)
	tree := &rbTree[uint64]{root: root, count: 5}
	err := Validate[uint64](tree)
	require.Error(t, err)
	require.GreaterOrEqual(t, len(multierr.Errors(err)), 2)
}
