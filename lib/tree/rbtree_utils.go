package tree

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/bensli/redwood/lib/infra"
)

func isBlack[K infra.OrderedKey](node RBNode[K]) bool {
	return isNilLeaf[K](node) || node.Color() == Black
}

func isRed[K infra.OrderedKey](node RBNode[K]) bool {
	return !isNilLeaf[K](node) && node.Color() == Red
}

func isNilLeaf[K infra.OrderedKey](node RBNode[K]) bool {
	return node == nil || (!node.HasKey() && node.Parent() == nil && node.Left() == nil && node.Right() == nil)
}

func isRoot[K infra.OrderedKey](node RBNode[K]) bool {
	return node != nil && node.Parent() == nil
}

func blackDepthTo[K infra.OrderedKey](target, to RBNode[K]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.Parent() {
		if isBlack[K](aux) {
			depth++
		}
	}
	return depth
}

// rbtree rule validation utilities. All of them are read-only walks
// meant for tests and debugging, not for the hot path.

// RedViolationValidate walks the tree inorder and reports a red node
// carrying a red parent or a red child (p3), or a red root (p5).
func RedViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	size := tree.Len()
	var aux RBNode[K] = tree.Root()
	if size < 0 || aux == nil {
		return nil
	}

	if isRed[K](aux) {
		return errors.New("rbtree red violation: red root")
	}

	stack := make([]RBNode[K], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !isNilLeaf[K](aux); aux = aux.Left() {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; isRed[K](aux) {
			if isRed[K](aux.Parent()) || isRed[K](aux.Left()) || isRed[K](aux.Right()) {
				return errors.New("rbtree red violation")
			}
		}

		stack = stack[:size-1]
		if aux.Right() != nil {
			for aux = aux.Right(); aux != nil; aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// BFS traversal to load the nodes adjacent to at least one nil leaf.
func bfsLeaves[K infra.OrderedKey](tree RBTree[K]) []RBNode[K] {
	size := tree.Len()
	var aux RBNode[K] = tree.Root()
	if size < 0 || isNilLeaf[K](aux) {
		return nil
	}

	leaves := make([]RBNode[K], 0, size>>1+1)
	stack := make([]RBNode[K], 0, size>>1)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)

	for len(stack) > 0 {
		aux = stack[0]
		l, r := aux.Left(), aux.Right()
		if /* nil leaves, keep one */ isNilLeaf[K](l) || isNilLeaf[K](r) {
			leaves = append(leaves, aux)
		}
		if !isNilLeaf[K](l) {
			stack = append(stack, l)
		}
		if !isNilLeaf[K](r) {
			stack = append(stack, r)
		}
		stack = stack[1:]
	}
	return leaves
}

// BlackViolationValidate checks p4: every path from the root down to a
// nil leaf passes the same number of black nodes.
func BlackViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	leaves := bfsLeaves[K](tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo[K](leaves[0], tree.Root())
	for i := 1; i < len(leaves); i++ {
		if blackDepthTo[K](leaves[i], tree.Root()) != blackDepth {
			return errors.New("rbtree black violation")
		}
	}
	return nil
}

// OrderViolationValidate checks that the inorder walk yields the keys
// in non-decreasing comparator order, equal keys adjacent.
func OrderViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	cmp := func(i, j K) int64 {
		if i == j {
			return 0
		} else if i < j {
			return -1
		}
		return 1
	}
	if concrete, ok := tree.(*rbTree[K]); ok {
		cmp = concrete.keyCompare
	}

	var (
		prev    K
		hasPrev bool
		err     error
	)
	tree.Foreach(func(idx int64, color RBColor, key K) bool {
		if hasPrev && cmp(key, prev) < 0 {
			err = errors.New("rbtree order violation")
			return false
		}
		prev, hasPrev = key, true
		return true
	})
	return err
}

// SizeViolationValidate checks that the bookkept element count agrees
// with the inorder walk, and that a zero count means a nil root.
func SizeViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	if (tree.Len() == 0) != (tree.Root() == nil) {
		return errors.New("rbtree size violation: count and root disagree")
	}

	walked := int64(0)
	tree.Foreach(func(idx int64, color RBColor, key K) bool {
		walked++
		return true
	})
	if walked != tree.Len() {
		return errors.New("rbtree size violation")
	}
	return nil
}

// ParentLinkValidate checks that every parent back reference is the
// exact inverse of the owning child link.
func ParentLinkValidate[K infra.OrderedKey](tree RBTree[K]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	if root.Parent() != nil {
		return errors.New("rbtree parent link violation: root with parent")
	}

	var err error
	for node := range root.PreOrder() {
		if l := node.Left(); l != nil && l.Parent() != node {
			err = errors.New("rbtree parent link violation")
			break
		}
		if r := node.Right(); r != nil && r.Parent() != node {
			err = errors.New("rbtree parent link violation")
			break
		}
	}
	return err
}

// Validate runs every invariant validator and combines the findings
// into one report.
func Validate[K infra.OrderedKey](tree RBTree[K]) error {
	return multierr.Combine(
		RedViolationValidate[K](tree),
		BlackViolationValidate[K](tree),
		OrderViolationValidate[K](tree),
		SizeViolationValidate[K](tree),
		ParentLinkValidate[K](tree),
	)
}
