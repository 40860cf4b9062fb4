package tree

import "iter"

// Lazy traversal sequences. Every returned iter.Seq is finite and
// restartable: it closes over the subtree root only, so ranging over
// it twice walks the tree twice.

// InOrder yields the subtree below node left-self-right, the sorted
// enumeration.
func (node *rbNode[K]) InOrder() iter.Seq[RBNode[K]] {
	return func(yield func(RBNode[K]) bool) {
		stack := make([]*rbNode[K], 0, 8)
		for aux := node; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
		for len(stack) > 0 {
			aux := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(aux) {
				return
			}
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// PreOrder yields the subtree below node self-left-right.
func (node *rbNode[K]) PreOrder() iter.Seq[RBNode[K]] {
	return func(yield func(RBNode[K]) bool) {
		if node == nil {
			return
		}
		stack := make([]*rbNode[K], 0, 8)
		stack = append(stack, node)
		for len(stack) > 0 {
			aux := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(aux) {
				return
			}
			// Right first so the left subtree pops first.
			if aux.right != nil {
				stack = append(stack, aux.right)
			}
			if aux.left != nil {
				stack = append(stack, aux.left)
			}
		}
	}
}

func (tree *rbTree[K]) InOrder() iter.Seq[RBNode[K]] {
	return tree.root.InOrder()
}

func (tree *rbTree[K]) PreOrder() iter.Seq[RBNode[K]] {
	return tree.root.PreOrder()
}

// Keys enumerates the stored keys in sorted order, the default
// iteration entry point of the tree.
func (tree *rbTree[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for node := range tree.root.InOrder() {
			if !yield(node.Key()) {
				return
			}
		}
	}
}
