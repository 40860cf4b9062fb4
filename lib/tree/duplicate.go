package tree

import "sync/atomic"

// deepCopy clones the subtree below node. Fresh nodes, same keys,
// colors and shape; the parent back references are rewired against
// the fresh nodes so the copy shares nothing with the source.
func (node *rbNode[K]) deepCopy(parent *rbNode[K]) *rbNode[K] {
	if node == nil {
		return nil
	}
	cp := &rbNode[K]{
		key:    node.key,
		color:  node.color,
		parent: parent,
		hasKey: node.hasKey,
	}
	cp.left = node.left.deepCopy(cp)
	cp.right = node.right.deepCopy(cp)
	return cp
}

// Duplicate deep-copies this subtree. The copy's root has no parent,
// so a duplicated inner node becomes a standalone tree root.
func (node *rbNode[K]) Duplicate() RBNode[K] {
	if cp := node.deepCopy(nil); cp != nil {
		return cp
	}
	return nil
}

// Duplicate deep-copies the whole container: the node graph, the
// element count and the construction options.
func (tree *rbTree[K]) Duplicate() RBTree[K] {
	cp := &rbTree[K]{
		count:          atomic.LoadInt64(&tree.count),
		isDesc:         tree.isDesc,
		noDup:          tree.noDup,
		isRmBorrowPred: tree.isRmBorrowPred,
	}
	cp.root = tree.root.deepCopy(nil)
	return cp
}
