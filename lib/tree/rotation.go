package tree

// A rotation swaps a node with one of its children while keeping the
// inorder key sequence intact. Three parent links change: the pivot's,
// the promoted child's and the transferred grandchild's. When the
// pivot was the tree root the promoted child takes its place.

/*
	 |                         |
	 X                         Y
	/ \     leftRotate(X)     / \
   L   Y    ============>    X   Yr
	  / \                   / \
	Yl   Yr                L   Yl
*/
func (tree *rbTree[K]) leftRotate(x *rbNode[K]) {
	if x == nil || x.right.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	tree.relinkRotated(dir, p, y)
}

/*
	     |                      |
	     X                      Y
	    / \    rightRotate(X)  / \
	   Y   R   =============> Yl  X
	  / \                        / \
	Yl   Yr                    Yr   R
*/
func (tree *rbTree[K]) rightRotate(x *rbNode[K]) {
	if x == nil || x.left.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	tree.relinkRotated(dir, p, y)
}

// relinkRotated hangs the promoted subtree root y back into the slot
// the pivot occupied before the rotation.
func (tree *rbTree[K]) relinkRotated(dir RBDirection, p, y *rbNode[K]) {
	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to relink")
	}
	y.parent = p
}
