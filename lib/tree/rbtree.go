package tree

import (
	"sync/atomic"

	"github.com/bensli/redwood/lib/infra"
)

// References:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// p1. Every node is either red or black.
// p2. All NIL leaves are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node down to any of its NIL leaf
//   descendants goes through the same number of black nodes.
//   (black-violation)
// p5. The root is black.
// (Conclusion) A node with exactly one child must have a red child,
// otherwise the NIL leaves below it would sit at different black
// depths, violating p4.

type rbNode[K infra.OrderedKey] struct {
	parent *rbNode[K]
	left   *rbNode[K]
	right  *rbNode[K]
	key    K
	color  RBColor
	hasKey bool
}

func newRBNode[K infra.OrderedKey](key K, color RBColor, parent *rbNode[K]) *rbNode[K] {
	if color > Red {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] construct a node with unknown color")
	}
	return &rbNode[K]{
		key:    key,
		color:  color,
		parent: parent,
		hasKey: true,
	}
}

func (node *rbNode[K]) Key() K {
	return node.key
}

func (node *rbNode[K]) HasKey() bool {
	if node == nil {
		return false
	}
	return node.hasKey
}

func (node *rbNode[K]) Color() RBColor {
	return node.color
}

func (node *rbNode[K]) Left() RBNode[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[K]) Right() RBNode[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *rbNode[K]) Parent() RBNode[K] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *rbNode[K]) isNilLeaf() bool {
	return isNilLeaf[K](node)
}

func (node *rbNode[K]) isRed() bool {
	return isRed[K](node)
}

func (node *rbNode[K]) isBlack() bool {
	return isBlack[K](node)
}

func (node *rbNode[K]) isRoot() bool {
	return isRoot[K](node)
}

func (node *rbNode[K]) isLeaf() bool {
	return node != nil && node.parent != nil && node.left.isNilLeaf() && node.right.isNilLeaf()
}

func (node *rbNode[K]) Direction() RBDirection {
	if node.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] nil leaf node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *rbNode[K]) sibling() *rbNode[K] {
	switch node.Direction() {
	case Left:
		return node.parent.right
	case Right:
		return node.parent.left
	default:

	}
	return nil
}

func (node *rbNode[K]) hasSibling() bool {
	return !node.isRoot() && node.sibling() != nil
}

func (node *rbNode[K]) uncle() *rbNode[K] {
	return node.parent.sibling()
}

func (node *rbNode[K]) hasUncle() bool {
	return !node.isRoot() && node.parent.hasSibling()
}

func (node *rbNode[K]) grandpa() *rbNode[K] {
	return node.parent.parent
}

// fixLink restores the child-to-parent back references after the child
// slots of node have been rewired.
func (node *rbNode[K]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *rbNode[K]) minimum() *rbNode[K] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *rbNode[K]) maximum() *rbNode[K] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// pred is the previous node of the current node in sorted order.
func (node *rbNode[K]) pred() *rbNode[K] {
	x := node
	if x == nil {
		return nil
	}
	if x.left != nil {
		return x.left.maximum()
	}

	aux := x.parent
	// Backtrack to the first ancestor entered from its right side.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// succ is the next node of the current node in sorted order.
func (node *rbNode[K]) succ() *rbNode[K] {
	x := node
	if x == nil {
		return nil
	}
	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parent
	// Backtrack to the first ancestor entered from its left side.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

func (node *rbNode[K]) Min() RBNode[K] {
	if aux := node.minimum(); aux != nil {
		return aux
	}
	return nil
}

func (node *rbNode[K]) Max() RBNode[K] {
	if aux := node.maximum(); aux != nil {
		return aux
	}
	return nil
}

func (node *rbNode[K]) Pred() RBNode[K] {
	if aux := node.pred(); aux != nil {
		return aux
	}
	return nil
}

func (node *rbNode[K]) Succ() RBNode[K] {
	if aux := node.succ(); aux != nil {
		return aux
	}
	return nil
}

// Search binary-searches the subtree below node by a three-way
// comparator: negative turns left, positive turns right, zero stops.
func (node *rbNode[K]) Search(cmp func(RBNode[K]) int64) (RBNode[K], bool) {
	for aux := node; aux != nil; {
		res := cmp(aux)
		if res == 0 {
			return aux, true
		} else if res > 0 {
			aux = aux.right
		} else {
			aux = aux.left
		}
	}
	return nil, false
}

// BSearch finds the leftmost node for which the monotone predicate
// holds, keeping the last true node as candidate while descending.
func (node *rbNode[K]) BSearch(pred func(RBNode[K]) bool) RBNode[K] {
	var candidate *rbNode[K]
	for aux := node; aux != nil; {
		if pred(aux) {
			candidate = aux
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	if candidate == nil {
		return nil
	}
	return candidate
}

type rbTree[K infra.OrderedKey] struct {
	root           *rbNode[K]
	count          int64
	isDesc         bool
	noDup          bool
	isRmBorrowPred bool
}

func (tree *rbTree[K]) keyCompare(k1, k2 K) int64 {
	if k1 == k2 {
		return 0
	} else if k1 < k2 {
		if !tree.isDesc {
			return -1
		}
		return 1
	} else {
		if !tree.isDesc {
			return 1
		}
		return -1
	}
}

func (tree *rbTree[K]) Len() int64 {
	return atomic.LoadInt64(&tree.count)
}

func (tree *rbTree[K]) Root() RBNode[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *rbTree[K]) Min() RBNode[K] {
	if aux := tree.root.minimum(); aux != nil {
		return aux
	}
	return nil
}

func (tree *rbTree[K]) Max() RBNode[K] {
	if aux := tree.root.maximum(); aux != nil {
		return aux
	}
	return nil
}

func (tree *rbTree[K]) Insert(keys ...K) RBTree[K] {
	for _, key := range keys {
		_ = tree.InsertOne(key)
	}
	return tree
}

// i1: Empty rbtree, insert directly, the root node is painted black.
func (tree *rbTree[K]) InsertOne(key K) error {
	if /* i1 */ tree.root.isNilLeaf() {
		tree.root = newRBNode(key, Black, nil)
		atomic.AddInt64(&tree.count, 1)
		return nil
	}

	var x, y *rbNode[K] = tree.root, nil
	for !x.isNilLeaf() {
		y = x
		res := tree.keyCompare(key, x.key)
		if /* equal */ res == 0 {
			if tree.noDup {
				return ErrKeyAlreadyExists
			}
			// Equal keys land to the right of the present ones.
			x = x.right
		} else /* less */ if res < 0 {
			x = x.left
		} else /* greater */ {
			x = x.right
		}
	}

	if y.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] insert a new key into a nil node")
	}

	z := newRBNode(key, Red, y)
	if res := tree.keyCompare(key, y.key); res < 0 {
		y.left = z
	} else {
		y.right = z
	}

	atomic.AddInt64(&tree.count, 1)
	tree.insertRebalance(z)
	return nil
}

/*
The new node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

im1: X is the root, repaint it black.

im2: X's parent P is black, p3 and p4 already hold.

im3: Both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
Repainting G red may re-introduce the violation two levels up,
so continue to fix from G.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: The parent P is red but the uncle U is black and X is the
opposite direction to P. (red-violation)
Rotate P towards its own direction to fall through into im5.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: X is the same direction as its red parent P, uncle U is black.
Rotate G away from P, then swap P and G's colors.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[K]) insertRebalance(x *rbNode[K]) {
	for !x.isNilLeaf() {
		if /* im1 */ x.isRoot() {
			if x.isRed() {
				x.color = Black
			}
			return
		}

		if /* im2 */ x.parent.isBlack() {
			return
		}

		// The parent is red, so it cannot be the root (p5) and the
		// grandpa must exist.
		if /* im3 */ x.hasUncle() && x.uncle().isRed() {
			x.parent.color = Black
			x.uncle().color = Black
			gp := x.grandpa()
			gp.color = Red
			x = gp
			continue
		}

		dir := x.Direction()
		if /* im4 */ dir != x.parent.Direction() {
			p := x.parent
			switch dir {
			case Left:
				tree.rightRotate(p)
			case Right:
				tree.leftRotate(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] insert rebalance violate (im4)")
			}
			x = p // enter im5 to fix
		}

		switch /* im5 */ x.parent.Direction() {
		case Left:
			tree.rightRotate(x.grandpa())
		case Right:
			tree.leftRotate(x.grandpa())
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] insert rebalance violate (im5)")
		}

		x.parent.color = Black
		x.sibling().color = Red
		return
	}
}

func (tree *rbTree[K]) Delete(keys ...K) RBTree[K] {
	for _, key := range keys {
		_, _ = tree.DeleteOne(key)
	}
	return tree
}

func (tree *rbTree[K]) DeleteOne(key K) (RBNode[K], error) {
	if atomic.LoadInt64(&tree.count) <= 0 {
		return nil, ErrEmptyTree
	}
	z, ok := tree.root.Search(func(node RBNode[K]) int64 {
		return tree.keyCompare(key, node.Key())
	})
	if !ok {
		return nil, ErrKeyNotFound
	}
	defer func() {
		atomic.AddInt64(&tree.count, -1)
	}()

	return tree.removeNode(z.(*rbNode[K]))
}

// DeleteMin removes and returns the smallest element.
func (tree *rbTree[K]) DeleteMin() (RBNode[K], error) {
	if atomic.LoadInt64(&tree.count) <= 0 {
		return nil, ErrEmptyTree
	}
	_min := tree.root.minimum()
	if _min.isNilLeaf() {
		return nil, ErrKeyNotFound
	}
	defer func() {
		atomic.AddInt64(&tree.count, -1)
	}()
	return tree.removeNode(_min)
}

/*
r1: Only the root node remains, remove it directly.

r2: The node X to remove has both a left and a right child.
Borrow X's succ (or pred) to take its place and remove that
node instead; it has one child at most. Only the key moves.

	  |                    |
	  X                    S
	 / \                  / \
	L  ..   swap(X, S)   L  ..
	    |   =========>       |
	    S                    X

r3: (1) X is a red leaf, remove directly.

r3: (2) X is a black leaf, removing it drops the black depth of this
path by one, so rebalance before unlinking. (black-violation)

r4: X is not a leaf but has one child. That child must be red (see
conclusion above), so splice it in and repaint black, or rebalance
if a black replacement ever bubbles up.
*/
func (tree *rbTree[K]) removeNode(z *rbNode[K]) (RBNode[K], error) {
	if /* r1 */ atomic.LoadInt64(&tree.count) == 1 && z.isRoot() {
		tree.root = nil
		z.left = nil
		z.right = nil
		return z, nil
	}

	res := &rbNode[K]{
		key:    z.key,
		hasKey: true,
	}

	y := z
	if /* r2 */ !y.left.isNilLeaf() && !y.right.isNilLeaf() {
		if tree.isRmBorrowPred {
			y = z.pred() // enter r3-r4
		} else {
			y = z.succ() // enter r3-r4
		}
		// Borrow the key only, the borrowed node is unlinked below.
		z.key = y.key
		z.hasKey = true
	}

	if /* r3 */ y.isLeaf() {
		if /* r3 (1) */ y.isRed() {
			switch y.Direction() {
			case Left:
				y.parent.left = nil
			case Right:
				y.parent.right = nil
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] y must be a leaf node, violate (r3-1)")
			}
			return res, nil
		}
		/* r3 (2) */
		tree.removeRebalance(y)
	} else /* r4 */ {
		var replace *rbNode[K]
		if !y.right.isNilLeaf() {
			replace = y.right
		} else if !y.left.isNilLeaf() {
			replace = y.left
		}

		if replace == nil {
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove a non-leaf node without child, violate (r4)")
		}

		switch y.Direction() {
		case Root:
			tree.root = replace
			tree.root.parent = nil
		case Left:
			y.parent.left = replace
			replace.parent = y.parent
		case Right:
			y.parent.right = replace
			replace.parent = y.parent
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove violate (r4)")
		}

		if y.isBlack() {
			if replace.isRed() {
				replace.color = Black
			} else {
				tree.removeRebalance(replace)
			}
		}
	}

	// Unlink the borrowed node.
	if !y.isRoot() && y == y.parent.left {
		y.parent.left = nil
	} else if !y.isRoot() && y == y.parent.right {
		y.parent.right = nil
	}
	y.parent = nil
	y.left = nil
	y.right = nil
	y.hasKey = false

	return res, nil
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

X is the node whose paths are one black node short.
Sc is the nephew on the same direction as X, Sd the one opposite.

rm1: X's sibling S is red, so P, Sc and Sd must be black.
Rotate P towards X, repaint S black and P red. X's new sibling is a
former child of S, which is black, so fall into rm2-rm5.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: P is red, S, Sc and Sd are black.
Swap P and S's colors, the short path gains its black node back.

	  <P>             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: P, S, Sc and Sd are all black.
Repaint S red to fix p4 below P, then P's whole subtree is one black
node short. Continue to fix from P.

	  [P]             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm4: S is black, the near nephew Sc is red and the far one Sd is
black. Rotate S away from X and swap S and Sc's colors. The far
nephew of X is now red, fall into rm5.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm5: S is black, the far nephew Sd is red.
Rotate P towards X, give S P's color, repaint P and Sd black.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (tree *rbTree[K]) removeRebalance(x *rbNode[K]) {
	for {
		if x.isRoot() {
			return
		}

		sibling := x.sibling()
		dir := x.Direction()
		if /* rm1 */ sibling.isRed() {
			switch dir {
			case Left:
				tree.leftRotate(x.parent)
			case Right:
				tree.rightRotate(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm1)")
			}
			sibling.color = Black
			x.parent.color = Red // ready to enter rm2
			sibling = x.sibling()
		}

		var sc, sd *rbNode[K]
		switch dir {
		case Left:
			sc, sd = sibling.left, sibling.right
		case Right:
			sc, sd = sibling.right, sibling.left
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm2)")
		}

		if sc.isBlack() && sd.isBlack() {
			if /* rm2 */ x.parent.isRed() {
				sibling.color = Red
				x.parent.color = Black
				break
			}
			/* rm3 */
			sibling.color = Red
			x = x.parent
			continue
		}

		if /* rm4 */ sd.isBlack() {
			// Not both nephews are black here, so Sc must be red.
			switch dir {
			case Left:
				tree.rightRotate(sibling)
			case Right:
				tree.leftRotate(sibling)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm4)")
			}
			sc.color = Black
			sibling.color = Red
			sibling = x.sibling()
			switch dir {
			case Left:
				sd = sibling.right
			case Right:
				sd = sibling.left
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm4)")
			}
		}

		switch /* rm5 */ dir {
		case Left:
			tree.leftRotate(x.parent)
		case Right:
			tree.rightRotate(x.parent)
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm5)")
		}
		sibling.color = x.parent.color
		x.parent.color = Black
		if !sd.isNilLeaf() {
			sd.color = Black
		}
		break
	}
}

func (tree *rbTree[K]) Search(key K) (RBNode[K], bool) {
	if tree.root == nil {
		return nil, false
	}
	return tree.root.Search(func(node RBNode[K]) int64 {
		return tree.keyCompare(key, node.Key())
	})
}

func (tree *rbTree[K]) BSearch(pred func(RBNode[K]) bool) RBNode[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root.BSearch(pred)
}

func (tree *rbTree[K]) BSearchFunc(cmp func(RBNode[K]) int64) RBNode[K] {
	if tree.root == nil {
		return nil
	}
	if aux, ok := tree.root.Search(cmp); ok {
		return aux
	}
	return nil
}

// Foreach runs the action over the nodes in sorted order, an inorder
// DFS with an explicit stack. The action returning false stops the
// walk.
func (tree *rbTree[K]) Foreach(action func(idx int64, color RBColor, key K) bool) {
	size := atomic.LoadInt64(&tree.count)
	aux := tree.root
	if size < 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[K], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.color, aux.key) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// Release tears down all node links so the elements are reclaimable
// one by one instead of keeping the whole graph alive.
func (tree *rbTree[K]) Release() {
	size := atomic.LoadInt64(&tree.count)
	aux := tree.root
	tree.root = nil
	if size < 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[K], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		aux = stack[size-1]
		r := aux.right
		aux.right, aux.parent = nil, nil
		atomic.AddInt64(&tree.count, -1)
		stack = stack[:size-1]
		if r != nil {
			for aux = r; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

type RBTreeOpt[K infra.OrderedKey] func(*rbTree[K])

// WithRBTreeDesc flips the comparator so the tree sorts descending.
func WithRBTreeDesc[K infra.OrderedKey]() RBTreeOpt[K] {
	return func(tree *rbTree[K]) {
		tree.isDesc = true
	}
}

// WithRBTreeDisableDuplicates rejects the insert of an already present
// key instead of storing it next to the present ones.
func WithRBTreeDisableDuplicates[K infra.OrderedKey]() RBTreeOpt[K] {
	return func(tree *rbTree[K]) {
		tree.noDup = true
	}
}

// WithRBTreeRemoveBorrowPred borrows the in-order pred instead of the
// succ when the node to remove has two children.
func WithRBTreeRemoveBorrowPred[K infra.OrderedKey]() RBTreeOpt[K] {
	return func(tree *rbTree[K]) {
		tree.isRmBorrowPred = true
	}
}

func NewRBTree[K infra.OrderedKey](opts ...RBTreeOpt[K]) RBTree[K] {
	tree := &rbTree[K]{
		count: 0,
	}

	for _, o := range opts {
		o(tree)
	}
	return tree
}
