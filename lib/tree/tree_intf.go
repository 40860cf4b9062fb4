package tree

import (
	"errors"
	"iter"

	"github.com/bensli/redwood/lib/infra"
)

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

var (
	ErrEmptyTree        = errors.New("[rbtree] empty tree")
	ErrKeyNotFound      = errors.New("[rbtree] key not found")
	ErrKeyAlreadyExists = errors.New("[rbtree] duplicate key, insert disabled")
)

// RBNode is one stored element of a red-black tree. The left and right
// pointers own their subtrees; the parent pointer is a non-owning back
// reference and stays the exact inverse of the owner's child link
// outside an in-progress rotation.
//
// The node surface is usable below the tree facade: navigation, search
// and traversal all work on any subtree root.
type RBNode[K infra.OrderedKey] interface {
	Key() K
	HasKey() bool
	Color() RBColor
	Left() RBNode[K]
	Right() RBNode[K]
	Parent() RBNode[K]
	// Min returns the leftmost node of this subtree, Max the rightmost.
	Min() RBNode[K]
	Max() RBNode[K]
	// Pred and Succ are the in-order neighbors in the whole tree,
	// reached through the subtree extremum or the parent chain.
	Pred() RBNode[K]
	Succ() RBNode[K]
	// Search runs a three-way binary search below this node.
	Search(cmp func(RBNode[K]) int64) (RBNode[K], bool)
	// BSearch runs a generalized binary search with a monotone
	// predicate: false for every node before the target, true from the
	// target onward. It returns the leftmost node where pred holds.
	BSearch(pred func(RBNode[K]) bool) RBNode[K]
	PreOrder() iter.Seq[RBNode[K]]
	InOrder() iter.Seq[RBNode[K]]
	// Duplicate deep-copies this subtree. The copy's root has no parent.
	Duplicate() RBNode[K]
}

type RBTree[K infra.OrderedKey] interface {
	Len() int64
	Root() RBNode[K]
	// Insert adds the keys in order and returns the tree for chaining.
	// Rejected duplicates (duplicates disabled) are silent no-ops here;
	// use InsertOne to observe the rejection.
	Insert(keys ...K) RBTree[K]
	InsertOne(key K) error
	// Delete removes the keys in order and returns the tree for
	// chaining. Missing keys are silent no-ops; use DeleteOne to
	// observe the removed entry or the miss.
	Delete(keys ...K) RBTree[K]
	DeleteOne(key K) (RBNode[K], error)
	DeleteMin() (RBNode[K], error)
	Search(key K) (RBNode[K], bool)
	BSearch(pred func(RBNode[K]) bool) RBNode[K]
	// BSearchFunc is the three-way form: descend right on positive,
	// left on negative, stop on zero.
	BSearchFunc(cmp func(RBNode[K]) int64) RBNode[K]
	Min() RBNode[K]
	Max() RBNode[K]
	PreOrder() iter.Seq[RBNode[K]]
	InOrder() iter.Seq[RBNode[K]]
	// Keys is the default enumeration, ascending key order.
	Keys() iter.Seq[K]
	Foreach(action func(idx int64, color RBColor, key K) bool)
	Duplicate() RBTree[K]
	Release()
}
