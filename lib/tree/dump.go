package tree

import (
	"go.uber.org/zap"

	"github.com/bensli/redwood/lib/infra"
)

// Dump logs the tree structure node by node at debug level, preorder,
// one entry per node with its key, color, depth and direction. It is
// a debugging aid, the tree is walked without any mutation.
func Dump[K infra.OrderedKey](tree RBTree[K], logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug("rbtree dump", zap.Int64("len", tree.Len()))
	root := tree.Root()
	if root == nil {
		return
	}

	type frame struct {
		node  RBNode[K]
		depth int
	}
	stack := make([]frame, 0, 8)
	stack = append(stack, frame{node: root, depth: 0})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		dir := Root
		if p := f.node.Parent(); p != nil {
			if p.Left() == f.node {
				dir = Left
			} else {
				dir = Right
			}
		}
		logger.Debug("rbtree node",
			zap.Any("key", f.node.Key()),
			zap.String("color", f.node.Color().String()),
			zap.Int("depth", f.depth),
			zap.String("dir", dir.String()),
		)

		if r := f.node.Right(); r != nil {
			stack = append(stack, frame{node: r, depth: f.depth + 1})
		}
		if l := f.node.Left(); l != nil {
			stack = append(stack, frame{node: l, depth: f.depth + 1})
		}
	}
}
