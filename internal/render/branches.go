package render

import (
	"fmt"
	"strconv"

	"github.com/xlab/treeprint"

	"github.com/go-sod/kdtree/pkg/container/kdtree"
)

// Heap positions of deeper nodes no longer fit in a uint64.
const maxBranchesHeight = 63

// Branches renders the tree as an indented branch view. Children are tagged
// with L or R and every label carries the node's split dimension.
func Branches[T any, C kdtree.Scalar](tree *kdtree.Tree[T, C], format FormatFn[T]) (treeprint.Tree, error) {
	if tree.Empty() {
		return treeprint.NewWithRoot("<empty tree>"), nil
	}
	if height := tree.Height(); height > maxBranchesHeight {
		return nil, fmt.Errorf("%w: height %d", ErrTooTall, height)
	}

	var root treeprint.Tree
	byPos := make(map[uint64]treeprint.Tree, tree.Len())
	tree.LevelOrder(func(v kdtree.Visit[T]) bool {
		text := format(*v.Value) + " d" + strconv.Itoa(v.Dim)
		if v.Pos == 0 {
			root = treeprint.NewWithRoot(text)
			byPos[0] = root
			return true
		}
		side := "R"
		if v.Pos%2 == 1 {
			side = "L"
		}
		byPos[v.Pos] = byPos[(v.Pos-1)/2].AddMetaBranch(side, text)
		return true
	})
	return root, nil
}
