package kdtree

// Visit describes a node reached by LevelOrder.
type Visit[T any] struct {
	Value *T
	// Dim is the split dimension of the node.
	Dim int
	// Level is the depth of the node, 0 for the root.
	Level int
	// Pos is the node's heap position: the root is 0 and the children of
	// position p are 2p+1 (left) and 2p+2 (right). It wraps for levels of 64
	// and deeper.
	Pos uint64
}

// VisitFn is called for every visited node. Returning false stops the walk.
type VisitFn[T any] func(v Visit[T]) bool

type visitItem struct {
	idx   int32
	level int
	pos   uint64
}

// LevelOrder walks the tree breadth first, left child before right child.
// fn must not modify the tree.
func (t *Tree[T, C]) LevelOrder(fn VisitFn[T]) {
	if t.root == nilNode {
		return
	}
	queue := []visitItem{{idx: t.root}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		n := &t.nodes[it.idx]
		if !fn(Visit[T]{Value: &n.val, Dim: n.dim, Level: it.level, Pos: it.pos}) {
			return
		}
		if n.left != nilNode {
			queue = append(queue, visitItem{idx: n.left, level: it.level + 1, pos: 2*it.pos + 1})
		}
		if n.right != nilNode {
			queue = append(queue, visitItem{idx: n.right, level: it.level + 1, pos: 2*it.pos + 2})
		}
	}
}

// Height returns the number of levels of the tree, 0 when it is empty.
func (t *Tree[T, C]) Height() int {
	return t.height(t.root)
}

func (t *Tree[T, C]) height(idx int32) int {
	if idx == nilNode {
		return 0
	}
	n := &t.nodes[idx]
	l, r := t.height(n.left), t.height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Points returns a copy of every stored value, in order left subtree, node,
// right subtree.
func (t *Tree[T, C]) Points() []T {
	points := make([]T, 0, t.len)
	if t.root != nilNode {
		points = t.points(t.root, points)
	}
	return points
}

func (t *Tree[T, C]) points(idx int32, out []T) []T {
	n := &t.nodes[idx]
	if n.left != nilNode {
		out = t.points(n.left, out)
	}
	out = append(out, n.val)
	if n.right != nilNode {
		out = t.points(n.right, out)
	}
	return out
}
