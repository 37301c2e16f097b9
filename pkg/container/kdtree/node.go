package kdtree

// nilNode marks an absent child or an empty tree.
const nilNode int32 = -1

type node[T any] struct {
	val   T
	dim   int
	left  int32
	right int32
}

func (t *Tree[T, C]) alloc(val T, dim int) int32 {
	n := node[T]{val: val, dim: dim, left: nilNode, right: nilNode}
	if l := len(t.free); l > 0 {
		idx := t.free[l-1]
		t.free = t.free[:l-1]
		t.nodes[idx] = n
		return idx
	}
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

func (t *Tree[T, C]) release(idx int32) {
	t.nodes[idx] = node[T]{left: nilNode, right: nilNode}
	t.free = append(t.free, idx)
}

func (t *Tree[T, C]) nextDim(dim int) int {
	return (dim + 1) % t.dims
}

func (t *Tree[T, C]) equal(a, b T) bool {
	for d := 0; d < t.dims; d++ {
		if t.access.Dim(a, d) != t.access.Dim(b, d) {
			return false
		}
	}
	return true
}

// goesLeft reports whether v descends into the left subtree of a node
// holding split along dim.
func (t *Tree[T, C]) goesLeft(v, split T, dim int) bool {
	return t.access.Dim(v, dim) < t.access.Dim(split, dim)
}

func (t *Tree[T, C]) inBox(v, lo, hi T) bool {
	for d := 0; d < t.dims; d++ {
		c := t.access.Dim(v, d)
		if c < t.access.Dim(lo, d) || c >= t.access.Dim(hi, d) {
			return false
		}
	}
	return true
}

// minOf returns whichever of a and b has the smaller coordinate along dim,
// preferring a on ties.
func (t *Tree[T, C]) minOf(a, b int32, dim int) int32 {
	if a == nilNode {
		return b
	}
	if b == nilNode {
		return a
	}
	if t.access.Dim(t.nodes[b].val, dim) < t.access.Dim(t.nodes[a].val, dim) {
		return b
	}
	return a
}
