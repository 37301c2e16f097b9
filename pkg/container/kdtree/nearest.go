package kdtree

import (
	"github.com/go-sod/kdtree/pkg/pqueue"
)

// NearestNeighbor returns the stored value closest to q under dist, or nil if
// the tree is empty. When several values are equally close the first one
// reached by the search is returned.
func (t *Tree[T, C]) NearestNeighbor(q T, dist Distance[T, C]) *T {
	if t.root == nilNode || dist == nil {
		return nil
	}
	best := t.root
	bestDist := dist.Distance(q, t.nodes[t.root].val)
	t.nearest(t.root, q, dist, &best, &bestDist)
	return &t.nodes[best].val
}

func (t *Tree[T, C]) nearest(idx int32, q T, dist Distance[T, C], best *int32, bestDist *C) {
	n := &t.nodes[idx]
	if d := dist.Distance(q, n.val); d < *bestDist {
		*best, *bestDist = idx, d
	}

	near, far := n.right, n.left
	if t.goesLeft(q, n.val, n.dim) {
		near, far = n.left, n.right
	}
	if near != nilNode {
		t.nearest(near, q, dist, best, bestDist)
	}
	if far != nilNode && t.axisGap(q, n.val, n.dim) <= *bestDist {
		t.nearest(far, q, dist, best, bestDist)
	}
}

// axisGap is the distance between q and the splitting hyperplane of a node
// holding split along dim. No value across the plane can be closer than it.
func (t *Tree[T, C]) axisGap(q, split T, dim int) C {
	a, b := t.access.Dim(q, dim), t.access.Dim(split, dim)
	if a < b {
		return b - a
	}
	return a - b
}

// NearestK returns up to k stored values closest to q, nearest first.
func (t *Tree[T, C]) NearestK(q T, k int, dist Distance[T, C]) ([]*T, error) {
	if k <= 0 {
		return nil, ErrBadK
	}
	if t.root == nilNode || dist == nil {
		return []*T{}, nil
	}

	queue := pqueue.New[int32, C](pqueue.WithCap[int32, C](uint(k)))
	t.nearestK(t.root, q, k, dist, queue)

	out := make([]*T, 0, queue.Len())
	for _, idx := range queue.PopAll() {
		out = append(out, &t.nodes[idx].val)
	}
	return out, nil
}

func (t *Tree[T, C]) nearestK(idx int32, q T, k int, dist Distance[T, C], queue *pqueue.Queue[int32, C]) {
	n := &t.nodes[idx]
	d := dist.Distance(q, n.val)
	if queue.Len() < k {
		queue.Push(idx, d)
	} else if _, worst := queue.Seek(k - 1); d < worst {
		queue.Push(idx, d)
	}

	near, far := n.right, n.left
	if t.goesLeft(q, n.val, n.dim) {
		near, far = n.left, n.right
	}
	if near != nilNode {
		t.nearestK(near, q, k, dist, queue)
	}
	if far == nilNode {
		return
	}
	if queue.Len() < k {
		t.nearestK(far, q, k, dist, queue)
		return
	}
	if _, worst := queue.Seek(k - 1); t.axisGap(q, n.val, n.dim) <= worst {
		t.nearestK(far, q, k, dist, queue)
	}
}
