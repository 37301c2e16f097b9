/*
 * Copyright 2020 Dennis Kuhnert
 * Copyright 2020 Ivanov Nikita
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

// Package kdtree implements an in-memory k-d tree over caller supplied
// value types.
//
// Every node splits its subtree along one dimension: values whose coordinate
// is strictly less than the node's go left, the others go right. The split
// dimension cycles with depth, starting at 0 for the root. No rebalancing is
// performed, so the height depends on insertion order.
//
// Nodes are kept in an arena owned by the tree and linked by index. Pointers
// returned by Min, Range, NearestNeighbor and NearestK point into that arena
// and are valid only until the next Insert, Erase or Clear.
//
// A Tree is not safe for concurrent use.
package kdtree

// Tree is a k-d tree of values of type T with coordinates of type C.
type Tree[T any, C Scalar] struct {
	dims   int
	access DimAccessor[T, C]
	nodes  []node[T]
	free   []int32
	root   int32
	len    int
}

// New creates an empty tree of the given dimensionality.
func New[T any, C Scalar](dims int, access DimAccessor[T, C]) (*Tree[T, C], error) {
	if dims <= 0 {
		return nil, ErrBadDimensions
	}
	if access == nil {
		return nil, ErrNilAccessor
	}
	return &Tree[T, C]{
		dims:   dims,
		access: access,
		root:   nilNode,
	}, nil
}

// Dimensions returns the dimensionality the tree was created with.
func (t *Tree[T, C]) Dimensions() int {
	return t.dims
}

// Len returns the number of values stored.
func (t *Tree[T, C]) Len() int {
	return t.len
}

// Empty reports whether the tree holds no values.
func (t *Tree[T, C]) Empty() bool {
	return t.len == 0
}

// locate descends from the root following the split rule until it reaches a
// value equal to v or falls off the tree. It returns the matching node (or
// nilNode), its parent and the side of the parent it hangs on.
func (t *Tree[T, C]) locate(from int32, v T) (idx, parent int32, left bool) {
	idx, parent = from, nilNode
	for idx != nilNode {
		n := &t.nodes[idx]
		if t.equal(n.val, v) {
			return idx, parent, left
		}
		parent = idx
		left = t.goesLeft(v, n.val, n.dim)
		if left {
			idx = n.left
		} else {
			idx = n.right
		}
	}
	return nilNode, parent, left
}

func (t *Tree[T, C]) link(parent int32, left bool, child int32) {
	switch {
	case parent == nilNode:
		t.root = child
	case left:
		t.nodes[parent].left = child
	default:
		t.nodes[parent].right = child
	}
}

// Insert adds v to the tree. It returns false and leaves the tree unchanged
// if a value equal to v in every dimension is already stored.
func (t *Tree[T, C]) Insert(v T) bool {
	idx, parent, left := t.locate(t.root, v)
	if idx != nilNode {
		return false
	}
	dim := 0
	if parent != nilNode {
		dim = t.nextDim(t.nodes[parent].dim)
	}
	t.link(parent, left, t.alloc(v, dim))
	t.len++
	return true
}

// Contains reports whether a value equal to v is stored.
func (t *Tree[T, C]) Contains(v T) bool {
	idx, _, _ := t.locate(t.root, v)
	return idx != nilNode
}

// Erase removes the value equal to v. It returns false if no such value is
// stored.
func (t *Tree[T, C]) Erase(v T) bool {
	idx, parent, left := t.locate(t.root, v)
	if idx == nilNode {
		return false
	}
	t.link(parent, left, t.remove(idx))
	t.len--
	return true
}

// remove drops the value held by node idx and returns the index of the node
// now rooting that subtree. The vacated node takes the minimum, along its own
// split dimension, of the right subtree. Without a right subtree the minimum
// of the left subtree is used and what remains of the left subtree becomes
// the right one: every value left there is >= the promoted minimum.
func (t *Tree[T, C]) remove(idx int32) int32 {
	n := t.nodes[idx]
	switch {
	case n.right != nilNode:
		m := t.minNode(n.right, n.dim)
		n.val = t.nodes[m].val
		n.right = t.eraseBelow(n.right, n.val)
	case n.left != nilNode:
		m := t.minNode(n.left, n.dim)
		n.val = t.nodes[m].val
		n.right = t.eraseBelow(n.left, n.val)
		n.left = nilNode
	default:
		t.release(idx)
		return nilNode
	}
	t.nodes[idx] = n
	return idx
}

// eraseBelow removes the stored value v from the subtree rooted at from and
// returns the subtree's new root. v must be present.
func (t *Tree[T, C]) eraseBelow(from int32, v T) int32 {
	idx, parent, left := t.locate(from, v)
	repl := t.remove(idx)
	if parent == nilNode {
		return repl
	}
	if left {
		t.nodes[parent].left = repl
	} else {
		t.nodes[parent].right = repl
	}
	return from
}

// Clear removes every value. The tree can be used again afterwards.
func (t *Tree[T, C]) Clear() {
	clear(t.nodes)
	t.nodes = t.nodes[:0]
	t.free = t.free[:0]
	t.root = nilNode
	t.len = 0
}

// Min returns the value with the smallest coordinate along dimension d, or
// nil if the tree is empty or d is not a valid dimension.
func (t *Tree[T, C]) Min(d int) *T {
	if d < 0 || d >= t.dims {
		return nil
	}
	idx := t.minNode(t.root, d)
	if idx == nilNode {
		return nil
	}
	return &t.nodes[idx].val
}

func (t *Tree[T, C]) minNode(idx int32, d int) int32 {
	if idx == nilNode {
		return nilNode
	}
	n := &t.nodes[idx]
	best := t.minOf(idx, t.minNode(n.left, d), d)
	// Right of a node splitting on d nothing is smaller than the node itself.
	if n.dim != d {
		best = t.minOf(best, t.minNode(n.right, d), d)
	}
	return best
}

// Range returns every value v with lo[i] <= v[i] < hi[i] in all dimensions.
// The order of the result is unspecified.
func (t *Tree[T, C]) Range(lo, hi T) []*T {
	var out []*T
	if t.root != nilNode {
		out = t.rangeFrom(t.root, lo, hi, out)
	}
	return out
}

func (t *Tree[T, C]) rangeFrom(idx int32, lo, hi T, out []*T) []*T {
	n := &t.nodes[idx]
	split := t.access.Dim(n.val, n.dim)
	if n.left != nilNode && t.access.Dim(lo, n.dim) < split {
		out = t.rangeFrom(n.left, lo, hi, out)
	}
	if n.right != nilNode && t.access.Dim(hi, n.dim) > split {
		out = t.rangeFrom(n.right, lo, hi, out)
	}
	if t.inBox(n.val, lo, hi) {
		out = append(out, &n.val)
	}
	return out
}
