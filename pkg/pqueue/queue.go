package pqueue

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// WithCap bounds the queue: after each Push only the first size items are kept.
func WithCap[V any, P constraints.Ordered](size uint) Option[V, P] {
	return func(q *Queue[V, P]) {
		q.cap = int(size)
	}
}

type Option[V any, P constraints.Ordered] func(*Queue[V, P])

type item[V any, P constraints.Ordered] struct {
	value V
	prior P
}

func New[V any, P constraints.Ordered](opts ...Option[V, P]) *Queue[V, P] {
	q := &Queue[V, P]{cap: -1}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Queue keeps values sorted by ascending priority. Items with equal priority
// stay in the order they were pushed.
type Queue[V any, P constraints.Ordered] struct {
	cap   int
	items []item[V, P]
}

func (q *Queue[V, P]) PopAll() []V {
	pulled := make([]V, len(q.items))
	for i := range q.items {
		pulled[i] = q.items[i].value
	}
	q.items = q.items[:0]
	return pulled
}

func (q *Queue[V, P]) Push(val V, priority P) {
	pos := sort.Search(len(q.items), func(i int) bool {
		return priority < q.items[i].prior
	})
	if q.cap >= 0 && pos >= q.cap {
		return
	}
	var zero item[V, P]
	q.items = append(q.items, zero)
	copy(q.items[pos+1:], q.items[pos:])
	q.items[pos] = item[V, P]{value: val, prior: priority}
	if q.cap >= 0 && q.cap < len(q.items) {
		q.items = q.items[:q.cap]
	}
}

func (q *Queue[V, P]) Len() int { return len(q.items) }

func (q *Queue[V, P]) Seek(idx int) (V, P) {
	it := q.items[idx]
	return it.value, it.prior
}
