package kdtree

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	ErrBadDimensions = errors.New("kdtree: dimensions must be positive")
	ErrNilAccessor   = errors.New("kdtree: nil dimension accessor")
	ErrBadK          = errors.New("kdtree: k must be positive")
)

// Scalar is the type of a coordinate and of a distance between two values.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// DimAccessor returns the coordinate of v along dimension d. It must be pure
// and define a total order per dimension.
type DimAccessor[T any, C Scalar] interface {
	Dim(v T, d int) C
}

// DimFunc adapts an ordinary function to a DimAccessor.
type DimFunc[T any, C Scalar] func(v T, d int) C

func (f DimFunc[T, C]) Dim(v T, d int) C {
	return f(v, d)
}

// Distance returns a non-negative distance between two values. For nearest
// neighbor results to be exact the per-axis coordinate difference must never
// exceed the distance.
type Distance[T any, C Scalar] interface {
	Distance(a, b T) C
}

// DistanceFunc adapts an ordinary function to a Distance.
type DistanceFunc[T any, C Scalar] func(a, b T) C

func (f DistanceFunc[T, C]) Distance(a, b T) C {
	return f(a, b)
}
