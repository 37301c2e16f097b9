package geom

import (
	"fmt"
	"math"

	"github.com/go-sod/kdtree/pkg/container/kdtree"
)

type DistanceFuncType string

const (
	DistanceFuncTypeEuclidean DistanceFuncType = "EUCLIDEAN"
	DistanceFuncTypeChebyshev DistanceFuncType = "CHEBYSHEV"
	DistanceFuncTypeManhattan DistanceFuncType = "MANHATTAN"
)

// Points passed to the distances below must have the same dimension; a tree
// guarantees it for the values it stores.

func Euclidean(p, p1 Point) float64 {
	var d float64
	for i := 0; i < len(p); i++ {
		diff := p[i] - p1[i]
		d += diff * diff
	}
	return math.Sqrt(d)
}

func Chebyshev(p, p1 Point) float64 {
	var distance float64
	for i := 0; i < len(p); i++ {
		if abs := math.Abs(p[i] - p1[i]); distance < abs {
			distance = abs
		}
	}
	return distance
}

func Manhattan(p, p1 Point) float64 {
	var distance float64
	for i := 0; i < len(p); i++ {
		distance += math.Abs(p[i] - p1[i])
	}
	return distance
}

func DistanceFuncFor(d DistanceFuncType) (kdtree.Distance[Point, float64], error) {
	switch d {
	case DistanceFuncTypeEuclidean:
		return kdtree.DistanceFunc[Point, float64](Euclidean), nil
	case DistanceFuncTypeChebyshev:
		return kdtree.DistanceFunc[Point, float64](Chebyshev), nil
	case DistanceFuncTypeManhattan:
		return kdtree.DistanceFunc[Point, float64](Manhattan), nil
	default:
		return nil, fmt.Errorf("unknown distance function: %s", d)
	}
}
