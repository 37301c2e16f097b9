package geom

import (
	"testing"
)

func TestChebyshevDistance(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		p1       Point
		expected float64
	}{
		{name: "positive", p: Point{1.2, 2.0}, p1: Point{2.0, 3.0}, expected: 1},
		{name: "positive", p: Point{10, 2.0}, p1: Point{5, 3.0}, expected: 5},
		{name: "same", p: Point{5, 2.0}, p1: Point{5, 2.0}, expected: 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Chebyshev(test.p, test.p1)
			if got != test.expected {
				t.Errorf(
					"the distance obtained does not correspond to the expected distance, got %f, expected %f",
					got, test.expected)
			}
		})
	}
}

func TestEuclideanDistance(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		p1       Point
		expected float64
	}{
		{name: "positive", p: Point{1.2, 2.0}, p1: Point{2.0, 3.0}, expected: 1.2806248474865698},
		{name: "positive", p: Point{10, 2.0}, p1: Point{5, 3.0}, expected: 5.0990195135927845},
		{name: "pythagorean", p: Point{0, 0}, p1: Point{3, 4}, expected: 5},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Euclidean(test.p, test.p1)
			if got != test.expected {
				t.Errorf(
					"the distance obtained does not correspond to the expected distance, got %f, expected %f",
					got, test.expected)
			}
		})
	}
}

func TestManhattanDistance(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		p1       Point
		expected float64
	}{
		{name: "positive", p: Point{1, 2.0}, p1: Point{2.5, 3.0}, expected: 2.5},
		{name: "positive", p: Point{10, 2.0}, p1: Point{5, 3.0}, expected: 6},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Manhattan(test.p, test.p1)
			if got != test.expected {
				t.Errorf(
					"the distance obtained does not correspond to the expected distance, got %f, expected %f",
					got, test.expected)
			}
		})
	}
}

func TestDistanceFuncFor(t *testing.T) {
	tests := []struct {
		name     string
		typ      DistanceFuncType
		expected float64
		err      bool
	}{
		{name: "euclidean", typ: DistanceFuncTypeEuclidean, expected: 5},
		{name: "chebyshev", typ: DistanceFuncTypeChebyshev, expected: 4},
		{name: "manhattan", typ: DistanceFuncTypeManhattan, expected: 7},
		{name: "unknown", typ: "HAMMING", err: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dist, err := DistanceFuncFor(test.typ)
			if test.err {
				if err == nil {
					t.Errorf("an unknown distance function %q must return an error", test.typ)
				}
				return
			}
			if err != nil {
				t.Fatalf("the error should not be returned: %v", err)
			}
			if got := dist.Distance(Point{0, 0}, Point{3, 4}); got != test.expected {
				t.Errorf("distance got %f, expected %f", got, test.expected)
			}
		})
	}
}
