package geom

import (
	"strconv"
	"strings"

	"github.com/go-sod/kdtree/pkg/container/kdtree"
)

// Accessor reads Point coordinates for a kdtree.
var Accessor kdtree.DimAccessor[Point, float64] = kdtree.DimFunc[Point, float64](Coord)

type Point []float64

// Coord returns the coordinate of p along dimension d.
func Coord(p Point, d int) float64 {
	return p[d]
}

// Copy returns a point that shares no memory with v.
func (v Point) Copy() Point {
	v1 := make(Point, len(v))
	copy(v1, v)
	return v1
}

// String formats the point as "(x, y, ...)" with up to 4 significant digits.
func (v Point) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v[i], 'g', 4, 64))
	}
	b.WriteByte(')')
	return b.String()
}
