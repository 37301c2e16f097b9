package bench

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-sod/kdtree/internal/geom"
	"github.com/go-sod/kdtree/internal/render"
	"github.com/go-sod/kdtree/pkg/container/kdtree"
)

var demoPoints = []geom.Point{{7, 2}, {5, 4}, {9, 6}, {2, 3}, {4, 7}, {8, 1}}

// Demo runs a fixed scenario on a 2-d tree and writes every result and the
// tree diagram after each mutation.
func Demo(w io.Writer) error {
	tree, err := kdtree.New[geom.Point, float64](2, geom.Accessor)
	if err != nil {
		return fmt.Errorf("create tree: %w", err)
	}
	d := &demo{w: w, tree: tree}

	for _, p := range demoPoints {
		d.printf("insert %s: %t\n", p, tree.Insert(p.Copy()))
		d.diagram()
	}
	last := demoPoints[len(demoPoints)-1].Copy()
	d.printf("insert %s: %t\n", last, tree.Insert(last))
	d.diagram()

	d.printf("contains %s: %t\n\n", last, tree.Contains(last))
	d.printf("erase %s: %t\n", last, tree.Erase(last))
	d.diagram()
	d.printf("contains %s: %t\n\n", last, tree.Contains(last))

	for i := 0; i < tree.Dimensions(); i++ {
		d.printf("min %d: %s\n", i, *tree.Min(i))
	}
	d.printf("\n")

	lo, hi := geom.Point{2, 3}, geom.Point{9, 6}
	found := tree.Range(lo, hi)
	labels := make([]string, len(found))
	for i, p := range found {
		labels[i] = p.String()
	}
	d.printf("range %s, %s: %s\n\n", lo, hi, strings.Join(labels, ", "))

	q := geom.Point{1, 1}
	d.printf("nearest neighbor %s: %s\n\n", q, *tree.NearestNeighbor(q, kdtree.DistanceFunc[geom.Point, float64](geom.Euclidean)))

	d.branches()
	d.printf("clear\n")
	tree.Clear()
	d.diagram()
	d.printf("empty: %t\n", tree.Empty())
	return d.err
}

// demo keeps the first write error and turns later writes into no-ops.
type demo struct {
	w    io.Writer
	tree *kdtree.Tree[geom.Point, float64]
	err  error
}

func (d *demo) printf(format string, args ...interface{}) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *demo) branches() {
	if d.err != nil {
		return
	}
	view, err := render.Branches(d.tree, geom.Point.String)
	if err != nil {
		d.err = err
		return
	}
	d.printf("branches:\n%s\n", view.String())
}

func (d *demo) diagram() {
	if d.err != nil {
		return
	}
	if d.err = render.Diagram(d.w, d.tree, geom.Point.String); d.err != nil {
		return
	}
	d.printf("\n")
}
