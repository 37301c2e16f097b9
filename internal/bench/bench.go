// Package bench times the tree operations on random points and writes the
// timings as csv files.
package bench

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-sod/kdtree/internal/bench/model"
	"github.com/go-sod/kdtree/internal/geom"
	"github.com/go-sod/kdtree/internal/logging"
	"github.com/go-sod/kdtree/pkg/container/kdtree"
	"github.com/valyala/fastrand"
	"golang.org/x/sync/errgroup"
)

var (
	ErrBadPoints      = errors.New("bench: points must be positive")
	ErrBadDims        = errors.New("bench: dims must be positive")
	ErrBadTrials      = errors.New("bench: trials must be positive")
	ErrBadConcurrency = errors.New("bench: concurrency must be positive")
	ErrNoDistance     = errors.New("bench: distance function is not set")
)

// ProvideFn builds a runner from configuration; opts override it.
type ProvideFn func(opts ...Option) (*Runner, error)

type Option func(*Runner)

func WithPoints(n int) Option {
	return func(r *Runner) {
		r.points = n
	}
}

func WithDims(n int) Option {
	return func(r *Runner) {
		r.dims = n
	}
}

func WithTrials(n int) Option {
	return func(r *Runner) {
		r.trials = n
	}
}

func WithConcurrency(n int) Option {
	return func(r *Runner) {
		r.concurrency = n
	}
}

func WithOutDir(dir string) Option {
	return func(r *Runner) {
		r.outDir = dir
	}
}

// WithDistance sets the nearest neighbor metric. name is recorded in the run.
func WithDistance(name string, dist kdtree.Distance[geom.Point, float64]) Option {
	return func(r *Runner) {
		r.distName = name
		r.dist = dist
	}
}

type Runner struct {
	points      int
	dims        int
	trials      int
	concurrency int
	outDir      string
	distName    string
	dist        kdtree.Distance[geom.Point, float64]

	now func() time.Time
}

func New(opts ...Option) (*Runner, error) {
	r := &Runner{
		points:      1000,
		dims:        2,
		trials:      1,
		concurrency: 1,
		outDir:      ".",
		distName:    string(geom.DistanceFuncTypeEuclidean),
		dist:        kdtree.DistanceFunc[geom.Point, float64](geom.Euclidean),
		now:         time.Now,
	}
	for _, f := range opts {
		f(r)
	}

	switch {
	case r.points <= 0:
		return nil, ErrBadPoints
	case r.dims <= 0:
		return nil, ErrBadDims
	case r.trials <= 0:
		return nil, ErrBadTrials
	case r.concurrency <= 0:
		return nil, ErrBadConcurrency
	case r.dist == nil:
		return nil, ErrNoDistance
	}
	return r, nil
}

// timings of one trial, indexed like model.Ops
type trialTimings [4][]time.Duration

// Run executes every trial, each on its own tree, and writes the timing
// files into the output directory.
func (r *Runner) Run(ctx context.Context) (model.Run, error) {
	logger := logging.FromContext(ctx)
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return model.Run{}, fmt.Errorf("create output dir: %w", err)
	}

	run := model.NewRun(r.points, r.dims, r.trials, r.distName, r.now())
	results := make([]trialTimings, r.trials)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i := 0; i < r.trials; i++ {
		trial := i
		g.Go(func() error {
			timings, err := r.trial(gCtx, trial)
			if err != nil {
				return fmt.Errorf("trial %d: %w", trial, err)
			}
			results[trial] = timings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.Run{}, err
	}

	for op, name := range model.Ops {
		var all []time.Duration
		for _, res := range results {
			all = append(all, res[op]...)
		}
		run.Ops = append(run.Ops, model.Summarize(name, all))
	}
	logger.Infof("benchmark run %s finished: %d trials of %d points", run.ID, r.trials, r.points)
	return run, nil
}

func (r *Runner) trial(ctx context.Context, n int) (trialTimings, error) {
	logger := logging.FromContext(ctx)
	var res trialTimings

	tree, err := kdtree.New[geom.Point, float64](r.dims, geom.Accessor)
	if err != nil {
		return res, fmt.Errorf("create tree: %w", err)
	}
	var rng fastrand.RNG

	points := make([]geom.Point, 0, r.points)
	timings := make([]time.Duration, 0, r.points)
	for len(points) < r.points {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		p := r.randomPoint(&rng)
		start := time.Now()
		ok := tree.Insert(p)
		elapsed := time.Since(start)
		if ok {
			points = append(points, p)
			timings = append(timings, elapsed)
		}
	}
	res[0] = timings

	res[1], err = timeEach(ctx, points, func(p geom.Point) bool {
		return tree.Contains(p)
	})
	if err != nil {
		return res, err
	}

	queries := make([]geom.Point, len(points))
	for i := range queries {
		queries[i] = r.randomPoint(&rng)
	}
	res[2], err = timeEach(ctx, queries, func(q geom.Point) bool {
		return tree.NearestNeighbor(q, r.dist) != nil
	})
	if err != nil {
		return res, err
	}

	res[3], err = timeEach(ctx, points, func(p geom.Point) bool {
		return tree.Erase(p)
	})
	if err != nil {
		return res, err
	}
	if !tree.Empty() {
		return res, fmt.Errorf("tree holds %d points after erasing all of them", tree.Len())
	}

	for op, name := range model.Ops {
		path := filepath.Join(r.outDir, r.fileName(name, n))
		logger.Debugf("writing %d %s timings to %s", len(res[op]), name, path)
		if err := writeTimings(path, res[op]); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (r *Runner) randomPoint(rng *fastrand.RNG) geom.Point {
	p := make(geom.Point, r.dims)
	for i := range p {
		p[i] = float64(rng.Uint32()) / (1 << 32)
	}
	return p
}

func (r *Runner) fileName(op string, trial int) string {
	if r.trials == 1 {
		return op + ".dat"
	}
	return op + "-" + strconv.Itoa(trial) + ".dat"
}

// timeEach times fn for every value. fn must report true for every value.
func timeEach(ctx context.Context, values []geom.Point, fn func(geom.Point) bool) ([]time.Duration, error) {
	timings := make([]time.Duration, len(values))
	for i, v := range values {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		ok := fn(v)
		timings[i] = time.Since(start)
		if !ok {
			return nil, fmt.Errorf("operation failed for %s", v)
		}
	}
	return timings, nil
}

func writeTimings(path string, timings []time.Duration) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create timings file: %w", err)
	}
	w := csv.NewWriter(f)
	for i, d := range timings {
		if err := w.Write([]string{
			strconv.Itoa(i),
			strconv.FormatFloat(model.Micros(d), 'f', -1, 64),
		}); err != nil {
			f.Close()
			return fmt.Errorf("write timings: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush timings: %w", err)
	}
	return f.Close()
}
