package bench

import "github.com/go-sod/kdtree/internal/geom"

type Config struct {
	Points      int                   `envconfig:"KDTREE_BENCH_POINTS" default:"1000" toml:"points"`
	Dims        int                   `envconfig:"KDTREE_BENCH_DIMS" default:"2" toml:"dims"`
	Trials      int                   `envconfig:"KDTREE_BENCH_TRIALS" default:"1" toml:"trials"`
	OutDir      string                `envconfig:"KDTREE_BENCH_OUT_DIR" default:"." toml:"out_dir"`
	Distance    geom.DistanceFuncType `envconfig:"KDTREE_BENCH_DISTANCE" default:"EUCLIDEAN" toml:"distance"`
	Concurrency int                   `envconfig:"KDTREE_BENCH_CONCURRENCY" default:"4" toml:"concurrency"`
}
