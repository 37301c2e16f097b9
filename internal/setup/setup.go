// Package setup turns a loaded configuration into a run environment.
package setup

import (
	"context"
	"fmt"

	"github.com/go-sod/kdtree/internal/bench"
	benchdb "github.com/go-sod/kdtree/internal/bench/database"
	"github.com/go-sod/kdtree/internal/database"
	"github.com/go-sod/kdtree/internal/geom"
	"github.com/go-sod/kdtree/internal/logging"
	"github.com/go-sod/kdtree/internal/runenv"
)

type DatabaseConfigProvider interface {
	DatabaseConfig() *database.Config
}

type BenchConfigProvider interface {
	BenchConfig() *bench.Config
}

// Setup wires the parts config provides. The returned environment must be
// closed by the caller.
func Setup(ctx context.Context, config interface{}) (*runenv.RunEnv, error) {
	logger := logging.FromContext(ctx)
	var (
		envOpts []runenv.Option
		db      *database.DB
	)
	closeDB := func() {
		if db == nil {
			return
		}
		if err := db.Close(ctx); err != nil {
			logger.Warnf("closing database: %v", err)
		}
	}

	if dbConfigProvider, ok := config.(DatabaseConfigProvider); ok && dbConfigProvider.DatabaseConfig().Enabled() {
		logger.Info("configuring db")
		opened, err := database.NewFromEnv(ctx, dbConfigProvider.DatabaseConfig())
		if err != nil {
			return nil, fmt.Errorf("unable to open database: %w", err)
		}
		db = opened
		runs, err := benchdb.New(db)
		if err != nil {
			closeDB()
			return nil, fmt.Errorf("unable to create run store: %w", err)
		}
		envOpts = append(envOpts, runenv.WithDatabase(db), runenv.WithRuns(runs))
	}

	if benchConfigProvider, ok := config.(BenchConfigProvider); ok {
		logger.Debug("configuring bench")
		provideFn, err := ProvideBenchFor(benchConfigProvider)
		if err != nil {
			closeDB()
			return nil, fmt.Errorf("unable create bench provide function: %w", err)
		}
		envOpts = append(envOpts, runenv.WithBench(provideFn))
	}

	return runenv.New(envOpts...), nil
}

func ProvideBenchFor(provider BenchConfigProvider) (bench.ProvideFn, error) {
	cfg := provider.BenchConfig()
	distFunc, err := geom.DistanceFuncFor(cfg.Distance)
	if err != nil {
		return nil, fmt.Errorf("unable provide distance function: %w", err)
	}
	return func(opts ...bench.Option) (*bench.Runner, error) {
		return bench.New(append([]bench.Option{
			bench.WithPoints(cfg.Points),
			bench.WithDims(cfg.Dims),
			bench.WithTrials(cfg.Trials),
			bench.WithOutDir(cfg.OutDir),
			bench.WithConcurrency(cfg.Concurrency),
			bench.WithDistance(string(cfg.Distance), distFunc),
		}, opts...)...)
	}, nil
}
