// Package runenv holds what a command needs once configuration is resolved.
package runenv

import (
	"context"

	"github.com/go-sod/kdtree/internal/bench"
	benchdb "github.com/go-sod/kdtree/internal/bench/database"
	"github.com/go-sod/kdtree/internal/database"
)

type Option func(*RunEnv) *RunEnv

func New(opts ...Option) *RunEnv {
	env := &RunEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

type RunEnv struct {
	database *database.DB
	runs     *benchdb.DB
	bench    bench.ProvideFn
}

func (s *RunEnv) ProvideBench() bench.ProvideFn {
	return s.bench
}

// Runs returns the run store, nil when no database is configured.
func (s *RunEnv) Runs() *benchdb.DB {
	return s.runs
}

func WithBench(fn bench.ProvideFn) Option {
	return func(s *RunEnv) *RunEnv {
		s.bench = fn
		return s
	}
}

func WithRuns(runs *benchdb.DB) Option {
	return func(s *RunEnv) *RunEnv {
		s.runs = runs
		return s
	}
}

func WithDatabase(db *database.DB) Option {
	return func(s *RunEnv) *RunEnv {
		s.database = db
		return s
	}
}

func (s *RunEnv) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}

	if s.database != nil {
		return s.database.Close(ctx)
	}
	return nil
}
