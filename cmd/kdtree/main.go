package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-sod/kdtree/internal/bench"
	"github.com/go-sod/kdtree/internal/bench/model"
	"github.com/go-sod/kdtree/internal/buildinfo"
	"github.com/go-sod/kdtree/internal/config"
	"github.com/go-sod/kdtree/internal/logging"
	"github.com/go-sod/kdtree/internal/runenv"
	"github.com/go-sod/kdtree/internal/setup"
	"github.com/go-sod/kdtree/internal/shutdown"
	"github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"
)

var errNoDatabase = errors.New("no database configured, set KDTREE_DB_FILE or [database] file")

func main() {
	ctx, done := shutdown.New()
	defer done()
	if err := run(ctx, os.Args, os.Stdout); err != nil {
		logging.FromContext(ctx).Fatal(err)
	}
}

// command carries what Before resolves for the actions.
type command struct {
	env *runenv.RunEnv
}

func run(ctx context.Context, args []string, w io.Writer) error {
	c := &command{}
	app := &cli.App{
		Name:    "kdtree",
		Usage:   "exercise and benchmark an in-memory k-d tree",
		Version: buildinfo.Info.Version(),
		Writer:  w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "toml file overriding environment configuration",
				EnvVars: []string{"KDTREE_CONFIG"},
			},
		},
		Before: c.before,
		After:  c.after,
	}
	app.Commands = []*cli.Command{
		{
			Name:   "demo",
			Usage:  "run the fixed 2-d scenario and draw the tree after each step",
			Action: c.demo,
		},
		{
			Name:  "bench",
			Usage: "time insert, contains, nearest and erase on random points",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "points", Usage: "points per trial"},
				&cli.IntFlag{Name: "dims", Usage: "dimensions of the points"},
				&cli.IntFlag{Name: "trials", Usage: "independent trials, one tree each"},
				&cli.IntFlag{Name: "concurrency", Usage: "trials running at once"},
				&cli.StringFlag{Name: "out-dir", Usage: "directory of the timing files"},
			},
			Action: c.bench,
		},
		{
			Name:   "runs",
			Usage:  "list stored benchmark runs",
			Action: c.runs,
		},
	}
	return app.RunContext(ctx, args)
}

func (c *command) before(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.Context, cctx.String("config"))
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}
	logger := logging.NewLogger(cfg.Logging.Level, cfg.Logging.Development)
	cctx.Context = logging.WithLogger(cctx.Context, logger)
	logger.Debugf("%s%s", buildinfo.Graffiti, buildinfo.Info.Version())

	env, err := setup.Setup(cctx.Context, cfg)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	c.env = env
	return nil
}

func (c *command) after(cctx *cli.Context) error {
	logger := logging.FromContext(cctx.Context)
	if err := c.env.Close(cctx.Context); err != nil {
		return fmt.Errorf("env.Close: %w", err)
	}
	_ = logger.Sync()
	return nil
}

func (c *command) demo(cctx *cli.Context) error {
	return bench.Demo(cctx.App.Writer)
}

func (c *command) bench(cctx *cli.Context) error {
	ctx := cctx.Context
	logger := logging.FromContext(ctx)

	var opts []bench.Option
	if cctx.IsSet("points") {
		opts = append(opts, bench.WithPoints(cctx.Int("points")))
	}
	if cctx.IsSet("dims") {
		opts = append(opts, bench.WithDims(cctx.Int("dims")))
	}
	if cctx.IsSet("trials") {
		opts = append(opts, bench.WithTrials(cctx.Int("trials")))
	}
	if cctx.IsSet("concurrency") {
		opts = append(opts, bench.WithConcurrency(cctx.Int("concurrency")))
	}
	if cctx.IsSet("out-dir") {
		opts = append(opts, bench.WithOutDir(cctx.String("out-dir")))
	}
	runner, err := c.env.ProvideBench()(opts...)
	if err != nil {
		return fmt.Errorf("bench.New: %w", err)
	}

	run, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("runner.Run: %w", err)
	}
	if runs := c.env.Runs(); runs != nil {
		if err := runs.Store(ctx, run); err != nil {
			return fmt.Errorf("runs.Store: %w", err)
		}
	} else {
		logger.Debug("no database configured, run not stored")
	}
	return printRuns(cctx.App.Writer, run)
}

func (c *command) runs(cctx *cli.Context) error {
	store := c.env.Runs()
	if store == nil {
		return errNoDatabase
	}
	runs, err := store.Runs(cctx.Context)
	if err != nil {
		return fmt.Errorf("runs.Runs: %w", err)
	}
	if len(runs) == 0 {
		_, err := fmt.Fprintln(cctx.App.Writer, "no runs stored")
		return err
	}
	return printRuns(cctx.App.Writer, runs...)
}

func printRuns(w io.Writer, runs ...model.Run) error {
	for _, run := range runs {
		view := treeprint.NewWithRoot(run.ID.String())
		view.AddMetaNode("created", run.CreatedAt.Format("2006-01-02 15:04:05"))
		view.AddMetaNode("shape", strconv.Itoa(run.Trials)+" x "+strconv.Itoa(run.Points)+" points, "+strconv.Itoa(run.Dims)+" dims")
		view.AddMetaNode("distance", run.Distance)
		ops := view.AddBranch("ops")
		for _, op := range run.Ops {
			ops.AddMetaNode(op.Op, fmt.Sprintf("n=%d mean=%.3fus max=%.3fus", op.Count, op.MeanMicros, op.MaxMicros))
		}
		if _, err := io.WriteString(w, view.String()); err != nil {
			return err
		}
	}
	return nil
}
