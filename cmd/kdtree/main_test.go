package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Demo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"kdtree", "demo"}, &out))
	assert.Contains(t, out.String(), "nearest neighbor (1, 1): (2, 3)\n")
	assert.True(t, strings.HasSuffix(out.String(), "empty: true\n"))
}

func TestRun_BenchAndRuns(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KDTREE_DB_FILE", filepath.Join(dir, "runs.db"))
	t.Setenv("KDTREE_BENCH_DISTANCE", "CHEBYSHEV")
	ctx := context.Background()

	var out bytes.Buffer
	err := run(ctx, []string{"kdtree", "bench", "--points", "25", "--out-dir", dir}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "CHEBYSHEV")
	assert.Contains(t, out.String(), "n=25 ")
	for _, name := range []string{"insert.dat", "contains.dat", "nearest.dat", "erase.dat"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	var listed bytes.Buffer
	require.NoError(t, run(ctx, []string{"kdtree", "runs"}, &listed))
	firstLine := strings.SplitN(out.String(), "\n", 2)[0]
	assert.Contains(t, listed.String(), firstLine)
}

func TestRun_Config(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kdtree.toml")
	content := "[bench]\npoints = 15\ndims = 3\nout_dir = \"" + filepath.ToSlash(dir) + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"kdtree", "--config", path, "bench"}, &out))
	assert.Contains(t, out.String(), "1 x 15 points, 3 dims")
}

func TestRun_RunsWithoutDatabase(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"kdtree", "runs"}, &out)
	assert.ErrorIs(t, err, errNoDatabase)
}
