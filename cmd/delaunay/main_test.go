package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DubiousDoggo/delaunay-visualizer/advanced"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	cfg := DefaultConfig()
	app := newApp(&cfg)
	_, err := app.Parse([]string{"-n", "10", "--seed", "7", "--no-color", "--png", "out.png", "-t"})
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Count)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 600, cfg.Range)
	assert.Equal(t, "out.png", cfg.PNG)
	assert.False(t, cfg.Color)
	assert.True(t, cfg.Trace)
	assert.Equal(t, 1.0, cfg.Scale)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 12\nseed: 99\ncheck: true\n"), 0o644))

	cfg := DefaultConfig()
	cfg.PNG = "kept.png"
	require.NoError(t, LoadConfig(path, &cfg))
	assert.Equal(t, 12, cfg.Count)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.True(t, cfg.Check)
	assert.Equal(t, "kept.png", cfg.PNG, "keys missing from the file are untouched")
	assert.Equal(t, 600, cfg.Range)

	require.NoError(t, os.WriteFile(path, []byte("cuont: 12\n"), 0o644))
	assert.Error(t, LoadConfig(path, &cfg))
	assert.Error(t, LoadConfig(filepath.Join(dir, "missing.yaml"), &cfg))
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Count = 1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Range = advanced.MaxCoordinate + 1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Range = 3
	cfg.Count = 10
	assert.Error(t, cfg.Validate())

	// Input files bring their own points
	cfg.Input = "points.txt"
	assert.NoError(t, cfg.Validate())

	cfg.Scale = 0
	assert.Error(t, cfg.Validate())
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Count = 30
	cfg.Range = 200
	cfg.Color = false
	cfg.Check = true
	cfg.Trace = true
	cfg.Names = true
	cfg.PNG = filepath.Join(dir, "out.png")
	cfg.SVG = filepath.Join(dir, "out.svg")
	cfg.Dot = filepath.Join(dir, "out.dot")
	cfg.Frames = filepath.Join(dir, "frames")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(cfg, &stdout, &stderr))

	out := stdout.String()
	assert.Contains(t, out, "points 30  edges ")
	assert.Contains(t, out, "delaunay ok")
	assert.Contains(t, out, "step    1 ")
	assert.NotContains(t, out, "\x1b[", "colour is off")

	for _, path := range []string{cfg.PNG, cfg.SVG, cfg.Dot, filepath.Join(cfg.Frames, "step0000.png")} {
		assert.FileExists(t, path)
	}
	assert.Contains(t, stderr.String(), "wrote frames")
	assert.NotContains(t, stderr.String(), "level=DEBUG")
}

func TestRunDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Color = false

	var first, second, stderr bytes.Buffer
	require.NoError(t, run(cfg, &first, &stderr))
	require.NoError(t, run(cfg, &second, &stderr))
	assert.Equal(t, first.String(), second.String())
	assert.True(t, strings.HasPrefix(first.String(), "points 50  "))
}

func TestRunInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "points.txt")
	require.NoError(t, os.WriteFile(input, []byte("4 4\n0 0\n4 0\n0 4\n0 0\n"), 0o644))

	cfg := DefaultConfig()
	cfg.Input = input
	cfg.Color = false
	cfg.Dump = true
	cfg.Verbose = true

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(cfg, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "points 4  edges 5  triangles 2  hull 4")
	assert.Contains(t, stdout.String(), "Name:")
	assert.Contains(t, stderr.String(), "dropped duplicate points")
	assert.Contains(t, stderr.String(), "delaunay enter")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	cfg := DefaultConfig()
	cfg.Input = filepath.Join(dir, "missing.txt")
	assert.Error(t, run(cfg, &stdout, &stderr))

	single := filepath.Join(dir, "single.txt")
	require.NoError(t, os.WriteFile(single, []byte("1 1\n1 1\n"), 0o644))
	cfg.Input = single
	err := run(cfg, &stdout, &stderr)
	assert.True(t, errors.Is(err, advanced.ErrTooFewPoints), "got %v", err)

	far := filepath.Join(dir, "far.txt")
	require.NoError(t, os.WriteFile(far, []byte("0 0\n99999 0\n"), 0o644))
	cfg.Input = far
	err = run(cfg, &stdout, &stderr)
	assert.True(t, errors.Is(err, advanced.ErrCoordinateRange), "got %v", err)
}
