package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	delaunay "github.com/DubiousDoggo/delaunay-visualizer"
	"github.com/DubiousDoggo/delaunay-visualizer/advanced"
	"github.com/DubiousDoggo/delaunay-visualizer/dbg"
	"github.com/DubiousDoggo/delaunay-visualizer/generate"
	"github.com/DubiousDoggo/delaunay-visualizer/quadedge"
	"github.com/DubiousDoggo/delaunay-visualizer/render"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

func newLogger(cfg Config, stderr io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func loadPoints(cfg Config) ([]advanced.Point, error) {
	if cfg.Input == "" {
		rnd := rand.New(rand.NewSource(cfg.Seed))
		return generate.RandomPoints(rnd, cfg.Count, 0, cfg.Range), nil
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(cfg.Input), ".svg") {
		return advanced.ReadPointsSVG(f)
	}
	return advanced.ReadPoints(f)
}

// tracer prints one line per builder step.
type tracer struct {
	w     io.Writer
	au    aurora.Aurora
	steps int
}

func (t *tracer) Step(left, right quadedge.Edge) {
	t.steps++
	fmt.Fprintf(t.w, "%s %s %s  %s %s\n",
		t.au.Yellow(fmt.Sprintf("step %4d", t.steps)),
		t.au.Cyan(dbg.EdgeName(left)), left,
		t.au.Magenta(dbg.EdgeName(right)), right)
}

func run(cfg Config, stdout, stderr io.Writer) error {
	logger := newLogger(cfg, stderr)
	if cfg.Verbose {
		advanced.SetLogger(logger)
		defer advanced.SetLogger(nil)
	}
	au := aurora.NewAurora(cfg.Color)

	points, err := loadPoints(cfg)
	if err != nil {
		return err
	}
	read := len(points)
	advanced.SortPoints(points)
	points = advanced.Dedupe(points)
	if dropped := read - len(points); dropped > 0 {
		logger.Info("dropped duplicate points", "count", dropped)
	}

	style := render.DefaultStyle
	style.Scale = cfg.Scale
	style.PointLabels = cfg.Labels
	if cfg.Names {
		style.EdgeLabel = dbg.EdgeName
	}

	var observers []advanced.StepObserver
	if cfg.Trace {
		observers = append(observers, &tracer{w: stdout, au: au})
	}
	var frames *render.FrameRecorder
	if cfg.Frames != "" {
		frames, err = render.NewFrameRecorder(cfg.Frames, points, style)
		if err != nil {
			return err
		}
		observers = append(observers, frames)
	}

	var opts []delaunay.Option
	if len(observers) > 0 {
		opts = append(opts, delaunay.WithObserver(advanced.Observers(observers...)))
	}
	result, err := delaunay.Triangulate(points, opts...)
	if err != nil {
		return errors.Wrap(err, "triangulating")
	}
	defer result.Release()

	if frames != nil {
		if err := frames.Err(); err != nil {
			return err
		}
		logger.Info("wrote frames", "dir", cfg.Frames, "count", frames.Frames())
	}

	triangles := result.Triangles()
	stats := result.Stats()
	fmt.Fprintf(stdout, "%s %d  %s %d  %s %d  %s %d\n",
		au.Bold("points"), len(points),
		au.Bold("edges"), len(result.Edges())/2,
		au.Bold("triangles"), len(triangles),
		au.Bold("hull"), len(result.Hull()))
	logger.Info("built", "made", stats.Made, "deleted", stats.Deleted, "merges", stats.Merges, "steps", stats.Steps)

	if cfg.Check {
		if err := advanced.CheckDelaunay(result.Points(), triangles); err != nil {
			fmt.Fprintln(stdout, au.Red("not delaunay"))
			return err
		}
		fmt.Fprintln(stdout, au.Green("delaunay ok"))
	}

	if cfg.Dump {
		dbg.DumpEdges(stdout, result.Left, result.Right)
	}

	return writeOutputs(cfg, result, style, stdout, logger)
}

func writeOutputs(cfg Config, result *delaunay.Triangulation, style render.Style, stdout io.Writer, logger *slog.Logger) error {
	scene := render.NewScene(style, result.Left, result.Right)

	pngPath := cfg.PNG
	if pngPath == "" && cfg.Imgcat {
		f, err := os.CreateTemp("", "delaunay-*.png")
		if err != nil {
			return errors.Wrap(err, "creating preview file")
		}
		f.Close()
		defer os.Remove(f.Name())
		pngPath = f.Name()
	}
	if pngPath != "" {
		if err := scene.SavePNG(pngPath, style); err != nil {
			return err
		}
		if cfg.PNG != "" {
			logger.Info("wrote png", "path", cfg.PNG)
		}
	}
	if cfg.Imgcat {
		if err := render.Preview(pngPath, stdout); err != nil {
			return err
		}
	}

	if cfg.SVG != "" {
		if err := writeFile(cfg.SVG, func(w io.Writer) error { return scene.WriteSVG(w, style) }); err != nil {
			return err
		}
		logger.Info("wrote svg", "path", cfg.SVG)
	}
	if cfg.Dot != "" {
		if err := writeFile(cfg.Dot, result.WriteDot); err != nil {
			return err
		}
		logger.Info("wrote dot", "path", cfg.Dot)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
