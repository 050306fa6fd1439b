package main

import (
	"os"

	"gopkg.in/alecthomas/kingpin.v2"
)

// Triangulate a point set and show the result. Points are either generated at
// random or read from a file of "x y" lines or from the circles and polygons
// of an SVG.
func main() {
	cfg := DefaultConfig()
	app := newApp(&cfg)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if cfg.ConfigFile != "" {
		app.FatalIfError(LoadConfig(cfg.ConfigFile, &cfg), "config")
	}
	app.FatalIfError(cfg.Validate(), "config")
	app.FatalIfError(run(cfg, os.Stdout, os.Stderr), "")
}

func newApp(cfg *Config) *kingpin.Application {
	app := kingpin.New("delaunay", "Delaunay triangulation with the Guibas-Stolfi divide and conquer algorithm.")

	app.Flag("count", "Number of random points.").Short('n').Default("50").IntVar(&cfg.Count)
	app.Flag("range", "Random points are drawn from [0, range)².").Short('r').Default("600").IntVar(&cfg.Range)
	app.Flag("seed", "Random seed.").Short('s').Default("1").Int64Var(&cfg.Seed)
	app.Flag("input", "Read points from a text or .svg file instead.").Short('i').StringVar(&cfg.Input)

	app.Flag("png", "Write the triangulation as PNG.").StringVar(&cfg.PNG)
	app.Flag("svg", "Write the triangulation as SVG.").StringVar(&cfg.SVG)
	app.Flag("dot", "Write the quad-edge rings as graphviz.").StringVar(&cfg.Dot)
	app.Flag("frames", "Write one PNG per construction step into this directory.").StringVar(&cfg.Frames)
	app.Flag("scale", "Pixels per unit.").Default("1").Float64Var(&cfg.Scale)
	app.Flag("labels", "Label points with their coordinates.").BoolVar(&cfg.Labels)
	app.Flag("names", "Label edges with readable record names.").BoolVar(&cfg.Names)
	app.Flag("imgcat", "Show the PNG in the terminal (iTerm2).").BoolVar(&cfg.Imgcat)

	app.Flag("trace", "Print every construction step.").Short('t').BoolVar(&cfg.Trace)
	app.Flag("dump", "Dump every directed edge after construction.").BoolVar(&cfg.Dump)
	app.Flag("check", "Verify the empty circumcircle property.").BoolVar(&cfg.Check)
	app.Flag("verbose", "Log builder internals.").Short('v').BoolVar(&cfg.Verbose)
	app.Flag("color", "Colour the output.").Default("true").BoolVar(&cfg.Color)
	app.Flag("config", "YAML file overriding the flags.").Short('c').StringVar(&cfg.ConfigFile)

	return app
}
