package advanced

import (
	"log/slog"

	"github.com/DubiousDoggo/delaunay-visualizer/quadedge"
)

type options struct {
	observer StepObserver
	logger   *slog.Logger
	graph    *quadedge.Graph
}

// Option configures a Builder.
type Option func(*options)

// WithObserver installs a step observer. It is called after every structural
// change the builder makes. Use Observers to install more than one.
func WithObserver(o StepObserver) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// WithLogger overrides the package logger for one builder.
func WithLogger(l *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = l
	}
}

// WithGraph makes the builder allocate its edges in an existing graph, so
// several triangulations can share one arena. By default every builder gets
// a graph of its own.
func WithGraph(g *quadedge.Graph) Option {
	return func(opts *options) {
		opts.graph = g
	}
}
