// Delaunay triangulation of integer point sets for Go.
//
// Points are triangulated with the Guibas-Stolfi divide and conquer algorithm
// on a quad-edge structure. All predicates are exact, so the result is a true
// Delaunay triangulation for any input within the coordinate bound.
package delaunay

import (
	"io"

	"github.com/DubiousDoggo/delaunay-visualizer/advanced"
	"github.com/DubiousDoggo/delaunay-visualizer/quadedge"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Triangle = advanced.Triangle
type Edge = quadedge.Edge
type Option = advanced.Option
type StepObserver = advanced.StepObserver
type StepFunc = advanced.StepFunc

const MaxCoordinate = advanced.MaxCoordinate

var ErrReleased = errors.New("triangulation already released")

// A Triangulation owns one connected quad-edge structure. Left is the
// counterclockwise hull edge out of the leftmost point, Right the clockwise
// hull edge out of the rightmost point.
type Triangulation struct {
	Left, Right Edge

	points   []Point
	stats    advanced.Stats
	released bool
}

// Take a set of distinct points, sorted by x and then y, and triangulate them.
// At least two points are needed and every coordinate must be within
// MaxCoordinate. Use advanced.SortPoints and advanced.Dedupe to prepare
// arbitrary input.
//
// The points are copied, so the caller may reuse the slice.
func Triangulate(points []Point, opts ...Option) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	owned := append([]Point(nil), points...)
	builder := advanced.NewBuilder(opts...)
	left, right := builder.Triangulate(owned)
	return &Triangulation{
		Left:   left,
		Right:  right,
		points: owned,
		stats:  builder.Stats(),
	}, nil
}

// Traverse lazily visits every directed edge reachable from the seeds once.
func Traverse(seeds ...Edge) *quadedge.EdgeIterator {
	return quadedge.Traverse(seeds...)
}

// Release frees the whole structure containing e and returns the number of
// edges freed. Releasing a structure twice panics.
func Release(e Edge) int {
	return quadedge.KillGraph(e)
}

func WithObserver(o StepObserver) Option {
	return advanced.WithObserver(o)
}

// The methods below panic once the triangulation has been released.

// Edges returns every directed edge, so each undirected edge appears twice.
func (t *Triangulation) Edges() []Edge {
	return Traverse(t.Left, t.Right).Collect()
}

func (t *Triangulation) Triangles() []Triangle {
	return advanced.Triangles(t.Left, t.Right)
}

// Hull returns the convex hull edges, interior on the left.
func (t *Triangulation) Hull() []Edge {
	return advanced.HullEdges(t.Left, t.Right)
}

// Points returns the triangulated points. Edge endpoints point into this
// slice, so it must not be modified.
func (t *Triangulation) Points() []Point {
	return t.points
}

func (t *Triangulation) Stats() advanced.Stats {
	return t.stats
}

func (t *Triangulation) WriteDot(w io.Writer) error {
	return quadedge.WriteDot(w, t.Left, t.Right)
}

func (t *Triangulation) Released() bool {
	return t.released
}

// Release frees the triangulation's edges. A second call returns ErrReleased.
func (t *Triangulation) Release() error {
	if t.released {
		return ErrReleased
	}
	t.released = true
	Release(t.Left)
	return nil
}
