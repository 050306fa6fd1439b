package advanced

import (
	"sort"

	"github.com/DubiousDoggo/delaunay-visualizer/quadedge"
	"github.com/pkg/errors"
)

// Points are integer so that every predicate is exact. Once a point set has
// been triangulated its points must not be modified: edges hold pointers into
// the slice, and the structure is only Delaunay for the coordinates it was
// built from.
type Point = quadedge.Point

type Triangle struct {
	A, B, C *Point
}

var (
	ErrTooFewPoints    = errors.New("at least two points are required")
	ErrUnsorted        = errors.New("points are not sorted by x, then y")
	ErrDuplicatePoint  = errors.New("duplicate point")
	ErrCoordinateRange = errors.New("coordinate out of range")
)

// Less is the lexicographic order the divide and conquer splits on: by x, and
// by y to break ties.
func Less(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func SortPoints(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		return Less(points[i], points[j])
	})
}

// Dedupe removes repeated points from a sorted slice, in place.
func Dedupe(sorted []Point) []Point {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, p := range sorted[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// InRange compares without negating, since -math.MinInt wraps to itself.
func InRange(p Point) bool {
	return p.X >= -MaxCoordinate && p.X <= MaxCoordinate &&
		p.Y >= -MaxCoordinate && p.Y <= MaxCoordinate
}

// CheckPoints validates the preconditions of the triangulation: at least two
// points, strictly increasing in lexicographic order (so no duplicates), and
// every coordinate within MaxCoordinate.
func CheckPoints(points []Point) error {
	if len(points) < 2 {
		return errors.Wrapf(ErrTooFewPoints, "got %d", len(points))
	}
	for i, p := range points {
		if !InRange(p) {
			return errors.Wrapf(ErrCoordinateRange, "point %d %s exceeds ±%d", i, p, MaxCoordinate)
		}
		if i == 0 {
			continue
		}
		prev := points[i-1]
		if prev == p {
			return errors.Wrapf(ErrDuplicatePoint, "points %d and %d are both %s", i-1, i, p)
		}
		if !Less(prev, p) {
			return errors.Wrapf(ErrUnsorted, "point %d %s comes after %s", i, p, prev)
		}
	}
	return nil
}
