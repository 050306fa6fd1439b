package advanced

import (
	"github.com/DubiousDoggo/delaunay-visualizer/quadedge"
	"github.com/pkg/errors"
)

var ErrNotDelaunay = errors.New("triangulation is not delaunay")

// Triangles returns every bounded triangular face reachable from the seeds,
// each exactly once, with its vertices in counterclockwise order.
func Triangles(seeds ...quadedge.Edge) []Triangle {
	var triangles []Triangle
	iter := quadedge.Traverse(seeds...)
	for {
		e, ok := iter.Next()
		if !ok {
			break
		}
		b := e.Lnext()
		c := b.Lnext()
		if c.Lnext() != e {
			continue
		}
		// The outer face of a lone triangle is also a 3-cycle, but clockwise.
		if !Ccw(e.Org(), b.Org(), c.Org()) {
			continue
		}
		// Report each face from the edge with the lowest record.
		if e.Record() > b.Record() || e.Record() > c.Record() {
			continue
		}
		triangles = append(triangles, Triangle{e.Org(), b.Org(), c.Org()})
	}
	return triangles
}

// HullEdges returns the edges on the boundary of the outer face, one per
// undirected edge, oriented so that the interior lies to the left. When every
// point is collinear the result is the whole chain.
func HullEdges(seeds ...quadedge.Edge) []quadedge.Edge {
	var hull []quadedge.Edge
	seen := make(map[int]bool)
	iter := quadedge.Traverse(seeds...)
	for {
		e, ok := iter.Next()
		if !ok {
			break
		}
		// The outer face is walked clockwise, so it never turns left.
		if Ccw(e.Org(), e.Dest(), e.Lnext().Dest()) {
			continue
		}
		if seen[e.Record()] {
			continue
		}
		seen[e.Record()] = true
		hull = append(hull, e.Sym())
	}
	return hull
}

func UndirectedEdgeCount(seeds ...quadedge.Edge) int {
	return len(quadedge.Traverse(seeds...).Collect()) / 2
}

// CheckDelaunay verifies the empty circumcircle property by brute force: no
// point may lie strictly inside the circumcircle of any triangle.
func CheckDelaunay(points []Point, triangles []Triangle) error {
	for _, t := range triangles {
		if !Ccw(t.A, t.B, t.C) {
			return errors.Wrapf(ErrNotDelaunay, "triangle %s %s %s is not counterclockwise", t.A, t.B, t.C)
		}
		for i := range points {
			p := &points[i]
			if InCircle(t.A, t.B, t.C, p) {
				return errors.Wrapf(ErrNotDelaunay, "%s is inside the circumcircle of %s %s %s", p, t.A, t.B, t.C)
			}
		}
	}
	return nil
}
