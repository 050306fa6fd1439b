// Package render draws quad-edge structures for people to look at: PNG through
// gg, SVG through svgo, inline terminal previews, and one frame per builder
// step.
package render

import (
	"math"

	"github.com/DubiousDoggo/delaunay-visualizer/advanced"
	"github.com/DubiousDoggo/delaunay-visualizer/quadedge"
)

type Point = advanced.Point

type Segment struct {
	Org, Dest Point
	Hull      bool
	Label     string
}

// A Scene is a snapshot of a structure, detached from the graph so it can be
// drawn after the edges are released.
type Scene struct {
	Segments  []Segment
	Highlight []Segment
	Points    []Point
}

type Style struct {
	Scale       float64
	Padding     float64
	PointRadius float64
	LineWidth   float64
	// Print coordinates next to every point.
	PointLabels bool
	// If set, its result is printed at the midpoint of every edge.
	EdgeLabel func(quadedge.Edge) string
}

var DefaultStyle = Style{
	Scale:       1,
	Padding:     20,
	PointRadius: 3,
	LineWidth:   1,
}

// NewScene collects every edge reachable from the seeds, once per undirected
// edge, and their endpoints.
func NewScene(style Style, seeds ...quadedge.Edge) *Scene {
	s := &Scene{}
	hull := make(map[int]bool)
	for _, e := range advanced.HullEdges(seeds...) {
		hull[e.Record()] = true
	}

	seenRecord := make(map[int]bool)
	seenPoint := make(map[Point]bool)
	for _, e := range quadedge.Traverse(seeds...).Collect() {
		if !seenPoint[*e.Org()] {
			seenPoint[*e.Org()] = true
			s.Points = append(s.Points, *e.Org())
		}
		if seenRecord[e.Record()] {
			continue
		}
		seenRecord[e.Record()] = true
		segment := Segment{Org: *e.Org(), Dest: *e.Dest(), Hull: hull[e.Record()]}
		if style.EdgeLabel != nil {
			segment.Label = style.EdgeLabel(e)
		}
		s.Segments = append(s.Segments, segment)
	}
	return s
}

// AddPoints adds points that are not (yet) on any edge.
func (s *Scene) AddPoints(points []Point) {
	seen := make(map[Point]bool, len(s.Points))
	for _, p := range s.Points {
		seen[p] = true
	}
	for _, p := range points {
		if !seen[p] {
			seen[p] = true
			s.Points = append(s.Points, p)
		}
	}
}

func (s *Scene) HighlightEdges(edges ...quadedge.Edge) {
	for _, e := range edges {
		s.Highlight = append(s.Highlight, Segment{Org: *e.Org(), Dest: *e.Dest()})
	}
}

func (s *Scene) Bounds() (min, max Point) {
	if len(s.Points) == 0 {
		return Point{}, Point{}
	}
	min, max = s.Points[0], s.Points[0]
	for _, p := range s.Points[1:] {
		min.X = minInt(min.X, p.X)
		min.Y = minInt(min.Y, p.Y)
		max.X = maxInt(max.X, p.X)
		max.Y = maxInt(max.Y, p.Y)
	}
	return min, max
}

// projection maps scene coordinates to image pixels, with y up.
type projection struct {
	min           Point
	scale, pad    float64
	width, height int
}

func (s *Scene) project(style Style) projection {
	min, max := s.Bounds()
	width := int(math.Ceil(style.Scale*float64(max.X-min.X) + 2*style.Padding))
	height := int(math.Ceil(style.Scale*float64(max.Y-min.Y) + 2*style.Padding))
	return projection{
		min:    min,
		scale:  style.Scale,
		pad:    style.Padding,
		width:  maxInt(width, 1),
		height: maxInt(height, 1),
	}
}

func (p projection) apply(pt Point) (float64, float64) {
	x := p.pad + p.scale*float64(pt.X-p.min.X)
	y := float64(p.height) - p.pad - p.scale*float64(pt.Y-p.min.Y)
	return x, y
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
