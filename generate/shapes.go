package generate

import (
	"math"

	"github.com/DubiousDoggo/delaunay-visualizer/advanced"
)

// RegularPolygon returns the vertices of a regular polygon inscribed in the
// circle with the given center and radius, rounded to the integer grid and
// sorted. Rounding can make vertices coincide when the radius is small; those
// are merged. Sides must be at least 3 or it will panic.
func RegularPolygon(center Point, radius float64, sides int) []Point {
	if sides <= 2 {
		panic(sides)
	}
	points := make([]Point, sides)
	for i := range points {
		angle := math.Pi/2 + float64(i)/float64(sides)*2*math.Pi
		points[i] = Point{
			X: center.X + int(math.Round(math.Cos(angle)*radius)),
			Y: center.Y + int(math.Round(math.Sin(angle)*radius)),
		}
	}
	advanced.SortPoints(points)
	return advanced.Dedupe(points)
}

// Grid returns cols×rows points spaced step apart with the first at origin,
// sorted.
func Grid(origin Point, cols, rows, step int) []Point {
	points := make([]Point, 0, cols*rows)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			points = append(points, Point{X: origin.X + x*step, Y: origin.Y + y*step})
		}
	}
	return points
}
