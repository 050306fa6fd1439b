package generate

import (
	"math/rand"

	"github.com/DubiousDoggo/delaunay-visualizer/advanced"
)

type Point = advanced.Point

func RandomXYOnGrid(rnd *rand.Rand, min, max int) Point {
	return Point{
		X: rnd.Intn(max-min) + min,
		Y: rnd.Intn(max-min) + min,
	}
}

// RandomPoints draws n distinct points from [min, max)² and returns them
// sorted, ready to triangulate. It panics if the square holds fewer than n
// points.
func RandomPoints(rnd *rand.Rand, n, min, max int) []Point {
	if side := max - min; side <= 0 || side*side < n {
		panic(n)
	}
	seen := make(map[Point]struct{}, n)
	points := make([]Point, 0, n)
	for len(points) < n {
		p := RandomXYOnGrid(rnd, min, max)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}
	advanced.SortPoints(points)
	return points
}
