package advanced

import (
	"embed"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) []Point {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err)
	defer fixture.Close()

	points, err := ReadPointsSVG(fixture)
	require.NoError(t, err, "fixture %q", name)
	return points
}

func TestReadPoints(t *testing.T) {
	input := `# a small triangle
0 0
10,0

  5   8
-3 -4
`
	points, err := ReadPoints(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}, {X: -3, Y: -4}}, points)
}

func TestReadPointsErrors(t *testing.T) {
	_, err := ReadPoints(strings.NewReader("1 2\n3\n"))
	assert.EqualError(t, err, "line 2: expected 2 coordinates, got 1")

	_, err = ReadPoints(strings.NewReader("1 x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1: invalid y")

	points, err := ReadPoints(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, points)
}

func TestReadPointsSVGCircles(t *testing.T) {
	points := loadFixture(t, "circles")
	assert.Equal(t, []Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 51, Y: 80}, {X: 40, Y: 40}}, points)
}

func TestReadPointsSVGPolygon(t *testing.T) {
	points := loadFixture(t, "hexagon")
	require.Len(t, points, 7)
	assert.Equal(t, Point{X: 100, Y: 100}, points[0], "circles come first")
	assert.Contains(t, points, Point{X: 170, Y: 140})

	// A hexagon around its centre triangulates into a fan
	SortPoints(points)
	_, left, _ := triangulate(t, points)
	triangles := Triangles(left)
	assert.Len(t, triangles, 6)
	assert.NoError(t, CheckDelaunay(points, triangles))
	assert.Len(t, HullEdges(left), 6)
}

func TestReadPointsSVGOddCoordinates(t *testing.T) {
	fixture, err := fixtures.Open("fixtures/broken.svg")
	require.NoError(t, err)
	defer fixture.Close()

	_, err = ReadPointsSVG(fixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "odd number of coordinates")
}

func TestReadPointsSVGCoordinateRange(t *testing.T) {
	for _, cx := range []string{"1e30", "-1e30", "NaN", "Inf", "-Inf", fmt.Sprint(MaxCoordinate + 1)} {
		t.Run(cx, func(t *testing.T) {
			svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg"><circle cx="%s" cy="0" r="1"/></svg>`, cx)
			points, err := ReadPointsSVG(strings.NewReader(svg))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCoordinateRange), "got %v", err)
			assert.Nil(t, points)
		})
	}

	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 %d,-%d 1e30,0"/></svg>`, MaxCoordinate, MaxCoordinate)
	_, err := ReadPointsSVG(strings.NewReader(svg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "polygon point 2")
	assert.True(t, errors.Is(err, ErrCoordinateRange))

	points, err := ReadPointsSVG(strings.NewReader(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg"><circle cx="%d" cy="-%d.4" r="1"/></svg>`, MaxCoordinate, MaxCoordinate)))
	require.NoError(t, err)
	assert.Equal(t, []Point{{X: MaxCoordinate, Y: -MaxCoordinate}}, points)
}

func TestSortAndDedupe(t *testing.T) {
	points := []Point{{X: 2, Y: 1}, {X: 0, Y: 5}, {X: 2, Y: 0}, {X: 0, Y: 5}, {X: 1, Y: 1}}
	SortPoints(points)
	assert.Equal(t, []Point{{X: 0, Y: 5}, {X: 0, Y: 5}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 1}}, points)

	points = Dedupe(points)
	assert.Equal(t, []Point{{X: 0, Y: 5}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 1}}, points)
	assert.NoError(t, CheckPoints(points))
	assert.Empty(t, Dedupe(nil))
}
