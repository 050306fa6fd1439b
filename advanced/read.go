package advanced

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

func splitCoordinates(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// ReadPoints reads one point per line as two integers separated by spaces or a
// comma. Blank lines and lines starting with # are skipped. The points are
// returned in input order.
func ReadPoints(r io.Reader) ([]Point, error) {
	var points []Point
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := splitCoordinates(text)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: expected 2 coordinates, got %d", line, len(fields))
		}
		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid x", line)
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid y", line)
		}
		points = append(points, Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// ReadPointsSVG collects the centres of every circle and the vertices of every
// polygon and polyline in an SVG document, rounded to the nearest integer.
// Transforms are not applied.
func ReadPointsSVG(r io.Reader) ([]Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []Point
	for _, circle := range root.FindAll("circle") {
		x, err := parseCoordinate(circle.Attributes["cx"])
		if err != nil {
			return nil, errors.Wrap(err, "circle cx")
		}
		y, err := parseCoordinate(circle.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "circle cy")
		}
		points = append(points, Point{X: x, Y: y})
	}

	shapes := append(root.FindAll("polygon"), root.FindAll("polyline")...)
	for _, shape := range shapes {
		fields := splitCoordinates(shape.Attributes["points"])
		if len(fields)%2 != 0 {
			return nil, errors.Errorf("%s has an odd number of coordinates", shape.Name)
		}
		for i := 0; i < len(fields); i += 2 {
			x, err := parseCoordinate(fields[i])
			if err != nil {
				return nil, errors.Wrapf(err, "%s point %d", shape.Name, i/2)
			}
			y, err := parseCoordinate(fields[i+1])
			if err != nil {
				return nil, errors.Wrapf(err, "%s point %d", shape.Name, i/2)
			}
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points, nil
}

func parseCoordinate(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid coordinate %q", s)
	}
	// NaN fails both comparisons, so it is rejected here too.
	v = math.Round(v)
	if !(v >= -MaxCoordinate && v <= MaxCoordinate) {
		return 0, errors.Wrapf(ErrCoordinateRange, "coordinate %q exceeds ±%d", s, MaxCoordinate)
	}
	return int(v), nil
}
