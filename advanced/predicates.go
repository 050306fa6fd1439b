package advanced

import "github.com/DubiousDoggo/delaunay-visualizer/quadedge"

// MaxCoordinate bounds the magnitude of every input coordinate. Inside the
// bound, a lifted term x²+y² is at most 2^29, a 3×3 cofactor (twice a triangle
// area) at most 2^30, so each of the four InCircle products fits in 2^59 and
// their sum stays below 2^62. Larger inputs are rejected by CheckPoints rather
// than allowed to wrap.
const MaxCoordinate = 1 << 14

// Geometric predicates. All arithmetic is on int64 and exact.

// det3 is the determinant
//
//	| a.x  a.y  1 |
//	| b.x  b.y  1 |
//	| c.x  c.y  1 |
//
// which is twice the signed area of the triangle abc.
func det3(a, b, c *Point) int64 {
	ax, ay := int64(a.X), int64(a.Y)
	bx, by := int64(b.X), int64(b.Y)
	cx, cy := int64(c.X), int64(c.Y)
	return (ax*by - ay*bx) - (ax*cy - ay*cx) + (bx*cy - by*cx)
}

func lift(p *Point) int64 {
	x, y := int64(p.X), int64(p.Y)
	return x*x + y*y
}

// Ccw is true if and only if the triangle abc is oriented counterclockwise.
// Collinear points are not.
func Ccw(a, b, c *Point) bool {
	return det3(a, b, c) > 0
}

// InCircle is true if and only if d is interior to the region of the plane
// that is bounded by the oriented circle abc and lies to the left of it. It
// expands the lifted determinant
//
//	| a.x  a.y  a.x²+a.y²  1 |
//	| b.x  b.y  b.x²+b.y²  1 |
//	| c.x  c.y  c.x²+c.y²  1 |
//	| d.x  d.y  d.x²+d.y²  1 |
//
// along its third column. Points on the circle are not inside.
func InCircle(a, b, c, d *Point) bool {
	return lift(a)*det3(b, c, d)-
		lift(b)*det3(a, c, d)+
		lift(c)*det3(a, b, d)-
		lift(d)*det3(a, b, c) > 0
}

func LeftOf(x *Point, e quadedge.Edge) bool {
	return Ccw(x, e.Org(), e.Dest())
}

func RightOf(x *Point, e quadedge.Edge) bool {
	return Ccw(x, e.Dest(), e.Org())
}

// Valid reports whether a merge candidate lies above the base edge, that is,
// whether it can still be connected across the seam.
func Valid(e, base quadedge.Edge) bool {
	return RightOf(e.Dest(), base)
}
