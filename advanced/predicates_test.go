package advanced

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCcw(t *testing.T) {
	a, b, c := &Point{X: 0, Y: 0}, &Point{X: 1, Y: 0}, &Point{X: 0, Y: 1}
	assert.True(t, Ccw(a, b, c))
	assert.False(t, Ccw(a, c, b))
	assert.True(t, Ccw(b, c, a), "rotation preserves orientation")

	// Collinear is neither
	d := &Point{X: 2, Y: 0}
	assert.False(t, Ccw(a, b, d))
	assert.False(t, Ccw(a, d, b))
}

func TestInCircle(t *testing.T) {
	a, b, c := &Point{X: 0, Y: 0}, &Point{X: 2, Y: 0}, &Point{X: 0, Y: 2}
	inside := &Point{X: 1, Y: 1}
	outside := &Point{X: 3, Y: 3}
	on := &Point{X: 2, Y: 2}

	assert.True(t, InCircle(a, b, c, inside))
	assert.False(t, InCircle(a, b, c, outside))
	assert.False(t, InCircle(a, b, c, on), "cocircular points are not inside")

	// A clockwise circle bounds the other side
	assert.False(t, InCircle(a, c, b, inside))
	assert.True(t, InCircle(a, c, b, outside))
}

func TestLeftRightOf(t *testing.T) {
	b := NewBuilder()
	e := b.makeEdge(&Point{X: 0, Y: 0}, &Point{X: 4, Y: 0})

	assert.True(t, LeftOf(&Point{X: 2, Y: 1}, e))
	assert.False(t, RightOf(&Point{X: 2, Y: 1}, e))
	assert.True(t, RightOf(&Point{X: 2, Y: -1}, e))
	assert.False(t, LeftOf(&Point{X: 8, Y: 0}, e))
	assert.False(t, RightOf(&Point{X: 8, Y: 0}, e))

	base := b.makeEdge(&Point{X: 4, Y: 0}, &Point{X: 0, Y: 0})
	above := b.makeEdge(&Point{X: 0, Y: 0}, &Point{X: 2, Y: 1})
	below := b.makeEdge(&Point{X: 0, Y: 0}, &Point{X: 2, Y: -1})
	assert.True(t, Valid(above, base))
	assert.False(t, Valid(below, base))
}

func bigInCircle(a, b, c, d *Point) bool {
	row := func(p *Point) [3]*big.Int {
		x, y := big.NewInt(int64(p.X)), big.NewInt(int64(p.Y))
		l := new(big.Int).Add(new(big.Int).Mul(x, x), new(big.Int).Mul(y, y))
		return [3]*big.Int{x, y, l}
	}
	det3 := func(p, q, r [3]*big.Int) *big.Int {
		// | p.x p.y 1 ; q.x q.y 1 ; r.x r.y 1 |
		m := func(u, v *big.Int) *big.Int { return new(big.Int).Mul(u, v) }
		s := new(big.Int).Sub(m(p[0], q[1]), m(p[1], q[0]))
		s.Sub(s, new(big.Int).Sub(m(p[0], r[1]), m(p[1], r[0])))
		s.Add(s, new(big.Int).Sub(m(q[0], r[1]), m(q[1], r[0])))
		return s
	}
	ra, rb, rc, rd := row(a), row(b), row(c), row(d)
	sum := new(big.Int).Mul(ra[2], det3(rb, rc, rd))
	sum.Sub(sum, new(big.Int).Mul(rb[2], det3(ra, rc, rd)))
	sum.Add(sum, new(big.Int).Mul(rc[2], det3(ra, rb, rd)))
	sum.Sub(sum, new(big.Int).Mul(rd[2], det3(ra, rb, rc)))
	return sum.Sign() > 0
}

func TestInCircleExactAtCoordinateBound(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	coordinate := func() int {
		// Bias towards the extremes, where overflow would show up first
		switch rng.Intn(3) {
		case 0:
			return MaxCoordinate
		case 1:
			return -MaxCoordinate
		}
		return rng.Intn(2*MaxCoordinate+1) - MaxCoordinate
	}
	point := func() *Point {
		return &Point{X: coordinate(), Y: coordinate()}
	}

	for i := 0; i < 5000; i++ {
		a, b, c, d := point(), point(), point(), point()
		assert.Equal(t, bigInCircle(a, b, c, d), InCircle(a, b, c, d), "%s %s %s %s", a, b, c, d)
	}

	// Largest possible circle with a point just inside it
	a := &Point{X: -MaxCoordinate, Y: -MaxCoordinate}
	b := &Point{X: MaxCoordinate, Y: -MaxCoordinate}
	c := &Point{X: MaxCoordinate, Y: MaxCoordinate}
	assert.True(t, InCircle(a, b, c, &Point{X: -MaxCoordinate + 1, Y: MaxCoordinate - 1}))
	assert.False(t, InCircle(a, b, c, &Point{X: -MaxCoordinate, Y: MaxCoordinate}))
}
