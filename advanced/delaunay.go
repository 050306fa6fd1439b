package advanced

import (
	"log/slog"

	"github.com/DubiousDoggo/delaunay-visualizer/quadedge"
)

// StepObserver is told about every structural change the builder makes. left
// and right are the boundary edges of the region being worked on at the time,
// and are only valid until Step returns. Step must not modify the graph.
type StepObserver interface {
	Step(left, right quadedge.Edge)
}

// StepFunc adapts an ordinary function to a StepObserver.
type StepFunc func(left, right quadedge.Edge)

func (f StepFunc) Step(left, right quadedge.Edge) {
	f(left, right)
}

type multiObserver []StepObserver

func (m multiObserver) Step(left, right quadedge.Edge) {
	for _, o := range m {
		o.Step(left, right)
	}
}

// Observers combines several observers into one, called in order. Nil
// observers are dropped.
func Observers(observers ...StepObserver) StepObserver {
	var m multiObserver
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	if len(m) == 1 {
		return m[0]
	}
	return m
}

type Stats struct {
	Made    int // edges created, including by Connect
	Deleted int // merge candidates removed
	Merges  int
	Steps   int // observer notifications
}

// Builder computes Delaunay triangulations with the Guibas-Stolfi divide and
// conquer algorithm.
type Builder struct {
	graph    *quadedge.Graph
	observer StepObserver
	logger   *slog.Logger
	stats    Stats
}

func NewBuilder(opts ...Option) *Builder {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.graph == nil {
		o.graph = quadedge.NewGraph()
	}
	return &Builder{
		graph:    o.graph,
		observer: o.observer,
		logger:   o.logger,
	}
}

func (b *Builder) Graph() *quadedge.Graph {
	return b.graph
}

// Stats accumulates over every Triangulate call on this builder.
func (b *Builder) Stats() Stats {
	return b.stats
}

// Triangulate builds the Delaunay triangulation of points, which must pass
// CheckPoints. It returns the counterclockwise convex hull edge out of the
// leftmost point and the clockwise hull edge out of the rightmost point.
//
// Edges point into the points slice, which must not be modified or reallocated
// while the triangulation is alive. Every call produces one connected
// structure which should be released with quadedge.KillGraph.
//
// Invalid input panics with a *TriangulateError; use
// HandleTriangulatePanicRecover at the API boundary.
func (b *Builder) Triangulate(points []Point) (left, right quadedge.Edge) {
	if err := CheckPoints(points); err != nil {
		fatal(err)
	}
	b.log().Debug("triangulate", "points", len(points))
	return b.delaunay(points)
}

func (b *Builder) log() *slog.Logger {
	if b.logger != nil {
		return b.logger
	}
	return Logger()
}

func (b *Builder) step(left, right quadedge.Edge) {
	b.stats.Steps++
	if b.observer != nil {
		b.observer.Step(left, right)
	}
}

func (b *Builder) makeEdge(org, dest *Point) quadedge.Edge {
	e := b.graph.MakeEdge()
	e.SetEndpoints(org, dest)
	b.stats.Made++
	return e
}

func (b *Builder) connect(a, c quadedge.Edge) quadedge.Edge {
	b.stats.Made++
	return quadedge.Connect(a, c)
}

func (b *Builder) deleteEdge(e quadedge.Edge) {
	b.stats.Deleted++
	quadedge.DeleteEdge(e)
}

func (b *Builder) delaunay(s []Point) (left, right quadedge.Edge) {
	log := b.log()
	first, last := &s[0], &s[len(s)-1]
	log.Debug("delaunay enter", "first", first, "last", last)

	switch len(s) {
	case 2:
		a := b.makeEdge(&s[0], &s[1])
		b.step(a, a.Sym())
		log.Debug("delaunay exit", "first", first, "last", last, "left", a, "right", a.Sym())
		return a, a.Sym()

	case 3:
		s1, s2, s3 := &s[0], &s[1], &s[2]
		a := b.makeEdge(s1, s2)
		c := b.makeEdge(s2, s3)
		quadedge.Splice(a.Sym(), c)
		b.step(a, c)

		switch {
		case Ccw(s1, s2, s3):
			b.connect(c, a)
			b.step(a, c)
			left, right = a, c.Sym()
		case Ccw(s1, s3, s2):
			closing := b.connect(c, a)
			b.step(a, c)
			left, right = closing.Sym(), closing
		default:
			// Collinear, so there is no triangle to close.
			left, right = a, c.Sym()
		}
		log.Debug("delaunay exit", "first", first, "last", last, "left", left, "right", right)
		return left, right
	}

	mid := len(s) / 2
	ldo, ldi := b.delaunay(s[:mid])
	rdi, rdo := b.delaunay(s[mid:])
	b.stats.Merges++
	b.step(ldo, rdo)
	log.Debug("merge", "first", first, "last", last, "ldi", ldi, "rdi", rdi)

	// Lower common tangent of the two halves.
	for {
		if LeftOf(rdi.Org(), ldi) {
			ldi = ldi.Lnext()
		} else if RightOf(ldi.Org(), rdi) {
			rdi = rdi.Rprev()
		} else {
			break
		}
	}

	base := b.connect(rdi.Sym(), ldi)
	log.Debug("base", "edge", base)
	b.step(ldi, rdi)

	if ldi.Org() == ldo.Org() {
		ldo = base.Sym()
	}
	if rdi.Org() == rdo.Org() {
		rdo = base
	}

	for {
		lcand := base.Sym().Onext()
		for Valid(lcand, base) && InCircle(base.Dest(), base.Org(), lcand.Dest(), lcand.Onext().Dest()) {
			next := lcand.Onext()
			log.Debug("delete left candidate", "edge", lcand)
			b.deleteEdge(lcand)
			lcand = next
			b.step(ldo, rdo)
		}

		rcand := base.Oprev()
		for Valid(rcand, base) && InCircle(base.Dest(), base.Org(), rcand.Dest(), rcand.Oprev().Dest()) {
			next := rcand.Oprev()
			log.Debug("delete right candidate", "edge", rcand)
			b.deleteEdge(rcand)
			rcand = next
			b.step(ldo, rdo)
		}

		lvalid, rvalid := Valid(lcand, base), Valid(rcand, base)
		if !lvalid && !rvalid {
			// base is the upper common tangent.
			break
		}

		if !lvalid || (rvalid && InCircle(lcand.Dest(), lcand.Org(), rcand.Org(), rcand.Dest())) {
			base = b.connect(rcand, base.Sym())
			log.Debug("connect right candidate", "edge", base)
		} else {
			base = b.connect(base.Sym(), lcand.Sym())
			log.Debug("connect left candidate", "edge", base)
		}
		b.step(ldo, rdo)
	}

	b.step(ldo, rdo)
	log.Debug("delaunay exit", "first", first, "last", last, "left", ldo, "right", rdo)
	return ldo, rdo
}
