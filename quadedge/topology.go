package quadedge

// Basic topological operators, p. 96

// MakeEdge returns an edge of a newly created subdivision of the sphere. Apart
// from orientation and direction, e will be the only edge of the subdivision
// and will not be a loop: e Org != e Dest, e Left = e Right,
// e Lnext = e Rnext = e Sym, and e Onext = e Oprev = e.
func (g *Graph) MakeEdge() Edge {
	idx := g.alloc()
	r := &g.records[idx]
	r.quarters[0].next = slot{idx, 0} // e0 Onext = e0
	r.quarters[1].next = slot{idx, 3} // e1 Onext = e1 Sym = e3
	r.quarters[2].next = slot{idx, 2} // e2 Onext = e2
	r.quarters[3].next = slot{idx, 1} // e3 Onext = e3 Sym = e1
	return Edge{g, idx, r.gen, 0}
}

// Splice affects the two edge rings a Org and b Org and, independently, the
// two edge rings a Left and b Left. In each case, (a) if the two rings are
// distinct, Splice combines them into one; (b) if the two are exactly the same
// ring, Splice breaks it in two separate pieces; (c) if the two are the same
// ring taken with opposite orientations, Splice flips (and reverses the order
// of) a segment of that ring. Splice is its own inverse.
func Splice(a, b Edge) {
	sameGraph(a, b)
	if a.Primal() != b.Primal() {
		invariantf("splice of primal and dual edges %s, %s", a, b)
	}

	alpha := a.Onext().Rot()
	beta := b.Onext().Rot()

	aNext, bNext := a.Onext(), b.Onext()
	alphaNext, betaNext := alpha.Onext(), beta.Onext()

	a.setOnext(bNext)
	b.setOnext(aNext)
	alpha.setOnext(betaNext)
	beta.setOnext(alphaNext)
}

// Derived topological operators, p. 103

// Connect adds a new edge e from the destination of a to the origin of b, in
// such a way that a Left = e Left = b Left after the connection is complete.
func Connect(a, b Edge) Edge {
	g := sameGraph(a, b)
	org, dest := a.Dest(), b.Org()
	e := g.MakeEdge()
	e.SetEndpoints(org, dest)
	Splice(e, a.Lnext())
	Splice(e.Sym(), b)
	return e
}

// DeleteEdge disconnects e from the rest of the structure and frees its
// record. This may split the structure into two components. Every handle to
// the record, in any rotation, is invalid afterwards.
func DeleteEdge(e Edge) {
	Splice(e, e.Oprev())
	Splice(e.Sym(), e.Sym().Oprev())
	e.g.release(e)
}

// KillGraph frees the entire structure connected to e and returns the number
// of records freed. Calling it with a handle into an already freed structure
// panics.
func KillGraph(e Edge) int {
	e.g.record(e)

	freed := 0
	stack := []Edge{e}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// Reached again from the other side after it was already freed
		if !e.Live() {
			continue
		}

		a := e.Onext()
		b := e.Dnext()
		DeleteEdge(e)
		freed++

		// If a or b sit on e's own record, that side of e was a bare endpoint
		// and there is nothing left to visit through it.
		if a.idx != e.idx {
			stack = append(stack, a)
		}
		if b.idx != e.idx {
			stack = append(stack, b)
		}
	}
	return freed
}

// Polygon builds a closed ring of edges through the given points, in order,
// and returns the edge from the first point to the second. The left face of
// the returned edge is the inside of the polygon when the points wind
// counterclockwise.
func (g *Graph) Polygon(pts []*Point) Edge {
	n := len(pts)
	if n < 3 {
		return Edge{}
	}

	e0 := g.MakeEdge()
	e0.SetEndpoints(pts[0], pts[1])

	ePrev := e0
	for i := 1; i < n; i++ {
		e := g.MakeEdge()
		e.SetEndpoints(pts[i], pts[(i+1)%n])
		Splice(ePrev.Sym(), e)
		ePrev = e
	}

	Splice(ePrev.Sym(), e0)
	return e0
}
