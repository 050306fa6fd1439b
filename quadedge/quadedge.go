package quadedge

import (
	"fmt"
	"log/slog"
)

/* Quad Edge data structure of

   Primitives for the Manipulation of General Subdivisions and the Computation of Voronoi Diagrams
   Leonidas Guibas and Jorge Stolfi
   ACM Transactions on Graphics, Vol. 4, No. 2, April 1985, Pages 74-123.

Records live in an arena owned by a Graph and are addressed by index. An Edge
is a value handle (record index, generation, rotation), so the cyclic Onext
rings never hold owning pointers, and a handle that outlives its record is
caught the moment it is used.
*/

// Point is the data attached to the primal quarters of a record. Edges only
// ever store pointers to points, so the same vertex is shared by every edge of
// its Onext ring and points can be compared by identity.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// slot is a reference to a quarter as stored inside a ring. It carries no
// generation: rings may only reference live records, which is checked when the
// slot is turned back into an Edge.
type slot struct {
	idx int32
	rot uint8
}

type quarter struct {
	next slot
	data *Point
}

type record struct {
	quarters [4]quarter
	gen      uint32
	live     bool
}

// Graph is the arena that owns every record of one or more subdivisions. The
// zero value is ready to use. A Graph is not safe for concurrent mutation.
type Graph struct {
	records   []record
	free      []int32
	live      int
	allocated int
}

func NewGraph() *Graph {
	return &Graph{}
}

// Live is the number of records currently allocated and not yet freed.
func (g *Graph) Live() int {
	return g.live
}

// Allocated is the total number of records ever handed out, including ones
// that have since been freed.
func (g *Graph) Allocated() int {
	return g.allocated
}

// Edge is a handle to one of the four quarters of a record. The zero Edge
// refers to nothing and panics on any navigation.
type Edge struct {
	g   *Graph
	idx int32
	gen uint32
	rot uint8 // Invariant: rot < 4
}

func (e Edge) IsZero() bool {
	return e.g == nil
}

func (e Edge) Graph() *Graph {
	return e.g
}

// Record is the arena index of the record this edge belongs to. Indices are
// reused after a record is freed.
func (e Edge) Record() int {
	return int(e.idx)
}

func (e Edge) Rotation() int {
	return int(e.rot)
}

// Primal edges (rotation 0 and 2) connect vertices; the odd rotations are the
// dual edges, which connect faces and carry no data.
func (e Edge) Primal() bool {
	return e.rot%2 == 0
}

// SameRecord reports whether both handles name quarters of the same record.
func (e Edge) SameRecord(other Edge) bool {
	return e.g == other.g && e.idx == other.idx && e.gen == other.gen
}

// Live reports whether the record behind the handle still exists.
func (e Edge) Live() bool {
	_, ok := e.g.lookup(e)
	return ok
}

// Primitive algebraic operations

func (e Edge) Rot() Edge {
	return e.RotN(1)
}

// RotN rotates by n quarter turns. n may be negative.
func (e Edge) RotN(n int) Edge {
	e.rot = uint8(((int(e.rot)+n)%4 + 4) % 4)
	return e
}

func (e Edge) Onext() Edge {
	r := e.g.record(e)
	return e.g.edge(r.quarters[e.rot].next)
}

// Derived algebraic operations

func (e Edge) InvRot() Edge {
	return e.RotN(-1)
}

func (e Edge) Sym() Edge {
	return e.RotN(2)
}

func (e Edge) Oprev() Edge {
	return e.Rot().Onext().Rot()
}

func (e Edge) Lnext() Edge {
	return e.InvRot().Onext().Rot()
}

func (e Edge) Lprev() Edge {
	return e.Onext().Sym()
}

func (e Edge) Rnext() Edge {
	return e.Rot().Onext().InvRot()
}

func (e Edge) Rprev() Edge {
	return e.Sym().Onext()
}

func (e Edge) Dnext() Edge {
	return e.Sym().Onext().Sym()
}

func (e Edge) Dprev() Edge {
	return e.InvRot().Onext().InvRot()
}

// Getters and setters for geometric data. These are the Org and Dest of
// Section 6 of the paper, not rings of edges as elsewhere.

func (e Edge) Org() *Point {
	return e.g.record(e).quarters[e.rot].data
}

func (e Edge) Dest() *Point {
	return e.Sym().Org()
}

func (e Edge) SetOrg(p *Point) {
	if !e.Primal() {
		invariantf("SetOrg on dual edge %s", e)
	}
	e.g.record(e).quarters[e.rot].data = p
}

func (e Edge) SetDest(p *Point) {
	e.Sym().SetOrg(p)
}

func (e Edge) SetEndpoints(org, dest *Point) {
	e.SetOrg(org)
	e.SetDest(dest)
}

func (e Edge) setOnext(next Edge) {
	e.g.record(e).quarters[e.rot].next = slot{next.idx, next.rot}
}

func (e Edge) String() string {
	r, ok := e.g.lookup(e)
	if !ok {
		return fmt.Sprintf("%d[%d] (stale)", e.idx, e.rot)
	}
	if !e.Primal() {
		return fmt.Sprintf("%d[%d]", e.idx, e.rot)
	}
	org, dest := r.quarters[e.rot].data, r.quarters[(e.rot+2)%4].data
	if org == nil || dest == nil {
		return fmt.Sprintf("%d[%d] (%v -> %v)", e.idx, e.rot, org, dest)
	}
	return fmt.Sprintf("%d[%d] ( %s -> %s )", e.idx, e.rot, org, dest)
}

func (e Edge) LogValue() slog.Value {
	return slog.StringValue(e.String())
}

// lookup resolves a handle without panicking. A nil Graph is accepted so the
// zero Edge can be printed.
func (g *Graph) lookup(e Edge) (*record, bool) {
	if g == nil || int(e.idx) < 0 || int(e.idx) >= len(g.records) {
		return nil, false
	}
	r := &g.records[e.idx]
	if !r.live || r.gen != e.gen {
		return nil, false
	}
	return r, true
}

// record resolves a handle, failing fast on anything that is not a live
// record of this graph. The returned pointer is only valid until the next
// allocation.
func (g *Graph) record(e Edge) *record {
	if g == nil {
		invariantf("use of zero edge")
	}
	if int(e.idx) < 0 || int(e.idx) >= len(g.records) {
		invariantf("edge %d[%d] is outside the arena (%d records)", e.idx, e.rot, len(g.records))
	}
	r := &g.records[e.idx]
	if !r.live || r.gen != e.gen {
		invariantf("stale edge %d[%d]: generation %d, record is at generation %d (live=%t)", e.idx, e.rot, e.gen, r.gen, r.live)
	}
	return r
}

func (g *Graph) edge(s slot) Edge {
	r := &g.records[s.idx]
	if !r.live {
		invariantf("ring references freed record %d", s.idx)
	}
	return Edge{g, s.idx, r.gen, s.rot}
}

func (g *Graph) alloc() int32 {
	var idx int32
	if n := len(g.free); n > 0 {
		idx = g.free[n-1]
		g.free = g.free[:n-1]
	} else {
		g.records = append(g.records, record{})
		idx = int32(len(g.records) - 1)
	}
	r := &g.records[idx]
	*r = record{gen: r.gen, live: true}
	g.live++
	g.allocated++
	return idx
}

func (g *Graph) release(e Edge) {
	r := g.record(e)
	*r = record{gen: r.gen + 1}
	g.free = append(g.free, e.idx)
	g.live--
}

func sameGraph(a, b Edge) *Graph {
	if a.g == nil || a.g != b.g {
		invariantf("edges %s and %s do not belong to the same graph", a, b)
	}
	return a.g
}
