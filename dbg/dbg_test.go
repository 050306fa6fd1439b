package dbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/DubiousDoggo/delaunay-visualizer/quadedge"
	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	a, b := &quadedge.Point{X: 1}, &quadedge.Point{X: 1}
	assert.Equal(t, Name(a), Name(a))
	assert.NotEqual(t, Name(a), Name(b), "pointers are named by identity")

	assert.Equal(t, Name(3), Name(3))
	assert.NotEqual(t, Name(3), Name("3"))

	var nilPoint *quadedge.Point
	assert.Equal(t, "Ø", Name(nilPoint))
	assert.Equal(t, "Ø", Name(nil))
}

func TestEdgeName(t *testing.T) {
	g := quadedge.NewGraph()
	e := g.MakeEdge()
	f := g.MakeEdge()

	name := EdgeName(e)
	assert.True(t, strings.HasSuffix(name, "[0]"), name)
	assert.Equal(t, strings.TrimSuffix(name, "[0]")+"[2]", EdgeName(e.Sym()))
	assert.NotEqual(t, EdgeName(e), EdgeName(f))
	assert.Equal(t, "Ø", EdgeName(quadedge.Edge{}))

	// Records in different graphs are different records
	assert.NotEqual(t, EdgeName(e), EdgeName(quadedge.NewGraph().MakeEdge()))
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	Dump(&buf, map[string]int{"b": 2, "a": 1})
	out := buf.String()
	assert.Less(t, strings.Index(out, `"a"`), strings.Index(out, `"b"`))
	assert.NotContains(t, out, "0x")
}

func TestDumpEdges(t *testing.T) {
	g := quadedge.NewGraph()
	e := g.MakeEdge()
	e.SetEndpoints(&quadedge.Point{X: 1, Y: 2}, &quadedge.Point{X: 3, Y: 4})

	var buf bytes.Buffer
	DumpEdges(&buf, e)
	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "Name:"))
	assert.Contains(t, out, EdgeName(e))
	assert.Contains(t, out, EdgeName(e.Sym()))
	assert.Contains(t, out, "(3, 4)")
}
