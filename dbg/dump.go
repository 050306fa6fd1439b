package dbg

import (
	"io"

	"github.com/DubiousDoggo/delaunay-visualizer/quadedge"
	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a spew dump of v, with stable output for the same structure.
func Dump(w io.Writer, v ...interface{}) {
	dumpConfig.Fdump(w, v...)
}

// EdgeRow is one line of DumpEdges.
type EdgeRow struct {
	Name      string
	Org, Dest quadedge.Point
	Onext     string
	Lnext     string
}

// DumpEdges writes every directed edge reachable from the seeds with its
// endpoints and ring neighbours.
func DumpEdges(w io.Writer, seeds ...quadedge.Edge) {
	var rows []EdgeRow
	for _, e := range quadedge.Traverse(seeds...).Collect() {
		rows = append(rows, EdgeRow{
			Name:  EdgeName(e),
			Org:   *e.Org(),
			Dest:  *e.Dest(),
			Onext: EdgeName(e.Onext()),
			Lnext: EdgeName(e.Lnext()),
		})
	}
	Dump(w, rows)
}
