package quadedge

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDot writes the quarter rings of every record reachable from the seeds
// as a graphviz digraph. Each record is drawn as a cross of its four quarters,
// and every quarter has an arc to its Onext.
func WriteDot(w io.Writer, seeds ...Edge) error {
	bw := bufio.NewWriter(w)

	var records []Edge
	seen := make(map[int32]bool)
	iter := Traverse(seeds...)
	for {
		e, ok := iter.Next()
		if !ok {
			break
		}
		if !seen[e.idx] {
			seen[e.idx] = true
			records = append(records, e.RotN(-int(e.rot)))
		}
	}

	fmt.Fprintf(bw, "digraph g {\n\tnode [shape=record]\n")
	for _, e := range records {
		fmt.Fprintf(bw, "\t%d [label=\"{|<0>|}|{<1>||<3>}|{|<2>|}\" tooltip=\"%s\"]\n", e.idx, e)
	}
	for _, e := range records {
		for r := 0; r < 4; r++ {
			q := e.RotN(r)
			next := q.Onext()
			fmt.Fprintf(bw, "\t%d:%d -> %d:%d\n", q.idx, q.rot, next.idx, next.rot)
		}
	}
	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}
