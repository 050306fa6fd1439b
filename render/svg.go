package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

const (
	edgeStyle      = "stroke:rgb(0,160,0);stroke-width:%g"
	hullStyle      = "stroke:rgb(0,200,200);stroke-width:%g"
	highlightStyle = "stroke:rgb(255,50,50);stroke-width:%g"
	pointStyle     = "fill:black"
	labelStyle     = "font-family:monospace;font-size:10px"
)

// WriteSVG writes the scene as an SVG document with the same layout as Draw,
// on a white background.
func (s *Scene) WriteSVG(w io.Writer, style Style) error {
	bw := bufio.NewWriter(w)
	p := s.project(style)
	round := func(pt Point) (int, int) {
		x, y := p.apply(pt)
		return int(math.Round(x)), int(math.Round(y))
	}

	canvas := svg.New(bw)
	canvas.Start(p.width, p.height)
	canvas.Rect(0, 0, p.width, p.height, "fill:rgb(255,255,255)")

	canvas.Gid("edges")
	for _, seg := range s.Segments {
		x1, y1 := round(seg.Org)
		x2, y2 := round(seg.Dest)
		lineStyle := edgeStyle
		if seg.Hull {
			lineStyle = hullStyle
		}
		canvas.Line(x1, y1, x2, y2, fmt.Sprintf(lineStyle, style.LineWidth))
	}
	for _, seg := range s.Highlight {
		x1, y1 := round(seg.Org)
		x2, y2 := round(seg.Dest)
		canvas.Line(x1, y1, x2, y2, fmt.Sprintf(highlightStyle, 2*style.LineWidth))
	}
	canvas.Gend()

	canvas.Gid("points")
	r := int(math.Max(1, math.Round(style.PointRadius)))
	for _, pt := range s.Points {
		x, y := round(pt)
		canvas.Circle(x, y, r, pointStyle)
		if style.PointLabels {
			canvas.Text(x+r+2, y, pt.String(), labelStyle)
		}
	}
	canvas.Gend()

	for _, seg := range s.Segments {
		if seg.Label == "" {
			continue
		}
		x1, y1 := round(seg.Org)
		x2, y2 := round(seg.Dest)
		canvas.Text((x1+x2)/2, (y1+y2)/2, seg.Label, labelStyle)
	}

	canvas.End()
	return bw.Flush()
}
