package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Draw paints the scene on a black background: edges in green, hull edges in
// cyan, highlighted edges in red and points in white.
func (s *Scene) Draw(style Style) *gg.Context {
	p := s.project(style)
	c := gg.NewContext(p.width, p.height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(p.width), float64(p.height))
	c.Fill()
	c.SetFontFace(basicfont.Face7x13)

	c.SetLineWidth(style.LineWidth)
	for _, seg := range s.Segments {
		x1, y1 := p.apply(seg.Org)
		x2, y2 := p.apply(seg.Dest)
		c.DrawLine(x1, y1, x2, y2)
		if seg.Hull {
			c.SetRGB(0, 1, 1)
		} else {
			c.SetRGB(0, 0.7, 0)
		}
		c.Stroke()
	}

	c.SetLineWidth(style.LineWidth * 2)
	c.SetRGB(1, 0.2, 0.2)
	for _, seg := range s.Highlight {
		x1, y1 := p.apply(seg.Org)
		x2, y2 := p.apply(seg.Dest)
		c.DrawLine(x1, y1, x2, y2)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, pt := range s.Points {
		x, y := p.apply(pt)
		c.DrawCircle(x, y, style.PointRadius)
		c.Fill()
		if style.PointLabels {
			c.DrawStringAnchored(pt.String(), x+style.PointRadius+2, y, 0, 0.5)
		}
	}

	c.SetRGB(1, 1, 0)
	for _, seg := range s.Segments {
		if seg.Label == "" {
			continue
		}
		x1, y1 := p.apply(seg.Org)
		x2, y2 := p.apply(seg.Dest)
		c.DrawStringAnchored(seg.Label, (x1+x2)/2, (y1+y2)/2, 0.5, 0.5)
	}
	return c
}

func (s *Scene) WritePNG(w io.Writer, style Style) error {
	return errors.Wrap(s.Draw(style).EncodePNG(w), "encoding png")
}

func (s *Scene) SavePNG(path string, style Style) error {
	return errors.Wrapf(s.Draw(style).SavePNG(path), "saving %s", path)
}

// Preview prints an image file inline in the terminal (iTerm2 protocol).
func Preview(path string, w io.Writer) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(err, "preview")
	}
	imgcat.CatFile(path, w)
	fmt.Fprintln(w)
	return nil
}
