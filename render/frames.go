package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DubiousDoggo/delaunay-visualizer/quadedge"
	"github.com/pkg/errors"
)

// FrameRecorder is a step observer that saves a PNG of the structure around
// the builder's current boundary edges after every step, numbered in order.
// All frames share the bounds of the full point set so they line up.
//
// Step cannot fail, so the first error is kept and later frames are skipped.
type FrameRecorder struct {
	dir    string
	style  Style
	points []Point
	frames int
	err    error
}

func NewFrameRecorder(dir string, points []Point, style Style) (*FrameRecorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating frame directory")
	}
	return &FrameRecorder{
		dir:    dir,
		style:  style,
		points: points,
	}, nil
}

func (r *FrameRecorder) Step(left, right quadedge.Edge) {
	if r.err != nil {
		return
	}
	scene := NewScene(r.style, left, right)
	scene.AddPoints(r.points)
	scene.HighlightEdges(left, right)
	r.err = scene.SavePNG(r.FramePath(r.frames), r.style)
	if r.err == nil {
		r.frames++
	}
}

func (r *FrameRecorder) FramePath(i int) string {
	return filepath.Join(r.dir, fmt.Sprintf("step%04d.png", i))
}

func (r *FrameRecorder) Frames() int {
	return r.frames
}

func (r *FrameRecorder) Err() error {
	return r.err
}
