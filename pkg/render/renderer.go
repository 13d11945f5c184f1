package render

import (
	"fmt"
	"time"

	"github.com/taigrr/lumen/internal/logging"
)

// Renderer owns the paint buffer between frames and reallocates it only
// when the output size changes.
type Renderer struct {
	Background uint32
	Stats      FrameStats // from the last Render call

	buf *PaintBuffer
}

// NewRenderer creates a renderer that clears to background.
func NewRenderer(background uint32) *Renderer {
	return &Renderer{Background: background}
}

// Frame returns a cleared buffer of the given size, reusing the previous
// one when the dimensions match.
func (r *Renderer) Frame(width, height int) (*PaintBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if r.buf == nil || !r.buf.SameSize(width, height) {
		logging.Logger().Info("allocating paint buffer", "width", width, "height", height)
		r.buf = NewPaintBuffer(width, height, r.Background)
		return r.buf, nil
	}
	r.buf.Clear(r.Background)
	return r.buf, nil
}

// Render clears a frame and paints objects into it in order.
func (r *Renderer) Render(width, height int, scene Scene, objects ...*Object3D) (*PaintBuffer, error) {
	buf, err := r.Frame(width, height)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var stats FrameStats
	for _, o := range objects {
		stats.Add(o.Paint(buf, scene))
	}
	r.Stats = stats

	logging.Logger().Debug("frame",
		"width", width,
		"height", height,
		"triangles", stats.Triangles,
		"culled", stats.Culled,
		"pixels", stats.Pixels,
		"took", time.Since(start),
	)
	return buf, nil
}
