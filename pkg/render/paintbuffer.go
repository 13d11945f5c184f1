// Package render implements the lumen software rasterizer: projection,
// back-face culling, barycentric rasterization against a depth buffer, and
// per-vertex Blinn-Phong lighting interpolated across each face.
package render

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSizeMismatch is returned when a frame is presented to a surface
	// whose dimensions differ from the buffer's.
	ErrSizeMismatch = errors.New("render: buffer size mismatch")

	// ErrInvalidSize is returned for non-positive buffer dimensions.
	ErrInvalidSize = errors.New("render: invalid buffer size")
)

// PaintBuffer holds one frame: a packed color per pixel and the nearest
// camera-space depth written so far. Both slices are row-major and indexed
// by x + y*Width; their lengths always equal Width*Height.
type PaintBuffer struct {
	Width  int
	Height int
	Color  []uint32
	Depth  []float64
}

// NewPaintBuffer allocates a cleared buffer. It panics if either
// dimension is not positive; use Renderer.Frame for validated sizes.
func NewPaintBuffer(width, height int, background uint32) *PaintBuffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: NewPaintBuffer(%d, %d)", width, height))
	}
	b := &PaintBuffer{
		Width:  width,
		Height: height,
		Color:  make([]uint32, width*height),
		Depth:  make([]float64, width*height),
	}
	b.Clear(background)
	return b
}

// Clear resets every pixel to background and every depth to +Inf.
func (b *PaintBuffer) Clear(background uint32) {
	fill(b.Color, background)
	fill(b.Depth, math.Inf(1))
}

// fill sets every element of s to v, doubling the copied span each pass.
func fill[T any](s []T, v T) {
	if len(s) == 0 {
		return
	}
	s[0] = v
	for i := 1; i < len(s); i *= 2 {
		copy(s[i:], s[:i])
	}
}

// Index returns the slice index of (x, y) and whether it lies inside the
// buffer.
func (b *PaintBuffer) Index(x, y int) (int, bool) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0, false
	}
	return x + y*b.Width, true
}

// ColorAt returns the color at (x, y), or black out of bounds.
func (b *PaintBuffer) ColorAt(x, y int) uint32 {
	i, ok := b.Index(x, y)
	if !ok {
		return ColorBlack
	}
	return b.Color[i]
}

// DepthAt returns the stored depth at (x, y), or +Inf out of bounds.
func (b *PaintBuffer) DepthAt(x, y int) float64 {
	i, ok := b.Index(x, y)
	if !ok {
		return math.Inf(1)
	}
	return b.Depth[i]
}

// SameSize reports whether b has the given dimensions.
func (b *PaintBuffer) SameSize(width, height int) bool {
	return b.Width == width && b.Height == height
}

// CopyTo copies the color buffer into a presentation surface. The frame is
// refused with ErrSizeMismatch unless dst holds exactly Width*Height pixels.
func (b *PaintBuffer) CopyTo(dst []uint32) error {
	if len(dst) != len(b.Color) {
		return fmt.Errorf("%w: surface has %d pixels, frame has %d", ErrSizeMismatch, len(dst), len(b.Color))
	}
	copy(dst, b.Color)
	return nil
}
