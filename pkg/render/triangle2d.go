package render

import (
	"math"

	"github.com/taigrr/lumen/pkg/math3d"
)

// EdgeFunction returns twice the signed area of the triangle (a, b, c).
// Its sign tells which side of the line a→b the point c lies on.
func EdgeFunction(a, b, c math3d.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Triangle2D is a projected triangle in normalized screen space, where the
// visible area is the unit square and y grows downward.
type Triangle2D struct {
	A, B, C math3d.Vec2
}

// SignedArea returns 2 * EdgeFunction(A, B, C). Front-facing triangles
// have a positive value; zero or negative triangles are culled.
func (t Triangle2D) SignedArea() float64 {
	return 2 * EdgeFunction(t.A, t.B, t.C)
}

// WeightsAt returns the barycentric weights of p. Each weight is the edge
// function of the sub-triangle opposite its vertex divided by the whole,
// so the three always sum to 1. The result is undefined (Inf or NaN) for
// a degenerate triangle; cull those first.
func (t Triangle2D) WeightsAt(p math3d.Vec2) (wa, wb, wc float64) {
	area := EdgeFunction(t.A, t.B, t.C)
	wa = EdgeFunction(t.B, t.C, p) / area
	wb = EdgeFunction(t.C, t.A, p) / area
	wc = EdgeFunction(t.A, t.B, p) / area
	return wa, wb, wc
}

// ContainsPoint reports whether p lies inside the triangle or on one of
// its edges.
func (t Triangle2D) ContainsPoint(p math3d.Vec2) bool {
	wa, wb, wc := t.WeightsAt(p)
	return inside(wa, wb, wc)
}

func inside(wa, wb, wc float64) bool {
	return wa >= 0 && wb >= 0 && wc >= 0
}

// Rect is an axis-aligned rectangle in normalized screen space.
type Rect struct {
	Min, Max math3d.Vec2
}

// BoundingBox returns the triangle's bounds clamped to the unit square.
// A triangle entirely off screen yields an empty rectangle (Min > Max on
// some axis).
func (t Triangle2D) BoundingBox() Rect {
	minX := math.Min(t.A.X, math.Min(t.B.X, t.C.X))
	minY := math.Min(t.A.Y, math.Min(t.B.Y, t.C.Y))
	maxX := math.Max(t.A.X, math.Max(t.B.X, t.C.X))
	maxY := math.Max(t.A.Y, math.Max(t.B.Y, t.C.Y))
	return Rect{
		Min: math3d.V2(math.Max(minX, 0), math.Max(minY, 0)),
		Max: math3d.V2(math.Min(maxX, 1), math.Min(maxY, 1)),
	}
}

// PixelBox is an inclusive range of pixel coordinates. Bounds may reach
// one past the last row or column; callers skip indices outside the
// buffer.
type PixelBox struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Empty reports whether the box covers no pixels.
func (p PixelBox) Empty() bool {
	return p.MinX > p.MaxX || p.MinY > p.MaxY
}

// BoundingBoxPx scales the clamped bounding box to a width x height pixel
// grid, flooring the minimum and ceiling the maximum so every partially
// covered pixel is visited.
func (t Triangle2D) BoundingBoxPx(width, height int) PixelBox {
	r := t.BoundingBox()
	w, h := float64(width), float64(height)
	return PixelBox{
		MinX: int(math.Floor(r.Min.X * w)),
		MinY: int(math.Floor(r.Min.Y * h)),
		MaxX: int(math.Ceil(r.Max.X * w)),
		MaxY: int(math.Ceil(r.Max.Y * h)),
	}
}
