package render

import (
	"github.com/taigrr/lumen/pkg/math3d"
)

// Triangle3D is an ordered triple of points. The same type carries vertex
// positions and, in ColorTriangle, per-vertex normals.
type Triangle3D struct {
	A, B, C math3d.Vec3
}

// Tri3 creates a Triangle3D.
func Tri3(a, b, c math3d.Vec3) Triangle3D {
	return Triangle3D{a, b, c}
}

// Translate returns the triangle moved by offset.
func (t Triangle3D) Translate(offset math3d.Vec3) Triangle3D {
	return Triangle3D{t.A.Add(offset), t.B.Add(offset), t.C.Add(offset)}
}

// RotateXZ returns the triangle rotated about the vertical axis.
func (t Triangle3D) RotateXZ(angle float64) Triangle3D {
	return Triangle3D{t.A.RotateXZ(angle), t.B.RotateXZ(angle), t.C.RotateXZ(angle)}
}

// FlipY mirrors every vertex across the XZ plane.
func (t Triangle3D) FlipY() Triangle3D {
	return Triangle3D{t.A.FlipY(), t.B.FlipY(), t.C.FlipY()}
}

// ProjectTo2D applies the perspective divide (x/z, y/z). There is no near
// plane: a vertex at z == 0 produces Inf or NaN and a vertex behind the
// camera is mirrored through it.
func (t Triangle3D) ProjectTo2D() Triangle2D {
	return Triangle2D{project(t.A), project(t.B), project(t.C)}
}

func project(v math3d.Vec3) math3d.Vec2 {
	return math3d.V2(v.X/v.Z, v.Y/v.Z)
}

var screenCenter = math3d.V2(0.5, 0.5)

// screenSpace moves a camera-relative triangle to normalized screen space.
// Both triangles are returned: depth comes from the 3D one.
func (t Triangle3D) screenSpace(cam Camera) (Triangle3D, Triangle2D) {
	view := t.Translate(cam.Position.Negate()).FlipY()
	flat := view.ProjectTo2D()
	flat.A = flat.A.Add(screenCenter)
	flat.B = flat.B.Add(screenCenter)
	flat.C = flat.C.Add(screenCenter)
	return view, flat
}

// Paint rasterizes the triangle into buf. The triangle is moved into
// camera space, projected, and culled unless its signed area is positive.
// Each pixel whose centre lies inside the triangle gets an interpolated
// depth; when that depth is strictly nearer than the stored one the depth
// is written and the color comes from shader. On an exact tie the pixel
// painted first is kept.
//
// Paint reports the number of pixels written and whether the triangle
// survived culling.
func (t Triangle3D) Paint(buf *PaintBuffer, scene Scene, shader Shader) (pixels int, drawn bool) {
	view, flat := t.screenSpace(scene.Camera)

	// NaN from a vertex on the camera plane must also cull.
	if !(flat.SignedArea() > 0) {
		return 0, false
	}

	box := flat.BoundingBoxPx(buf.Width, buf.Height)
	minX, minY := max(box.MinX, 0), max(box.MinY, 0)
	maxX, maxY := min(box.MaxX, buf.Width-1), min(box.MaxY, buf.Height-1)

	w, h := float64(buf.Width), float64(buf.Height)
	for y := minY; y <= maxY; y++ {
		py := (float64(y) + 0.5) / h
		row := y * buf.Width
		for x := minX; x <= maxX; x++ {
			p := math3d.V2((float64(x)+0.5)/w, py)
			wa, wb, wc := flat.WeightsAt(p)
			if !inside(wa, wb, wc) {
				continue
			}
			z := view.A.Z*wa + view.B.Z*wb + view.C.Z*wc
			i := row + x
			if z < buf.Depth[i] {
				buf.Depth[i] = z
				buf.Color[i] = shader.Shade(wa, wb, wc)
				pixels++
			}
		}
	}
	return pixels, true
}
