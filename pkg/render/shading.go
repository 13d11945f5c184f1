package render

import (
	"math"

	"github.com/taigrr/lumen/pkg/math3d"
)

// Lighting constants.
const (
	Ambient   = 0.15
	Shininess = 4
)

// Shader produces the color of a covered pixel from its barycentric
// weights.
type Shader interface {
	Shade(wa, wb, wc float64) uint32
}

// ShaderFunc adapts a function to the Shader interface.
type ShaderFunc func(wa, wb, wc float64) uint32

// Shade calls f.
func (f ShaderFunc) Shade(wa, wb, wc float64) uint32 {
	return f(wa, wb, wc)
}

// FlatShader paints every pixel the same color.
type FlatShader uint32

// Shade returns the flat color.
func (s FlatShader) Shade(_, _, _ float64) uint32 {
	return uint32(s)
}

// VertexLighting holds the diffuse and specular terms evaluated at a
// triangle's three vertices, plus the light color. Shading interpolates
// the terms with the pixel's weights (Gouraud shading).
type VertexLighting struct {
	Diffuse  [3]float64
	Specular [3]float64
	Light    [3]float64
}

// Brightness returns the interpolated intensity at the given weights,
// clamped to [0,1].
func (v VertexLighting) Brightness(wa, wb, wc float64) float64 {
	b := Ambient +
		v.Diffuse[0]*wa + v.Diffuse[1]*wb + v.Diffuse[2]*wc +
		v.Specular[0]*wa + v.Specular[1]*wb + v.Specular[2]*wc
	return clamp01(b)
}

// Shade scales the light color by the brightness at the given weights.
func (v VertexLighting) Shade(wa, wb, wc float64) uint32 {
	b := v.Brightness(wa, wb, wc)
	return PackRGB(
		channel(b*v.Light[0]),
		channel(b*v.Light[1]),
		channel(b*v.Light[2]),
	)
}

func channel(f float64) uint8 {
	return uint8(clamp01(f) * 255)
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

// ColorTriangle is a triangle with per-vertex normals and a base color.
// Color is kept with the mesh but the lit color comes from the light
// alone.
type ColorTriangle struct {
	Color   uint32
	Tri     Triangle3D
	Normals Triangle3D
}

// NewColorTriangle creates a ColorTriangle. Normals must be unit vectors.
func NewColorTriangle(color uint32, tri, normals Triangle3D) ColorTriangle {
	return ColorTriangle{Color: color, Tri: tri, Normals: normals}
}

// Translate moves the geometry by offset. Normals are directions and stay
// as they are.
func (c ColorTriangle) Translate(offset math3d.Vec3) ColorTriangle {
	c.Tri = c.Tri.Translate(offset)
	return c
}

// RotateXZ rotates both geometry and normals about the vertical axis.
func (c ColorTriangle) RotateXZ(angle float64) ColorTriangle {
	c.Tri = c.Tri.RotateXZ(angle)
	c.Normals = c.Normals.RotateXZ(angle)
	return c
}

// Lighting evaluates the Blinn-Phong terms at each vertex. The diffuse
// term is left unclamped so back-lit vertices darken their neighbours.
func (c ColorTriangle) Lighting(scene Scene) VertexLighting {
	verts := [3]math3d.Vec3{c.Tri.A, c.Tri.B, c.Tri.C}
	norms := [3]math3d.Vec3{c.Normals.A, c.Normals.B, c.Normals.C}

	vl := VertexLighting{Light: scene.Light.Color}
	for i := range verts {
		l := scene.Light.Position.Sub(verts[i]).Normalize()
		h := l.Add(scene.Camera.ViewDir).Normalize()
		vl.Diffuse[i] = l.Dot(norms[i])
		vl.Specular[i] = math.Pow(math.Max(norms[i].Dot(h), 0), Shininess)
	}
	return vl
}

// Paint lights the triangle once and rasterizes it with the result.
func (c ColorTriangle) Paint(buf *PaintBuffer, scene Scene) (pixels int, drawn bool) {
	return c.Tri.Paint(buf, scene, c.Lighting(scene))
}
