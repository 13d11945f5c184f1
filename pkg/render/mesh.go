package render

import "github.com/taigrr/lumen/pkg/math3d"

// MeshSource is an indexed triangle mesh with per-vertex normals.
type MeshSource interface {
	TriangleCount() int
	GetFace(i int) [3]int
	GetVertex(i int) (pos, normal math3d.Vec3)
}

// NewObject copies src into a renderable object. Every triangle carries
// color.
func NewObject(src MeshSource, color uint32) *Object3D {
	n := src.TriangleCount()
	tris := make([]ColorTriangle, 0, n)
	for i := range n {
		f := src.GetFace(i)
		p0, n0 := src.GetVertex(f[0])
		p1, n1 := src.GetVertex(f[1])
		p2, n2 := src.GetVertex(f[2])
		tris = append(tris, NewColorTriangle(color, Tri3(p0, p1, p2), Tri3(n0, n1, n2)))
	}
	return NewObject3D(tris)
}
