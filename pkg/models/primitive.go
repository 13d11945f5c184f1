package models

import (
	"fmt"
	"sort"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/taigrr/lumen/pkg/math3d"
)

// DefaultPrimitiveCells is the marching cubes resolution along the longest
// axis when none is given.
const DefaultPrimitiveCells = 48

type primitiveFunc func() (sdf.SDF3, error)

// primitives are unit sized and centred on the origin.
var primitives = map[string]primitiveFunc{
	"sphere": func() (sdf.SDF3, error) {
		return sdf.Sphere3D(1)
	},
	"box": func() (sdf.SDF3, error) {
		return sdf.Box3D(v3.Vec{X: 1.5, Y: 1.5, Z: 1.5}, 0.1)
	},
	"cylinder": func() (sdf.SDF3, error) {
		return sdf.Cylinder3D(2, 0.8, 0.1)
	},
}

// PrimitiveNames returns the names accepted by Primitive, sorted.
func PrimitiveNames() []string {
	names := make([]string, 0, len(primitives))
	for name := range primitives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsPrimitive reports whether name is a built-in primitive.
func IsPrimitive(name string) bool {
	_, ok := primitives[name]
	return ok
}

// Primitive meshes a built-in signed distance shape with marching cubes.
// cells sets the grid resolution; values below 8 use
// DefaultPrimitiveCells.
func Primitive(name string, cells int) (*Mesh, error) {
	build, ok := primitives[name]
	if !ok {
		return nil, fmt.Errorf("unknown primitive %q (have %v)", name, PrimitiveNames())
	}
	if cells < 8 {
		cells = DefaultPrimitiveCells
	}

	s, err := build()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	tris := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	mesh := FromTriangles(name, tris)
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyMesh)
	}
	return mesh, nil
}

// FromTriangles welds a triangle soup into an indexed mesh and gives it
// smooth normals. Degenerate triangles are dropped.
func FromTriangles(name string, tris []*sdf.Triangle3) *Mesh {
	mesh := NewMesh(name)
	index := make(map[v3.Vec]int, len(tris))

	for _, t := range tris {
		var f [3]int
		for j := range 3 {
			p := t[j]
			i, ok := index[p]
			if !ok {
				i = mesh.AddVertex(math3d.V3(p.X, p.Y, p.Z), math3d.Vec3{})
				index[p] = i
			}
			f[j] = i
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			continue
		}
		mesh.AddFace(f[0], f[1], f[2])
	}

	mesh.CalculateSmoothNormals()
	mesh.CalculateBounds()
	return mesh
}
