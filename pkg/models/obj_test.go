package models

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/lumen/pkg/math3d"
)

const quadOBJ = `# unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 2
f 1//1 2//1 3//1 4//1
`

func TestReadOBJQuad(t *testing.T) {
	mesh, err := ReadOBJ(strings.NewReader(quadOBJ), "quad")
	if err != nil {
		t.Fatalf("ReadOBJ: %v", err)
	}
	if mesh.TriangleCount() != 2 {
		t.Fatalf("triangles = %d, want 2 (fan)", mesh.TriangleCount())
	}
	if got := mesh.GetFace(1); got != [3]int{0, 2, 3} {
		t.Errorf("face 1 = %v", got)
	}
	_, n := mesh.GetVertex(0)
	if n != math3d.V3(0, 0, 1) {
		t.Errorf("normal = %v, want normalized +z", n)
	}
	if mesh.BoundsMax != math3d.V3(1, 1, 0) {
		t.Errorf("BoundsMax = %v", mesh.BoundsMax)
	}
}

func TestReadOBJCornerForms(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
vn 0 0 -1
f 1/1/1 2/1/1 3/1/1
f -3//2 -1//2 -2//2
f 1/1 2/1 3/1
`
	mesh, err := ReadOBJ(strings.NewReader(src), "forms")
	if err != nil {
		t.Fatalf("ReadOBJ: %v", err)
	}
	if mesh.TriangleCount() != 3 {
		t.Fatalf("triangles = %d", mesh.TriangleCount())
	}
	// Same position with a different normal is a different vertex.
	if mesh.VertexCount() != 9 {
		t.Errorf("vertices = %d, want 9", mesh.VertexCount())
	}
	if got := mesh.GetFace(1); mesh.Vertices[got[1]].Position != math3d.V3(0, 1, 0) {
		t.Errorf("negative index resolved to %v", mesh.Vertices[got[1]].Position)
	}
}

func TestReadOBJComputesNormals(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	mesh, err := ReadOBJ(strings.NewReader(src), "tri")
	if err != nil {
		t.Fatalf("ReadOBJ: %v", err)
	}
	for i := range mesh.Vertices {
		if _, n := mesh.GetVertex(i); !n.ApproxEqual(math3d.V3(0, 0, 1), 1e-12) {
			t.Errorf("vertex %d normal = %v", i, n)
		}
	}
}

func TestReadOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "# nothing\n", ErrEmptyMesh},
		{"short vertex", "v 1 2\n", ErrOBJSyntax},
		{"bad float", "v 1 x 2\n", ErrOBJSyntax},
		{"two corners", "v 0 0 0\nv 1 0 0\nf 1 2\n", ErrOBJSyntax},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", ErrOBJSyntax},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", ErrOBJSyntax},
		{"bad normal index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2//1 3//1\n", ErrOBJSyntax},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadOBJ(strings.NewReader(tc.src), tc.name)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0o644); err != nil {
		t.Fatal(err)
	}
	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if mesh.Name != "quad.obj" {
		t.Errorf("Name = %q", mesh.Name)
	}

	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}
