package models

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/taigrr/lumen/internal/logging"
)

// Load resolves a model argument: a built-in primitive name or a path to
// an .obj, .glb or .gltf file. cells is passed to Primitive.
func Load(source string, cells int) (*Mesh, error) {
	var (
		mesh *Mesh
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(source)); {
	case IsPrimitive(source):
		mesh, err = Primitive(source, cells)
	case ext == ".obj":
		mesh, err = LoadOBJ(source)
	case ext == ".glb" || ext == ".gltf":
		mesh, err = LoadGLB(source)
	default:
		return nil, fmt.Errorf("unsupported model %q: use .obj, .glb, .gltf or one of %v", source, PrimitiveNames())
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}

	logging.Logger().Info("loaded mesh",
		"name", mesh.Name,
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount(),
		"size", mesh.Size(),
	)
	return mesh, nil
}
