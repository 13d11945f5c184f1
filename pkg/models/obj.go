package models

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/lumen/pkg/math3d"
)

// ErrOBJSyntax is wrapped by every OBJ parse error.
var ErrOBJSyntax = errors.New("models: obj syntax error")

// LoadOBJ loads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()
	return ReadOBJ(f, filepath.Base(path))
}

// objCorner is one face corner: a position index and an optional normal
// index (-1 when absent), both zero based.
type objCorner struct {
	v, vn int
}

// ReadOBJ parses the geometry statements of an OBJ stream: v, vn and f.
// Faces with more than three corners are split into a fan. Texture
// coordinates, groups and materials are ignored. If any corner lacks a
// normal, every vertex gets a smooth normal computed from the faces.
func ReadOBJ(r io.Reader, name string) (*Mesh, error) {
	var (
		positions []math3d.Vec3
		normals   []math3d.Vec3
		mesh      = NewMesh(name)
		corners   = make(map[objCorner]int)
		missing   bool
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseOBJVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			positions = append(positions, p)

		case "vn":
			n, err := parseOBJVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			normals = append(normals, n)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: %w: face needs 3 corners, got %d", lineNo, ErrOBJSyntax, len(fields)-1)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				c, err := parseOBJCorner(tok, len(positions), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				vi, ok := corners[c]
				if !ok {
					var n math3d.Vec3
					if c.vn >= 0 {
						n = normals[c.vn].Normalize()
					} else {
						missing = true
					}
					vi = mesh.AddVertex(positions[c.v], n)
					corners[c] = vi
				}
				idx = append(idx, vi)
			}
			for i := 1; i+1 < len(idx); i++ {
				mesh.AddFace(idx[0], idx[i], idx[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyMesh)
	}

	if missing {
		mesh.CalculateSmoothNormals()
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func parseOBJVec3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("%w: need 3 coordinates, got %d", ErrOBJSyntax, len(fields))
	}
	var xyz [3]float64
	for i := range xyz {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("%w: %w", ErrOBJSyntax, err)
		}
		xyz[i] = f
	}
	return math3d.V3(xyz[0], xyz[1], xyz[2]), nil
}

// parseOBJCorner parses "v", "v/vt", "v//vn" or "v/vt/vn".
func parseOBJCorner(tok string, nv, nvn int) (objCorner, error) {
	parts := strings.Split(tok, "/")
	v, err := resolveOBJIndex(parts[0], nv)
	if err != nil {
		return objCorner{}, err
	}
	c := objCorner{v: v, vn: -1}
	if len(parts) == 3 && parts[2] != "" {
		c.vn, err = resolveOBJIndex(parts[2], nvn)
		if err != nil {
			return objCorner{}, err
		}
	}
	return c, nil
}

// resolveOBJIndex turns a 1-based or negative (relative) index into a
// zero-based one.
func resolveOBJIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad index %q", ErrOBJSyntax, s)
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	default:
		return 0, fmt.Errorf("%w: index %d out of range (%d defined)", ErrOBJSyntax, i, n)
	}
}
