package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "quad.OBJ")
	if err := os.WriteFile(objPath, []byte(quadOBJ), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		source  string
		wantErr bool
	}{
		{"primitive", "box", false},
		{"obj upper-case extension", objPath, false},
		{"missing glb", filepath.Join(dir, "none.glb"), true},
		{"unsupported", filepath.Join(dir, "model.stl"), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mesh, err := Load(tc.source, 8)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Load(%q) err = %v, wantErr %v", tc.source, err, tc.wantErr)
			}
			if !tc.wantErr && mesh.TriangleCount() == 0 {
				t.Error("empty mesh")
			}
		})
	}
}
