package render

import (
	"math"
	"testing"

	"github.com/taigrr/lumen/pkg/math3d"
)

var towardCamera = Tri3(math3d.V3(0, 0, -1), math3d.V3(0, 0, -1), math3d.V3(0, 0, -1))

func TestVertexLightingShade(t *testing.T) {
	tests := []struct {
		name string
		vl   VertexLighting
		want uint32
		wa   float64
		wb   float64
		wc   float64
	}{
		{
			name: "ambient only",
			vl:   VertexLighting{Light: [3]float64{1, 1, 1}},
			wa:   1,
			want: PackRGB(38, 38, 38), // 0.15 * 255
		},
		{
			name: "saturated",
			vl: VertexLighting{
				Diffuse:  [3]float64{1, 1, 1},
				Specular: [3]float64{1, 1, 1},
				Light:    [3]float64{1, 0.3, 0},
			},
			wa: 0.2, wb: 0.3, wc: 0.5,
			want: PackRGB(255, 76, 0),
		},
		{
			name: "back lit clamps to black",
			vl: VertexLighting{
				Diffuse: [3]float64{-1, -1, -1},
				Light:   [3]float64{1, 1, 1},
			},
			wb:   1,
			want: ColorBlack,
		},
		{
			name: "interpolated",
			vl: VertexLighting{
				Diffuse: [3]float64{0.85, 0, 0},
				Light:   [3]float64{1, 1, 1},
			},
			wa: 0.5, wc: 0.5,
			want: PackRGB(146, 146, 146), // (0.15 + 0.425) * 255
		},
		{
			name: "light above one",
			vl: VertexLighting{
				Diffuse: [3]float64{0.6, 0.6, 0.6},
				Light:   [3]float64{2, 0, 0},
			},
			wa:   1,
			want: PackRGB(255, 0, 0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.vl.Shade(tc.wa, tc.wb, tc.wc); got != tc.want {
				t.Errorf("Shade = %06x, want %06x", got, tc.want)
			}
		})
	}
}

func TestColorTriangleLighting(t *testing.T) {
	ct := NewColorTriangle(ColorWhite, facingTri(2), towardCamera)
	vl := ct.Lighting(testScene())

	// l = normalize((0,0,1) - v); diffuse is l.z flipped by the normal.
	wantA := 1 / math.Sqrt(1.5)
	wantB := 1 / math.Sqrt(1.25)
	if math.Abs(vl.Diffuse[0]-wantA) > 1e-9 || math.Abs(vl.Diffuse[2]-wantA) > 1e-9 {
		t.Errorf("diffuse at A, C = %v, %v, want %v", vl.Diffuse[0], vl.Diffuse[2], wantA)
	}
	if math.Abs(vl.Diffuse[1]-wantB) > 1e-9 {
		t.Errorf("diffuse at B = %v, want %v", vl.Diffuse[1], wantB)
	}
	// The half vector leans away from the normal, so no highlight.
	for i, s := range vl.Specular {
		if s != 0 {
			t.Errorf("specular[%d] = %v, want 0", i, s)
		}
	}
	if vl.Light != [3]float64{1, 1, 1} {
		t.Errorf("light = %v", vl.Light)
	}
}

func TestColorTriangleSpecular(t *testing.T) {
	// Light and viewer straight along the normal: h == n, so the specular term is 1.
	scene := NewScene(
		Camera{Position: math3d.Zero3(), ViewDir: math3d.V3(0, 0, -1)},
		Light{Position: math3d.V3(0, 0, -10), Color: [3]float64{1, 1, 1}},
	)
	tri := Tri3(math3d.V3(0, 0, 2), math3d.V3(0, 0, 2), math3d.V3(0, 0, 2))
	vl := NewColorTriangle(0, tri, towardCamera).Lighting(scene)
	for i := range 3 {
		if math.Abs(vl.Specular[i]-1) > 1e-9 {
			t.Errorf("specular[%d] = %v, want 1", i, vl.Specular[i])
		}
		if math.Abs(vl.Diffuse[i]-1) > 1e-9 {
			t.Errorf("diffuse[%d] = %v, want 1", i, vl.Diffuse[i])
		}
	}
}

func TestColorTriangleTransforms(t *testing.T) {
	ct := NewColorTriangle(0xabcdef, facingTri(2), towardCamera)

	moved := ct.Translate(math3d.V3(1, 0, 0))
	if moved.Normals != ct.Normals {
		t.Error("Translate moved the normals")
	}
	if !moved.Tri.A.ApproxEqual(ct.Tri.A.Add(math3d.V3(1, 0, 0)), 1e-12) {
		t.Errorf("Translate A = %v", moved.Tri.A)
	}
	if moved.Color != ct.Color {
		t.Error("Translate changed the color")
	}

	turned := ct.RotateXZ(math.Pi / 2)
	if !turned.Normals.A.ApproxEqual(math3d.V3(1, 0, 0), 1e-12) {
		t.Errorf("rotated normal = %v, want (1,0,0)", turned.Normals.A)
	}
	if ct.Normals != towardCamera {
		t.Error("RotateXZ mutated the receiver")
	}
}

func TestColorTrianglePaintEndToEnd(t *testing.T) {
	buf := NewPaintBuffer(100, 100, ColorBackground)
	ct := NewColorTriangle(ColorBlack, facingTri(2), towardCamera)
	if _, drawn := ct.Paint(buf, testScene()); !drawn {
		t.Fatal("culled")
	}

	// Near B the diffuse term alone passes 0.85, so the sum saturates.
	if c := buf.ColorAt(50, 28); c != ColorWhite {
		t.Errorf("near B = %06x, want white", c)
	}

	// Near A the brightness is just under 1: a light gray.
	r, g, b := UnpackRGB(buf.ColorAt(30, 73))
	if r != g || g != b {
		t.Errorf("near A = (%d,%d,%d), want gray under white light", r, g, b)
	}
	if r < 240 || r > 250 {
		t.Errorf("near A channel = %d, want about 246", r)
	}

	if c := buf.ColorAt(5, 5); c != ColorBackground {
		t.Errorf("corner = %06x, want background", c)
	}
	if d := buf.DepthAt(5, 5); !math.IsInf(d, 1) {
		t.Errorf("corner depth = %v, want +Inf", d)
	}
}

func TestShaderFunc(t *testing.T) {
	var s Shader = ShaderFunc(func(wa, wb, wc float64) uint32 {
		return PackRGB(uint8(wa*255), uint8(wb*255), uint8(wc*255))
	})
	if got := s.Shade(1, 0, 0); got != 0xff0000 {
		t.Errorf("Shade = %06x", got)
	}
}
