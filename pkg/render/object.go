package render

import (
	"time"

	"github.com/taigrr/lumen/pkg/math3d"
)

// FrameStats counts what happened while painting.
type FrameStats struct {
	Triangles int // triangles submitted
	Culled    int // back-facing or degenerate after projection
	Pixels    int // pixels that passed the depth test
}

// Add accumulates o into s.
func (s *FrameStats) Add(o FrameStats) {
	s.Triangles += o.Triangles
	s.Culled += o.Culled
	s.Pixels += o.Pixels
}

// Object3D is a rigid mesh with a position and a rotation about the
// vertical axis. The triangles are stored in model space and are never
// modified; each frame paints transformed copies.
type Object3D struct {
	Position  math3d.Vec3 // subtracted from every vertex
	Rotation  float64     // radians
	Spin      float64     // radians per second, used by Advance
	Triangles []ColorTriangle
}

// NewObject3D creates an object at the origin spinning at 1 rad/s.
func NewObject3D(triangles []ColorTriangle) *Object3D {
	return &Object3D{Spin: 1, Triangles: triangles}
}

// Advance sets the rotation for a frame that is elapsed time into the
// animation.
func (o *Object3D) Advance(elapsed time.Duration) {
	o.Rotation = o.Spin * elapsed.Seconds()
}

// Transformed returns the i-th triangle as it is painted: geometry and
// normals rotated by Rotation, then geometry moved by -Position.
func (o *Object3D) Transformed(i int) ColorTriangle {
	return o.Triangles[i].
		RotateXZ(o.Rotation).
		Translate(o.Position.Negate())
}

// Paint rasterizes every triangle into buf.
func (o *Object3D) Paint(buf *PaintBuffer, scene Scene) FrameStats {
	var stats FrameStats
	for i := range o.Triangles {
		px, drawn := o.Transformed(i).Paint(buf, scene)
		stats.Triangles++
		stats.Pixels += px
		if !drawn {
			stats.Culled++
		}
	}
	return stats
}
