package render

import "github.com/taigrr/lumen/pkg/math3d"

// Camera is an eye point looking down +z in its own space. ViewDir points
// from the surface toward the viewer and only feeds the specular half
// vector; it does not orient the projection.
type Camera struct {
	Position math3d.Vec3
	ViewDir  math3d.Vec3
}

// Light is a single point light. Color holds per-channel intensity
// factors, nominally in [0,1].
type Light struct {
	Position math3d.Vec3
	Color    [3]float64
}

// Scene is the per-frame camera and light, passed by value.
type Scene struct {
	Camera Camera
	Light  Light
}

// DefaultCamera sits five units in front of the origin.
func DefaultCamera() Camera {
	return Camera{
		Position: math3d.V3(0, 0, -5),
		ViewDir:  math3d.V3(0, 0, -1),
	}
}

// DefaultLight is an orange light up and to the right of the origin.
func DefaultLight() Light {
	return Light{
		Position: math3d.V3(2, 0.75, -0.5),
		Color:    [3]float64{1, 0.3, 0},
	}
}

// NewScene builds a scene from a camera and a light.
func NewScene(cam Camera, light Light) Scene {
	return Scene{Camera: cam, Light: light}
}

// DefaultScene returns NewScene(DefaultCamera(), DefaultLight()).
func DefaultScene() Scene {
	return NewScene(DefaultCamera(), DefaultLight())
}
