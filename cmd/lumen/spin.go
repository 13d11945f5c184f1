package main

import "github.com/charmbracelet/harmonica"

// spinBoost is extra rotation on top of the object's steady spin. Key
// presses add velocity; a critically damped spring eases it back to zero.
type spinBoost struct {
	Offset   float64 // accumulated extra rotation, radians
	Velocity float64 // radians per frame

	spring harmonica.Spring
	accel  float64
	fps    int
}

func newSpinBoost(fps int) *spinBoost {
	return &spinBoost{
		// Frequency 4, damping 1: settles in about a second without overshoot.
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
		fps:    fps,
	}
}

// Impulse adds v radians per second of spin.
func (s *spinBoost) Impulse(v float64) {
	s.Velocity += v / float64(s.fps)
}

// Update advances one frame.
func (s *spinBoost) Update() {
	s.Offset += s.Velocity
	s.Velocity, s.accel = s.spring.Update(s.Velocity, s.accel, 0)
}

// Reset drops the offset and any remaining velocity.
func (s *spinBoost) Reset() {
	s.Offset, s.Velocity, s.accel = 0, 0, 0
}
