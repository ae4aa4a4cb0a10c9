package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// Default image size shared by the built-in scenes
const (
	DefaultWidth  = 400
	DefaultHeight = 300
)

// NewDefaultCamera creates the camera used by the built-in scenes: two units
// above the ground, looking down +z
func NewDefaultCamera() *Camera {
	return NewCamera(
		core.NewVec3(0, 2, 0), // position
		core.NewVec3(0, 0, 1), // forward
		core.NewVec3(0, 1, 0), // up
		1.0,                   // focal distance
	)
}

// NewDefaultScene creates a scene with two spheres resting over a ground plane
// and a single white light above them
func NewDefaultScene() *Scene {
	s := New(NewDefaultCamera(), DefaultWidth, DefaultHeight)

	// Large blue sphere in the background
	s.AddObject(geometry.NewSphere(core.NewVec3(1, 2, 15), 5), core.NewColor(85, 205, 252))

	// Small white sphere in front, half sunk into the ground
	s.AddObject(geometry.NewSphere(core.NewVec3(-1, 0, 7), 2), core.White)

	addGroundPlane(s, core.NewColor(247, 168, 184))

	s.AddLight(core.NewVec3(0, 10, 6), core.White)

	return s
}

// addGroundPlane adds the y=0 plane facing up
func addGroundPlane(s *Scene, color core.Color) {
	ground := geometry.NewPlane(
		core.NewVec3(0, 0, 0), // point on plane
		core.NewVec3(0, 1, 0), // normal
	)
	s.AddObject(ground, color)
}
