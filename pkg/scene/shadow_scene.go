package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// NewShadowScene creates a scene with a sphere hovering between the ground
// and an overhead light, casting a hard shadow straight down, plus a coloured
// second light off to the side
func NewShadowScene() *Scene {
	camera := NewCamera(
		core.NewVec3(0, 4, 0),    // position
		core.NewVec3(0, -0.3, 1), // forward, tilted toward the ground
		core.NewVec3(0, 1, 0.3),  // up
		1.2,                      // focal distance
	)
	s := New(camera, DefaultWidth, DefaultHeight)

	addGroundPlane(s, core.NewColor(200, 200, 200))

	// Occluder directly under the key light
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 3, 12), 1.5), core.NewColor(230, 80, 60))

	// Small sphere resting on the ground, partly inside the occluder's shadow
	s.AddObject(geometry.NewSphere(core.NewVec3(1.5, 0.75, 12), 0.75), core.NewColor(90, 200, 120))

	s.AddLight(core.NewVec3(0, 12, 12), core.White)                // key light
	s.AddLight(core.NewVec3(-8, 6, 4), core.NewColor(80, 80, 160)) // dim blue fill

	return s
}
