package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// Object pairs a shape with its base colour
type Object struct {
	Shape geometry.Shape
	Color core.Color
}

// PointLight is an idealized zero-size emitter
type PointLight struct {
	Position core.Vec3
	Color    core.Color
}

// Scene contains all the elements needed for rendering. It is assembled once
// and treated as read-only while a frame renders.
type Scene struct {
	Name     string
	Camera   *Camera
	Objects  []Object       // Objects in the scene, in stable order
	Lights   []PointLight   // Lights in the scene; none renders black
	Width    int            // Recommended image width
	Height   int            // Recommended image height
	Settings RenderSettings // Render overrides requested by the scene
}

// New creates an empty scene viewed through camera
func New(camera *Camera, width, height int) *Scene {
	return &Scene{
		Camera:  camera,
		Objects: make([]Object, 0),
		Lights:  make([]PointLight, 0),
		Width:   width,
		Height:  height,
	}
}

// AddObject appends a shape with its base colour
func (s *Scene) AddObject(shape geometry.Shape, color core.Color) {
	s.Objects = append(s.Objects, Object{Shape: shape, Color: color})
}

// AddLight appends a point light
func (s *Scene) AddLight(position core.Vec3, color core.Color) {
	s.Lights = append(s.Lights, PointLight{Position: position, Color: color})
}

// ObjectCount returns the number of top-level objects
func (s *Scene) ObjectCount() int {
	return len(s.Objects)
}

// Shapes returns the objects' shapes in scene order
func (s *Scene) Shapes() []geometry.Shape {
	shapes := make([]geometry.Shape, len(s.Objects))
	for i, obj := range s.Objects {
		shapes[i] = obj.Shape
	}
	return shapes
}

// GetPrimitiveCount returns the total number of primitives, counting each
// mesh triangle separately
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, obj := range s.Objects {
		if mesh, ok := obj.Shape.(*geometry.Mesh); ok {
			count += mesh.TriangleCount()
		} else {
			count++
		}
	}
	return count
}
