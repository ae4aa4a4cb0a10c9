package scene

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/loaders"
)

// meshTarget is where mesh scenes place the model, and meshExtent the size
// of its longest side after fitting
var (
	meshTarget = core.NewVec3(0, 2, 9)
	meshExtent = 4.0
)

// NewOctahedronScene creates a mesh scene around a built-in octahedron
func NewOctahedronScene() *Scene {
	mesh, err := geometry.NewTriangleMesh(octahedronVertices, octahedronFaces, &geometry.TriangleMeshOptions{
		Scale:  meshExtent / 2,
		Offset: meshTarget,
	})
	if err != nil {
		// The built-in index list is fixed, so this is a programming error
		panic(err)
	}

	s := New(NewDefaultCamera(), DefaultWidth, DefaultHeight)
	addMeshLighting(s)
	addGroundPlane(s, core.NewColor(180, 180, 180))
	s.AddObject(mesh, core.NewColor(240, 190, 60))
	return s
}

// LoadMeshScene loads an OBJ or PLY model, fits it into the view and places it
// over the ground plane
func LoadMeshScene(path string, logger core.Logger) (*Scene, error) {
	data, err := loaders.LoadMesh(path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh scene: %w", err)
	}

	mesh, err := data.BuildMesh(fitOptions(data.Vertices, meshTarget, meshExtent))
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh %s: %w", path, err)
	}

	s := New(NewDefaultCamera(), DefaultWidth, DefaultHeight)
	addMeshLighting(s)
	addGroundPlane(s, core.NewColor(180, 180, 180))
	s.AddObject(mesh, core.NewColor(240, 190, 60))
	return s, nil
}

// fitOptions scales vertices uniformly so the longest side of their bounds is
// extent, then moves the bounds' center to target
func fitOptions(vertices []core.Vec3, target core.Vec3, extent float64) *geometry.TriangleMeshOptions {
	bounds := core.NewAABBFromPoints(vertices...)
	size := bounds.Size()
	longest := max(size.X, size.Y, size.Z)

	scale := 1.0
	if longest > 0 {
		scale = extent / longest
	}

	return &geometry.TriangleMeshOptions{
		Scale:  scale,
		Offset: target.Subtract(bounds.Center().Multiply(scale)),
	}
}

// addMeshLighting adds a warm key light and a cool fill light
func addMeshLighting(s *Scene) {
	s.AddLight(core.NewVec3(4, 10, 4), core.NewColor(255, 240, 220))
	s.AddLight(core.NewVec3(-6, 5, 2), core.NewColor(70, 90, 130))
}

var octahedronVertices = []core.Vec3{
	core.NewVec3(1, 0, 0),
	core.NewVec3(-1, 0, 0),
	core.NewVec3(0, 1, 0),
	core.NewVec3(0, -1, 0),
	core.NewVec3(0, 0, 1),
	core.NewVec3(0, 0, -1),
}

// Faces wound counter-clockwise seen from outside
var octahedronFaces = []int{
	0, 2, 4,
	2, 1, 4,
	1, 3, 4,
	3, 0, 4,
	2, 0, 5,
	1, 2, 5,
	3, 1, 5,
	0, 3, 5,
}
