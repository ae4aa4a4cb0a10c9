package scene

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/loaders"
)

// NewSDFScene creates a scene with a rounded box carved by a sphere, built as
// a signed distance solid and tessellated into a triangle mesh. cells sets
// the marching cubes resolution (<= 0 for the default).
func NewSDFScene(cells int, logger core.Logger) (*Scene, error) {
	solid, err := carvedBox()
	if err != nil {
		return nil, fmt.Errorf("failed to build SDF solid: %w", err)
	}

	// Lift the solid so it rests on the ground, and push it into view
	placed := sdf.Transform3D(solid, sdf.Translate3d(v3.Vec{X: 0, Y: 1.5, Z: 9}))
	triangles := loaders.TessellateSDF(placed, cells, logger)

	s := New(NewDefaultCamera(), DefaultWidth, DefaultHeight)
	addMeshLighting(s)
	addGroundPlane(s, core.NewColor(180, 180, 180))
	s.AddObject(geometry.NewMesh(triangles), core.NewColor(120, 170, 240))
	return s, nil
}

// carvedBox is a 3-unit rounded cube minus a sphere centered on its top face
func carvedBox() (sdf.SDF3, error) {
	box, err := sdf.Box3D(v3.Vec{X: 3, Y: 3, Z: 3}, 0.3)
	if err != nil {
		return nil, err
	}

	sphere, err := sdf.Sphere3D(1.4)
	if err != nil {
		return nil, err
	}
	sphere = sdf.Transform3D(sphere, sdf.Translate3d(v3.Vec{X: 0, Y: 1.5, Z: 0}))

	return sdf.Difference3D(box, sphere), nil
}

// boxSolid is an axis-aligned rounded box centered at center
func boxSolid(center, size core.Vec3, round float64) (sdf.SDF3, error) {
	box, err := sdf.Box3D(v3.Vec{X: size.X, Y: size.Y, Z: size.Z}, round)
	if err != nil {
		return nil, err
	}
	return sdf.Transform3D(box, sdf.Translate3d(v3.Vec{X: center.X, Y: center.Y, Z: center.Z})), nil
}
