package loaders

import (
	"time"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// DefaultSDFCells is the marching cubes resolution along the longest axis
const DefaultSDFCells = 64

// minTriangleArea drops slivers produced where the surface grazes a cell corner
const minTriangleArea = 1e-12

// TessellateSDF converts a signed distance solid into triangles with uniform
// marching cubes. Triangles keep sdfx's outward winding so their face normals
// point away from the solid. cells <= 0 uses DefaultSDFCells.
func TessellateSDF(solid sdf.SDF3, cells int, logger core.Logger) []*geometry.Triangle {
	startTime := time.Now()
	if cells <= 0 {
		cells = DefaultSDFCells
	}

	renderer := render.NewMarchingCubesUniform(cells)
	sdfTriangles := render.ToTriangles(solid, renderer)

	triangles := make([]*geometry.Triangle, 0, len(sdfTriangles))
	for _, tri := range sdfTriangles {
		v0 := core.NewVec3(tri[0].X, tri[0].Y, tri[0].Z)
		v1 := core.NewVec3(tri[1].X, tri[1].Y, tri[1].Z)
		v2 := core.NewVec3(tri[2].X, tri[2].Y, tri[2].Z)

		if v1.Subtract(v0).Cross(v2.Subtract(v0)).Length() < 2*minTriangleArea {
			continue
		}
		triangles = append(triangles, geometry.NewTriangle(v0, v1, v2))
	}

	logger.Printf("Tessellated SDF solid: %d triangles (%d degenerate dropped) in %v\n",
		len(triangles), len(sdfTriangles)-len(triangles), time.Since(startTime))
	return triangles
}
