package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// TriangleSource provides indexed access to a mesh's triangles
type TriangleSource interface {
	Len() int
	At(i int) *Triangle
}

// TriangleList is a TriangleSource backed by a slice
type TriangleList []*Triangle

func (l TriangleList) Len() int           { return len(l) }
func (l TriangleList) At(i int) *Triangle { return l[i] }

// Mesh represents an immutable collection of triangles guarded by a bounding
// box. Rays that miss the box never look at the triangles; rays that enter it
// are tested against every triangle.
type Mesh struct {
	triangles TriangleSource
	bbox      core.AABB
}

// NewMesh creates a mesh from a list of triangles
func NewMesh(triangles []*Triangle) *Mesh {
	return NewMeshFromSource(TriangleList(triangles))
}

// NewMeshFromSource creates a mesh reading its triangles from source. The
// bounding box is computed here, once, over every vertex.
func NewMeshFromSource(source TriangleSource) *Mesh {
	points := make([]core.Vec3, 0, source.Len()*3)
	for i := 0; i < source.Len(); i++ {
		tri := source.At(i)
		points = append(points, tri.V0, tri.V1, tri.V2)
	}

	return &Mesh{
		triangles: source,
		bbox:      core.NewAABBFromPoints(points...),
	}
}

// Intersect returns the nearest non-negative triangle hit
func (m *Mesh) Intersect(ray core.Ray) (float64, bool) {
	_, t, ok := m.nearest(ray)
	return t, ok
}

// Normal returns the normal of the triangle nearest along ray. The ray must
// hit the mesh.
func (m *Mesh) Normal(ray core.Ray) core.Vec3 {
	index, _, ok := m.nearest(ray)
	if !ok {
		panic("geometry: Mesh.Normal called with a ray that misses the mesh")
	}
	return m.triangles.At(index).Normal(ray)
}

func (m *Mesh) nearest(ray core.Ray) (int, float64, bool) {
	if !m.bbox.Hit(ray) || m.triangles.Len() == 0 {
		return 0, 0, false
	}

	var closest Closest
	for i := 0; i < m.triangles.Len(); i++ {
		if t, ok := m.triangles.At(i).Intersect(ray); ok {
			closest.Consider(t, i)
		}
	}
	return closest.Index, closest.T, closest.Found
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (m *Mesh) BoundingBox() core.AABB {
	return m.bbox
}

// TriangleCount returns the number of triangles in this mesh
func (m *Mesh) TriangleCount() int {
	return m.triangles.Len()
}

// Triangle returns the i-th triangle of the mesh
func (m *Mesh) Triangle(i int) *Triangle {
	return m.triangles.At(i)
}
