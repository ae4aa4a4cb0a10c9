package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Triangle represents a single triangle defined by three vertices. The
// vertex order fixes the winding and therefore the front face.
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	normal     core.Vec3 // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	t := &Triangle{
		V0: v0,
		V1: v1,
		V2: v2,
	}

	// Precompute normal for efficiency
	t.computeNormal()

	return t
}

// computeNormal calculates and caches the triangle's normal vector
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Intersect intersects the triangle's supporting plane, then keeps the hit
// only if it lies on the inner side of all three edges. Points on an edge
// count as inside.
func (t *Triangle) Intersect(ray core.Ray) (float64, bool) {
	dist, ok := planeDistance(t.V0, t.normal, ray)
	if !ok {
		return 0, false
	}

	p := ray.At(dist)
	if !t.insideEdge(t.V0, t.V1, p) ||
		!t.insideEdge(t.V1, t.V2, p) ||
		!t.insideEdge(t.V2, t.V0, p) {
		return 0, false
	}

	return dist, true
}

// insideEdge reports whether p is on the inner side of the edge from a to b
func (t *Triangle) insideEdge(a, b, p core.Vec3) bool {
	return b.Subtract(a).Cross(p.Subtract(a)).Dot(t.normal) >= 0
}

// Normal returns the triangle's face normal, which is constant across the surface
func (t *Triangle) Normal(core.Ray) core.Vec3 {
	return t.normal
}

// Vertices returns the three vertices in winding order
func (t *Triangle) Vertices() [3]core.Vec3 {
	return [3]core.Vec3{t.V0, t.V1, t.V2}
}
