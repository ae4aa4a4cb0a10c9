package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point         core.Vec3 // A point on the plane
	SurfaceNormal core.Vec3 // Normal vector (not required to be unit length)
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{
		Point:         point,
		SurfaceNormal: normal,
	}
}

// Intersect returns t = (p·n - o·n) / (d·n). A ray parallel to the plane
// would divide by zero; it is reported as a miss instead.
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	return planeDistance(p.Point, p.SurfaceNormal, ray)
}

// Normal returns the plane's unit normal; it does not depend on the ray
func (p *Plane) Normal(core.Ray) core.Vec3 {
	return p.SurfaceNormal.Normalize()
}

// planeDistance solves the ray/plane equation for the plane through point
// with the given normal.
func planeDistance(point, normal core.Vec3, ray core.Ray) (float64, bool) {
	denominator := ray.Direction.Dot(normal)
	if denominator == 0 {
		return 0, false
	}
	return (point.Dot(normal) - ray.Origin.Dot(normal)) / denominator, true
}
