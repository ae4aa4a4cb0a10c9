package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect returns the near root of the ray/sphere quadratic. The ray
// direction must be unit length. The far root is never reported, so a ray
// starting inside the sphere yields a negative distance.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)
	projection := ray.Direction.Dot(oc)

	nabla := projection*projection - oc.LengthSquared() + s.Radius*s.Radius
	if nabla < 0 {
		return 0, false
	}

	return -projection - math.Sqrt(nabla), true
}

// Normal returns the outward normal at the point where ray meets the sphere
func (s *Sphere) Normal(ray core.Ray) core.Vec3 {
	t, _ := s.Intersect(ray)
	return ray.At(t).Subtract(s.Center).Normalize()
}
