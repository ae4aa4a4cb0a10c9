package geometry

import "github.com/df07/go-raycaster/pkg/core"

// Shape interface for objects that can be hit by rays.
//
// Intersect returns the distance t along the ray to the nearest surface
// solution, which may be negative (behind the origin); callers reject t < 0.
// Normal returns the outward unit normal at the hit produced by the same ray.
type Shape interface {
	Intersect(ray core.Ray) (float64, bool)
	Normal(ray core.Ray) core.Vec3
}
