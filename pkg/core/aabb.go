package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]
	for _, point := range points[1:] {
		min = min.Min(point)
		max = max.Max(point)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray enters the box at a non-negative distance using the slab
// method. A zero direction component divides to ±Inf, which the interval
// arithmetic handles without a special case. When the origin also lies exactly
// on that slab face the division is 0/0; minNum and maxNum drop the NaN and
// keep the infinite bound, which empties the interval, so the ray misses.
func (aabb AABB) Hit(ray Ray) bool {
	tMin := 0.0
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		t1 := (aabb.Min.Axis(axis) - origin) / direction
		t2 := (aabb.Max.Axis(axis) - origin) / direction

		tMin = maxNum(tMin, minNum(t1, t2))
		tMax = minNum(tMax, maxNum(t1, t2))
	}

	return tMin < tMax
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: aabb.Min.Min(other.Min), Max: aabb.Max.Max(other.Max)}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Contains reports whether p lies inside or on the boundary of the box
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// minNum returns the smaller operand, preferring a if b is NaN and b if a is NaN.
func minNum(a, b float64) float64 {
	if a < b || math.IsNaN(b) {
		return a
	}
	return b
}

// maxNum returns the larger operand, preferring a if b is NaN and b if a is NaN.
func maxNum(a, b float64) float64 {
	if a > b || math.IsNaN(b) {
		return a
	}
	return b
}
