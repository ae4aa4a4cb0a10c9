package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Closest tracks the nearest non-negative hit distance seen so far.
// The zero value holds no hit.
type Closest struct {
	T     float64 // Distance of the nearest hit
	Index int     // Caller-defined index of the nearest hit
	Found bool
}

// Consider offers a candidate hit. Negative and infinite distances are
// rejected. A NaN distance cannot be ordered and panics with a
// *core.NumericError.
func (c *Closest) Consider(t float64, index int) {
	if math.IsNaN(t) {
		panic(&core.NumericError{Op: "nearest hit", Value: t})
	}
	if t < 0 || math.IsInf(t, 1) {
		return
	}
	if !c.Found || t < c.T {
		c.T = t
		c.Index = index
		c.Found = true
	}
}

// NearestHit intersects ray with every shape and returns the index and
// distance of the closest non-negative hit. Ties keep the earlier shape.
func NearestHit(shapes []Shape, ray core.Ray) (int, float64, bool) {
	var closest Closest
	for i, shape := range shapes {
		if t, ok := shape.Intersect(ray); ok {
			closest.Consider(t, i)
		}
	}
	return closest.Index, closest.T, closest.Found
}
