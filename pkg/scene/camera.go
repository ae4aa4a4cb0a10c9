package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Camera generates primary rays from an orthonormal basis. Right is derived
// from forward and up, so roll is expressed through the up vector.
type Camera struct {
	Position      core.Vec3
	Forward       core.Vec3
	Up            core.Vec3
	Right         core.Vec3
	FocalDistance float64 // Larger values narrow the field of view
}

// NewCamera creates a camera at position looking along forward
func NewCamera(position, forward, up core.Vec3, focalDistance float64) *Camera {
	return &Camera{
		Position:      position,
		Forward:       forward.Normalize(),
		Up:            up.Normalize(),
		Right:         forward.Cross(up).Normalize(),
		FocalDistance: focalDistance,
	}
}

// PrimaryRay returns the unit ray through camera-space pixel (x, y) of a
// width x height image. y grows upward. Offsets are divided by the smaller
// image dimension so pixels stay square for any aspect ratio.
func (c *Camera) PrimaryRay(x, y, width, height int) core.Ray {
	extent := float64(min(width, height))

	right := c.Right.Multiply((float64(x) - float64(width)/2) / extent)
	up := c.Up.Multiply((float64(y) - float64(height)/2) / extent)
	forward := c.Forward.Multiply(c.FocalDistance)

	return core.NewRay(c.Position, right.Add(up).Add(forward).Normalize())
}
