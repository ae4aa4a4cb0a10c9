package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestPlane_Intersect_Basic(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))

	dist, ok := plane.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(dist-5) > tolerance {
		t.Errorf("Expected t=5, got t=%f", dist)
	}
	if p := ray.At(dist); !vecClose(p, core.NewVec3(0, 0, 0)) {
		t.Errorf("Expected hit point at origin, got %v", p)
	}
}

func TestPlane_Intersect_ParallelRayNeverNearest(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	tests := []struct {
		name   string
		origin core.Vec3
	}{
		{"above the plane", core.NewVec3(0, 5, 0)},
		{"in the plane", core.NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVec3(1, 0, 0))
			if _, _, found := NearestHit([]Shape{plane}, ray); found {
				t.Error("Expected parallel ray not to be selected as nearest hit")
			}
		})
	}
}

func TestPlane_Intersect_BehindRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))

	dist, ok := plane.Intersect(ray)
	if !ok {
		t.Fatal("Expected a solution behind the ray")
	}
	if dist >= 0 {
		t.Errorf("Expected negative t, got %f", dist)
	}
}

func TestPlane_Normal(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 2, 0), core.NewVec3(0, 3, 4))
	normal := plane.Normal(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)))

	if !vecClose(normal, core.NewVec3(0, 0.6, 0.8)) {
		t.Errorf("Expected unit normal (0,0.6,0.8), got %v", normal)
	}
}

func TestPlane_Intersect_ScaleInvariant(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))
	unit := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	scaled := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 2))

	t1, _ := plane.Intersect(unit)
	t2, _ := plane.Intersect(scaled)
	if !vecClose(unit.At(t1), scaled.At(t2)) {
		t.Errorf("Expected same hit point, got %v and %v", unit.At(t1), scaled.At(t2))
	}
}
