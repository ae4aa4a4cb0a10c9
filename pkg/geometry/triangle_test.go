package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestTriangle_Intersect(t *testing.T) {
	// Triangle in the XY plane, front face towards +Z
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits triangle interior",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(2, 2, 1), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
		{
			name:      "Ray hits triangle edge",
			ray:       core.NewRay(core.NewVec3(0.5, 0, 1), core.NewVec3(0, 0, -1)),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits from behind",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -2), core.NewVec3(0, 0, 1)),
			shouldHit: true,
			expectedT: 2.0,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 0), core.NewVec3(1, 0, 0)),
			shouldHit: false,
		},
		{
			name:      "Ray misses past hypotenuse",
			ray:       core.NewRay(core.NewVec3(0.6, 0.6, 1), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, ok := triangle.Intersect(tt.ray)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t (t=%f)", tt.shouldHit, ok, dist)
			}
			if ok && math.Abs(dist-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, dist)
			}
		})
	}
}

func TestTriangle_NormalFollowsWinding(t *testing.T) {
	v0, v1, v2 := core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)
	ray := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1))

	if n := NewTriangle(v0, v1, v2).Normal(ray); !vecClose(n, core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected normal (0,0,1), got %v", n)
	}
	if n := NewTriangle(v0, v2, v1).Normal(ray); !vecClose(n, core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected reversed winding to give (0,0,-1), got %v", n)
	}
}

func TestTriangle_ReversedWindingStillHits(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))
	ray := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1))

	if _, ok := triangle.Intersect(ray); !ok {
		t.Error("Expected containment test to be independent of winding")
	}
}
