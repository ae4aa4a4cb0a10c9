package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

const tolerance = 1e-9

func vecClose(a, b core.Vec3) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if dist, ok := sphere.Intersect(ray); ok {
		t.Errorf("Expected miss, but got hit at t=%f", dist)
	}
}

func TestSphere_Intersect_UnitSphere(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	dist, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(dist-4) > tolerance {
		t.Errorf("Expected t=4, got t=%f", dist)
	}

	normal := sphere.Normal(ray)
	if !vecClose(normal, core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected normal (0,0,-1), got %v", normal)
	}
}

func TestSphere_Intersect_Cases(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2.0)

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "along x",
			origin:         core.NewVec3(-9, 2, 3),
			direction:      core.NewVec3(1, 0, 0),
			expectedT:      8,
			expectedNormal: core.NewVec3(-1, 0, 0),
		},
		{
			name:           "from above",
			origin:         core.NewVec3(1, 10, 3),
			direction:      core.NewVec3(0, -1, 0),
			expectedT:      6,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:           "sphere behind origin reports negative t",
			origin:         core.NewVec3(1, 2, 10),
			direction:      core.NewVec3(0, 0, 1),
			expectedT:      -9,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			dist, ok := sphere.Intersect(ray)
			if !ok {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(dist-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, dist)
			}
			if normal := sphere.Normal(ray); !vecClose(normal, tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, normal)
			}
		})
	}
}

func TestSphere_Intersect_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	dist, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected glancing hit, but got miss")
	}
	if p := ray.At(dist); !vecClose(p, core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected hit point (1,0,0), got %v", p)
	}
}

func TestSphere_Intersect_OriginInsideIsNearRootOnly(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	dist, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected a root for a ray starting inside the sphere")
	}
	if math.Abs(dist+1) > tolerance {
		t.Errorf("Expected near root t=-1, got t=%f", dist)
	}

	// The negative root is filtered by nearest-hit selection
	if _, _, found := NearestHit([]Shape{sphere}, ray); found {
		t.Error("Expected a ray starting inside the sphere to find no hit")
	}
}
