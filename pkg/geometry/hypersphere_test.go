package geometry

import (
	"math"
	"testing"

	"github.com/tesseray/tesseray/pkg/core"
)

func TestHypersphereHitFromOutside(t *testing.T) {
	sphere := NewHypersphere(core.NewVec4(0, 0, 0, 0), 1.0, core.NewVec3(1, 0, 0))

	tests := []struct {
		name     string
		origin   core.Vec4
		distance float64
	}{
		{"along z", core.NewVec4(0, 0, -5, 0), 4.0},
		{"along x", core.NewVec4(3, 0, 0, 0), 2.0},
		{"along w", core.NewVec4(0, 0, 0, 10), 9.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direction := sphere.Position.Subtract(tt.origin).Normalize()
			hit := sphere.Intersect(core.NewRay(tt.origin, direction))

			if !hit.Hit {
				t.Fatal("expected hit, got miss")
			}
			if math.Abs(hit.Distance-tt.distance) > 1e-9 {
				t.Errorf("distance = %f, want %f", hit.Distance, tt.distance)
			}

			// Outward normal at the near surface points back at the ray.
			if dot := hit.Normal.Dot(direction); math.Abs(dot+1) > 1e-9 {
				t.Errorf("normal not anti-parallel to ray direction: dot = %f", dot)
			}
			if math.Abs(hit.Normal.Length()-1) > 1e-9 {
				t.Errorf("normal length = %f, want 1", hit.Normal.Length())
			}
			if hit.Color != sphere.Color {
				t.Errorf("hit color = %v, want %v", hit.Color, sphere.Color)
			}
		})
	}
}

func TestHypersphereMissOffAxis(t *testing.T) {
	sphere := NewHypersphere(core.NewVec4(0, 0, 0, 0), 1.0, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec4(2, 0, -5, 0), core.NewVec4(0, 0, 1, 0))

	if hit := sphere.Intersect(ray); hit.Hit {
		t.Errorf("expected miss, got hit at distance %f", hit.Distance)
	}
}

func TestHypersphereMissBehindOrigin(t *testing.T) {
	sphere := NewHypersphere(core.NewVec4(0, 0, 0, 0), 1.0, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec4(0, 0, 5, 0), core.NewVec4(0, 0, 1, 0))

	if hit := sphere.Intersect(ray); hit.Hit {
		t.Errorf("sphere behind ray origin reported hit at distance %f", hit.Distance)
	}
}

func TestHypersphereOriginInsideIsMiss(t *testing.T) {
	sphere := NewHypersphere(core.NewVec4(0, 0, 0, 0), 2.0, core.NewVec3(1, 1, 1))

	rays := []core.Ray{
		core.NewRay(core.NewVec4(0, 0, 0, 0), core.NewVec4(0, 0, 1, 0)),
		core.NewRay(core.NewVec4(0.5, 0.5, 0, 0), core.NewVec4(1, 0, 0, 0)),
		core.NewRay(core.NewVec4(0, -1.9, 0, 0), core.NewVec4(0, -1, 0, 0)),
	}

	// Only the near root is ever taken, so a ray starting inside the
	// sphere must not report the far-side exit as a hit.
	for _, ray := range rays {
		if hit := sphere.Intersect(ray); hit.Hit {
			t.Errorf("ray from inside sphere (origin %v) reported hit at %f", ray.Origin, hit.Distance)
		}
	}
}

func TestHypersphereGrazingRay(t *testing.T) {
	sphere := NewHypersphere(core.NewVec4(0, 0, 0, 0), 1.0, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec4(1, 0, -5, 0), core.NewVec4(0, 0, 1, 0))

	hit := sphere.Intersect(ray)
	if !hit.Hit {
		t.Fatal("tangent ray should hit")
	}
	if math.Abs(hit.Distance-5) > 1e-6 {
		t.Errorf("tangent hit distance = %f, want 5", hit.Distance)
	}
}
