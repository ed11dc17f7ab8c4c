// Package geometry implements the analytic scene primitives: 4D
// hyperspheres and motor-positioned finite hyperplane slabs.
package geometry

import (
	"math"

	"github.com/tesseray/tesseray/pkg/core"
)

// Hypersphere is a sphere in 4D space with a flat color
type Hypersphere struct {
	Position core.Vec4
	Color    core.Vec3
	Radius   float64
}

// NewHypersphere creates a new hypersphere
func NewHypersphere(position core.Vec4, radius float64, color core.Vec3) Hypersphere {
	return Hypersphere{
		Position: position,
		Color:    color,
		Radius:   radius,
	}
}

// Intersect tests a ray against the hypersphere.
//
// Only the near root of the quadratic is considered: if it lies behind
// or at the ray origin the sphere reports a miss, so a ray starting
// inside a sphere never hits it. That keeps shadow rays leaving a
// surface from re-hitting the same primitive and is relied on
// elsewhere; do not fall back to the far root.
func (s Hypersphere) Intersect(ray core.Ray) core.Hit {
	oc := s.Position.Subtract(ray.Origin)

	a := ray.Direction.Dot(ray.Direction)
	h := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return core.NoHit()
	}

	distance := (h - math.Sqrt(discriminant)) / a
	if distance <= 0 {
		return core.NoHit()
	}

	position := ray.At(distance)
	return core.Hit{
		Hit:      true,
		Distance: distance,
		Position: position,
		Normal:   position.Subtract(s.Position).Multiply(1.0 / s.Radius),
		Color:    s.Color,
	}
}
