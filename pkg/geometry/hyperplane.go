package geometry

import (
	"math"

	"github.com/tesseray/tesseray/pkg/core"
	"github.com/tesseray/tesseray/pkg/ga"
)

// Hyperplane is a finite planar slab positioned by a motor. In its
// local frame the slab lies in the y = 0 hyperplane; Width, Height and
// Depth bound the local z, x and w axes respectively, while the y axis
// stays unbounded until the slab is clipped.
type Hyperplane struct {
	Transform ga.Motor
	Color     core.Vec3
	Width     float64
	Height    float64
	Depth     float64
}

// NewHyperplane creates a new hyperplane slab
func NewHyperplane(transform ga.Motor, width, height, depth float64, color core.Vec3) Hyperplane {
	return Hyperplane{
		Transform: transform,
		Color:     color,
		Width:     width,
		Height:    height,
		Depth:     depth,
	}
}

func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// Intersect tests a ray against the hyperplane slab. The ray is moved
// into the slab's local frame with the reverse motor; the world-space
// hit position is computed from the original ray so no precision is
// lost transforming back.
func (p Hyperplane) Intersect(ray core.Ray) core.Hit {
	inverse := p.Transform.Reverse()
	localOrigin := inverse.TransformPoint(ray.Origin)
	localDirection := inverse.TransformDirection(ray.Direction)

	// Same sign on both sides means the ray points away from the
	// slab plane, or runs parallel to it.
	if sign(localOrigin.Y) == sign(localDirection.Y) {
		return core.NoHit()
	}

	distance := math.Abs(localOrigin.Y / localDirection.Y)
	localPosition := localOrigin.Add(localDirection.Multiply(distance))

	if math.Abs(localPosition.X) > p.Height/2 ||
		math.Abs(localPosition.Z) > p.Width/2 ||
		math.Abs(localPosition.W) > p.Depth/2 {
		return core.NoHit()
	}

	return core.Hit{
		Hit:      true,
		Distance: distance,
		Position: ray.At(distance),
		Normal:   p.Transform.AxisY().Multiply(sign(localOrigin.Y)),
		Color:    p.Color,
	}
}
