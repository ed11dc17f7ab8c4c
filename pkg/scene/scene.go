// Package scene holds the scene description layer: an editor-level
// object model with named, groupable objects, TOML scene files, and
// the flattened render-ready form the renderer consumes.
package scene

import (
	"fmt"
	"math"

	"github.com/tesseray/tesseray/pkg/core"
	"github.com/tesseray/tesseray/pkg/ga"
	"github.com/tesseray/tesseray/pkg/geometry"
)

// Info carries the primitive counts for one dispatch. The counts must
// match the lengths of the primitive slices.
type Info struct {
	HypersphereCount int
	HyperplaneCount  int
}

// Sky configures the ambient background and the single hard light
type Sky struct {
	SunDirection core.Vec4
	ZenithColor  core.Vec3
	HorizonColor core.Vec3
	SunColor     core.Vec3
}

// DefaultSky returns the standard blue-over-white sky with a warm sun
func DefaultSky() Sky {
	return Sky{
		SunDirection: core.NewVec4(1, 2, -1, 0),
		ZenithColor:  core.NewVec3(0.5, 0.7, 1.0),
		HorizonColor: core.NewVec3(1.0, 1.0, 1.0),
		SunColor:     core.NewVec3(1.0, 0.95, 0.8),
	}
}

// CameraPlacement positions the camera: a 4D position plus rotations
// in the six coordinate planes, applied in the fixed order xy, xz, xw,
// yz, yw, zw.
type CameraPlacement struct {
	Position core.Vec4
	Rotation Rotation
}

// Scene is the flattened, render-ready scene. It is immutable for the
// duration of a dispatch; the renderer only ever reads it.
type Scene struct {
	Name         string
	Camera       CameraPlacement
	Sky          Sky
	Hyperspheres []geometry.Hypersphere
	Hyperplanes  []geometry.Hyperplane
}

// Info returns the primitive counts
func (s *Scene) Info() Info {
	return Info{
		HypersphereCount: len(s.Hyperspheres),
		HyperplaneCount:  len(s.Hyperplanes),
	}
}

// Validate checks the well-formedness rules the render core itself
// never enforces: positive radii, non-negative extents, unit motors
// and a unit sun direction. The core stays total either way; this is
// the gate a collaborator runs before dispatching.
func (s *Scene) Validate() error {
	const motorTolerance = 1e-6

	for i, sphere := range s.Hyperspheres {
		if !(sphere.Radius > 0) {
			return fmt.Errorf("hypersphere %d: radius must be positive, got %v", i, sphere.Radius)
		}
	}

	for i, plane := range s.Hyperplanes {
		if plane.Width < 0 || plane.Height < 0 || plane.Depth < 0 {
			return fmt.Errorf("hyperplane %d: extents must be non-negative, got %v/%v/%v",
				i, plane.Width, plane.Height, plane.Depth)
		}
		if !plane.Transform.IsUnit(motorTolerance) {
			return fmt.Errorf("hyperplane %d: transform motor is not unit magnitude", i)
		}
	}

	if s.Sky.SunDirection.Length() == 0 {
		return fmt.Errorf("sky: sun direction must be non-zero")
	}
	if math.IsNaN(s.Sky.SunDirection.Length()) {
		return fmt.Errorf("sky: sun direction is not finite")
	}

	return nil
}

// Rotation is a set of plane rotation angles in degrees, the form the
// scene files and editor model use.
type Rotation struct {
	XY float64 `toml:"xy,omitempty"`
	XZ float64 `toml:"xz,omitempty"`
	XW float64 `toml:"xw,omitempty"`
	YZ float64 `toml:"yz,omitempty"`
	YW float64 `toml:"yw,omitempty"`
	ZW float64 `toml:"zw,omitempty"`
}

// Rotor compiles the angles into a single rotor
func (r Rotation) Rotor() ga.Rotor {
	radians := func(deg float64) float64 { return deg * math.Pi / 180 }
	return ga.RotateXY(radians(r.XY)).
		Then(ga.RotateXZ(radians(r.XZ))).
		Then(ga.RotateXW(radians(r.XW))).
		Then(ga.RotateYZ(radians(r.YZ))).
		Then(ga.RotateYW(radians(r.YW))).
		Then(ga.RotateZW(radians(r.ZW)))
}

// Transform positions an object: a 4D position plus plane rotations
type Transform struct {
	Position core.Vec4
	Rotation Rotation
}

// Motor compiles the transform into a motor, translation first
func (t Transform) Motor() ga.Motor {
	return ga.Translation(t.Position).Then(ga.FromRotor(t.Rotation.Rotor()))
}
