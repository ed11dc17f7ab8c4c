package renderer

import (
	"math"

	"github.com/tesseray/tesseray/pkg/core"
	"github.com/tesseray/tesseray/pkg/ga"
)

// Camera is the frozen view basis a render pass consumes: a position
// and three orthonormal direction vectors. Forward is the local x
// image, up is y, right is z; the fourth basis direction never enters
// ray generation, so rays always sample the 3D slice the camera's
// rotation selects.
type Camera struct {
	Position core.Vec4
	Forward  core.Vec4
	Up       core.Vec4
	Right    core.Vec4
}

// NewCamera builds the view basis from a position and a rotor
func NewCamera(position core.Vec4, rotation ga.Rotor) Camera {
	return Camera{
		Position: position,
		Forward:  rotation.AxisX(),
		Up:       rotation.AxisY(),
		Right:    rotation.AxisZ(),
	}
}

// FlyCamera is the interactive camera the viewer drives. Pitch is kept
// as a separate xy angle composed after the main rotation so it can be
// clamped to straight up/down without gimbal drift in the other planes.
type FlyCamera struct {
	Position     core.Vec4
	MainRotation ga.Rotor
	XYRotation   float64

	MoveSpeed     float64
	RotationSpeed float64
}

// NewFlyCamera creates a fly camera at the given position with default speeds
func NewFlyCamera(position core.Vec4) *FlyCamera {
	return &FlyCamera{
		Position:      position,
		MainRotation:  ga.IdentityRotor(),
		MoveSpeed:     2.0,
		RotationSpeed: 0.5,
	}
}

// Rotation returns the full camera rotation, pitch applied last
func (c *FlyCamera) Rotation() ga.Rotor {
	return c.MainRotation.Then(ga.RotateXY(c.XYRotation))
}

// Camera freezes the fly camera into a render-ready view basis
func (c *FlyCamera) Camera() Camera {
	return NewCamera(c.Position, c.Rotation())
}

// MoveForward moves along the view direction by the signed amount
func (c *FlyCamera) MoveForward(amount float64) {
	c.Position = c.Position.Add(c.Rotation().AxisX().Multiply(amount))
}

// MoveUp moves along the view's up direction by the signed amount
func (c *FlyCamera) MoveUp(amount float64) {
	c.Position = c.Position.Add(c.Rotation().AxisY().Multiply(amount))
}

// MoveRight moves along the view's right direction by the signed amount
func (c *FlyCamera) MoveRight(amount float64) {
	c.Position = c.Position.Add(c.Rotation().AxisZ().Multiply(amount))
}

// MoveAna moves along the view's fourth axis by the signed amount
func (c *FlyCamera) MoveAna(amount float64) {
	c.Position = c.Position.Add(c.Rotation().AxisW().Multiply(amount))
}

// Yaw turns the view in the xz plane
func (c *FlyCamera) Yaw(angle float64) {
	c.MainRotation = c.MainRotation.Then(ga.RotateXZ(angle))
}

// Pitch tilts the view in the xy plane, clamped to a quarter turn
// either way.
func (c *FlyCamera) Pitch(angle float64) {
	c.XYRotation = clamp(c.XYRotation+angle, -math.Pi/2, math.Pi/2)
}

// TurnXW rotates the view in the xw plane, swapping which 3D slice
// lies ahead.
func (c *FlyCamera) TurnXW(angle float64) {
	c.MainRotation = c.MainRotation.Then(ga.RotateXW(angle))
}

// TurnZW rotates the view in the zw plane
func (c *FlyCamera) TurnZW(angle float64) {
	c.MainRotation = c.MainRotation.Then(ga.RotateZW(angle))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
