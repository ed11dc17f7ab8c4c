package renderer

import (
	"math"
	"testing"

	"github.com/tesseray/tesseray/pkg/core"
	"github.com/tesseray/tesseray/pkg/ga"
)

const tolerance = 1e-12

func vec4Close(a, b core.Vec4) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance &&
		math.Abs(a.W-b.W) < tolerance
}

func TestNewCameraIdentityBasis(t *testing.T) {
	camera := NewCamera(core.NewVec4(1, 2, 3, 4), ga.IdentityRotor())

	if camera.Position != core.NewVec4(1, 2, 3, 4) {
		t.Errorf("position = %v", camera.Position)
	}
	if !vec4Close(camera.Forward, core.NewVec4(1, 0, 0, 0)) {
		t.Errorf("forward = %v, want +x", camera.Forward)
	}
	if !vec4Close(camera.Up, core.NewVec4(0, 1, 0, 0)) {
		t.Errorf("up = %v, want +y", camera.Up)
	}
	if !vec4Close(camera.Right, core.NewVec4(0, 0, 1, 0)) {
		t.Errorf("right = %v, want +z", camera.Right)
	}
}

func TestNewCameraRotatedBasis(t *testing.T) {
	// Quarter turn in xz: forward swings from +x to +z, right from
	// +z to -x, up untouched.
	camera := NewCamera(core.Vec4{}, ga.RotateXZ(math.Pi/2))

	if !vec4Close(camera.Forward, core.NewVec4(0, 0, 1, 0)) {
		t.Errorf("forward = %v, want +z", camera.Forward)
	}
	if !vec4Close(camera.Up, core.NewVec4(0, 1, 0, 0)) {
		t.Errorf("up = %v, want +y", camera.Up)
	}
	if !vec4Close(camera.Right, core.NewVec4(-1, 0, 0, 0)) {
		t.Errorf("right = %v, want -x", camera.Right)
	}
}

func TestFlyCameraMovesAlongViewBasis(t *testing.T) {
	fly := NewFlyCamera(core.Vec4{})
	fly.MoveForward(2)
	fly.MoveUp(3)
	fly.MoveRight(-1)
	fly.MoveAna(0.5)

	if !vec4Close(fly.Position, core.NewVec4(2, 3, -1, 0.5)) {
		t.Errorf("position = %v, want (2, 3, -1, 0.5)", fly.Position)
	}

	// After a quarter yaw, forward is +z, so forward motion moves z.
	fly = NewFlyCamera(core.Vec4{})
	fly.Yaw(math.Pi / 2)
	fly.MoveForward(1)
	if !vec4Close(fly.Position, core.NewVec4(0, 0, 1, 0)) {
		t.Errorf("position after yawed move = %v, want +z", fly.Position)
	}
}

func TestFlyCameraPitchClamped(t *testing.T) {
	fly := NewFlyCamera(core.Vec4{})

	fly.Pitch(10)
	if fly.XYRotation != math.Pi/2 {
		t.Errorf("pitch = %v, want clamp at +pi/2", fly.XYRotation)
	}
	fly.Pitch(-20)
	if fly.XYRotation != -math.Pi/2 {
		t.Errorf("pitch = %v, want clamp at -pi/2", fly.XYRotation)
	}
}

func TestFlyCameraTurnXWRotatesForwardIntoAna(t *testing.T) {
	fly := NewFlyCamera(core.Vec4{})
	fly.TurnXW(math.Pi / 2)

	camera := fly.Camera()
	if !vec4Close(camera.Forward, core.NewVec4(0, 0, 0, 1)) {
		t.Errorf("forward = %v, want +w after quarter xw turn", camera.Forward)
	}
	// up and right stay in the 3D slice
	if !vec4Close(camera.Up, core.NewVec4(0, 1, 0, 0)) {
		t.Errorf("up = %v, want +y", camera.Up)
	}
	if !vec4Close(camera.Right, core.NewVec4(0, 0, 1, 0)) {
		t.Errorf("right = %v, want +z", camera.Right)
	}
}

func TestFlyCameraPitchTiltsForward(t *testing.T) {
	fly := NewFlyCamera(core.Vec4{})
	fly.Pitch(math.Pi / 2)

	camera := fly.Camera()
	if !vec4Close(camera.Forward, core.NewVec4(0, 1, 0, 0)) {
		t.Errorf("forward = %v, want +y at full upward pitch", camera.Forward)
	}
	if !vec4Close(camera.Up, core.NewVec4(-1, 0, 0, 0)) {
		t.Errorf("up = %v, want -x at full upward pitch", camera.Up)
	}
}
