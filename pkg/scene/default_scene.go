package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/tesseray/tesseray/pkg/core"
	"github.com/tesseray/tesseray/pkg/ga"
	"github.com/tesseray/tesseray/pkg/geometry"
)

// NewDefaultScene creates the default showcase scene: a ground slab, a
// row of colored hyperspheres, one sphere displaced along w so only
// part of it pokes into the camera's 3D slice, and a wall slab stood
// up to face the camera.
func NewDefaultScene() *Scene {
	s := &Scene{
		Name: "Default",
		Camera: CameraPlacement{
			Position: core.NewVec4(-8, 2, 0, 0),
			Rotation: Rotation{XY: -10},
		},
		Sky: DefaultSky(),
	}

	s.Hyperspheres = []geometry.Hypersphere{
		geometry.NewHypersphere(core.NewVec4(0, 1, 0, 0), 1.0, core.NewVec3(0.9, 0.2, 0.15)),
		geometry.NewHypersphere(core.NewVec4(0.5, 0.6, -2.2, 0), 0.6, core.NewVec3(0.2, 0.35, 0.8)),
		geometry.NewHypersphere(core.NewVec4(0.5, 0.75, 2.3, 0), 0.75, core.NewVec3(0.9, 0.7, 0.25)),
		geometry.NewHypersphere(core.NewVec4(1, 0.9, 0.9, 1.2), 0.9, core.NewVec3(0.6, 0.3, 0.8)),
	}

	// Wall: quarter turn in xy stands the slab's thin axis along -x,
	// facing the camera; rotation first, then translation into place.
	wall := ga.FromRotor(ga.RotateXY(math.Pi / 2)).
		Then(ga.Translation(core.NewVec4(6, 0, 0, 0)))

	s.Hyperplanes = []geometry.Hyperplane{
		geometry.NewHyperplane(ga.Identity(), 200, 200, 200, core.NewVec3(0.45, 0.55, 0.4)),
		geometry.NewHyperplane(wall, 14, 10, 14, core.NewVec3(0.75, 0.75, 0.8)),
	}

	return s
}

// NewSingleSphereScene creates a minimal scene: one unit red
// hypersphere at the origin, camera five units back along -z looking
// at it.
func NewSingleSphereScene() *Scene {
	return &Scene{
		Name: "Single Sphere",
		Camera: CameraPlacement{
			Position: core.NewVec4(0, 0, -5, 0),
			Rotation: Rotation{XZ: 90},
		},
		Sky: DefaultSky(),
		Hyperspheres: []geometry.Hypersphere{
			geometry.NewHypersphere(core.NewVec4(0, 0, 0, 0), 1.0, core.NewVec3(1, 0, 0)),
		},
	}
}

var builtins = map[string]func() *Scene{
	"default":       NewDefaultScene,
	"single-sphere": NewSingleSphereScene,
}

// BuiltinNames returns the sorted names of the built-in scenes
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns the named built-in scene
func Builtin(name string) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown built-in scene %q (available: %v)", name, BuiltinNames())
	}
	return build(), nil
}
