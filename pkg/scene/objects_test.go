package scene

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/tesseray/tesseray/pkg/core"
)

func TestBuildComposesGroupTransform(t *testing.T) {
	group := NewGroup("offset", Transform{Position: core.NewVec4(0, 0, 5, 0)})

	sphere := NewHypersphereObject("inner",
		Transform{Position: core.NewVec4(1, 0, 0, 0)}, 1, core.NewVec3(1, 1, 1))
	sphere.Group = group.ID

	objects := &Objects{
		Groups:       []Group{group},
		Hyperspheres: []Hypersphere{sphere},
	}

	s, err := objects.Build("test", CameraPlacement{}, DefaultSky())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := s.Hyperspheres[0].Position
	want := core.NewVec4(1, 0, 5, 0)
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 ||
		math.Abs(got.Z-want.Z) > 1e-12 || math.Abs(got.W-want.W) > 1e-12 {
		t.Errorf("grouped sphere position = %v, want %v", got, want)
	}
}

func TestBuildGroupRotationKeepsLocalOffset(t *testing.T) {
	group := NewGroup("spin", Transform{Rotation: Rotation{XZ: 90}})

	sphere := NewHypersphereObject("member",
		Transform{Position: core.NewVec4(2, 0, 0, 0)}, 1, core.NewVec3(1, 1, 1))
	sphere.Group = group.ID

	objects := &Objects{
		Groups:       []Group{group},
		Hyperspheres: []Hypersphere{sphere},
	}

	s, err := objects.Build("test", CameraPlacement{}, DefaultSky())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// The group motion is applied before the object's own, so a group
	// rotation turns the member in place: its translation still lands
	// along the world x axis, not swung into z.
	got := s.Hyperspheres[0].Position
	want := core.NewVec4(2, 0, 0, 0)
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 ||
		math.Abs(got.Z-want.Z) > 1e-12 || math.Abs(got.W-want.W) > 1e-12 {
		t.Errorf("grouped sphere position = %v, want %v", got, want)
	}
}

func TestCleanupInvalidGroups(t *testing.T) {
	group := NewGroup("kept", Transform{})

	kept := NewHypersphereObject("kept", Transform{}, 1, core.NewVec3(1, 1, 1))
	kept.Group = group.ID
	orphan := NewHypersphereObject("orphan", Transform{}, 1, core.NewVec3(1, 1, 1))
	orphan.Group = uuid.New()
	plane := NewHyperplaneObject("orphan-plane", Transform{}, 1, 1, 1, core.NewVec3(1, 1, 1))
	plane.Group = uuid.New()

	objects := &Objects{
		Groups:       []Group{group},
		Hyperspheres: []Hypersphere{kept, orphan},
		Hyperplanes:  []Hyperplane{plane},
	}
	objects.CleanupInvalidGroups()

	if objects.Hyperspheres[0].Group != group.ID {
		t.Error("valid group membership should survive cleanup")
	}
	if objects.Hyperspheres[1].Group != uuid.Nil {
		t.Error("orphaned sphere should be detached")
	}
	if objects.Hyperplanes[0].Group != uuid.Nil {
		t.Error("orphaned plane should be detached")
	}
}

func TestBuildRejectsInvalidObjects(t *testing.T) {
	objects := &Objects{
		Hyperspheres: []Hypersphere{
			NewHypersphereObject("bad", Transform{}, -1, core.NewVec3(1, 1, 1)),
		},
	}
	if _, err := objects.Build("bad", CameraPlacement{}, DefaultSky()); err == nil {
		t.Error("expected validation error for negative radius")
	}
}
