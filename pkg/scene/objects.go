package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tesseray/tesseray/pkg/core"
	"github.com/tesseray/tesseray/pkg/ga"
	"github.com/tesseray/tesseray/pkg/geometry"
)

// Group is a named transform shared by a set of objects
type Group struct {
	ID        uuid.UUID
	Name      string
	Transform Transform
}

// Hypersphere is the editor-level form of a sphere object. Group is
// uuid.Nil for ungrouped objects.
type Hypersphere struct {
	ID        uuid.UUID
	Name      string
	Group     uuid.UUID
	Transform Transform
	Radius    float64
	Color     core.Vec3
}

// Hyperplane is the editor-level form of a slab object
type Hyperplane struct {
	ID        uuid.UUID
	Name      string
	Group     uuid.UUID
	Transform Transform
	Width     float64
	Height    float64
	Depth     float64
	Color     core.Vec3
}

// Objects is the full editable object set of a scene
type Objects struct {
	Groups       []Group
	Hyperspheres []Hypersphere
	Hyperplanes  []Hyperplane
}

// NewGroup creates a group with a fresh ID
func NewGroup(name string, transform Transform) Group {
	return Group{ID: uuid.New(), Name: name, Transform: transform}
}

// NewHypersphereObject creates an ungrouped sphere object with a fresh ID
func NewHypersphereObject(name string, transform Transform, radius float64, color core.Vec3) Hypersphere {
	return Hypersphere{ID: uuid.New(), Name: name, Transform: transform, Radius: radius, Color: color}
}

// NewHyperplaneObject creates an ungrouped slab object with a fresh ID
func NewHyperplaneObject(name string, transform Transform, width, height, depth float64, color core.Vec3) Hyperplane {
	return Hyperplane{
		ID: uuid.New(), Name: name, Transform: transform,
		Width: width, Height: height, Depth: depth, Color: color,
	}
}

func (o *Objects) findGroup(id uuid.UUID) (Group, bool) {
	for _, g := range o.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// globalTransform composes a group transform ahead of the object's own
func (o *Objects) globalTransform(t Transform, group uuid.UUID) ga.Motor {
	if group != uuid.Nil {
		if g, ok := o.findGroup(group); ok {
			return g.Transform.Motor().Then(t.Motor())
		}
	}
	return t.Motor()
}

// CleanupInvalidGroups detaches objects whose group no longer exists
func (o *Objects) CleanupInvalidGroups() {
	for i := range o.Hyperspheres {
		if o.Hyperspheres[i].Group != uuid.Nil {
			if _, ok := o.findGroup(o.Hyperspheres[i].Group); !ok {
				o.Hyperspheres[i].Group = uuid.Nil
			}
		}
	}
	for i := range o.Hyperplanes {
		if o.Hyperplanes[i].Group != uuid.Nil {
			if _, ok := o.findGroup(o.Hyperplanes[i].Group); !ok {
				o.Hyperplanes[i].Group = uuid.Nil
			}
		}
	}
}

// Build flattens the object set into the render-ready primitive form.
// Sphere transforms collapse to a world position; slab transforms stay
// as motors for the intersection routine.
func (o *Objects) Build(name string, camera CameraPlacement, sky Sky) (*Scene, error) {
	s := &Scene{
		Name:         name,
		Camera:       camera,
		Sky:          sky,
		Hyperspheres: make([]geometry.Hypersphere, 0, len(o.Hyperspheres)),
		Hyperplanes:  make([]geometry.Hyperplane, 0, len(o.Hyperplanes)),
	}

	for _, sphere := range o.Hyperspheres {
		motor := o.globalTransform(sphere.Transform, sphere.Group)
		s.Hyperspheres = append(s.Hyperspheres, geometry.NewHypersphere(
			motor.TransformPoint(core.Vec4{}),
			sphere.Radius,
			sphere.Color,
		))
	}

	for _, plane := range o.Hyperplanes {
		s.Hyperplanes = append(s.Hyperplanes, geometry.NewHyperplane(
			o.globalTransform(plane.Transform, plane.Group),
			plane.Width, plane.Height, plane.Depth,
			plane.Color,
		))
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("building scene %q: %w", name, err)
	}
	return s, nil
}
