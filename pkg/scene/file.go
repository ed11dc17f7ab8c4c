package scene

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/tesseray/tesseray/pkg/core"
)

// Document is the TOML scene file form. Vectors are written as plain
// arrays and optional fields fall back to the same defaults the editor
// model uses: radius 1, extents 1, white color.
type Document struct {
	Name        string `toml:"name,omitempty"`
	Description string `toml:"description,omitempty"`

	Camera       TransformConfig     `toml:"camera"`
	Sky          *SkyConfig          `toml:"sky,omitempty"`
	Groups       []GroupConfig       `toml:"groups,omitempty"`
	Hyperspheres []HypersphereConfig `toml:"hyperspheres,omitempty"`
	Hyperplanes  []HyperplaneConfig  `toml:"hyperplanes,omitempty"`
}

// TransformConfig is the file form of a Transform
type TransformConfig struct {
	Position [4]float64 `toml:"position,omitempty"`
	Rotation Rotation   `toml:"rotation,omitempty"`
}

// SkyConfig is the file form of Sky; absent fields keep the defaults
type SkyConfig struct {
	SunDirection *[4]float64 `toml:"sun_direction,omitempty"`
	ZenithColor  *[3]float64 `toml:"zenith,omitempty"`
	HorizonColor *[3]float64 `toml:"horizon,omitempty"`
	SunColor     *[3]float64 `toml:"sun,omitempty"`
}

// GroupConfig is the file form of a Group; objects reference it by name
type GroupConfig struct {
	Name      string          `toml:"name"`
	Transform TransformConfig `toml:"transform,omitempty"`
}

// HypersphereConfig is the file form of a sphere object
type HypersphereConfig struct {
	Name      string          `toml:"name,omitempty"`
	Group     string          `toml:"group,omitempty"`
	Transform TransformConfig `toml:"transform,omitempty"`
	Radius    *float64        `toml:"radius,omitempty"`
	Color     *[3]float64     `toml:"color,omitempty"`
}

// HyperplaneConfig is the file form of a slab object
type HyperplaneConfig struct {
	Name      string          `toml:"name,omitempty"`
	Group     string          `toml:"group,omitempty"`
	Transform TransformConfig `toml:"transform,omitempty"`
	Width     *float64        `toml:"width,omitempty"`
	Height    *float64        `toml:"height,omitempty"`
	Depth     *float64        `toml:"depth,omitempty"`
	Color     *[3]float64     `toml:"color,omitempty"`
}

func vec4FromArray(a [4]float64) core.Vec4 {
	return core.NewVec4(a[0], a[1], a[2], a[3])
}

func vec3FromArray(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

func (t TransformConfig) transform() Transform {
	return Transform{
		Position: vec4FromArray(t.Position),
		Rotation: t.Rotation,
	}
}

func scalarOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func colorOr(v *[3]float64, fallback core.Vec3) core.Vec3 {
	if v == nil {
		return fallback
	}
	return vec3FromArray(*v)
}

// Load reads and parses a TOML scene file
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing scene file %s: %w", path, err)
	}
	return &doc, nil
}

// Objects converts the document into the editor object model,
// assigning fresh IDs and resolving group references by name.
func (d *Document) Objects() (*Objects, error) {
	objects := &Objects{}

	groupIDs := make(map[string]uuid.UUID, len(d.Groups))
	for _, g := range d.Groups {
		if g.Name == "" {
			return nil, fmt.Errorf("group without a name")
		}
		if _, exists := groupIDs[g.Name]; exists {
			return nil, fmt.Errorf("duplicate group name %q", g.Name)
		}
		group := NewGroup(g.Name, g.Transform.transform())
		groupIDs[g.Name] = group.ID
		objects.Groups = append(objects.Groups, group)
	}

	resolveGroup := func(name string) (uuid.UUID, error) {
		if name == "" {
			return uuid.Nil, nil
		}
		id, ok := groupIDs[name]
		if !ok {
			return uuid.Nil, fmt.Errorf("unknown group %q", name)
		}
		return id, nil
	}

	white := core.NewVec3(1, 1, 1)

	for i, cfg := range d.Hyperspheres {
		group, err := resolveGroup(cfg.Group)
		if err != nil {
			return nil, fmt.Errorf("hypersphere %d: %w", i, err)
		}
		sphere := NewHypersphereObject(cfg.Name, cfg.Transform.transform(),
			scalarOr(cfg.Radius, 1), colorOr(cfg.Color, white))
		sphere.Group = group
		objects.Hyperspheres = append(objects.Hyperspheres, sphere)
	}

	for i, cfg := range d.Hyperplanes {
		group, err := resolveGroup(cfg.Group)
		if err != nil {
			return nil, fmt.Errorf("hyperplane %d: %w", i, err)
		}
		plane := NewHyperplaneObject(cfg.Name, cfg.Transform.transform(),
			scalarOr(cfg.Width, 1), scalarOr(cfg.Height, 1), scalarOr(cfg.Depth, 1),
			colorOr(cfg.Color, white))
		plane.Group = group
		objects.Hyperplanes = append(objects.Hyperplanes, plane)
	}

	return objects, nil
}

// SkySettings resolves the document's sky settings against the defaults
func (d *Document) SkySettings() Sky {
	sky := DefaultSky()
	if d.Sky == nil {
		return sky
	}
	if d.Sky.SunDirection != nil {
		sky.SunDirection = vec4FromArray(*d.Sky.SunDirection)
	}
	if d.Sky.ZenithColor != nil {
		sky.ZenithColor = vec3FromArray(*d.Sky.ZenithColor)
	}
	if d.Sky.HorizonColor != nil {
		sky.HorizonColor = vec3FromArray(*d.Sky.HorizonColor)
	}
	if d.Sky.SunColor != nil {
		sky.SunColor = vec3FromArray(*d.Sky.SunColor)
	}
	return sky
}

// Scene compiles the document into a validated render-ready scene
func (d *Document) Scene() (*Scene, error) {
	objects, err := d.Objects()
	if err != nil {
		return nil, err
	}

	camera := CameraPlacement{
		Position: vec4FromArray(d.Camera.Position),
		Rotation: d.Camera.Rotation,
	}

	return objects.Build(d.Name, camera, d.SkySettings())
}

// LoadScene loads a TOML scene file straight into render-ready form
func LoadScene(path string) (*Scene, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Scene()
}

// Save writes the document as TOML
func Save(path string, d *Document) error {
	data, err := toml.Marshal(d)
	if err != nil {
		return fmt.Errorf("encoding scene file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scene file: %w", err)
	}
	return nil
}
