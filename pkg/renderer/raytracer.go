// Package renderer turns a scene snapshot into images: analytic ray
// tracing against the scene's primitives, shaded with a single sun and
// a gradient sky, dispatched in parallel over a tile grid. Rendering
// uses no randomness, so the same scene and resolution always produce
// the same image.
package renderer

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tesseray/tesseray/pkg/core"
	"github.com/tesseray/tesseray/pkg/scene"
)

const (
	// shadowBias offsets shadow ray origins along the surface normal
	// so a surface never shadows itself.
	shadowBias = 0.001

	// ambientFloor is the minimum light intensity on any hit surface
	ambientFloor = 0.1

	// sunDiscThreshold is the direction/sun alignment above which a
	// sky ray shows the sun disc instead of the gradient.
	sunDiscThreshold = 0.99
)

// Raytracer renders one scene at one resolution. It only ever reads
// the scene, so a single instance is safe to share across workers.
type Raytracer struct {
	scene  *scene.Scene
	camera Camera
	width  int
	height int
	aspect float64
	sun    core.Vec4
	logger *log.Logger
}

// NewRaytracer creates a raytracer for the scene at the given
// resolution, with the camera basis built from the scene's placement.
func NewRaytracer(s *scene.Scene, width, height int, logger *log.Logger) *Raytracer {
	return &Raytracer{
		scene:  s,
		camera: NewCamera(s.Camera.Position, s.Camera.Rotation.Rotor()),
		width:  width,
		height: height,
		aspect: float64(width) / float64(height),
		sun:    s.Sky.SunDirection.Normalize(),
		logger: logger,
	}
}

// SetCamera overrides the scene's camera placement; the viewer uses
// this to render from its fly camera each frame.
func (rt *Raytracer) SetCamera(camera Camera) {
	rt.camera = camera
}

// Camera returns the view basis the raytracer renders from
func (rt *Raytracer) Camera() Camera {
	return rt.camera
}

// intersectScene finds the closest hit along the ray, checking every
// hypersphere and then every hyperplane. Ties keep the earlier
// primitive, spheres before planes.
func (rt *Raytracer) intersectScene(ray core.Ray) core.Hit {
	closest := core.NoHit()
	closest.Distance = math.Inf(1)

	for _, sphere := range rt.scene.Hyperspheres {
		if hit := sphere.Intersect(ray); hit.Hit && hit.Distance < closest.Distance {
			closest = hit
		}
	}
	for _, plane := range rt.scene.Hyperplanes {
		if hit := plane.Intersect(ray); hit.Hit && hit.Distance < closest.Distance {
			closest = hit
		}
	}

	return closest
}

// skyColor shades a ray that escaped the scene: the sun disc where the
// direction lines up with the sun, otherwise a horizon-to-zenith
// gradient on the direction's y component.
func (rt *Raytracer) skyColor(direction core.Vec4) core.Vec3 {
	unit := direction.Normalize()
	if unit.Dot(rt.sun) > sunDiscThreshold {
		return rt.scene.Sky.SunColor
	}
	t := 0.5 * (unit.Y + 1.0)
	return rt.scene.Sky.HorizonColor.Lerp(rt.scene.Sky.ZenithColor, t)
}

// traceRay shades one primary ray: closest hit, one shadow ray toward
// the sun, diffuse sun lighting clamped to the ambient floor.
func (rt *Raytracer) traceRay(ray core.Ray, stats *RenderStats) core.Vec3 {
	stats.PrimaryRays++

	hit := rt.intersectScene(ray)
	if !hit.Hit {
		return rt.skyColor(ray.Direction)
	}
	stats.HitCount++

	shadowOrigin := hit.Position.Add(hit.Normal.Multiply(shadowBias))
	shadowRay := core.NewRay(shadowOrigin, rt.sun)
	stats.ShadowRays++

	shadow := 1.0
	if rt.intersectScene(shadowRay).Hit {
		shadow = 0.0
	}

	intensity := math.Max(ambientFloor, shadow*hit.Normal.Dot(rt.sun))
	return hit.Color.Multiply(intensity)
}

// TraceRay shades a single ray against the scene
func (rt *Raytracer) TraceRay(ray core.Ray) core.Vec3 {
	var stats RenderStats
	return rt.traceRay(ray, &stats)
}

// RayForPixel builds the primary ray through the center of pixel (i, j).
// Pixel (0, 0) is the top-left corner; the horizontal axis carries the
// aspect ratio so pixels stay square.
func (rt *Raytracer) RayForPixel(i, j int) core.Ray {
	u := 2.0*(float64(i)+0.5)/float64(rt.width) - 1.0
	v := 1.0 - 2.0*(float64(j)+0.5)/float64(rt.height)

	direction := rt.camera.Forward.
		Add(rt.camera.Up.Multiply(v)).
		Add(rt.camera.Right.Multiply(u * rt.aspect)).
		Normalize()

	return core.NewRay(rt.camera.Position, direction)
}

// vec3ToRGBA converts a color to 8-bit RGBA with clamping. No gamma
// correction; the shading already works in display-ready intensities.
func vec3ToRGBA(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// RenderBounds renders the pixels within bounds into the shared image.
// Tiles have disjoint bounds, so concurrent calls never touch the same
// pixel.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, img *image.RGBA) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			colorVec := rt.traceRay(rt.RayForPixel(i, j), &stats)
			img.SetRGBA(i, j, vec3ToRGBA(colorVec))
		}
	}

	return stats
}

// RenderPass renders the full frame in parallel over a tile grid and
// returns the image with the aggregated pass statistics.
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	pool := NewWorkerPool(rt, 0)
	pool.Start()

	tiles := TileBounds(rt.width, rt.height, DefaultTileSize)
	for id, bounds := range tiles {
		pool.SubmitTask(TileTask{TaskID: id, Bounds: bounds, Image: img})
	}

	var stats RenderStats
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.merge(result.Stats)
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	if rt.logger != nil {
		rt.logger.Debug("render pass complete",
			"width", rt.width, "height", rt.height,
			"tiles", len(tiles),
			"primaryRays", stats.PrimaryRays,
			"shadowRays", stats.ShadowRays,
			"hits", stats.HitCount,
			"duration", stats.Duration)
	}
	return img, stats
}
