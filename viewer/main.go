// Command viewer opens an interactive window on a scene: a fly camera
// renders the scene in real time at a reduced resolution, with 4D
// movement and rotation on the keyboard.
//
// Controls: W/S forward/back, A/D left/right, Q/E down/up, R/F along
// the fourth axis. Arrow keys yaw and pitch; holding Ctrl turns the
// view through the xw and zw planes instead, rotating which 3D slice
// of the scene faces the camera. Shift doubles movement speed.
package main

import (
	"flag"
	"image"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tesseray/tesseray/pkg/renderer"
	"github.com/tesseray/tesseray/pkg/scene"
)

func main() {
	sceneFlag := flag.String("scene", "default", "Built-in scene name or path to a .toml scene file")
	width := flag.Int("width", 320, "Render width in pixels")
	height := flag.Int("height", 180, "Render height in pixels")
	windowScale := flag.Int("window-scale", 3, "Window size as a multiple of the render size")
	logLevel := flag.String("log", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "viewer",
	})
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal("invalid log level", "level", *logLevel)
	}
	logger.SetLevel(level)

	s, err := loadScene(*sceneFlag)
	if err != nil {
		logger.Fatal("loading scene", "err", err)
	}

	game := newGame(s, *width, *height, logger)

	ebiten.SetWindowTitle("tesseray - " + s.Name)
	ebiten.SetWindowSize(*width**windowScale, *height**windowScale)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("viewer closed with error", "err", err)
	}
}

func loadScene(name string) (*scene.Scene, error) {
	if strings.HasSuffix(name, ".toml") {
		return scene.LoadScene(name)
	}
	return scene.Builtin(name)
}

type game struct {
	raytracer *renderer.Raytracer
	camera    *renderer.FlyCamera
	width     int
	height    int

	img    *image.RGBA
	screen *ebiten.Image
	logger *log.Logger
}

func newGame(s *scene.Scene, width, height int, logger *log.Logger) *game {
	camera := renderer.NewFlyCamera(s.Camera.Position)
	camera.MainRotation = s.Camera.Rotation.Rotor()

	return &game{
		raytracer: renderer.NewRaytracer(s, width, height, logger),
		camera:    camera,
		width:     width,
		height:    height,
		logger:    logger,
	}
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	moveSpeed := g.camera.MoveSpeed
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		moveSpeed *= 2
	}
	move := moveSpeed * dt

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.camera.MoveForward(move)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.camera.MoveForward(-move)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.camera.MoveUp(move)
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.camera.MoveUp(-move)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.camera.MoveRight(move)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.camera.MoveRight(-move)
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		g.camera.MoveAna(move)
	}
	if ebiten.IsKeyPressed(ebiten.KeyF) {
		g.camera.MoveAna(-move)
	}

	turn := g.camera.RotationSpeed * 2 * math.Pi * dt
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl {
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			g.camera.TurnXW(turn)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			g.camera.TurnXW(-turn)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			g.camera.TurnZW(turn)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			g.camera.TurnZW(-turn)
		}
	} else {
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			g.camera.Yaw(turn)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			g.camera.Yaw(-turn)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			g.camera.Pitch(turn)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			g.camera.Pitch(-turn)
		}
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.raytracer.SetCamera(g.camera.Camera())
	img, stats := g.raytracer.RenderPass()

	if g.screen == nil {
		g.screen = ebiten.NewImage(g.width, g.height)
	}
	g.img = img
	g.screen.WritePixels(g.img.Pix)
	screen.DrawImage(g.screen, nil)

	g.logger.Debug("frame", "duration", stats.Duration, "hits", stats.HitCount)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
