package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/image/draw"

	"github.com/tesseray/tesseray/pkg/renderer"
	"github.com/tesseray/tesseray/pkg/scene"
)

func main() {
	sceneFlag := flag.String("scene", "default", "Built-in scene name or path to a .toml scene file")
	width := flag.Int("width", 800, "Render width in pixels")
	height := flag.Int("height", 450, "Render height in pixels")
	out := flag.String("out", "render.png", "Output PNG path")
	scale := flag.Int("scale", 1, "Integer upscale factor for the output image")
	watch := flag.Bool("watch", false, "Re-render whenever the scene file changes (file scenes only)")
	list := flag.Bool("list", false, "List available scenes and exit")
	logLevel := flag.String("log", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tesseray",
	})
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal("invalid log level", "level", *logLevel)
	}
	logger.SetLevel(level)

	if *list {
		listScenes(logger)
		return
	}

	if *width <= 0 || *height <= 0 || *scale <= 0 {
		logger.Fatal("width, height and scale must be positive",
			"width", *width, "height", *height, "scale", *scale)
	}

	if err := renderToFile(logger, *sceneFlag, *width, *height, *scale, *out); err != nil {
		logger.Fatal("render failed", "err", err)
	}

	if *watch {
		if !isSceneFile(*sceneFlag) {
			logger.Fatal("-watch needs a .toml scene file", "scene", *sceneFlag)
		}
		if err := watchAndRender(logger, *sceneFlag, *width, *height, *scale, *out); err != nil {
			logger.Fatal("watch failed", "err", err)
		}
	}
}

func isSceneFile(name string) bool {
	return strings.HasSuffix(name, ".toml")
}

// createScene resolves the -scene flag: a .toml path loads a scene
// file, anything else names a built-in scene.
func createScene(name string) (*scene.Scene, error) {
	if isSceneFile(name) {
		return scene.LoadScene(name)
	}
	return scene.Builtin(name)
}

func listScenes(logger *log.Logger) {
	fmt.Println("Built-in scenes:")
	for _, name := range scene.BuiltinNames() {
		fmt.Printf("  %s\n", name)
	}

	entries, problems := scene.List("scenes")
	for _, err := range problems {
		logger.Warn("skipping scene file", "err", err)
	}
	if len(entries) == 0 {
		return
	}
	fmt.Println("Scene files:")
	for _, entry := range entries {
		if entry.Description != "" {
			fmt.Printf("  %s - %s (%s)\n", entry.Name, entry.Description, entry.Path)
		} else {
			fmt.Printf("  %s (%s)\n", entry.Name, entry.Path)
		}
	}
}

func renderToFile(logger *log.Logger, sceneName string, width, height, scale int, out string) error {
	s, err := createScene(sceneName)
	if err != nil {
		return err
	}
	logger.Info("rendering", "scene", s.Name, "width", width, "height", height)

	raytracer := renderer.NewRaytracer(s, width, height, logger)
	img, stats := raytracer.RenderPass()

	logger.Info("render complete",
		"pixels", stats.TotalPixels,
		"hits", stats.HitCount,
		"shadowRays", stats.ShadowRays,
		"duration", stats.Duration)

	img = upscale(img, scale)

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}

	logger.Info("saved", "path", out)
	return nil
}

// upscale enlarges the image by an integer factor with nearest-neighbor
// sampling, keeping the hard pixel edges.
func upscale(img *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return img
	}
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// watchAndRender re-renders the scene file whenever it is written to.
// Editors often replace files instead of writing in place, so the
// path is re-added after rename and remove events.
func watchAndRender(logger *log.Logger, scenePath string, width, height, scale int, out string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(scenePath); err != nil {
		return fmt.Errorf("watching %s: %w", scenePath, err)
	}
	logger.Info("watching scene file", "path", scenePath)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if err := renderToFile(logger, scenePath, width, height, scale, out); err != nil {
					logger.Error("re-render failed", "err", err)
				}
			}
			if event.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
				if err := watcher.Add(scenePath); err != nil {
					logger.Warn("scene file gone, waiting", "err", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "err", err)
		}
	}
}
