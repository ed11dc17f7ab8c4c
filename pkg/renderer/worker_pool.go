package renderer

import (
	"image"
	"runtime"
	"sync"
)

// DefaultTileSize is the edge length of the tiles a frame is split into
const DefaultTileSize = 64

// TileTask represents one tile rendering task for the worker pool.
// Tiles carry disjoint bounds into a shared image, so workers never
// write the same pixel.
type TileTask struct {
	TaskID int
	Bounds image.Rectangle
	Image  *image.RGBA
}

// TileResult contains the statistics from rendering one tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool renders tiles in parallel against a shared raytracer
type WorkerPool struct {
	raytracer   *Raytracer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// TileBounds splits a frame into tile rectangles of at most
// tileSize x tileSize pixels, in row-major order.
func TileBounds(width, height, tileSize int) []image.Rectangle {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(
				x, y,
				min(x+tileSize, width),
				min(y+tileSize, height),
			))
		}
	}
	return tiles
}

// NewWorkerPool creates a worker pool over the raytracer. Zero or
// negative numWorkers uses one worker per CPU. The raytracer is shared:
// it only reads the scene, so this is safe.
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	maxTiles := len(TileBounds(raytracer.width, raytracer.height, DefaultTileSize))

	return &WorkerPool{
		raytracer:   raytracer,
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop shuts down the pool after the queued tasks finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a tile for rendering
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		stats := wp.raytracer.RenderBounds(task.Bounds, task.Image)
		wp.resultQueue <- TileResult{TaskID: task.TaskID, Stats: stats}
	}
}
