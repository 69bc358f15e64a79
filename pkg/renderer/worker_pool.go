package renderer

import (
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/okarlsson/go-sphere-tracer/pkg/core"
)

// Config controls how a render is split across workers
type Config struct {
	TileSize   int   // Size of each square tile in pixels
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed for the per-tile random generators
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0,
		Seed:       42,
	}
}

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile  *Tile
	Frame [][]core.Vec3 // Shared frame buffer to write into
}

// TileResult contains the statistics from rendering one tile
type TileResult struct {
	TileID int
	Stats  RenderStats
}

// WorkerPool renders tiles in parallel. Tiles have disjoint bounds and
// each carries its own random generator, so workers never contend on
// anything but the task and result channels.
type WorkerPool struct {
	renderer    *Renderer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool rendering with the given renderer
func NewWorkerPool(r *Renderer, queueSize, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		renderer:    r,
		taskQueue:   make(chan TileTask, queueSize),
		resultQueue: make(chan TileResult, queueSize),
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

// Stop signals that no more tasks will arrive and waits for the workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Submit queues a tile task
func (wp *WorkerPool) Submit(task TileTask) {
	wp.taskQueue <- task
}

// Result retrieves a completed tile result
func (wp *WorkerPool) Result() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		stats := wp.renderer.RenderBounds(task.Tile.Bounds, task.Frame, task.Tile.Random)
		wp.resultQueue <- TileResult{TileID: task.Tile.ID, Stats: stats}
	}
}

// Render renders the whole scene in parallel and returns the finished
// image. The same config (in particular the same seed) always produces an
// identical image, regardless of worker count or tile scheduling order.
func (r *Renderer) Render(config Config) (*image.RGBA, RenderStats) {
	startTime := time.Now()

	tiles := NewTileGrid(r.scene.Width, r.scene.Height, config.TileSize, config.Seed)
	frame := r.NewFrame()

	pool := NewWorkerPool(r, len(tiles), config.NumWorkers)
	pool.Start()

	for _, tile := range tiles {
		pool.Submit(TileTask{Tile: tile, Frame: frame})
	}

	totals := RenderStats{
		Tiles:   len(tiles),
		Workers: pool.numWorkers,
	}
	for range tiles {
		result, ok := pool.Result()
		if !ok {
			break
		}
		totals.merge(result.Stats)
	}
	pool.Stop()

	totals.Elapsed = time.Since(startTime)
	return r.FrameToImage(frame), totals
}
