package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultBandHeight is the number of rows in one band task
const DefaultBandHeight = 8

// Band is a range of rows [Y0, Y1) rendered as one task
type Band struct {
	TaskID int // For deterministic ordering
	Y0, Y1 int
}

// BandResult contains the result from rendering a band
type BandResult struct {
	TaskID int
	Stats  RenderStats
}

// SplitRows partitions height rows into bands of at most bandHeight rows
func SplitRows(height, bandHeight int) []Band {
	if bandHeight <= 0 {
		bandHeight = DefaultBandHeight
	}
	var bands []Band
	for y := 0; y < height; y += bandHeight {
		bands = append(bands, Band{
			TaskID: len(bands),
			Y0:     y,
			Y1:     min(y+bandHeight, height),
		})
	}
	return bands
}

// WorkerPool renders bands of a frame in parallel
type WorkerPool struct {
	renderer   *Renderer
	numWorkers int
	onBand     func(Band, RenderStats)
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(r *Renderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{renderer: r, numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// SetBandCallback registers fn to be called after each band is shaded.
// fn runs on the worker goroutine, so calls may be concurrent.
func (wp *WorkerPool) SetBandCallback(fn func(Band, RenderStats)) {
	wp.onBand = fn
}

// Run renders every band into fb and returns the merged stats.
// It stops early with the context's error if ctx is cancelled.
func (wp *WorkerPool) Run(ctx context.Context, fb *FrameBuffer, bands []Band) (RenderStats, error) {
	g, ctx := errgroup.WithContext(ctx)
	taskQueue := make(chan Band)
	resultQueue := make(chan BandResult, len(bands)) // Buffer for all results

	g.Go(func() error {
		defer close(taskQueue) // No more tasks
		for _, band := range bands {
			select {
			case taskQueue <- band:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < wp.numWorkers; i++ {
		g.Go(func() error {
			for band := range taskQueue {
				if err := ctx.Err(); err != nil {
					return err
				}
				// Bands never overlap, so workers write disjoint bytes of fb
				stats := wp.renderer.RenderRows(fb, band.Y0, band.Y1)
				if wp.onBand != nil {
					wp.onBand(band, stats)
				}
				resultQueue <- BandResult{TaskID: band.TaskID, Stats: stats}
			}
			return nil
		})
	}

	err := g.Wait()
	close(resultQueue)
	if err != nil {
		return RenderStats{}, err
	}

	var stats RenderStats
	for result := range resultQueue {
		stats.Merge(result.Stats)
	}
	return stats, nil
}
