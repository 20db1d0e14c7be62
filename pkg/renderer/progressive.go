package renderer

import (
	"context"
	"sync"
	"time"
)

// BandUpdate reports one finished band of a progressive render
type BandUpdate struct {
	Band       Band
	Pixels     []byte      // RGB rows [Band.Y0, Band.Y1), copied out of the frame
	Stats      RenderStats // Counts for this band only
	BandNumber int         // Completion order, 1-based
	TotalBands int
}

// FrameResult is the finished frame of a progressive render
type FrameResult struct {
	Frame *FrameBuffer
	Stats RenderStats
}

// RenderProgressive renders the frame in parallel and reports every band
// as soon as it is shaded. Bands arrive in completion order, not top to
// bottom.
//
// bandChan is closed once the last band has been sent. On success the frame
// is then sent on frameChan; on failure errChan receives the error. Both of
// those are closed when the render goroutine exits.
func (r *Renderer) RenderProgressive(ctx context.Context, numWorkers int) (<-chan BandUpdate, <-chan FrameResult, <-chan error) {
	bands := SplitRows(r.height, DefaultBandHeight)
	bandChan := make(chan BandUpdate, len(bands)) // Never blocks a worker
	frameChan := make(chan FrameResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(errChan)
		defer close(frameChan)

		startTime := time.Now()
		fb := r.NewFrameBuffer()
		pool := NewWorkerPool(r, numWorkers)
		r.logger.Printf("Starting progressive render of %d bands (using %d workers)...\n",
			len(bands), pool.GetNumWorkers())

		var mu sync.Mutex
		completed := 0
		pool.SetBandCallback(func(band Band, stats RenderStats) {
			mu.Lock()
			defer mu.Unlock()
			completed++
			bandChan <- BandUpdate{
				Band:       band,
				Pixels:     fb.Rows(band.Y0, band.Y1),
				Stats:      stats,
				BandNumber: completed,
				TotalBands: len(bands),
			}
		})

		stats, err := pool.Run(ctx, fb, bands)
		close(bandChan)
		if err != nil {
			r.logger.Printf("Render cancelled after %d of %d bands\n", completed, len(bands))
			errChan <- err
			return
		}

		stats.Elapsed = time.Since(startTime)
		r.logger.Printf("Render completed in %v\n", stats.Elapsed)
		frameChan <- FrameResult{Frame: fb, Stats: stats}
	}()

	return bandChan, frameChan, errChan
}
