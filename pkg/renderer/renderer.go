package renderer

import (
	"context"
	"time"

	"github.com/df07/go-fixed-landscape/pkg/angle"
	"github.com/df07/go-fixed-landscape/pkg/core"
	"github.com/df07/go-fixed-landscape/pkg/fixed"
)

// Config contains rendering options
type Config struct {
	RoadRule RoadRule // Which ground tiles are drawn as road
}

// DefaultConfig returns the default rendering options
func DefaultConfig() Config {
	return Config{RoadRule: RoadTiles}
}

// Renderer draws the landscape seen from one camera under one light.
// All of its state is read-only after construction, so one Renderer can
// shade any pixels from any number of goroutines.
type Renderer struct {
	camera    Camera
	light     Light
	config    Config
	tables    *angle.Tables
	projector Projector
	shader    *Shader
	width     int
	height    int
	logger    core.Logger
}

// NewRenderer creates a renderer for the fixed 320x200 viewport.
// A nil logger disables logging.
func NewRenderer(camera Camera, light Light, config Config, logger core.Logger) *Renderer {
	tables := angle.NewTables()
	if logger == nil {
		logger = discardLogger{}
	}
	return &Renderer{
		camera:    camera,
		light:     light,
		config:    config,
		tables:    tables,
		projector: NewProjector(tables, camera.Heading, Width, Height),
		shader:    NewShader(tables, light, config.RoadRule),
		width:     Width,
		height:    Height,
		logger:    logger,
	}
}

// Camera returns the camera being rendered
func (r *Renderer) Camera() Camera { return r.camera }

// Light returns the normalized light
func (r *Renderer) Light() Light { return r.light }

// Tables returns the angle tables shared by projection and shading
func (r *Renderer) Tables() *angle.Tables { return r.tables }

// Projector returns the per-frame pixel projector
func (r *Renderer) Projector() Projector { return r.projector }

// Shader returns the shader
func (r *Renderer) Shader() *Shader { return r.shader }

// NewFrameBuffer returns a black buffer sized for this renderer
func (r *Renderer) NewFrameBuffer() *FrameBuffer {
	return NewFrameBuffer(r.width, r.height)
}

// Render shades every pixel in a single pass, top row first
func (r *Renderer) Render() (*FrameBuffer, RenderStats) {
	startTime := time.Now()
	fb := r.NewFrameBuffer()
	stats := r.RenderRows(fb, 0, r.height)
	stats.Elapsed = time.Since(startTime)
	return fb, stats
}

// RenderParallel shades the frame with numWorkers goroutines, each taking
// bands of rows. The result is byte-identical to Render.
func (r *Renderer) RenderParallel(ctx context.Context, numWorkers int) (*FrameBuffer, RenderStats, error) {
	startTime := time.Now()
	fb := r.NewFrameBuffer()

	pool := NewWorkerPool(r, numWorkers)
	bands := SplitRows(r.height, DefaultBandHeight)
	r.logger.Printf("Rendering %dx%d frame in %d bands (using %d workers)...\n",
		r.width, r.height, len(bands), pool.GetNumWorkers())

	stats, err := pool.Run(ctx, fb, bands)
	if err != nil {
		return nil, RenderStats{}, err
	}
	stats.Elapsed = time.Since(startTime)
	return fb, stats, nil
}

// RenderRows shades rows [y0, y1) of fb.
// Distinct row ranges touch distinct bytes of fb.
func (r *Renderer) RenderRows(fb *FrameBuffer, y0, y1 int) RenderStats {
	var stats RenderStats
	for pixel := y0 * r.width; pixel < y1*r.width; pixel++ {
		stats.add(r.ShadePixel(fb, pixel))
	}
	return stats
}

// ShadePixel computes and stores the color of one pixel
func (r *Renderer) ShadePixel(fb *FrameBuffer, pixel int) Surface {
	dir := r.projector.Direction(PixelPosition(pixel, r.width))
	hit := Intersect(r.camera.Position, dir)
	return r.shader.Shade(fb, pixel, dir, hit)
}

// Trace returns the normalized direction and hit point of one pixel
func (r *Renderer) Trace(x, y int) (dir, hit fixed.Vec3) {
	dir = r.projector.Direction(fixed.Vec2{X: int32(x), Y: int32(y)})
	return dir, Intersect(r.camera.Position, dir)
}
