package renderer

import (
	"fmt"
	"strings"
	"time"
)

// RenderStats contains statistics about a rendered frame
type RenderStats struct {
	TotalPixels int               // Number of pixels shaded
	Surfaces    [surfaceCount]int // Pixel count per shading branch
	Elapsed     time.Duration     // Wall time of the render
}

// add records one shaded pixel
func (rs *RenderStats) add(s Surface) {
	rs.TotalPixels++
	rs.Surfaces[s]++
}

// Merge folds the counts of other into rs. Elapsed is left untouched.
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	for i, n := range other.Surfaces {
		rs.Surfaces[i] += n
	}
}

// Count returns the number of pixels shaded by s
func (rs RenderStats) Count(s Surface) int {
	if s < 0 || s >= surfaceCount {
		return 0
	}
	return rs.Surfaces[s]
}

// SkyPixels returns the number of pixels shaded from the sky palette
func (rs RenderStats) SkyPixels() int {
	return rs.Count(SurfaceSun) + rs.Count(SurfaceSkyGradient) + rs.Count(SurfaceSkyBand)
}

// GroundPixels returns the number of pixels shaded from the ground palette
func (rs RenderStats) GroundPixels() int {
	return rs.Count(SurfaceRoad) + rs.Count(SurfaceDune) + rs.Count(SurfaceDuneOverflow)
}

func (rs RenderStats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d pixels in %v:", rs.TotalPixels, rs.Elapsed)
	for s := Surface(0); s < surfaceCount; s++ {
		fmt.Fprintf(&b, " %s=%d", s, rs.Surfaces[s])
	}
	return b.String()
}
