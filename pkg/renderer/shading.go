package renderer

import (
	"github.com/df07/go-fixed-landscape/pkg/angle"
	"github.com/df07/go-fixed-landscape/pkg/fixed"
)

// Surface identifies which shading branch produced a pixel
type Surface int

const (
	SurfaceHorizon      Surface = iota // exactly horizontal ray, left black
	SurfaceSun                         // sunset red around the light direction
	SurfaceSkyGradient                 // blue-to-horizon gradient
	SurfaceSkyBand                     // gray band from a wrapped negative brightness
	SurfaceRoad                        // road tile
	SurfaceDune                        // sine-modulated green
	SurfaceDuneOverflow                // dune whose green byte wrapped
	surfaceCount
)

var surfaceNames = [surfaceCount]string{
	"horizon", "sun", "sky-gradient", "sky-band", "road", "dune", "dune-overflow",
}

func (s Surface) String() string {
	if s < 0 || s >= surfaceCount {
		return "unknown"
	}
	return surfaceNames[s]
}

// IsSky reports whether s comes from the upper half of the view
func (s Surface) IsSky() bool {
	return s == SurfaceSun || s == SurfaceSkyGradient || s == SurfaceSkyBand
}

// IsGround reports whether s comes from the lower half of the view
func (s Surface) IsGround() bool {
	return s == SurfaceRoad || s == SurfaceDune || s == SurfaceDuneOverflow
}

// Shading constants
const (
	sunThreshold   = 64000 // dot products at or above this fall inside the sun disk
	skyBase        = 30
	tileShift      = 13 // tiles are 8192 hit units wide
	tilePeriodX    = 7
	tilePeriodZ    = 9
	duneBase       = 55
	duneWavelength = 20
	overflowGreen  = 200
)

// RoadRule decides which ground tiles are road
type RoadRule int

const (
	RoadTiles RoadRule = iota // road where both tile indices are zero
	RoadGrid                  // road where either tile index is zero
)

// TileIndex returns the periodic tile coordinates of a hit point.
// Negative coordinates give negative indices.
func TileIndex(hit fixed.Vec3) (tx, tz int32) {
	return (hit.X >> tileShift) % tilePeriodX, (hit.Z >> tileShift) % tilePeriodZ
}

// IsRoad reports whether a ground hit point lies on a road tile
func (rule RoadRule) IsRoad(hit fixed.Vec3) bool {
	tx, tz := TileIndex(hit)
	if rule == RoadGrid {
		return tx*tz == 0
	}
	return tx == 0 && tz == 0
}

// Shader colors pixels from a ray direction and its hit point
type Shader struct {
	tables   *angle.Tables
	light    fixed.Vec3
	roadRule RoadRule
}

// NewShader creates a shader for a fixed light
func NewShader(tables *angle.Tables, light Light, roadRule RoadRule) *Shader {
	return &Shader{tables: tables, light: light.Direction(), roadRule: roadRule}
}

// Shade writes the color of one pixel into fb and reports which branch
// produced it. Horizontal rays (dir.Y == 0) are not written at all.
func (s *Shader) Shade(fb *FrameBuffer, pixel int, dir, hit fixed.Vec3) Surface {
	switch {
	case dir.Y > 0:
		return s.shadeSky(fb, pixel, dir, hit)
	case dir.Y < 0:
		return s.shadeGround(fb, pixel, hit)
	}
	return SurfaceHorizon
}

// SkyBrightness returns the banded sky value for a hit point.
// Negative values are stored as wrapped bytes to produce gray bands.
func (s *Shader) SkyBrightness(hit fixed.Vec3) int32 {
	cos := s.tables.Cos
	return cos((cos(hit.Z>>11)+hit.X>>8)>>1) + cos(hit.Z/500)/4 + skyBase
}

func (s *Shader) shadeSky(fb *FrameBuffer, pixel int, dir, hit fixed.Vec3) Surface {
	fb.SetRGB(pixel, 188, 0, 45)

	sky := s.SkyBrightness(hit)
	if sky < 0 {
		fb.SetRGB(pixel, sky, sky, sky)
		return SurfaceSkyBand
	}
	if fixed.Dot(dir, s.light) < sunThreshold {
		fb.SetRGB(pixel,
			128-128*dir.Y/255,
			179-179*dir.Y/255,
			255-76*dir.Y/255)
		return SurfaceSkyGradient
	}
	return SurfaceSun
}

func (s *Shader) shadeGround(fb *FrameBuffer, pixel int, hit fixed.Vec3) Surface {
	fb.SetRGB(pixel, 77, 40, 0)

	if s.roadRule.IsRoad(hit) {
		fb.SetRGB(pixel, 100, 100, 110)
		return SurfaceRoad
	}

	fb.SetRGB(pixel, 60, duneBase+s.tables.Sin(hit.X/duneWavelength)/2, 0)

	// A negative green wraps to a byte above 200; compare the stored byte.
	if fb.Get(pixel, Green) > overflowGreen {
		fb.Set(pixel, Green, 60)
		fb.Set(pixel, Blue, 120)
		return SurfaceDuneOverflow
	}
	return SurfaceDune
}
