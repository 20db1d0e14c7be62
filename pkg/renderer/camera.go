package renderer

import (
	"github.com/df07/go-fixed-landscape/pkg/angle"
	"github.com/df07/go-fixed-landscape/pkg/fixed"
)

// VerticalShift scales the vertical view offset by 128
const VerticalShift = 7

// Camera is a viewpoint in world units and a heading in angle units
type Camera struct {
	Position fixed.Vec3
	Heading  int32 // any value, reduced modulo 256 on lookup
}

// NewCamera creates a camera
func NewCamera(position fixed.Vec3, heading int32) Camera {
	return Camera{Position: position, Heading: heading}
}

// Projector turns pixel positions into ray directions for one camera heading.
// The heading's cosine and sine are looked up once per frame.
type Projector struct {
	width, height int32
	headingCos    int32
	headingSin    int32
}

// NewProjector creates a projector for a viewport of the given size
func NewProjector(tables *angle.Tables, heading int32, width, height int) Projector {
	return Projector{
		width:      int32(width),
		height:     int32(height),
		headingCos: tables.Cos(heading),
		headingSin: tables.Sin(heading),
	}
}

// PixelPosition returns the (x, y) coordinate of a row-major pixel index
func PixelPosition(index, width int) fixed.Vec2 {
	return fixed.Vec2{X: int32(index % width), Y: int32(index / width)}
}

// ViewOffset returns the pixel's offset from the viewport center, doubled
func (p Projector) ViewOffset(pos fixed.Vec2) fixed.Vec2 {
	return fixed.Vec2{
		X: p.width - pos.X<<1,
		Y: p.height - pos.Y<<1,
	}
}

// RawDirection returns the ray direction for a pixel before normalization.
// Horizontal offsets are rotated by the heading; the vertical offset is
// scaled by a fixed 128 regardless of heading.
func (p Projector) RawDirection(pos fixed.Vec2) fixed.Vec3 {
	offset := p.ViewOffset(pos)
	return fixed.Vec3{
		X: offset.X*p.headingCos/p.height - p.headingSin,
		Y: (offset.Y << VerticalShift) / p.height,
		Z: offset.X*p.headingSin/p.height + p.headingCos,
	}
}

// Direction returns the normalized Q8.8 ray direction for a pixel
func (p Projector) Direction(pos fixed.Vec2) fixed.Vec3 {
	return fixed.Normalize(p.RawDirection(pos))
}
