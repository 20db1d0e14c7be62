package renderer

// Fixed viewport dimensions
const (
	Width  = 320
	Height = 200
)

// Channels is the number of bytes stored per pixel
const Channels = 3

// Channel selects one byte of a pixel
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// FrameBuffer is a row-major RGB byte buffer.
// Every pixel owns the three bytes at [pixel*3, pixel*3+3), so workers that
// write disjoint pixel ranges never touch the same memory.
type FrameBuffer struct {
	width, height int
	pix           []byte
}

// NewFrameBuffer returns a zeroed (black) frame buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*Channels),
	}
}

// Width returns the width in pixels
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the height in pixels
func (fb *FrameBuffer) Height() int { return fb.height }

// PixelCount returns width*height
func (fb *FrameBuffer) PixelCount() int { return fb.width * fb.height }

// Bytes returns the raw payload, top row first, R-G-B per pixel.
// The slice aliases the buffer.
func (fb *FrameBuffer) Bytes() []byte { return fb.pix }

// Index returns the pixel index of (x, y)
func (fb *FrameBuffer) Index(x, y int) int { return y*fb.width + x }

// Set stores the low 8 bits of v; out-of-range values wrap, they are not clamped
func (fb *FrameBuffer) Set(pixel int, c Channel, v int32) {
	fb.pix[pixel*Channels+int(c)] = uint8(v)
}

// Get returns the stored byte of one channel
func (fb *FrameBuffer) Get(pixel int, c Channel) uint8 {
	return fb.pix[pixel*Channels+int(c)]
}

// SetRGB stores all three channels of a pixel, R then G then B
func (fb *FrameBuffer) SetRGB(pixel int, r, g, b int32) {
	fb.Set(pixel, Red, r)
	fb.Set(pixel, Green, g)
	fb.Set(pixel, Blue, b)
}

// RGB returns the stored color of a pixel
func (fb *FrameBuffer) RGB(pixel int) (r, g, b uint8) {
	return fb.Get(pixel, Red), fb.Get(pixel, Green), fb.Get(pixel, Blue)
}

// Rows returns a copy of rows [y0, y1)
func (fb *FrameBuffer) Rows(y0, y1 int) []byte {
	stride := fb.width * Channels
	rows := make([]byte, (y1-y0)*stride)
	copy(rows, fb.pix[y0*stride:y1*stride])
	return rows
}
