// Package overlay draws text onto exported images with tinyfont.
package overlay

import (
	"image"
	"image/color"
	"strings"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorText = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorBack = color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xff}
)

// Font is the caption font
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

const (
	lineHeight = 10
	baseline   = 8 // distance from a line's top to its baseline
	padding    = 2
)

// Canvas adapts an RGBA image to the tinygo display interface
type Canvas struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*Canvas)(nil)

// NewCanvas wraps img; drawing goes straight into its pixels
func NewCanvas(img *image.RGBA) *Canvas {
	return &Canvas{img: img}
}

func (c *Canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	p := image.Pt(int(x), int(y)).Add(c.img.Bounds().Min)
	if !p.In(c.img.Bounds()) {
		return
	}
	c.img.SetRGBA(p.X, p.Y, col)
}

func (c *Canvas) Display() error {
	return nil
}

func (c *Canvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			c.SetPixel(px, py, col)
		}
	}
	return nil
}

// CaptionBounds returns the box DrawCaption fills for text
func CaptionBounds(text string) image.Rectangle {
	lines := strings.Split(text, "\n")
	var width uint32
	for _, line := range lines {
		_, outbox := tinyfont.LineWidth(Font, line)
		width = max(width, outbox)
	}
	return image.Rect(0, 0, int(width)+2*padding, len(lines)*lineHeight+2*padding)
}

// DrawCaption writes text on a dark strip in the top-left corner of img.
// Lines are separated by "\n".
func DrawCaption(img *image.RGBA, text string) {
	if text == "" {
		return
	}
	canvas := NewCanvas(img)
	box := CaptionBounds(text)
	canvas.FillRectangle(0, 0, int16(box.Dx()), int16(box.Dy()), colorBack)

	for i, line := range strings.Split(text, "\n") {
		y := int16(padding + i*lineHeight + baseline)
		tinyfont.WriteLine(canvas, Font, padding, y, line, colorText)
	}
}
