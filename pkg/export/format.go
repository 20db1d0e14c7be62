package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/df07/go-fixed-landscape/pkg/overlay"
	"github.com/df07/go-fixed-landscape/pkg/renderer"
)

// Format is an output image container
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ParseFormat returns the format named by s (case-insensitive)
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPPM, FormatPNG, FormatBMP:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want ppm, png or bmp)", s)
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatBMP:
		return "image/bmp"
	}
	return "image/x-portable-pixmap"
}

// Options controls how a frame is written
type Options struct {
	Format  Format
	Scale   int    // Integer upscale factor, png and bmp only
	Caption string // Text drawn in the top-left corner, png and bmp only
}

// Write encodes fb in the requested format.
// PPM output is always the unmodified frame payload.
func Write(w io.Writer, fb *renderer.FrameBuffer, opts Options) error {
	switch opts.Format {
	case FormatPPM, "":
		return WritePPM(w, fb)
	case FormatPNG, FormatBMP:
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}

	img := Upscale(ToImage(fb), opts.Scale)
	if opts.Caption != "" {
		overlay.DrawCaption(img, opts.Caption)
	}

	if opts.Format == FormatBMP {
		return WriteBMP(w, img)
	}
	return WritePNG(w, img)
}
