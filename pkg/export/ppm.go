// Package export writes rendered frames as image files.
package export

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/df07/go-fixed-landscape/pkg/renderer"
)

// MaxValue is the largest channel value written to PPM headers
const MaxValue = 255

// ErrNotPPM is returned when decoding a stream that is not binary PPM
var ErrNotPPM = errors.New("not a binary PPM (P6) image")

// PPMHeader returns the text header of a P6 image
func PPMHeader(width, height int) string {
	return fmt.Sprintf("P6\n%d %d\n%d\n", width, height, MaxValue)
}

// WritePPM writes the P6 header followed by the raw frame payload,
// top row first, with no padding
func WritePPM(w io.Writer, fb *renderer.FrameBuffer) error {
	if _, err := io.WriteString(w, PPMHeader(fb.Width(), fb.Height())); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	if _, err := w.Write(fb.Bytes()); err != nil {
		return fmt.Errorf("failed to write PPM payload: %w", err)
	}
	return nil
}

// DecodePPM reads a P6 image with a max value of 255
func DecodePPM(r io.Reader) (*image.RGBA, error) {
	br := bufio.NewReader(r)

	var magic string
	var width, height, maxValue int
	if _, err := fmt.Fscan(br, &magic); err != nil || magic != "P6" {
		return nil, ErrNotPPM
	}
	if _, err := fmt.Fscan(br, &width, &height, &maxValue); err != nil {
		return nil, fmt.Errorf("failed to read PPM header: %w", err)
	}
	if maxValue != MaxValue || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("unsupported PPM: %dx%d max %d", width, height, maxValue)
	}
	// Exactly one whitespace byte separates the header from the payload
	if _, err := br.ReadByte(); err != nil {
		return nil, fmt.Errorf("failed to read PPM header: %w", err)
	}

	payload := make([]byte, width*height*renderer.Channels)
	if _, err := io.ReadFull(br, payload); err != nil {
		return nil, fmt.Errorf("failed to read PPM payload: %w", err)
	}
	return FromRGB(payload, width, height), nil
}

func isPPM(header []byte) bool {
	return bytes.HasPrefix(header, []byte("P6"))
}
