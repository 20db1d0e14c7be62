package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/df07/go-fixed-landscape/pkg/renderer"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// ToImage copies a frame buffer into an opaque RGBA image
func ToImage(fb *renderer.FrameBuffer) *image.RGBA {
	return FromRGB(fb.Bytes(), fb.Width(), fb.Height())
}

// FromRGB converts packed RGB rows into an opaque RGBA image
func FromRGB(rgb []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i+2 < len(rgb); i, j = i+3, j+4 {
		img.Pix[j+0] = rgb[i+0]
		img.Pix[j+1] = rgb[i+1]
		img.Pix[j+2] = rgb[i+2]
		img.Pix[j+3] = 0xFF
	}
	return img
}

// Upscale enlarges img by an integer factor with nearest-neighbour sampling,
// so every source pixel becomes a solid factor x factor block
func Upscale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WriteBMP encodes img as BMP
func WriteBMP(w io.Writer, img image.Image) error {
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode BMP: %w", err)
	}
	return nil
}

// LoadImage loads a PPM, PNG or BMP file
func LoadImage(filename string) (*image.RGBA, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	return DecodeImage(bytes.NewReader(data))
}

// DecodeImage decodes a PPM, PNG or BMP stream, detecting the format from
// its header
func DecodeImage(r io.ReadSeeker) (*image.RGBA, error) {
	header := make([]byte, 2)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	if isPPM(header) {
		return DecodePPM(r)
	}

	var img image.Image
	var err error
	if bytes.Equal(header, []byte("BM")) {
		img, err = bmp.Decode(r)
	} else {
		img, err = png.Decode(r)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}
