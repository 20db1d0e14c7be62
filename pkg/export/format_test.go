package export

import (
	"bytes"
	"image"
	"testing"

	"github.com/df07/go-fixed-landscape/pkg/renderer"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"ppm", FormatPPM, false},
		{"PNG", FormatPNG, false},
		{"bmp", FormatBMP, false},
		{"gif", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormat_ContentType(t *testing.T) {
	tests := map[Format]string{
		FormatPPM: "image/x-portable-pixmap",
		FormatPNG: "image/png",
		FormatBMP: "image/bmp",
	}
	for format, expected := range tests {
		if got := format.ContentType(); got != expected {
			t.Errorf("%s.ContentType() = %q, want %q", format, got, expected)
		}
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	fb := testFrame()

	tests := []struct {
		name   string
		opts   Options
		bounds image.Rectangle
	}{
		{"ppm ignores scale", Options{Format: FormatPPM, Scale: 4}, image.Rect(0, 0, 3, 2)},
		{"png", Options{Format: FormatPNG}, image.Rect(0, 0, 3, 2)},
		{"bmp scaled", Options{Format: FormatBMP, Scale: 3}, image.Rect(0, 0, 9, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, fb, tt.opts); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			img, err := DecodeImage(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("DecodeImage failed: %v", err)
			}
			if img.Bounds() != tt.bounds {
				t.Fatalf("Bounds = %v, want %v", img.Bounds(), tt.bounds)
			}

			scale := max(tt.opts.Scale, 1)
			if tt.opts.Format == FormatPPM {
				scale = 1
			}
			for y := 0; y < fb.Height(); y++ {
				for x := 0; x < fb.Width(); x++ {
					r, g, b := fb.RGB(fb.Index(x, y))
					c := img.RGBAAt(x*scale, y*scale)
					if c.R != r || c.G != g || c.B != b {
						t.Errorf("(%d, %d) = %v, want (%d, %d, %d)", x, y, c, r, g, b)
					}
				}
			}
		})
	}
}

func TestWrite_CaptionOnlyOnImages(t *testing.T) {
	fb := renderer.NewFrameBuffer(renderer.Width, renderer.Height)

	var plain, captioned bytes.Buffer
	if err := Write(&plain, fb, Options{Format: FormatPPM, Caption: "ignored"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !bytes.Equal(plain.Bytes()[len(PPMHeader(renderer.Width, renderer.Height)):], fb.Bytes()) {
		t.Error("PPM output must be the unmodified frame")
	}

	if err := Write(&captioned, fb, Options{Format: FormatPNG, Caption: "caption"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	img, err := DecodeImage(bytes.NewReader(captioned.Bytes()))
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	changed := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			changed++
		}
	}
	if changed == 0 {
		t.Error("Expected the caption to mark the black frame")
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testFrame(), Options{Format: "tga"}); err == nil {
		t.Error("Expected an error for an unknown format")
	}
}

func TestUpscale(t *testing.T) {
	src := ToImage(testFrame())
	if Upscale(src, 1) != src || Upscale(src, 0) != src {
		t.Error("Factors below 2 should return the source image")
	}

	dst := Upscale(src, 2)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if dst.RGBAAt(x, y) != src.RGBAAt(x/2, y/2) {
				t.Errorf("(%d, %d) = %v, want %v", x, y, dst.RGBAAt(x, y), src.RGBAAt(x/2, y/2))
			}
		}
	}
}
