package render

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testPattern() *PaintBuffer {
	b := NewPaintBuffer(4, 3, ColorBackground)
	b.Color[0] = 0xff0000
	b.Color[5] = 0x00ff00
	b.Color[11] = 0x0000ff
	return b
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    ImageFormat
		wantErr bool
	}{
		{"out.png", FormatPNG, false},
		{"OUT.PNG", FormatPNG, false},
		{"frame.bmp", FormatBMP, false},
		{"a/b/frame.tif", FormatTIFF, false},
		{"frame.tiff", FormatTIFF, false},
		{"frame.jpg", 0, true},
		{"frame", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, err := FormatFromPath(tc.path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	decoders := map[ImageFormat]func(*bytes.Buffer) (image.Image, error){
		FormatPNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		FormatBMP:  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		FormatTIFF: func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
	}

	src := testPattern()
	for format, decode := range decoders {
		t.Run(format.String(), func(t *testing.T) {
			var out bytes.Buffer
			if err := src.Encode(&out, format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			img, err := decode(&out)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if img.Bounds().Dx() != src.Width || img.Bounds().Dy() != src.Height {
				t.Fatalf("bounds = %v", img.Bounds())
			}
			for y := range src.Height {
				for x := range src.Width {
					if got, want := FromColor(img.At(x, y)), src.ColorAt(x, y); got != want {
						t.Errorf("pixel (%d,%d) = %06x, want %06x", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := testPattern().Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := testPattern().Save(filepath.Join(t.TempDir(), "frame.gif")); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
