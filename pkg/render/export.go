package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ImageFormat selects the encoder used by PaintBuffer.Encode.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatBMP
	FormatTIFF
)

func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("ImageFormat(%d)", int(f))
	}
}

// FormatFromPath picks an image format from a file extension.
func FormatFromPath(path string) (ImageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("unsupported image format: %q (use .png, .bmp or .tiff)", filepath.Ext(path))
	}
}

// ToImage converts the color buffer to an opaque image.RGBA.
func (b *PaintBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, c := range b.Color {
		r, g, bl := UnpackRGB(c)
		o := i * 4
		img.Pix[o] = r
		img.Pix[o+1] = g
		img.Pix[o+2] = bl
		img.Pix[o+3] = 255
	}
	return img
}

// Encode writes the frame to w in the given format.
func (b *PaintBuffer) Encode(w io.Writer, format ImageFormat) error {
	img := b.ToImage()
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("encode: unknown format %v", format)
	}
}

// Save writes the frame to path, choosing the encoder by extension.
func (b *PaintBuffer) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := b.Encode(f, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
