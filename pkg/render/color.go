package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Packed colors are 0x00RRGGBB; the top byte is always zero.
const (
	ColorBlack      uint32 = 0x000000
	ColorWhite      uint32 = 0xFFFFFF
	ColorBackground uint32 = 0x111111
)

// PackRGB packs 8-bit channels into a 0x00RRGGBB value.
func PackRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackRGB splits a packed color into its channels.
func UnpackRGB(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ToRGBA converts a packed color to an opaque color.RGBA.
func ToRGBA(c uint32) color.RGBA {
	r, g, b := UnpackRGB(c)
	return color.RGBA{r, g, b, 255}
}

// FromColor packs any color.Color, dropping alpha.
func FromColor(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return PackRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ParseColor parses "#rrggbb" or "#rgb" (the leading # is optional) into
// a packed color.
func ParseColor(s string) (uint32, error) {
	c, err := parseHex(s)
	if err != nil {
		return 0, err
	}
	r, g, b := c.RGB255()
	return PackRGB(r, g, b), nil
}

// ParseIntensity parses a hex color into per-channel light intensity
// factors in [0,1].
func ParseIntensity(s string) ([3]float64, error) {
	c, err := parseHex(s)
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64{c.R, c.G, c.B}, nil
}

func parseHex(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}
