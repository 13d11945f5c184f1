package render

import (
	"image/color"
	"testing"
)

func TestPackRGB(t *testing.T) {
	c := PackRGB(0x12, 0x34, 0x56)
	if c != 0x123456 {
		t.Fatalf("PackRGB = %06x", c)
	}
	if c>>24 != 0 {
		t.Error("top byte set")
	}
	r, g, b := UnpackRGB(c)
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("UnpackRGB = %x %x %x", r, g, b)
	}
	if got := ToRGBA(c); got != (color.RGBA{0x12, 0x34, 0x56, 255}) {
		t.Errorf("ToRGBA = %v", got)
	}
	if got := FromColor(color.RGBA{0x12, 0x34, 0x56, 255}); got != c {
		t.Errorf("FromColor = %06x", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#111111", 0x111111, false},
		{"ff4d00", 0xff4d00, false},
		{"#fff", 0xffffff, false},
		{" #000000 ", 0x000000, false},
		{"#12345", 0, true},
		{"red", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseColor(%q) = %06x, want %06x", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseIntensity(t *testing.T) {
	got, err := ParseIntensity("#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	if got != [3]float64{1, 0, 0} {
		t.Errorf("ParseIntensity = %v", got)
	}
}
