package colorutil

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		h, s, v float64
	}{
		{"red", 255, 0, 0, 0, 1, 1},
		{"green", 0, 255, 0, 1.0 / 3, 1, 1},
		{"blue", 0, 0, 255, 2.0 / 3, 1, 1},
		{"black", 0, 0, 0, 0, 0, 0},
		{"grey", 128, 128, 128, 0, 0, 128.0 / 255},
		{"magenta", 255, 0, 255, 5.0 / 6, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := RGBToHSV(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.h, h, 1e-9)
			assert.InDelta(t, tt.s, s, 1e-9)
			assert.InDelta(t, tt.v, v, 1e-9)
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for _, c := range []color.NRGBA{
		{200, 40, 90, 255},
		{12, 250, 130, 255},
		{90, 90, 200, 255},
		{255, 255, 255, 255},
	} {
		h, s, v := RGBToHSV(c.R, c.G, c.B)
		r, g, b := HSVToRGB(h, s, v)
		assert.InDelta(t, int(c.R), int(r), 1)
		assert.InDelta(t, int(c.G), int(g), 1)
		assert.InDelta(t, int(c.B), int(b), 1)
	}
}

func TestWrapHue(t *testing.T) {
	assert.InDelta(t, 0.25, WrapHue(1.25), 1e-9)
	assert.InDelta(t, 0.75, WrapHue(-0.25), 1e-9)
	assert.InDelta(t, 0.0, WrapHue(3), 1e-9)
}

func TestSetHue(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 200})
	img.SetNRGBA(1, 0, color.NRGBA{100, 100, 100, 255})

	out := SetHue(img, 1.0/3)

	assert.Equal(t, color.NRGBA{0, 255, 0, 200}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{100, 100, 100, 255}, out.NRGBAAt(1, 0), "grey pixels keep their value")
	// source untouched
	assert.Equal(t, color.NRGBA{255, 0, 0, 200}, img.NRGBAAt(0, 0))

	// hues past a full turn wrap around
	assert.Equal(t, out.Pix, SetHue(img, 1.0/3+2).Pix)
}
