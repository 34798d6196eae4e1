// Package colorutil provides color-space helpers for recoloring sprites.
package colorutil

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// RGBToHSV converts 8-bit RGB to HSV with every component in [0, 1].
// Hue is expressed as a fraction of a full turn.
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	diff := maxC - minC

	v = maxC
	if maxC == 0 || diff == 0 {
		return 0, 0, v
	}
	s = diff / maxC

	switch maxC {
	case rf:
		h = (gf - bf) / diff
	case gf:
		h = 2 + (bf-rf)/diff
	default:
		h = 4 + (rf-gf)/diff
	}
	h = math.Mod(h/6.0, 1.0)
	if h < 0 {
		h += 1
	}
	return h, s, v
}

// HSVToRGB converts HSV (components in [0, 1], hue wrapping) back to 8-bit RGB.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	if s == 0 {
		c := cu8(v * 255)
		return c, c, c
	}
	h = WrapHue(h)
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var rf, gf, bf float64
	switch int(i) % 6 {
	case 0:
		rf, gf, bf = v, t, p
	case 1:
		rf, gf, bf = q, v, p
	case 2:
		rf, gf, bf = p, v, t
	case 3:
		rf, gf, bf = p, q, v
	case 4:
		rf, gf, bf = t, p, v
	default:
		rf, gf, bf = v, p, q
	}
	return cu8(rf * 255), cu8(gf * 255), cu8(bf * 255)
}

// WrapHue folds any hue into [0, 1).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 1.0)
	if h < 0 {
		h += 1
	}
	return h
}

// SetHue returns a copy of img in which every pixel's hue is replaced by hue
// while saturation, value and alpha are kept. Grey pixels stay grey.
func SetHue(img image.Image, hue float64) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		_, s, v := RGBToHSV(c.R, c.G, c.B)
		r, g, b := HSVToRGB(hue, s, v)
		return color.NRGBA{R: r, G: g, B: b, A: c.A}
	})
}

func cu8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
