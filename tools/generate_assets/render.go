package main

import (
	"image"
	"image/color"
	"math"
)

// ==================== NOISE ====================

// fbm sums octaves of value noise, normalized to [0, 1].
func fbm(x, y float64, octaves int, persistence, seed float64) float64 {
	total, amp, freq, norm := 0.0, 1.0, 1.0, 0.0
	for i := 0; i < octaves; i++ {
		total += valueNoise(x*freq+seed*17.3, y*freq+seed*31.7) * amp
		norm += amp
		amp *= persistence
		freq *= 2.0
	}
	return total / norm
}

func valueNoise(x, y float64) float64 {
	ix, iy := int(math.Floor(x)), int(math.Floor(y))
	fx, fy := smooth(x-math.Floor(x)), smooth(y-math.Floor(y))
	top := lerp(hash2(ix, iy), hash2(ix+1, iy), fx)
	bottom := lerp(hash2(ix, iy+1), hash2(ix+1, iy+1), fx)
	return lerp(top, bottom, fy)
}

func smooth(t float64) float64 { return t * t * (3.0 - 2.0*t) }

func hash2(x, y int) float64 {
	h := x*374761393 + y*668265263
	h = (h ^ (h >> 13)) * 1274126177
	h = h ^ (h >> 16)
	return float64(h&0x7FFFFFFF) / float64(0x7FFFFFFF)
}

func lerp(a, b, t float64) float64 { return a*(1-t) + b*t }

// ==================== UTILITIES ====================

func toU8(v float64) uint8 {
	return uint8(clamp(v, 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func mix(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp(t, 0, 1)
	return color.NRGBA{
		R: toU8(lerp(float64(a.R), float64(b.R), t)),
		G: toU8(lerp(float64(a.G), float64(b.G), t)),
		B: toU8(lerp(float64(a.B), float64(b.B), t)),
		A: toU8(lerp(float64(a.A), float64(b.A), t)),
	}
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = toU8(a)
	return c
}

// blend composites c over the pixel at (x, y), growing alpha as needed.
// Pixels outside img are ignored.
func blend(img *image.NRGBA, x, y int, c color.NRGBA) {
	if !image.Pt(x, y).In(img.Bounds()) || c.A == 0 {
		return
	}
	ex := img.NRGBAAt(x, y)
	if ex.A == 0 {
		img.SetNRGBA(x, y, c)
		return
	}
	a := float64(c.A) / 255.0
	img.SetNRGBA(x, y, color.NRGBA{
		R: toU8(lerp(float64(ex.R), float64(c.R), a)),
		G: toU8(lerp(float64(ex.G), float64(c.G), a)),
		B: toU8(lerp(float64(ex.B), float64(c.B), a)),
		A: toU8(math.Max(float64(ex.A), float64(c.A))),
	})
}

// ==================== DRAWING PRIMITIVES ====================

// hexDist returns how far (px, py) is from the center of a pointy hexagon
// inscribed in a w×h box: 0 at the center, 1 on the outline.
func hexDist(px, py, w, h int) float64 {
	cx, cy := float64(w)/2, float64(h)/2
	dx := math.Abs(float64(px)+0.5-cx) / cx
	dy := math.Abs(float64(py)+0.5-cy) / cy
	return math.Max(dy, dx*math.Cos(math.Pi/6)+dy*0.5)
}

// stroke draws an antialiased segment by splatting each sample over its
// four neighbouring pixels.
func stroke(img *image.NRGBA, x0, y0, x1, y1 float64, c color.NRGBA) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)) * 2)
	if steps == 0 {
		blend(img, int(x0), int(y0), c)
		return
	}
	alpha := float64(c.A)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x, y := lerp(x0, x1, t), lerp(y0, y1, t)
		ix, iy := int(x), int(y)
		fx, fy := x-float64(ix), y-float64(iy)
		blend(img, ix, iy, withAlpha(c, alpha*(1-fx)*(1-fy)))
		blend(img, ix+1, iy, withAlpha(c, alpha*fx*(1-fy)))
		blend(img, ix, iy+1, withAlpha(c, alpha*(1-fx)*fy))
		blend(img, ix+1, iy+1, withAlpha(c, alpha*fx*fy))
	}
}

// thickStroke draws parallel strokes across the given width.
func thickStroke(img *image.NRGBA, x0, y0, x1, y1, width float64, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l, dx/l
	for o := -width / 2; o <= width/2; o += 0.5 {
		stroke(img, x0+nx*o, y0+ny*o, x1+nx*o, y1+ny*o, c)
	}
}

// disc fills a circle with a one-pixel soft edge.
func disc(img *image.NRGBA, cx, cy, r float64, c color.NRGBA) {
	for py := int(cy - r - 1); py <= int(cy+r+1); py++ {
		for px := int(cx - r - 1); px <= int(cx+r+1); px++ {
			d := math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy)
			if d > r+0.5 {
				continue
			}
			edge := clamp(r+0.5-d, 0, 1)
			blend(img, px, py, withAlpha(c, float64(c.A)*edge))
		}
	}
}

// hueColor returns a saturated color for hue h in [0, 1).
func hueColor(h float64) color.NRGBA {
	h -= math.Floor(h)
	i := int(h * 6)
	f := h*6 - float64(i)
	q, t := toU8(255*(1-f)), toU8(255*f)
	switch i {
	case 0:
		return color.NRGBA{255, t, 0, 255}
	case 1:
		return color.NRGBA{q, 255, 0, 255}
	case 2:
		return color.NRGBA{0, 255, t, 255}
	case 3:
		return color.NRGBA{0, q, 255, 255}
	case 4:
		return color.NRGBA{t, 0, 255, 255}
	default:
		return color.NRGBA{255, 0, q, 255}
	}
}
