// Package imgdiff measures how different two images are.
package imgdiff

import (
	"errors"
	"image"
	"image/color"
)

var (
	// ErrSizeMismatch is returned when images or masks differ in size.
	ErrSizeMismatch = errors.New("images sizes must be the same")
	// ErrModeMismatch is returned when the images use different color models.
	ErrModeMismatch = errors.New("image modes must be the same")
)

// DiffPercent returns the mean absolute per-channel difference between a and
// b as a fraction of full scale, over R, G, B and A. Only pixels where every
// mask is non-black (by luminance) take part. With no active pixels the
// result is 0.
func DiffPercent(a, b image.Image, masks ...image.Image) (float64, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Size() != bb.Size() {
		return 0, ErrSizeMismatch
	}
	if a.ColorModel() != b.ColorModel() {
		return 0, ErrModeMismatch
	}
	for _, m := range masks {
		if m.Bounds().Size() != ab.Size() {
			return 0, ErrSizeMismatch
		}
	}

	var total float64
	active := 0
	w, h := ab.Dx(), ab.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !maskedIn(masks, x, y) {
				continue
			}
			active++
			ca := color.NRGBAModel.Convert(a.At(ab.Min.X+x, ab.Min.Y+y)).(color.NRGBA)
			cb := color.NRGBAModel.Convert(b.At(bb.Min.X+x, bb.Min.Y+y)).(color.NRGBA)
			total += absDiff(ca.R, cb.R) + absDiff(ca.G, cb.G) + absDiff(ca.B, cb.B) + absDiff(ca.A, cb.A)
		}
	}
	if active == 0 {
		return 0, nil
	}
	return total / (float64(active) * 4 * 255), nil
}

func maskedIn(masks []image.Image, x, y int) bool {
	for _, m := range masks {
		mb := m.Bounds()
		g := color.GrayModel.Convert(m.At(mb.Min.X+x, mb.Min.Y+y)).(color.Gray)
		if g.Y == 0 {
			return false
		}
	}
	return true
}

func absDiff(a, b uint8) float64 {
	if a > b {
		return float64(a - b)
	}
	return float64(b - a)
}
