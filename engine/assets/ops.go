package assets

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Normalize resizes img to a size×size tile.
func Normalize(img image.Image, size int) *image.NRGBA {
	return imaging.Resize(img, size, size, imaging.Lanczos)
}

// ScaleBy resizes img by the resolution multiplier.
func ScaleBy(img image.Image, multiplier float64) *image.NRGBA {
	b := img.Bounds()
	return imaging.Resize(img, atLeast1(float64(b.Dx())*multiplier), atLeast1(float64(b.Dy())*multiplier), imaging.Lanczos)
}

// Degrade shrinks img by factor and scales it back up, blurring it the way a
// low-resolution game screen does.
func Degrade(img image.Image, factor float64) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	small := imaging.Resize(img, atLeast1(float64(w)/factor), atLeast1(float64(h)/factor), imaging.Lanczos)
	return imaging.Resize(small, w, h, imaging.Lanczos)
}

// CenterShrink shrinks img by factor inside a transparent canvas of its own
// size, then normalizes the canvas to a size×size tile.
func CenterShrink(img image.Image, factor float64, size int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	nw, nh := atLeast1(float64(w)/factor), atLeast1(float64(h)/factor)

	canvas := imaging.New(w, h, color.NRGBA{})
	small := imaging.Resize(img, nw, nh, imaging.Lanczos)
	canvas = imaging.Overlay(canvas, small, image.Pt((w-nw)/2, (h-nh)/2), 1.0)
	return Normalize(canvas, size)
}

// ScaleAlpha multiplies the alpha channel by multiplier, clamped to 255.
func ScaleAlpha(img image.Image, multiplier float64) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		a := int(float64(c.A) * multiplier)
		if a > 255 {
			a = 255
		}
		c.A = uint8(a)
		return c
	})
}

// InvertRGB negates the color channels and keeps alpha.
func InvertRGB(img image.Image) *image.NRGBA {
	return imaging.Invert(img)
}

// SplitSheet cuts a horizontal sprite strip into square frames whose side is
// the strip height. A trailing partial frame is dropped.
func SplitSheet(img image.Image) []*image.NRGBA {
	b := img.Bounds()
	size := b.Dy()
	if size == 0 {
		return nil
	}
	var frames []*image.NRGBA
	for x := b.Min.X; x+size <= b.Max.X; x += size {
		frames = append(frames, imaging.Crop(img, image.Rect(x, b.Min.Y, x+size, b.Max.Y)))
	}
	return frames
}

func atLeast1(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}
