package assets

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAndScale(t *testing.T) {
	img := imaging.New(10, 20, color.NRGBA{1, 2, 3, 255})

	assert.Equal(t, image.Rect(0, 0, 7, 7), Normalize(img, 7).Bounds())
	assert.Equal(t, image.Rect(0, 0, 25, 50), ScaleBy(img, 2.5).Bounds())
	assert.Equal(t, image.Rect(0, 0, 1, 1), ScaleBy(img, 0.01).Bounds())
}

func TestDegradeKeepsSize(t *testing.T) {
	img := imaging.New(31, 31, color.NRGBA{200, 100, 50, 255})
	out := Degrade(img, 1.7)
	assert.Equal(t, img.Bounds(), out.Bounds())
	assertColorNear(t, color.NRGBA{200, 100, 50, 255}, out.NRGBAAt(15, 15))
}

func TestCenterShrinkLeavesTransparentBorder(t *testing.T) {
	img := imaging.New(40, 40, color.NRGBA{255, 0, 0, 255})
	out := CenterShrink(img, 2, 40)

	require.Equal(t, image.Rect(0, 0, 40, 40), out.Bounds())
	assert.Equal(t, uint8(0), out.NRGBAAt(1, 1).A)
	assert.Equal(t, uint8(0), out.NRGBAAt(38, 38).A)
	assertColorNear(t, color.NRGBA{255, 0, 0, 255}, out.NRGBAAt(20, 20))
}

func TestScaleAlpha(t *testing.T) {
	img := imaging.New(1, 1, color.NRGBA{10, 20, 30, 200})

	assert.Equal(t, color.NRGBA{10, 20, 30, 100}, ScaleAlpha(img, 0.5).NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{10, 20, 30, 255}, ScaleAlpha(img, 2).NRGBAAt(0, 0), "alpha clamps")
}

func TestInvertRGB(t *testing.T) {
	img := imaging.New(1, 1, color.NRGBA{10, 20, 30, 77})
	assert.Equal(t, color.NRGBA{245, 235, 225, 77}, InvertRGB(img).NRGBAAt(0, 0))
}

func TestSplitSheet(t *testing.T) {
	sheet := imaging.New(70, 20, color.NRGBA{})
	sheet.SetNRGBA(25, 5, color.NRGBA{255, 255, 255, 255})

	frames := SplitSheet(sheet)
	require.Len(t, frames, 3, "trailing 10px are not a full frame")
	for _, f := range frames {
		assert.Equal(t, image.Rect(0, 0, 20, 20), f.Bounds())
	}
	assert.Equal(t, uint8(255), frames[1].NRGBAAt(5, 5).A)

	assert.Empty(t, SplitSheet(image.NewNRGBA(image.Rect(0, 0, 10, 0))))
}
