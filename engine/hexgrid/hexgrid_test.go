package hexgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellsCount(t *testing.T) {
	for r := 0; r <= 8; r++ {
		cells := Cells(r)
		assert.Len(t, cells, 3*r*r+3*r+1, "radius %d", r)
		assert.Equal(t, len(cells), Count(r))
		assert.Len(t, CellSet(r), len(cells), "radius %d has duplicate cells", r)
	}
	assert.Empty(t, Cells(-1))
	assert.Equal(t, 0, Count(-1))
}

func TestCellsRadiusZero(t *testing.T) {
	assert.Equal(t, []Coord{{0, 0}}, Cells(0))
}

func TestCellsRadiusOne(t *testing.T) {
	want := []Coord{
		{-1, 0}, {-1, 1},
		{0, -1}, {0, 0}, {0, 1},
		{1, 0}, {1, 1},
	}
	assert.Equal(t, want, Cells(1))
}

func TestCellsStableAcrossCalls(t *testing.T) {
	assert.Equal(t, Cells(4), Cells(4))
}

func TestContains(t *testing.T) {
	for r := 0; r <= 4; r++ {
		set := CellSet(r)
		for x := -r - 2; x <= r+2; x++ {
			for y := -r - 2; y <= r+2; y++ {
				c := Coord{x, y}
				_, want := set[c]
				assert.Equal(t, want, Contains(c, r), "radius %d cell %v", r, c)
			}
		}
	}
}

func TestPixelBoxSizes(t *testing.T) {
	for _, mult := range []float64{1, 2, 3} {
		layout := DefaultLayout(mult)
		want := int(15.5 * mult)
		for r := 0; r <= 4; r++ {
			seen := make(map[Box]Coord)
			for _, c := range Cells(r) {
				box := layout.PixelBox(c)
				assert.Equal(t, want, box.W)
				assert.Equal(t, want, box.H)
				assert.Equal(t, want*want, box.Area())
				prev, dup := seen[box]
				assert.False(t, dup, "cells %v and %v share box %v", prev, c, box)
				seen[box] = c
			}
		}
	}
}

func TestPixelBoxIsPure(t *testing.T) {
	layout := DefaultLayout(2)
	for _, c := range Cells(4) {
		assert.Equal(t, layout.PixelBox(c), layout.PixelBox(c))
	}
}

func TestPixelBoxKnownValues(t *testing.T) {
	layout := DefaultLayout(2)

	assert.Equal(t, Box{X: 144, Y: 144, W: 31, H: 31}, layout.PixelBox(Coord{0, 0}))
	// odd columns are staggered by half a slot, negative ones included
	assert.Equal(t, layout.PixelBox(Coord{1, 0}).Y, layout.PixelBox(Coord{-1, 0}).Y)
	assert.Equal(t, 128, layout.PixelBox(Coord{1, 0}).Y)
	assert.Equal(t, 175, layout.PixelBox(Coord{0, 1}).Y)
}

func TestPixelBoxColumnsTile(t *testing.T) {
	layout := DefaultLayout(2)
	cells := Cells(4)
	require.NotEmpty(t, cells)

	// consecutive cells of one column stack without gap or overlap
	for i := 1; i < len(cells); i++ {
		a, b := cells[i-1], cells[i]
		if a.X != b.X {
			continue
		}
		ba, bb := layout.PixelBox(a), layout.PixelBox(b)
		assert.Equal(t, ba.X, bb.X)
		assert.Equal(t, ba.Y+ba.H, bb.Y, "cells %v and %v", a, b)
	}

	// columns advance by SlotX
	x0 := layout.PixelBox(Coord{0, 0}).X
	x1 := layout.PixelBox(Coord{1, 0}).X
	assert.InDelta(t, layout.SlotX()*layout.Multiplier, float64(x1-x0), 1)
}
