package hexgrid

import (
	"image"
	"math"
)

// Coord identifies a lattice cell in offset hex coordinates (column X, row Y).
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Point is a pixel-space position before the resolution multiplier is applied.
type Point struct {
	X float64
	Y float64
}

// Box is a pixel-space bounding box.
type Box struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Area returns W*H.
func (b Box) Area() int {
	return b.W * b.H
}

// Min returns the top-left corner.
func (b Box) Min() image.Point {
	return image.Pt(b.X, b.Y)
}

// Rect converts the box to an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

// Slice returns the box as [x, y, w, h].
func (b Box) Slice() [4]int {
	return [4]int{b.X, b.Y, b.W, b.H}
}

// rowRange returns the inclusive row bounds of column x for a field of the
// given radius.
func rowRange(x, radius int) (lo, hi int) {
	ax := x
	if ax < 0 {
		ax = -ax
	}
	return -radius + (ax+1)/2, radius - ax/2
}

// Cells enumerates the cells of a hexagonal field of the given radius, column
// by column from -radius to radius and top to bottom within a column.
// The order is stable and is the order scenes are drawn in.
func Cells(radius int) []Coord {
	if radius < 0 {
		return nil
	}
	cells := make([]Coord, 0, Count(radius))
	for x := -radius; x <= radius; x++ {
		lo, hi := rowRange(x, radius)
		for y := lo; y <= hi; y++ {
			cells = append(cells, Coord{X: x, Y: y})
		}
	}
	return cells
}

// CellSet returns the cells of the field as a set.
func CellSet(radius int) map[Coord]struct{} {
	set := make(map[Coord]struct{}, Count(radius))
	for _, c := range Cells(radius) {
		set[c] = struct{}{}
	}
	return set
}

// Count returns the number of cells in a field of the given radius.
func Count(radius int) int {
	if radius < 0 {
		return 0
	}
	return 3*radius*radius + 3*radius + 1
}

// Contains checks if c lies inside a field of the given radius.
func Contains(c Coord, radius int) bool {
	if radius < 0 || c.X < -radius || c.X > radius {
		return false
	}
	lo, hi := rowRange(c.X, radius)
	return c.Y >= lo && c.Y <= hi
}

// Layout maps cells to pixel boxes. Center and SlotY are measured on the
// background at its native size; Multiplier scales everything to the output
// resolution.
type Layout struct {
	Center     Point
	SlotY      float64
	Multiplier float64
}

// DefaultLayout returns the layout of the research-table background.
func DefaultLayout(multiplier float64) Layout {
	return Layout{
		Center:     Point{X: 72, Y: 72},
		SlotY:      15.5,
		Multiplier: multiplier,
	}
}

// SlotX is the horizontal distance between neighbouring columns.
func (l Layout) SlotX() float64 {
	return l.SlotY * math.Cos(math.Pi/6)
}

// TileSize is the side of the square box every cell occupies.
func (l Layout) TileSize() int {
	return int(l.SlotY * l.Multiplier)
}

// PixelBox returns the bounding box of cell c. Odd columns are shifted up by
// half a slot to stagger the field.
func (l Layout) PixelBox(c Coord) Box {
	odd := ((c.X % 2) + 2) % 2
	x := l.Center.X + l.SlotX()*float64(c.X)
	y := l.Center.Y + l.SlotY*float64(c.Y) - float64(odd)*(l.SlotY/2)
	size := l.TileSize()
	return Box{
		X: int(x * l.Multiplier),
		Y: int(y * l.Multiplier),
		W: size,
		H: size,
	}
}
