package scene

import (
	"image"

	"github.com/1siamBot/hexboard-synth/engine/catalog"
	"github.com/1siamBot/hexboard-synth/engine/colorutil"
	"github.com/1siamBot/hexboard-synth/engine/hexgrid"
)

// HueStep is how far the cycling tile's hue advances every time it is drawn,
// as a fraction of a full turn.
const HueStep = 0.08

// Tile is the visual of one category.
type Tile struct {
	Category catalog.Category
	Image    image.Image

	// Cycling tiles are recolored on every draw. HueOffset is the hue the
	// next draw uses; it only ever grows and lives as long as the tile.
	Cycling   bool
	HueOffset float64
}

// NewTile creates a static tile.
func NewTile(cat catalog.Category, img image.Image) *Tile {
	return &Tile{Category: cat, Image: img}
}

// Next returns the image to draw for the tile. A cycling tile is recolored to
// its current hue offset, and the offset then advances by HueStep.
func (t *Tile) Next() image.Image {
	if !t.Cycling {
		return t.Image
	}
	img := colorutil.SetHue(t.Image, t.HueOffset)
	t.HueOffset += HueStep
	return img
}

// Placement is the content assigned to one cell.
type Placement struct {
	Tile        *Tile
	Highlighted bool
}

// Scene is the resolved content of every cell of one generated board.
// A nil placement means the cell was left unassigned and shows an empty hex.
type Scene struct {
	Radius int
	Cells  []hexgrid.Coord
	Slots  map[hexgrid.Coord]*Placement
}

// NewScene creates a scene with every cell of the field unassigned.
func NewScene(radius int) *Scene {
	cells := hexgrid.Cells(radius)
	s := &Scene{
		Radius: radius,
		Cells:  cells,
		Slots:  make(map[hexgrid.Coord]*Placement, len(cells)),
	}
	for _, c := range cells {
		s.Slots[c] = nil
	}
	return s
}

// Unassigned returns the cells holding nothing yet, in cell order.
func (s *Scene) Unassigned() []hexgrid.Coord {
	var free []hexgrid.Coord
	for _, c := range s.Cells {
		if s.Slots[c] == nil {
			free = append(free, c)
		}
	}
	return free
}

// Category returns the category a cell resolves to: the placed tile's
// category, or the free hex for an unassigned cell.
func (s *Scene) Category(c hexgrid.Coord) catalog.Category {
	p := s.Slots[c]
	if p == nil || p.Tile == nil {
		return catalog.FreeHex
	}
	return p.Tile.Category
}

// Icons returns the icon categories on the board, in cell order.
func (s *Scene) Icons() []catalog.Category {
	var out []catalog.Category
	for _, c := range s.Cells {
		if cat := s.Category(c); cat.IsIcon() {
			out = append(out, cat)
		}
	}
	return out
}
