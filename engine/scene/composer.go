// Package scene places icons on a hex board at random and composites the
// resulting board image.
package scene

import (
	"image"
	"math/rand"

	"github.com/1siamBot/hexboard-synth/engine/assets"
	"github.com/1siamBot/hexboard-synth/engine/catalog"
	"github.com/1siamBot/hexboard-synth/engine/hexgrid"
	"golang.org/x/image/draw"
)

// DefaultHighlightChance is the probability a placed icon gets the glow.
const DefaultHighlightChance = 0.3

// CountFunc decides how many draws a placement pass makes.
type CountFunc func(rng *rand.Rand, radius int) int

// UniformCount draws uniformly from [radius, 3*radius].
func UniformCount(rng *rand.Rand, radius int) int {
	if radius <= 0 {
		return 0
	}
	return radius + rng.Intn(2*radius+1)
}

// FixedCount always makes n draws.
func FixedCount(n int) CountFunc {
	return func(*rand.Rand, int) int { return n }
}

// Composer builds random scenes over a shared set of layers.
type Composer struct {
	Layout     hexgrid.Layout
	Background image.Image
	Highlight  image.Image
	EmptyHex   image.Image
	Blocker    *Tile

	Rand            *rand.Rand
	HighlightChance float64
	DecoyCount      CountFunc
	IconCount       CountFunc
}

// NewComposer creates a composer with the default pass sizes and highlight
// chance. rng is the only source of randomness; seed it for reproducible runs.
func NewComposer(layout hexgrid.Layout, background, highlight, emptyHex image.Image, rng *rand.Rand) *Composer {
	return &Composer{
		Layout:          layout,
		Background:      background,
		Highlight:       highlight,
		EmptyHex:        emptyHex,
		Blocker:         NewTile(catalog.Blocker, assets.Blocker()),
		Rand:            rng,
		HighlightChance: DefaultHighlightChance,
		DecoyCount:      UniformCount,
		IconCount:       UniformCount,
	}
}

// Compose lays out a fresh random scene of the given radius and renders it.
func (c *Composer) Compose(radius int, icons, decoys []*Tile) (*Scene, *image.RGBA) {
	s := c.Place(radius, icons, decoys)
	return s, c.Render(s)
}

// Place runs the decoy pass then the icon pass over a new scene.
//
// The decoy pass picks cells with replacement, so a later pick may overwrite
// an earlier one. Each pick is a decoy glyph or an invisible blocker with
// equal odds; blockers keep the icon pass off a cell without drawing
// anything.
//
// The icon pass places each icon at most once. A draw is skipped when no
// unassigned cell or no unused icon remains.
func (c *Composer) Place(radius int, icons, decoys []*Tile) *Scene {
	s := NewScene(radius)
	if len(s.Cells) == 0 {
		return s
	}

	n := c.DecoyCount(c.Rand, radius)
	for i := 0; i < n; i++ {
		cell := s.Cells[c.Rand.Intn(len(s.Cells))]
		if c.Rand.Float64() < 0.5 && len(decoys) > 0 {
			s.Slots[cell] = &Placement{Tile: decoys[c.Rand.Intn(len(decoys))]}
		} else {
			s.Slots[cell] = &Placement{Tile: c.Blocker}
		}
	}

	pool := append([]*Tile(nil), icons...)
	n = c.IconCount(c.Rand, radius)
	for i := 0; i < n; i++ {
		free := s.Unassigned()
		if len(free) == 0 || len(pool) == 0 {
			continue
		}
		cell := free[c.Rand.Intn(len(free))]
		k := c.Rand.Intn(len(pool))
		tile := pool[k]
		pool = append(pool[:k], pool[k+1:]...)
		s.Slots[cell] = &Placement{
			Tile:        tile,
			Highlighted: c.Rand.Float64() < c.HighlightChance,
		}
	}
	return s
}

// Render composites the scene over a copy of the background, visiting cells
// in scene order. Highlighted icons get the glow underneath; unassigned cells
// get the empty hex.
func (c *Composer) Render(s *Scene) *image.RGBA {
	bb := c.Background.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, bb.Dx(), bb.Dy()))
	draw.Draw(canvas, canvas.Bounds(), c.Background, bb.Min, draw.Src)

	for _, cell := range s.Cells {
		at := c.Layout.PixelBox(cell).Min()
		p := s.Slots[cell]
		if p == nil || p.Tile == nil {
			paste(canvas, c.EmptyHex, at)
			continue
		}
		if p.Highlighted {
			paste(canvas, c.Highlight, at)
		}
		paste(canvas, p.Tile.Next(), at)
	}
	return canvas
}

// paste alpha-composites src onto dst with its top-left corner at at.
func paste(dst draw.Image, src image.Image, at image.Point) {
	if src == nil {
		return
	}
	sb := src.Bounds()
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(sb.Size())}, src, sb.Min, draw.Over)
}
