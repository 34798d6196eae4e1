// Package assets loads the board sprites and normalizes them into tiles
// ready for compositing.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"

	"github.com/1siamBot/hexboard-synth/internal/monitoring"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrMissingAsset is wrapped by every failure to open or decode a sprite.
var ErrMissingAsset = errors.New("missing asset")

// Paths locates the sprite files of a run.
type Paths struct {
	IconDir         string // one <name>.png per icon
	Background      string
	BackgroundPaper string
	EmptyHex        string
	Highlight       string
	DecoySheet      string
}

// DefaultPaths returns the standard layout under dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		IconDir:         filepath.Join(dir, "aspects"),
		Background:      filepath.Join(dir, "table_background.png"),
		BackgroundPaper: filepath.Join(dir, "table_background_paper.png"),
		EmptyHex:        filepath.Join(dir, "empty_hexagon.png"),
		Highlight:       filepath.Join(dir, "lighting_large.png"),
		DecoySheet:      filepath.Join(dir, "scripts.png"),
	}
}

// IconPath returns the sprite file of the named icon.
func (p Paths) IconPath(name string) string {
	return filepath.Join(p.IconDir, name+".png")
}

// Library loads sprites once and hands out normalized tiles.
type Library struct {
	paths      Paths
	tileSize   int
	multiplier float64

	icons map[string]*image.NRGBA
}

// NewLibrary creates a library producing tileSize×tileSize tiles. The
// multiplier scales full-size images (background, decoy sheet).
func NewLibrary(paths Paths, tileSize int, multiplier float64) *Library {
	return &Library{
		paths:      paths,
		tileSize:   tileSize,
		multiplier: multiplier,
		icons:      make(map[string]*image.NRGBA),
	}
}

// TileSize returns the side of every normalized tile.
func (l *Library) TileSize() int {
	return l.tileSize
}

func (l *Library) load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingAsset, path, err)
	}
	monitoring.Logf("Loaded image %s", path)
	return img, nil
}

// loadTile opens path and resizes it straight to the tile size.
func (l *Library) loadTile(path string) (*image.NRGBA, error) {
	img, err := l.load(path)
	if err != nil {
		return nil, err
	}
	return Normalize(img, l.tileSize), nil
}

// NormalizedTile returns the tile of the named icon: centered, tile-sized
// and slightly blurred. Results are cached.
func (l *Library) NormalizedTile(name string) (*image.NRGBA, error) {
	if tile, ok := l.icons[name]; ok {
		return tile, nil
	}
	img, err := l.loadTile(l.paths.IconPath(name))
	if err != nil {
		return nil, err
	}
	tile := Degrade(CenterShrink(img, 1, l.tileSize), 1.7)
	l.icons[name] = tile
	return tile, nil
}

// Background returns the research table with the paper sheet laid on it,
// scaled by the multiplier.
func (l *Library) Background() (*image.NRGBA, error) {
	table, err := l.load(l.paths.Background)
	if err != nil {
		return nil, err
	}
	paper, err := l.load(l.paths.BackgroundPaper)
	if err != nil {
		return nil, err
	}
	offset := image.Pt(int(4*l.multiplier), int(5*l.multiplier))
	return imaging.Overlay(ScaleBy(table, l.multiplier), ScaleBy(paper, l.multiplier), offset, 1.0), nil
}

// EmptyHex returns the translucent tile drawn on unoccupied cells.
func (l *Library) EmptyHex() (*image.NRGBA, error) {
	img, err := l.loadTile(l.paths.EmptyHex)
	if err != nil {
		return nil, err
	}
	return ScaleAlpha(Degrade(img, 2), 0.65), nil
}

// Highlight returns the glow drawn under highlighted icons.
func (l *Library) Highlight() (*image.NRGBA, error) {
	img, err := l.loadTile(l.paths.Highlight)
	if err != nil {
		return nil, err
	}
	return ScaleAlpha(Degrade(img, 2), 0.85), nil
}

// Decoys returns the script glyph tiles cut from the decoy sprite sheet. The
// sheet is dark on transparent; glyphs are inverted to light and faded.
func (l *Library) Decoys() ([]*image.NRGBA, error) {
	sheet, err := l.load(l.paths.DecoySheet)
	if err != nil {
		return nil, err
	}
	// Scaled once by the multiplier; frames are re-normalized to the tile size
	// below, so a second scaling would only change the frame count.
	scaled := InvertRGB(ScaleBy(sheet, l.multiplier))
	scaled = ScaleAlpha(ScaleAlpha(scaled, 2), 0.7)

	frames := SplitSheet(scaled)
	tiles := make([]*image.NRGBA, 0, len(frames))
	for _, frame := range frames {
		tiles = append(tiles, Degrade(CenterShrink(frame, 1.5, l.tileSize), 1.7))
	}
	return tiles, nil
}

// Blocker returns the invisible 1×1 tile of blocked cells.
func Blocker() *image.NRGBA {
	return imaging.New(1, 1, color.NRGBA{})
}
