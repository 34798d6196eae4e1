package generator

import (
	"image/color"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/1siamBot/hexboard-synth/engine/assets"
	"github.com/1siamBot/hexboard-synth/engine/dataset"
	"github.com/1siamBot/hexboard-synth/internal/config"
	"github.com/1siamBot/hexboard-synth/internal/monitoring"
	"github.com/1siamBot/hexboard-synth/internal/timeutil"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	code := m.Run()
	monitoring.SetLogger(log.Printf)
	os.Exit(code)
}

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

const primaryJSON = `{
  // recipes per game version
  "1.0": {"ignis": {}, "aer": {}},
  "2.0": {"aer": {}, "tincturem": {"components": ["ignis", "aer"]}},
}`

const addonsJSON = `{
  "Avaritia": {"terra": {}},
  "Disabled Addon": {"vitium": {}}
}`

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, imaging.Save(imaging.New(w, h, c), path))
}

// fixture lays out a complete asset directory and returns a config using it.
func fixture(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	assetDir := filepath.Join(dir, "assets")
	p := assets.DefaultPaths(assetDir)
	writePNG(t, p.Background, 144, 144, color.NRGBA{70, 50, 30, 255})
	writePNG(t, p.BackgroundPaper, 130, 130, color.NRGBA{220, 210, 180, 255})
	writePNG(t, p.EmptyHex, 32, 32, color.NRGBA{80, 80, 80, 255})
	writePNG(t, p.Highlight, 32, 32, color.NRGBA{255, 240, 150, 255})
	writePNG(t, p.DecoySheet, 64, 32, color.NRGBA{20, 20, 20, 200})
	for name, c := range map[string]color.NRGBA{
		"ignis":     {230, 70, 20, 255},
		"aer":       {240, 240, 120, 255},
		"tincturem": {200, 30, 30, 255},
		"terra":     {60, 160, 40, 255},
	} {
		writePNG(t, p.IconPath(name), 32, 32, c)
	}

	primary := filepath.Join(dir, "config", "aspects.json")
	addons := filepath.Join(dir, "config", "addons_aspects.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(primary), 0755))
	require.NoError(t, os.WriteFile(primary, []byte(primaryJSON), 0644))
	require.NoError(t, os.WriteFile(addons, []byte(addonsJSON), 0644))

	cfg := config.Default()
	*cfg.Radius = 2
	*cfg.ImageCount = 3
	*cfg.QualityMultiplier = 1
	*cfg.Seed = 7
	*cfg.AssetDir = assetDir
	*cfg.PrimaryCatalog = primary
	*cfg.AddonsCatalog = addons
	*cfg.OutputDir = filepath.Join(dir, "out")
	cfg.EnabledSources = []string{"original", "Avaritia"}
	return cfg
}

func TestNewLoadsCatalogAndTiles(t *testing.T) {
	g, err := New(fixture(t), timeutil.NewMockClock(epoch))
	require.NoError(t, err)

	var names []string
	for _, c := range g.Catalog.Icons() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"ignis", "aer", "tincturem", "terra"}, names)

	require.Len(t, g.Icons(), 4)
	for _, tile := range g.Icons() {
		assert.Equal(t, tile.Category.Name == "tincturem", tile.Cycling, tile.Category.Name)
		assert.Equal(t, 15, tile.Image.Bounds().Dx())
	}
	// 64x32 sheet holds two square frames
	assert.Len(t, g.Decoys(), 2)
	assert.Equal(t, int64(7), g.Seed())
}

func TestNewMissingIconIsFatal(t *testing.T) {
	cfg := fixture(t)
	require.NoError(t, os.Remove(assets.DefaultPaths(cfg.GetAssetDir()).IconPath("terra")))

	_, err := New(cfg, timeutil.NewMockClock(epoch))
	assert.ErrorIs(t, err, assets.ErrMissingAsset)
}

func TestNewMissingBackgroundIsFatal(t *testing.T) {
	cfg := fixture(t)
	require.NoError(t, os.Remove(assets.DefaultPaths(cfg.GetAssetDir()).Background))

	_, err := New(cfg, timeutil.NewMockClock(epoch))
	assert.ErrorIs(t, err, assets.ErrMissingAsset)
}

func TestNewMissingCatalogsYieldNoIcons(t *testing.T) {
	cfg := fixture(t)
	*cfg.PrimaryCatalog = filepath.Join(t.TempDir(), "nope.json")
	*cfg.AddonsCatalog = filepath.Join(t.TempDir(), "nope.json")

	g, err := New(cfg, timeutil.NewMockClock(epoch))
	require.NoError(t, err)
	assert.Zero(t, g.Catalog.Len())

	summary, err := g.Run()
	require.NoError(t, err)
	assert.Zero(t, summary.IconsPerImageMean)
	assert.NoFileExists(t, cfg.ReportPath())
}

func TestNoSourcesEnabled(t *testing.T) {
	cfg := fixture(t)
	cfg.EnabledSources = []string{}
	*cfg.ImageCount = 1

	g, err := New(cfg, timeutil.NewMockClock(epoch))
	require.NoError(t, err)
	assert.Zero(t, g.Catalog.Len())

	_, err = g.Run()
	require.NoError(t, err)
	d, err := dataset.Load(cfg.DatasetPath())
	require.NoError(t, err)
	assert.Len(t, d.Categories(), 1)
	for _, a := range d.Annotations() {
		assert.Equal(t, 0, a.CategoryID)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := fixture(t)
	*cfg.Radius = 9
	_, err := New(cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRun(t *testing.T) {
	cfg := fixture(t)
	clock := timeutil.NewMockClock(epoch)
	g, err := New(cfg, clock)
	require.NoError(t, err)

	summary, err := g.Run()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		path := filepath.Join(cfg.ImagesDir(), cfg.ImageFileName(i))
		img, err := imaging.Open(path)
		require.NoError(t, err, path)
		assert.Equal(t, 144, img.Bounds().Dx())
		assert.Equal(t, 144, img.Bounds().Dy())
	}
	assert.FileExists(t, filepath.Join(cfg.ImagesDir(), "hexboard-rad-2-id-0.png"))
	assert.FileExists(t, cfg.ReportPath())

	d, err := dataset.Load(cfg.DatasetPath())
	require.NoError(t, err)
	require.Len(t, d.Images(), 3)
	require.Len(t, d.Annotations(), 3*19)
	assert.Len(t, d.Categories(), 5)
	assert.Equal(t, "free_hex", d.Categories()[0].Name)
	for i, a := range d.Annotations() {
		assert.Equal(t, i, a.ID)
		assert.Equal(t, i/19, a.ImageID)
		assert.Equal(t, 15*15, a.Area)
	}
	assert.Equal(t, "hexboard-rad-2-id-2.png", d.Images()[2].FileName)
	assert.Equal(t, 1, d.Images()[0].License)

	assert.Equal(t, 3, summary.Images)
	assert.Equal(t, 57, summary.Annotations)
	assert.Greater(t, summary.MeanClutter, 0.0)
	assert.Less(t, summary.MeanClutter, 1.0)
}

func TestRunIsReproducibleWithSeed(t *testing.T) {
	categories := func() []int {
		g, err := New(fixture(t), timeutil.NewMockClock(epoch))
		require.NoError(t, err)
		_, err = g.Run()
		require.NoError(t, err)
		var ids []int
		for _, a := range g.Dataset.Annotations() {
			ids = append(ids, a.CategoryID)
		}
		return ids
	}
	assert.Equal(t, categories(), categories())
}

func TestRunWithoutReport(t *testing.T) {
	cfg := fixture(t)
	*cfg.WriteReport = false
	*cfg.ImageCount = 1
	g, err := New(cfg, timeutil.NewMockClock(epoch))
	require.NoError(t, err)

	_, err = g.Run()
	require.NoError(t, err)
	assert.FileExists(t, cfg.DatasetPath())
	assert.NoFileExists(t, cfg.ReportPath())
}

func TestSeedFromClock(t *testing.T) {
	cfg := fixture(t)
	*cfg.Seed = 0
	g, err := New(cfg, timeutil.NewMockClock(epoch))
	require.NoError(t, err)
	assert.Equal(t, epoch.UnixNano(), g.Seed())
}
