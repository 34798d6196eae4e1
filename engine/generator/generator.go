// Package generator runs a full dataset generation: it loads the catalog and
// sprites once, then composes, saves and annotates boards one after another.
package generator

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/1siamBot/hexboard-synth/engine/assets"
	"github.com/1siamBot/hexboard-synth/engine/catalog"
	"github.com/1siamBot/hexboard-synth/engine/dataset"
	"github.com/1siamBot/hexboard-synth/engine/hexgrid"
	"github.com/1siamBot/hexboard-synth/engine/imgdiff"
	"github.com/1siamBot/hexboard-synth/engine/report"
	"github.com/1siamBot/hexboard-synth/engine/scene"
	"github.com/1siamBot/hexboard-synth/internal/config"
	"github.com/1siamBot/hexboard-synth/internal/monitoring"
	"github.com/1siamBot/hexboard-synth/internal/timeutil"
	"github.com/disintegration/imaging"
)

// Generator holds everything a run shares between boards.
type Generator struct {
	cfg   *config.Config
	clock timeutil.Clock
	seed  int64

	Catalog  *catalog.Catalog
	Composer *scene.Composer
	Dataset  *dataset.Dataset

	icons      []*scene.Tile
	decoys     []*scene.Tile
	background *image.NRGBA
	clutter    []float64
}

// New loads the catalog and every sprite the run needs. Catalog problems only
// shrink the icon set; a missing sprite is an error.
func New(cfg *config.Config, clock timeutil.Clock) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = timeutil.RealClock{}
	}

	cat := loadCatalog(cfg)
	monitoring.Logf("Catalog: %d icons from sources %v", cat.Len(), cfg.GetEnabledSources())

	layout := hexgrid.DefaultLayout(cfg.GetQualityMultiplier())
	lib := assets.NewLibrary(assets.DefaultPaths(cfg.GetAssetDir()), layout.TileSize(), cfg.GetQualityMultiplier())

	background, err := lib.Background()
	if err != nil {
		return nil, err
	}
	highlight, err := lib.Highlight()
	if err != nil {
		return nil, err
	}
	emptyHex, err := lib.EmptyHex()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:        cfg,
		clock:      clock,
		Catalog:    cat,
		background: background,
	}

	for _, ic := range cat.Icons() {
		img, err := lib.NormalizedTile(ic.Name)
		if err != nil {
			return nil, fmt.Errorf("icon %s: %w", ic.Name, err)
		}
		tile := scene.NewTile(ic, img)
		tile.Cycling = ic.Name == cfg.GetCyclingIcon()
		g.icons = append(g.icons, tile)
	}

	decoys, err := lib.Decoys()
	if err != nil {
		return nil, err
	}
	for _, img := range decoys {
		g.decoys = append(g.decoys, scene.NewTile(catalog.Decoy, img))
	}

	g.seed = cfg.GetSeed()
	if g.seed == 0 {
		g.seed = clock.Now().UnixNano()
	}
	g.Composer = scene.NewComposer(layout, background, highlight, emptyHex, rand.New(rand.NewSource(g.seed)))
	g.Dataset = dataset.New(cat, dataset.NewInfo(clock.Now()))
	return g, nil
}

func loadCatalog(cfg *config.Config) *catalog.Catalog {
	var sources []catalog.Source
	if cfg.SourceEnabled(catalog.PrimarySource) {
		sources = append(sources, catalog.LoadPrimary(cfg.GetPrimaryCatalog()))
	}
	sources = append(sources, catalog.LoadAddons(cfg.GetAddonsCatalog())...)
	return catalog.Build(sources, cfg.GetEnabledSources())
}

// Seed returns the seed of the run's random source.
func (g *Generator) Seed() int64 { return g.seed }

// Icons returns the icon tiles in catalog order.
func (g *Generator) Icons() []*scene.Tile { return g.icons }

// Decoys returns the decoy tiles.
func (g *Generator) Decoys() []*scene.Tile { return g.decoys }

// Run generates the configured number of boards, then writes the dataset
// and, if enabled, the report chart. The first error aborts the run.
func (g *Generator) Run() (report.Summary, error) {
	radius := g.cfg.GetRadius()
	count := g.cfg.GetImageCount()
	dir := g.cfg.ImagesDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return report.Summary{}, err
	}
	monitoring.Logf("Generating %d images of radius %d (seed %d)", count, radius, g.seed)

	for i := 0; i < count; i++ {
		if err := g.generate(i, radius, dir); err != nil {
			return report.Summary{}, err
		}
	}

	path := g.cfg.DatasetPath()
	if err := g.Dataset.Save(path); err != nil {
		return report.Summary{}, fmt.Errorf("save dataset: %w", err)
	}
	monitoring.Logf("COCO json file saved to %s", path)

	summary := report.Summarize(g.Dataset, g.clutter)
	monitoring.Logf("Summary: %s", summary)
	if g.cfg.GetWriteReport() {
		err := summary.WriteChart(g.cfg.ReportPath())
		switch {
		case errors.Is(err, report.ErrNoIcons):
			monitoring.Logf("Skipping report chart: %v", err)
		case err != nil:
			return summary, err
		default:
			monitoring.Logf("Report chart saved to %s", g.cfg.ReportPath())
		}
	}
	return summary, nil
}

func (g *Generator) generate(i, radius int, dir string) error {
	s, img := g.Composer.Compose(radius, g.icons, g.decoys)

	name := g.cfg.ImageFileName(i)
	path := filepath.Join(dir, name)
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save image %d: %w", i, err)
	}

	b := img.Bounds()
	id := g.Dataset.AddImage(name, b.Dx(), b.Dy(), g.clock.Now())
	g.Dataset.Emit(s, id, g.Composer.Layout)

	clutter, err := imgdiff.DiffPercent(g.background, imaging.Clone(img))
	if err != nil {
		return fmt.Errorf("image %d clutter: %w", i, err)
	}
	g.clutter = append(g.clutter, clutter)

	monitoring.Logf("Output image saved to %s", path)
	return nil
}
