// Package report summarizes a finished dataset and charts how often each
// icon category was placed.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/1siamBot/hexboard-synth/engine/dataset"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoIcons is returned when charting a dataset without icon categories.
var ErrNoIcons = errors.New("no icon categories to chart")

// CategoryCount is the number of annotations of one category.
type CategoryCount struct {
	ID    int
	Name  string
	Count int
}

// Summary describes a dataset.
type Summary struct {
	Images      int
	Annotations int
	// Categories in dataset order, free hex first.
	Categories []CategoryCount

	IconsPerImageMean   float64
	IconsPerImageStdDev float64
	// MeanClutter is the average difference between a board and its bare
	// background, in [0, 1].
	MeanClutter float64
}

// Summarize counts the annotations of d. clutter holds one value per image
// and may be empty.
func Summarize(d *dataset.Dataset, clutter []float64) Summary {
	s := Summary{
		Images:      len(d.Images()),
		Annotations: len(d.Annotations()),
	}

	index := make(map[int]int, len(d.Categories()))
	for i, c := range d.Categories() {
		index[c.ID] = i
		s.Categories = append(s.Categories, CategoryCount{ID: c.ID, Name: c.Name})
	}

	perImage := make(map[int]float64, s.Images)
	for _, a := range d.Annotations() {
		if i, ok := index[a.CategoryID]; ok {
			s.Categories[i].Count++
		}
		if a.CategoryID > 0 {
			perImage[a.ImageID]++
		}
	}

	icons := make([]float64, 0, s.Images)
	for _, img := range d.Images() {
		icons = append(icons, perImage[img.ID])
	}
	if len(icons) > 0 {
		s.IconsPerImageMean = stat.Mean(icons, nil)
	}
	if len(icons) > 1 {
		s.IconsPerImageStdDev = stat.StdDev(icons, nil)
	}
	if len(clutter) > 0 {
		s.MeanClutter = stat.Mean(clutter, nil)
	}
	return s
}

// Icons returns the counts of the icon categories only.
func (s Summary) Icons() []CategoryCount {
	var out []CategoryCount
	for _, c := range s.Categories {
		if c.ID > 0 {
			out = append(out, c)
		}
	}
	return out
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "images=%d annotations=%d icons/image=%.2f±%.2f clutter=%.4f",
		s.Images, s.Annotations, s.IconsPerImageMean, s.IconsPerImageStdDev, s.MeanClutter)
	for _, c := range s.Icons() {
		if c.Count == 0 {
			fmt.Fprintf(&b, "\n  %s never placed", c.Name)
		}
	}
	return b.String()
}

// WriteChart saves a bar chart of icon placements as a PNG at path.
func (s Summary) WriteChart(path string) error {
	icons := s.Icons()
	if len(icons) == 0 {
		return ErrNoIcons
	}

	values := make(plotter.Values, len(icons))
	names := make([]string, len(icons))
	for i, c := range icons {
		values[i] = float64(c.Count)
		names[i] = c.Name
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Icon placements over %d images", s.Images)
	p.Y.Label.Text = "Placements"

	bars, err := plotter.NewBarChart(values, vg.Points(8))
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 1.2
	p.X.Tick.Label.XAlign = -1

	width := 4*vg.Inch + vg.Length(len(icons))*vg.Points(12)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := p.Save(width, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
