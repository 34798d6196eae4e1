// Package dataset accumulates the COCO records of a generation run and turns
// composed scenes into bounding-box annotations.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/1siamBot/hexboard-synth/engine/catalog"
	"github.com/1siamBot/hexboard-synth/engine/hexgrid"
	"github.com/1siamBot/hexboard-synth/engine/scene"
)

// Dataset is the running record of one generation run. Image and annotation
// ids are sequential from 0 and never reused.
type Dataset struct {
	doc File
}

// New creates an empty dataset whose categories are the catalog's, free hex
// first.
func New(cat *catalog.Catalog, info Info) *Dataset {
	d := &Dataset{doc: File{
		Info:        info,
		Licenses:    []License{MIT},
		Categories:  []Category{},
		Images:      []Image{},
		Annotations: []Annotation{},
	}}
	for _, c := range cat.Categories() {
		d.doc.Categories = append(d.doc.Categories, Category{ID: c.ID, Name: c.Name, Supercategory: "none"})
	}
	return d
}

// AddImage records a generated image and returns its id.
func (d *Dataset) AddImage(fileName string, width, height int, captured time.Time) int {
	id := len(d.doc.Images)
	d.doc.Images = append(d.doc.Images, Image{
		ID:           id,
		License:      MIT.ID,
		FileName:     fileName,
		Height:       height,
		Width:        width,
		DateCaptured: captured.Format(TimeLayout),
	})
	return id
}

// Emit annotates every cell of s, in cell order, and appends the annotations
// to the dataset. Icon cells carry their category; free, decoy and blocker
// cells are all reported as free hex. The returned slice is a copy.
func (d *Dataset) Emit(s *scene.Scene, imageID int, layout hexgrid.Layout) []Annotation {
	start := len(d.doc.Annotations)
	for _, cell := range s.Cells {
		catID := catalog.FreeHex.ID
		if cat := s.Category(cell); cat.IsIcon() {
			catID = cat.ID
		}
		box := layout.PixelBox(cell)
		d.doc.Annotations = append(d.doc.Annotations, Annotation{
			ID:           len(d.doc.Annotations),
			ImageID:      imageID,
			CategoryID:   catID,
			BBox:         box.Slice(),
			Area:         box.Area(),
			Segmentation: []interface{}{},
		})
	}
	return append([]Annotation(nil), d.doc.Annotations[start:]...)
}

// Info returns the info block.
func (d *Dataset) Info() Info { return d.doc.Info }

// Categories returns the category records.
func (d *Dataset) Categories() []Category { return d.doc.Categories }

// Images returns the image records added so far.
func (d *Dataset) Images() []Image { return d.doc.Images }

// Annotations returns the annotations emitted so far.
func (d *Dataset) Annotations() []Annotation { return d.doc.Annotations }

// Save writes the dataset as indented JSON, creating parent directories.
func (d *Dataset) Save(path string) error {
	data, err := json.MarshalIndent(d.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a dataset written by Save.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Dataset
	if err := json.Unmarshal(data, &d.doc); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return &d, nil
}
