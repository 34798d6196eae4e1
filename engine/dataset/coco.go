package dataset

import (
	"time"

	"github.com/google/uuid"
)

// TimeLayout formats every timestamp written to the dataset.
const TimeLayout = "2006-01-02 15:04:05.000000"

// Info is the COCO info block.
type Info struct {
	Year        string `json:"year"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Contributor string `json:"contributor"`
	URL         string `json:"url"`
	DateCreated string `json:"date_created"`
	RunID       string `json:"run_id"`
}

// NewInfo returns the info block of a run started at now, with a fresh run id.
func NewInfo(now time.Time) Info {
	return Info{
		Year:        now.Format("2006"),
		Version:     "1",
		Description: "Synthetic hex board images",
		DateCreated: now.Format(TimeLayout),
		RunID:       uuid.New().String(),
	}
}

// License is a COCO license entry.
type License struct {
	ID   int    `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

// MIT is the only license images are published under.
var MIT = License{ID: 1, URL: "https://mit-license.org/", Name: "MIT"}

// Category is a COCO category entry.
type Category struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Supercategory string `json:"supercategory"`
}

// Image is a COCO image entry.
type Image struct {
	ID           int    `json:"id"`
	License      int    `json:"license"`
	FileName     string `json:"file_name"`
	Height       int    `json:"height"`
	Width        int    `json:"width"`
	DateCaptured string `json:"date_captured"`
}

// Annotation is a COCO object annotation. Segmentation is always empty.
type Annotation struct {
	ID           int           `json:"id"`
	ImageID      int           `json:"image_id"`
	CategoryID   int           `json:"category_id"`
	BBox         [4]int        `json:"bbox"`
	Area         int           `json:"area"`
	Segmentation []interface{} `json:"segmentation"`
	IsCrowd      int           `json:"iscrowd"`
}

// File is the serialized dataset document.
type File struct {
	Info        Info         `json:"info"`
	Licenses    []License    `json:"licenses"`
	Categories  []Category   `json:"categories"`
	Images      []Image      `json:"images"`
	Annotations []Annotation `json:"annotations"`
}
