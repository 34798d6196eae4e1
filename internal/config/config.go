// Package config holds the run configuration for the board generator.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const (
	MinRadius = 2
	MaxRadius = 4

	defaultRadius            = 4
	defaultImageCount        = 334
	defaultQualityMultiplier = 2.0
	defaultCyclingIcon       = "tincturem"
	defaultAssetDir          = "assets"
	defaultOutputDir         = "output"
)

// DefaultSources is the set of icon sources enabled when the config does not
// name any.
var DefaultSources = []string{
	"original", "Thaumic Boots", "Avaritia", "GregTech", "Forbidden Magic",
	"Magic Bees", "GregTech NewHorizons", "Botanical addons", "The Elysium",
	"Thaumic Revelations", "Essential Thaumaturgy", "AbyssalCraft Integration",
}

// Config is the root configuration for a generation run. Fields omitted from
// the JSON file stay nil and the Get* accessors fall back to defaults, so
// partial configs are safe.
type Config struct {
	Radius            *int     `json:"radius,omitempty"`
	ImageCount        *int     `json:"image_count,omitempty"`
	QualityMultiplier *float64 `json:"quality_multiplier,omitempty"`
	EnabledSources    []string `json:"enabled_sources,omitempty"`
	Seed              *int64   `json:"seed,omitempty"` // 0 or unset: seeded from the clock

	AssetDir       *string `json:"asset_dir,omitempty"`
	PrimaryCatalog *string `json:"primary_catalog,omitempty"`
	AddonsCatalog  *string `json:"addons_catalog,omitempty"`
	OutputDir      *string `json:"output_dir,omitempty"`

	CyclingIcon *string `json:"cycling_icon,omitempty"`
	WriteReport *bool   `json:"write_report,omitempty"`
}

func ptrInt(v int) *int             { return &v }
func ptrInt64(v int64) *int64       { return &v }
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
func ptrBool(v bool) *bool          { return &v }

// Default returns a Config with every field populated with its default.
func Default() *Config {
	return &Config{
		Radius:            ptrInt(defaultRadius),
		ImageCount:        ptrInt(defaultImageCount),
		QualityMultiplier: ptrFloat64(defaultQualityMultiplier),
		EnabledSources:    append([]string(nil), DefaultSources...),
		Seed:              ptrInt64(0),
		AssetDir:          ptrString(defaultAssetDir),
		PrimaryCatalog:    ptrString(filepath.Join("config", "aspects.json")),
		AddonsCatalog:     ptrString(filepath.Join("config", "addons_aspects.json")),
		OutputDir:         ptrString(defaultOutputDir),
		CyclingIcon:       ptrString(defaultCyclingIcon),
		WriteReport:       ptrBool(true),
	}
}

// Load reads a Config from a JSON file. Comments and trailing commas are
// accepted. The result is validated before it is returned.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	data, err = hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if c.Radius != nil && (*c.Radius < MinRadius || *c.Radius > MaxRadius) {
		return fmt.Errorf("%w: radius must be between %d and %d, got %d", ErrInvalid, MinRadius, MaxRadius, *c.Radius)
	}
	if c.ImageCount != nil && *c.ImageCount < 0 {
		return fmt.Errorf("%w: image_count must be non-negative, got %d", ErrInvalid, *c.ImageCount)
	}
	if c.QualityMultiplier != nil && *c.QualityMultiplier <= 0 {
		return fmt.Errorf("%w: quality_multiplier must be positive, got %f", ErrInvalid, *c.QualityMultiplier)
	}
	return nil
}

// GetRadius returns the board radius or the default.
func (c *Config) GetRadius() int {
	if c.Radius == nil {
		return defaultRadius
	}
	return *c.Radius
}

// GetImageCount returns the number of images to generate or the default.
func (c *Config) GetImageCount() int {
	if c.ImageCount == nil {
		return defaultImageCount
	}
	return *c.ImageCount
}

// GetQualityMultiplier returns the resolution multiplier or the default.
// At 1 the generated image is the background's native size.
func (c *Config) GetQualityMultiplier() float64 {
	if c.QualityMultiplier == nil {
		return defaultQualityMultiplier
	}
	return *c.QualityMultiplier
}

// GetEnabledSources returns the icon sources to load. An unset list means the
// default sources; an explicit empty list enables none.
func (c *Config) GetEnabledSources() []string {
	if c.EnabledSources == nil {
		return DefaultSources
	}
	return c.EnabledSources
}

// GetSeed returns the configured random seed; 0 means unseeded.
func (c *Config) GetSeed() int64 {
	if c.Seed == nil {
		return 0
	}
	return *c.Seed
}

// GetAssetDir returns the sprite directory or the default.
func (c *Config) GetAssetDir() string {
	if c.AssetDir == nil || *c.AssetDir == "" {
		return defaultAssetDir
	}
	return *c.AssetDir
}

// GetPrimaryCatalog returns the primary icon catalog path.
func (c *Config) GetPrimaryCatalog() string {
	if c.PrimaryCatalog == nil {
		return filepath.Join("config", "aspects.json")
	}
	return *c.PrimaryCatalog
}

// GetAddonsCatalog returns the addon icon catalog path.
func (c *Config) GetAddonsCatalog() string {
	if c.AddonsCatalog == nil {
		return filepath.Join("config", "addons_aspects.json")
	}
	return *c.AddonsCatalog
}

// GetOutputDir returns the output directory or the default.
func (c *Config) GetOutputDir() string {
	if c.OutputDir == nil || *c.OutputDir == "" {
		return defaultOutputDir
	}
	return *c.OutputDir
}

// GetCyclingIcon returns the name of the icon whose hue cycles across the run.
func (c *Config) GetCyclingIcon() string {
	if c.CyclingIcon == nil {
		return defaultCyclingIcon
	}
	return *c.CyclingIcon
}

// GetWriteReport reports whether the statistics chart should be written.
func (c *Config) GetWriteReport() bool {
	if c.WriteReport == nil {
		return true
	}
	return *c.WriteReport
}

// SourceEnabled reports whether the named icon source is enabled.
func (c *Config) SourceEnabled(name string) bool {
	for _, s := range c.GetEnabledSources() {
		if s == name {
			return true
		}
	}
	return false
}

// ImageFileName returns the file name of the idx-th generated image.
func (c *Config) ImageFileName(idx int) string {
	return fmt.Sprintf("hexboard-rad-%d-id-%d.png", c.GetRadius(), idx)
}

// ImagesDir returns the directory generated images are written to.
func (c *Config) ImagesDir() string {
	return filepath.Join(c.GetOutputDir(), fmt.Sprintf("rad-%d", c.GetRadius()))
}

// DatasetPath returns the path of the COCO dataset file.
func (c *Config) DatasetPath() string {
	return filepath.Join(c.GetOutputDir(), fmt.Sprintf("hexboard_rad_%d.coco.json", c.GetRadius()))
}

// ReportPath returns the path of the category histogram chart.
func (c *Config) ReportPath() string {
	return filepath.Join(c.GetOutputDir(), fmt.Sprintf("hexboard_rad_%d.report.png", c.GetRadius()))
}
