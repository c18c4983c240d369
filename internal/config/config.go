// Package config loads tool settings from an optional TOML file.
package config

import (
	"fmt"
	"strings"

	"board-cropper/internal/cells"
	"board-cropper/internal/frame"

	"github.com/BurntSushi/toml"
)

// Mask builder names.
const (
	MaskPixel  = "pixel"
	MaskOpenCV = "opencv"
)

// Config is the full tool configuration.
type Config struct {
	Crop       CropConfig       `toml:"crop"`
	Grid       GridConfig       `toml:"grid"`
	Classifier ClassifierConfig `toml:"classifier"`
	Output     OutputConfig     `toml:"output"`
}

// CropConfig mirrors frame.Params.
type CropConfig struct {
	MinRatio                float64 `toml:"min_ratio"`
	SearchRatioX            float64 `toml:"search_ratio_x"`
	SearchRatioY            float64 `toml:"search_ratio_y"`
	MinCropRatio            float64 `toml:"min_crop_ratio"`
	MinHeightAfterTrimRatio float64 `toml:"min_height_after_trim_ratio"`
	AdditionalTopCropRatio  float64 `toml:"additional_top_crop_ratio"`
	Debug                   bool    `toml:"debug"`
	MaskBuilder             string  `toml:"mask_builder"` // "pixel" or "opencv"
}

// GridConfig is the play field cell layout.
type GridConfig struct {
	Cols int `toml:"cols"`
	Rows int `toml:"rows"`
}

// ClassifierConfig locates the cell classification model.
type ClassifierConfig struct {
	Model      string `toml:"model"`
	InputName  string `toml:"input_name"`
	OutputName string `toml:"output_name"`
}

// OutputConfig controls where tools write images.
type OutputConfig struct {
	Dir string `toml:"dir"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	p := frame.DefaultParams()
	g := cells.DefaultGrid()
	return Config{
		Crop: CropConfig{
			MinRatio:                p.MinRatio,
			SearchRatioX:            p.SearchRatioX,
			SearchRatioY:            p.SearchRatioY,
			MinCropRatio:            p.MinCropRatio,
			MinHeightAfterTrimRatio: p.MinHeightAfterTrimRatio,
			AdditionalTopCropRatio:  p.AdditionalTopCropRatio,
			MaskBuilder:             MaskPixel,
		},
		Grid: GridConfig{Cols: g.Cols, Rows: g.Rows},
		Classifier: ClassifierConfig{
			InputName:  "input",
			OutputName: "output",
		},
		Output: OutputConfig{Dir: "out"},
	}
}

// Load reads path on top of the defaults. Unknown keys are rejected so that
// typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	ratios := []struct {
		name  string
		value float64
	}{
		{"crop.min_ratio", c.Crop.MinRatio},
		{"crop.search_ratio_x", c.Crop.SearchRatioX},
		{"crop.search_ratio_y", c.Crop.SearchRatioY},
		{"crop.min_crop_ratio", c.Crop.MinCropRatio},
		{"crop.min_height_after_trim_ratio", c.Crop.MinHeightAfterTrimRatio},
		{"crop.additional_top_crop_ratio", c.Crop.AdditionalTopCropRatio},
	}
	for _, r := range ratios {
		if r.value < 0 || r.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %g", r.name, r.value)
		}
	}
	switch c.Crop.MaskBuilder {
	case MaskPixel, MaskOpenCV:
	default:
		return fmt.Errorf("crop.mask_builder must be %q or %q, got %q", MaskPixel, MaskOpenCV, c.Crop.MaskBuilder)
	}
	if c.Grid.Cols <= 0 || c.Grid.Rows <= 0 {
		return fmt.Errorf("grid must have positive size, got %dx%d", c.Grid.Cols, c.Grid.Rows)
	}
	return nil
}

// Params converts the crop section to frame parameters. The mask builder and
// logger are left for the caller to wire.
func (c CropConfig) Params() frame.Params {
	p := frame.DefaultParams()
	p.MinRatio = c.MinRatio
	p.SearchRatioX = c.SearchRatioX
	p.SearchRatioY = c.SearchRatioY
	p.MinCropRatio = c.MinCropRatio
	p.MinHeightAfterTrimRatio = c.MinHeightAfterTrimRatio
	p.AdditionalTopCropRatio = c.AdditionalTopCropRatio
	p.Debug = c.Debug
	return p
}

// Grid converts the grid section.
func (g GridConfig) Grid() cells.Grid {
	return cells.Grid{Cols: g.Cols, Rows: g.Rows}
}
