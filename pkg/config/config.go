// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"

	"github.com/user/tinyrender/pkg/orchestrator"
	"github.com/user/tinyrender/pkg/pipeline"
	"github.com/user/tinyrender/pkg/ports"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for tinyrender.
type Config struct {
	// Output
	OutputPath string `yaml:"output"`

	// Stream
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	FPS         int     `yaml:"fps"`
	DurationSec float64 `yaml:"duration_sec"`

	// Scene
	Segments []SegmentConfig `yaml:"segments"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Debug
	Debug      bool   `yaml:"debug"`
	DebugDir   string `yaml:"debug_dir"`
	DebugEvery int    `yaml:"debug_every"`
}

// SegmentConfig represents one span of the timeline.
type SegmentConfig struct {
	Until      float64 `yaml:"until"`
	Background string  `yaml:"background"`
	Label      string  `yaml:"label"`
	LabelColor string  `yaml:"label_color"`
	Image      string  `yaml:"image"`
}

// Defaults returns a Config with default values: three seconds of red,
// green and blue at 1600x900, 60 fps.
func Defaults() Config {
	return Config{
		OutputPath: "output.y4m",

		Width:       1600,
		Height:      900,
		FPS:         60,
		DurationSec: 3,

		Segments: []SegmentConfig{
			{Until: 1, Background: "#ff0000"},
			{Until: 2, Background: "#00ff00"},
			{Until: 3, Background: "#0000ff"},
		},

		LogLevel: "info",

		DebugDir:   "./debug",
		DebugEvery: 30,
	}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their default values; a segments list replaces the default scene.
func LoadFromFile(fs ports.FileSystem, path string) (Config, error) {
	cfg := Defaults()

	data, err := fs.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values that cannot be rendered.
func (c Config) Validate() error {
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("invalid fps: %d", c.FPS)
	}
	if c.DurationSec <= 0 {
		return fmt.Errorf("invalid duration: %g", c.DurationSec)
	}
	if len(c.Segments) == 0 {
		return fmt.Errorf("at least one segment is required")
	}
	for i, s := range c.Segments {
		if i > 0 && s.Until < c.Segments[i-1].Until {
			return fmt.Errorf("segment %d ends before segment %d", i, i-1)
		}
		if _, err := ParseColor(s.Background); err != nil {
			return fmt.Errorf("segment %d background: %w", i, err)
		}
		if s.LabelColor != "" {
			if _, err := ParseColor(s.LabelColor); err != nil {
				return fmt.Errorf("segment %d label color: %w", i, err)
			}
		}
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rgb" (the '#' is optional) into an
// opaque color.
func ParseColor(hex string) (color.RGBA, error) {
	s := hex
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}

	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{A: 255}, fmt.Errorf("invalid color %q", hex)
	}

	var rgb [3]uint8
	for i := range rgb {
		hi, ok1 := hexValue(s[2*i])
		lo, ok2 := hexValue(s[2*i+1])
		if !ok1 || !ok2 {
			return color.RGBA{A: 255}, fmt.Errorf("invalid color %q", hex)
		}
		rgb[i] = hi<<4 | lo
	}

	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
// Colors that fail to parse become black; call Validate first.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	segments := make([]pipeline.Segment, 0, len(c.Segments))
	for _, s := range c.Segments {
		bg, _ := ParseColor(s.Background)
		label := color.RGBA{R: 255, G: 255, B: 255, A: 255}
		if s.LabelColor != "" {
			label, _ = ParseColor(s.LabelColor)
		}
		segments = append(segments, pipeline.Segment{
			UntilSec:   s.Until,
			Background: bg,
			Label:      s.Label,
			LabelColor: label,
			ImagePath:  s.Image,
		})
	}

	debugEvery := 0
	if c.Debug {
		debugEvery = c.DebugEvery
	}

	return orchestrator.Config{
		OutputPath: c.OutputPath,

		Width:       c.Width,
		Height:      c.Height,
		FPS:         c.FPS,
		DurationSec: c.DurationSec,

		Segments: segments,

		DebugEvery: debugEvery,
	}
}
