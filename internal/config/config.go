// Package config handles studio configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/ribbon-studio/internal/logger"
	"github.com/Faultbox/ribbon-studio/pkg/ribbon"
	"github.com/Faultbox/ribbon-studio/pkg/stroke"
)

// Config holds all studio settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Ribbon  RibbonConfig  `yaml:"ribbon"`
	Stroke  StrokeConfig  `yaml:"stroke"`
	Tiles   TilesConfig   `yaml:"tiles"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// RibbonConfig holds mesh generation settings.
type RibbonConfig struct {
	Width            float32    `yaml:"width"`
	Truncate         bool       `yaml:"truncate"`
	PointsPerSegment int        `yaml:"points_per_segment"`
	TruncateFactor   float32    `yaml:"truncate_factor"`
	NormalBlend      float32    `yaml:"normal_blend"`
	Wave             WaveConfig `yaml:"wave"`
}

// WaveConfig holds the undulation animation settings.
type WaveConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Amplitude float32 `yaml:"amplitude"` // radians
	Frequency float32 `yaml:"frequency"` // cycles per ribbon
	Speed     float32 `yaml:"speed"`
}

// StrokeConfig holds input preparation settings.
type StrokeConfig struct {
	TargetSpan float32 `yaml:"target_span"`
	Samples    int     `yaml:"samples"`
	MinSpacing float32 `yaml:"min_spacing"` // world units, after normalization
	MinPixels  float32 `yaml:"min_pixels"`  // screen pixels, while recording
}

// TilesConfig holds the procedural tile texture settings.
type TilesConfig struct {
	Count      int     `yaml:"count"`
	Frames     int     `yaml:"frames"`
	FPS        float64 `yaml:"fps"`
	Size       int     `yaml:"size"`
	HueOffset  float64 `yaml:"hue_offset"` // degrees
	Saturation float64 `yaml:"saturation"`
	Value      float64 `yaml:"value"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Ribbon: RibbonConfig{
			Width:            1.0,
			PointsPerSegment: ribbon.DefaultPointsPerSegment,
			TruncateFactor:   ribbon.DefaultTruncateFactor,
			NormalBlend:      ribbon.DefaultNormalBlend,
			Wave: WaveConfig{
				Enabled:   true,
				Amplitude: ribbon.DefaultWaveAmplitude,
				Frequency: ribbon.DefaultWaveFrequency,
				Speed:     ribbon.DefaultWaveSpeed,
			},
		},
		Stroke: StrokeConfig{
			TargetSpan: stroke.DefaultTargetSpan,
			Samples:    stroke.DefaultSamples,
			MinSpacing: stroke.DefaultMinSpacing,
			MinPixels:  3,
		},
		Tiles: TilesConfig{
			Count:      6,
			Frames:     8,
			FPS:        6,
			Size:       64,
			Saturation: 0.65,
			Value:      0.9,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Options converts the ribbon section into build options.
func (r RibbonConfig) Options() ribbon.Options {
	opts := ribbon.Options{
		PointsPerSegment: r.PointsPerSegment,
		Truncate:         r.Truncate,
		TruncateFactor:   r.TruncateFactor,
		NormalBlend:      r.NormalBlend,
		WaveFrequency:    r.Wave.Frequency,
		WaveSpeed:        r.Wave.Speed,
	}
	if r.Wave.Enabled {
		opts.WaveAmplitude = r.Wave.Amplitude
	}
	return opts
}

// Options converts the stroke section into preparation options.
func (s StrokeConfig) Options() stroke.Options {
	return stroke.Options{
		TargetSpan: s.TargetSpan,
		Samples:    s.Samples,
		MinSpacing: s.MinSpacing,
	}
}

// Validate reports settings that cannot produce a usable studio.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Ribbon.Width <= 0 {
		errs = append(errs, fmt.Errorf("ribbon width %g must be positive", c.Ribbon.Width))
	}
	if c.Tiles.Count < 0 || c.Tiles.Frames < 0 {
		errs = append(errs, fmt.Errorf("tile count %d and frames %d must not be negative", c.Tiles.Count, c.Tiles.Frames))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
