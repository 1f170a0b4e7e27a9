// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Background modes.
const (
	BackgroundStars    = "stars"
	BackgroundPanorama = "panorama"
)

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Globe      GlobeConfig      `yaml:"globe"`
	Background BackgroundConfig `yaml:"background"`
	Lighting   LightingConfig   `yaml:"lighting"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Resizable  bool `yaml:"resizable"` // Track window resizes (viewport + aspect)

	ScreenshotDir string `yaml:"screenshot_dir"` // F12 captures land here
}

// GlobeConfig describes the Earth mesh and its textures.
type GlobeConfig struct {
	Radius    float32 `yaml:"radius"`
	Segments  int     `yaml:"segments"`
	ColorMap  string  `yaml:"color_map"`
	BumpMap   string  `yaml:"bump_map"`
	BumpScale float32 `yaml:"bump_scale"`
}

// BackgroundConfig selects and tunes the backdrop behind the globe.
type BackgroundConfig struct {
	Mode string `yaml:"mode"` // "stars" or "panorama"

	StarCount     int     `yaml:"star_count"`
	StarMinRadius float32 `yaml:"star_min_radius"`
	StarMaxRadius float32 `yaml:"star_max_radius"`
	StarSize      float32 `yaml:"star_size"`
	StarOpacity   float32 `yaml:"star_opacity"`
	Seed          int64   `yaml:"seed"` // 0 seeds from the clock
	Parallax      float32 `yaml:"parallax"`

	Panorama       string  `yaml:"panorama"`
	PanoramaRadius float32 `yaml:"panorama_radius"`
}

// LightingConfig holds the ambient light and the optional sun.
type LightingConfig struct {
	AmbientColor     [3]float32 `yaml:"ambient_color"`
	AmbientIntensity float32    `yaml:"ambient_intensity"`
	SunEnabled       bool       `yaml:"sun_enabled"`
	SunLongitude     float32    `yaml:"sun_longitude"`
	SunLatitude      float32    `yaml:"sun_latitude"`
	SunIntensity     float32    `yaml:"sun_intensity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock globe scene.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Resizable:  false,

			ScreenshotDir: "screenshots",
		},
		Globe: GlobeConfig{
			Radius:    0.5,
			Segments:  32,
			ColorMap:  "texture/earthmap.jpeg",
			BumpMap:   "texture/earthbump.jpeg",
			BumpScale: 1,
		},
		Background: BackgroundConfig{
			Mode:           BackgroundStars,
			StarCount:      2000,
			StarMinRadius:  10,
			StarMaxRadius:  30,
			StarSize:       0.1,
			StarOpacity:    0.9,
			Parallax:       0.5,
			Panorama:       "texture/galaxy.png",
			PanoramaRadius: 100,
		},
		Lighting: LightingConfig{
			AmbientColor:     [3]float32{1, 1, 1},
			AmbientIntensity: 1.5,
			SunEnabled:       false,
			SunLongitude:     45,
			SunLatitude:      30,
			SunIntensity:     1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the viewer cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Globe.Radius <= 0 {
		errs = append(errs, fmt.Errorf("globe: radius must be positive, got %g", c.Globe.Radius))
	}
	if c.Globe.Segments < 3 {
		errs = append(errs, fmt.Errorf("globe: need at least 3 segments, got %d", c.Globe.Segments))
	}

	bg := c.Background
	// The star field is also the panorama's fallback, so its settings are
	// checked in every mode.
	if bg.StarCount < 0 {
		errs = append(errs, fmt.Errorf("background: negative star count %d", bg.StarCount))
	}
	if bg.StarMinRadius <= 0 || bg.StarMaxRadius <= bg.StarMinRadius {
		errs = append(errs, fmt.Errorf("background: star radius range [%g, %g) is empty", bg.StarMinRadius, bg.StarMaxRadius))
	}
	switch bg.Mode {
	case BackgroundStars:
	case BackgroundPanorama:
		if bg.PanoramaRadius <= 0 {
			errs = append(errs, fmt.Errorf("background: panorama radius must be positive, got %g", bg.PanoramaRadius))
		}
	default:
		errs = append(errs, fmt.Errorf("background: unknown mode %q", bg.Mode))
	}

	return errors.Join(errs...)
}
