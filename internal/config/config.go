// Package config loads image-artifex settings from a TOML file and the
// environment.
//
// A file looks like:
//
//	log_level = "info"
//
//	[render]
//	filter = "lanczos"
//	quality = 90
//	background = "auto"
//
//	[cut]
//	center_portrait = false
//
//	[http]
//	addr = ":8080"
//	root = "/srv/images"
//
// Every key is optional. The environment variables IMAGE_ARTIFEX_LOG_LEVEL,
// IMAGE_ARTIFEX_HTTP_ADDR and IMAGE_ARTIFEX_ROOT override the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/ironsheep/image-artifex/internal/geometry"
	"github.com/ironsheep/image-artifex/internal/imaging"
	"github.com/ironsheep/image-artifex/internal/transform"
)

// Environment variables that override the file.
const (
	EnvLogLevel = "IMAGE_ARTIFEX_LOG_LEVEL"
	EnvHTTPAddr = "IMAGE_ARTIFEX_HTTP_ADDR"
	EnvRoot     = "IMAGE_ARTIFEX_ROOT"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete configuration.
type Config struct {
	LogLevel string `toml:"log_level"`
	Render   Render `toml:"render"`
	Cut      Cut    `toml:"cut"`
	HTTP     HTTP   `toml:"http"`
}

// Render controls how images are drawn and encoded.
type Render struct {
	// Filter is the resampling filter, one of imaging.FilterNames().
	Filter string `toml:"filter"`

	// Quality is the JPEG and WEBP quality, 1-100.
	Quality int `toml:"quality"`

	// Background is "auto" or a colour accepted by imaging.ParseColor.
	Background string `toml:"background"`
}

// Cut holds the smart-crop policy.
type Cut struct {
	CenterPortrait bool `toml:"center_portrait"`
}

// HTTP configures the serve command.
type HTTP struct {
	Addr string `toml:"addr"`
	Root string `toml:"root"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Render: Render{
			Filter:     "lanczos",
			Quality:    imaging.DefaultQuality,
			Background: "auto",
		},
		HTTP: HTTP{
			Addr: ":8080",
			Root: ".",
		},
	}
}

// Load reads the file at path over the defaults, applies the environment
// and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		c.HTTP.Addr = v
	}
	if v := os.Getenv(EnvRoot); v != "" {
		c.HTTP.Root = v
	}
}

// Validate checks every setting that can be wrong.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Surface(); err != nil {
		return err
	}
	if c.Render.Quality < 1 || c.Render.Quality > 100 {
		return fmt.Errorf("%w: render.quality %d is outside 1-100", ErrInvalid, c.Render.Quality)
	}
	if _, err := c.Background(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return 0, fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return level, nil
}

// Surface builds the raster surface for the configured filter.
func (c Config) Surface() (imaging.Surface, error) {
	s, err := imaging.NewRaster(c.Render.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: render.filter: %v", ErrInvalid, err)
	}
	return s, nil
}

// Background returns the configured default background.
func (c Config) Background() (transform.Background, error) {
	bg, err := transform.ParseBackground(c.Render.Background)
	if err != nil {
		return transform.Background{}, fmt.Errorf("%w: render.background: %v", ErrInvalid, err)
	}
	return bg, nil
}

// CutPolicy returns the smart-crop policy.
func (c Config) CutPolicy() geometry.CutPolicy {
	return geometry.CutPolicy{CenterPortrait: c.Cut.CenterPortrait}
}

// ImageOptions returns the transform options every loaded image gets. It
// assumes a validated configuration.
func (c Config) ImageOptions() []transform.Option {
	opts := []transform.Option{transform.WithCutPolicy(c.CutPolicy())}
	if s, err := c.Surface(); err == nil {
		opts = append(opts, transform.WithSurface(s))
	}
	return opts
}
