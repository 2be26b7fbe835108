// Package config loads layoutlint settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/markolybrx/layout"
	"github.com/markolybrx/layout/internal/render"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "layoutlint.yaml"

// EnvLogLevel overrides log.level when set.
const EnvLogLevel = "LAYOUTLINT_LOG_LEVEL"

// Config holds all layoutlint settings.
type Config struct {
	Limits LimitsConfig `yaml:"limits"`
	Render RenderConfig `yaml:"render"`
	Watch  WatchConfig  `yaml:"watch"`
	Log    LogConfig    `yaml:"log"`
}

// LimitsConfig bounds the work of a single interpretation. Zero selects the
// interpreter default.
type LimitsConfig struct {
	MaxDepth int `yaml:"max_depth"`
	MaxNodes int `yaml:"max_nodes"`
	MaxAttrs int `yaml:"max_attrs"`
	MaxBytes int `yaml:"max_bytes"`
}

// RenderConfig controls terminal painting.
type RenderConfig struct {
	Width        int `yaml:"width"`
	PaddingScale int `yaml:"padding_scale"`
	ImageCells   int `yaml:"image_cells"`
}

// WatchConfig controls the file watcher behind preview.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
	// File receives logs when set. Preview discards logs without one.
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	defaults := render.DefaultOptions()
	return Config{
		Render: RenderConfig{
			Width:        defaults.Width,
			PaddingScale: defaults.PaddingScale,
			ImageCells:   defaults.ImageCells,
		},
		Watch: WatchConfig{Debounce: 300 * time.Millisecond},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if err := c.InterpretOptions().Validate(); err != nil {
		return fmt.Errorf("limits: %w", err)
	}
	if c.Render.Width < 0 || c.Render.PaddingScale < 0 || c.Render.ImageCells < 0 {
		return fmt.Errorf("render: values must be >= 0")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch: debounce must be >= 0")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: unknown level %q", c.Log.Level)
	}
	return nil
}

// InterpretOptions maps the limits onto interpreter options.
func (c Config) InterpretOptions() layout.Options {
	return layout.NewOptions().
		WithMaxDepth(c.Limits.MaxDepth).
		WithMaxNodes(c.Limits.MaxNodes).
		WithMaxAttrs(c.Limits.MaxAttrs).
		WithMaxBytes(c.Limits.MaxBytes)
}

// RenderOptions maps the render section onto painter options.
func (c Config) RenderOptions() render.Options {
	return render.Options{
		Width:        c.Render.Width,
		PaddingScale: c.Render.PaddingScale,
		ImageCells:   c.Render.ImageCells,
	}
}
