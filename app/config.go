// Package app provides window configuration and the run loop of a slate
// application.
//
// The actual windowing/input binding is pluggable: drivers register
// themselves in an init function (importing a driver package is enough to
// make it available), and Run picks the best registered driver. The
// default build registers the Ebitengine driver and a headless driver for
// tests and tools.
package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the application window and timing setup.
type Config struct {
	// Title is the window title.
	Title string `yaml:"title"`

	// Width and Height are the logical frame dimensions in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Fullscreen opens the window in fullscreen mode.
	Fullscreen bool `yaml:"fullscreen"`

	// Resizable allows the user to resize the window; the logical frame
	// keeps its configured size and is scaled to fit.
	Resizable bool `yaml:"resizable"`

	// TPS is the number of Update calls per second. Zero means the
	// driver default (60).
	TPS int `yaml:"tps"`

	// SampleRate is the audio sample rate in Hz handed to the audio
	// layer. Zero means 44100.
	SampleRate int `yaml:"sample_rate"`
}

// DefaultConfig returns a 640x480 windowed configuration.
func DefaultConfig() Config {
	return Config{
		Title:      "slate",
		Width:      640,
		Height:     480,
		TPS:        60,
		SampleRate: 44100,
	}
}

// LoadConfig reads a YAML configuration file. Missing keys keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("app: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("app: unmarshal config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values no driver can honor.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("app: invalid frame size %dx%d", c.Width, c.Height)
	}
	if c.TPS < 0 {
		return fmt.Errorf("app: invalid tps %d", c.TPS)
	}
	if c.SampleRate < 0 {
		return fmt.Errorf("app: invalid sample rate %d", c.SampleRate)
	}
	return nil
}
