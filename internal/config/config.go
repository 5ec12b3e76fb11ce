// Package config holds the settings of a gallery run: where the images
// live, how many there are, how they are hung and which theme paints
// them.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mr-Dark-debug/polaroid/internal/decor"
	"github.com/Mr-Dark-debug/polaroid/internal/layout"
	"github.com/Mr-Dark-debug/polaroid/internal/photo"
	"github.com/Mr-Dark-debug/polaroid/internal/theme"

	"gopkg.in/yaml.v3"
)

// Decorations sets how many of each ambient decoration are generated.
type Decorations struct {
	Confetti int `yaml:"confetti"`
	Glyphs   int `yaml:"glyphs"`
	Balloons int `yaml:"balloons"`
}

// Config holds configuration for a gallery run.
type Config struct {
	// ImageDir holds <id>.<ImageExt> files.
	ImageDir string `yaml:"image_dir"`
	ImageExt string `yaml:"image_ext"`

	// Count is the number of photos; IDs run 1..Count.
	Count int `yaml:"count"`

	// Theme names a built-in theme. ThemeFile, when set, wins.
	Theme     string `yaml:"theme"`
	ThemeFile string `yaml:"theme_file"`

	// Seed fixes the random cosmetic fields. Zero draws a fresh seed.
	Seed uint64 `yaml:"seed"`

	GroupSize int `yaml:"group_size"`
	SpacingPx int `yaml:"spacing_px"`
	Bulbs     int `yaml:"bulbs"`

	Decorations Decorations `yaml:"decorations"`

	// LogPath is where the structured log is written.
	LogPath string `yaml:"log_path"`
	Debug   bool   `yaml:"debug"`
}

// DefaultConfig returns the stock gallery: 100 photos in images/, six to a string.
func DefaultConfig() Config {
	counts := decor.DefaultCounts()
	return Config{
		ImageDir:  "images",
		ImageExt:  "png",
		Count:     photo.DefaultCount,
		Theme:     theme.DefaultName,
		GroupSize: layout.DefaultGroupSize,
		SpacingPx: layout.DefaultSpacingPx,
		Bulbs:     layout.DefaultBulbs,
		Decorations: Decorations{
			Confetti: counts.Confetti,
			Glyphs:   counts.Glyphs,
			Balloons: counts.Balloons,
		},
		LogPath: filepath.Join(os.TempDir(), "polaroid.log"),
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges.
func (c Config) Validate() error {
	switch {
	case c.Count < 1:
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	case c.GroupSize < 1:
		return fmt.Errorf("group_size must be at least 1, got %d", c.GroupSize)
	case c.SpacingPx < 0:
		return fmt.Errorf("spacing_px must not be negative, got %d", c.SpacingPx)
	case c.Bulbs < 0:
		return fmt.Errorf("bulbs must not be negative, got %d", c.Bulbs)
	case c.Decorations.Confetti < 0 || c.Decorations.Glyphs < 0 || c.Decorations.Balloons < 0:
		return fmt.Errorf("decoration counts must not be negative")
	case c.ImageExt == "":
		return fmt.Errorf("image_ext is required")
	}
	return nil
}

// ResolveTheme loads the configured theme.
func (c Config) ResolveTheme() (theme.Theme, error) {
	if c.ThemeFile != "" {
		return theme.Load(c.ThemeFile)
	}
	name := c.Theme
	if name == "" {
		name = theme.DefaultName
	}
	return theme.Builtin(name)
}

// PhotoOptions derives photo generation options for a theme.
func (c Config) PhotoOptions(th theme.Theme) photo.Options {
	return photo.Options{
		Dir:       c.ImageDir,
		Ext:       c.ImageExt,
		AltPrefix: th.AltPrefix,
	}
}

// DecorCounts converts the decoration settings.
func (c Config) DecorCounts() decor.Counts {
	return decor.Counts{
		Confetti: c.Decorations.Confetti,
		Glyphs:   c.Decorations.Glyphs,
		Balloons: c.Decorations.Balloons,
	}
}
