// Package config loads shade's layered YAML configuration.
//
// Values are resolved in order, later layers overriding earlier ones:
//
//  1. built-in defaults
//  2. the user file, ~/.config/shade/config.yaml
//  3. the project file, ./.shade/config.yaml
//
// When an explicit path is given only the defaults and that file are used.
// Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/jmylchreest/shade/internal/colour"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Colour modes.
const (
	ColourAuto   = "auto"
	ColourAlways = "always"
	ColourNever  = "never"
)

const (
	userConfigDir    = ".config/shade"
	projectConfigDir = ".shade"
	configFileName   = "config.yaml"
)

// For mocking in tests.
var (
	osUserHomeDir = os.UserHomeDir
	osGetwd       = os.Getwd
)

// Config holds the user-tunable settings.
type Config struct {
	WebSafe         bool    `yaml:"web_safe"`
	AnalogousSpread float64 `yaml:"analogous_spread"`
	Format          string  `yaml:"format"`
	Colour          string  `yaml:"colour"`
	ChartWidth      int     `yaml:"chart_width"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		WebSafe:         false,
		AnalogousSpread: colour.DefaultAnalogousSpread,
		Format:          FormatText,
		Colour:          ColourAuto,
		ChartWidth:      50,
	}
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if !slices.Contains([]string{FormatText, FormatTable, FormatJSON}, c.Format) {
		return fmt.Errorf("unsupported format: %s (supported: text, table, json)", c.Format)
	}
	if !slices.Contains([]string{ColourAuto, ColourAlways, ColourNever}, c.Colour) {
		return fmt.Errorf("unsupported colour mode: %s (supported: auto, always, never)", c.Colour)
	}
	if c.AnalogousSpread <= 0 || c.AnalogousSpread > 180 {
		return fmt.Errorf("analogous spread must be in (0, 180], got %v", c.AnalogousSpread)
	}
	if c.ChartWidth < 10 {
		return fmt.Errorf("chart width must be at least 10, got %d", c.ChartWidth)
	}
	return nil
}

// Load resolves the configuration. If path is non-empty it must exist and is
// the only file read; otherwise the user and project files are layered when
// present. The result is not validated: flags may still override it, so
// callers run Validate once overrides are applied.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := overlayFile(&cfg, path); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	for _, locate := range []func() (string, error){getUserConfigPath, getProjectConfigPath} {
		p, err := locate()
		if err != nil {
			// Optional layer; nothing to read.
			continue
		}
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := overlayFile(&cfg, p); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// overlayFile decodes a YAML file over cfg. Keys absent from the file keep
// their current values.
func overlayFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}
