package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"docsite/internal/theme"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCSITE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: DOCSITE_THEME -> theme, etc.
	if err := k.Load(env.Provider("DOCSITE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DOCSITE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// normalize repairs values the UI treats as fallbacks rather than errors:
// unknown theme or accent ids revert to the defaults, a nonsensical port
// reverts to the default port.
func (c *Config) normalize() {
	if !theme.Valid(c.Theme) {
		if c.Theme != "" {
			fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %q\n", c.Theme, theme.DefaultTheme)
		}
		c.Theme = theme.DefaultTheme
	}
	if !theme.ValidAccent(c.Accent) {
		if c.Accent != "" {
			fmt.Fprintf(os.Stderr, "Warning: unknown accent %q, using %q\n", c.Accent, theme.DefaultAccent)
		}
		c.Accent = theme.DefaultAccent
	}
	if c.Port <= 0 || c.Port > 65535 {
		c.Port = DefaultConfig().Port
	}
	if c.Data == "" {
		c.Data = DefaultConfig().Data
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultConfig().OutputDir
	}
}
