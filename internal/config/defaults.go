package config

import "docsite/internal/theme"

// DefaultConfig returns the configuration used when no .docsite.yml exists.
func DefaultConfig() *Config {
	return &Config{
		Data:      "docData.json",
		OutputDir: "site",
		Title:     "Documentation",
		Theme:     theme.DefaultTheme,
		Accent:    theme.DefaultAccent,
		Port:      8080,
	}
}
