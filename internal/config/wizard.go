package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"docsite/internal/theme"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .docsite.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to docsite! Let's configure your documentation site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Catalog data file.
	dataPrompt := promptui.Prompt{
		Label:   "Catalog data file",
		Default: cfg.Data,
	}
	data, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data file: %w", err)
	}
	cfg.Data = strings.TrimSpace(data)

	// 2. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = strings.TrimSpace(title)

	// 3. Theme selection.
	themeItems := make([]string, len(theme.Themes))
	for i, t := range theme.Themes {
		themeItems[i] = fmt.Sprintf("%-16s %s", t.ID, t.Name)
	}
	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: themeItems,
	}
	themeIdx, _, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Theme = theme.Themes[themeIdx].ID

	// 4. Accent selection.
	accentItems := make([]string, len(theme.Accents))
	for i, a := range theme.Accents {
		accentItems[i] = fmt.Sprintf("%-8s %s", a.ID, a.Primary)
	}
	accentPrompt := promptui.Select{
		Label: "Default accent",
		Items: accentItems,
	}
	accentIdx, _, err := accentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("accent selection: %w", err)
	}
	cfg.Accent = theme.Accents[accentIdx].ID

	// 5. Dev server port.
	portPrompt := promptui.Prompt{
		Label:   "Dev server port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	if err := cfg.Save(".docsite.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration saved to .docsite.yml")
	fmt.Println("Run `docsite build` to generate the site.")

	return cfg, nil
}
