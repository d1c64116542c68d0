package cmd

import (
	"fmt"

	"docsite/internal/catalog"
	"docsite/internal/config"
)

// loadConfig loads the configuration from the --config path.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// loadCatalog reads the catalog named by the config, applying its
// include and exclude globs.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	c, err := catalog.LoadFiltered(cfg.Data, cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", cfg.Data, err)
	}
	return c, nil
}
