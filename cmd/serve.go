package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"docsite/internal/index"
	"docsite/internal/progress"
	"docsite/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation site locally",
	Long:  `Starts a local HTTP server for the generated site, with JSON endpoints for the catalog and search. Generates the site first if it does not exist yet.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}
	if open, _ := cmd.Flags().GetBool("open"); open {
		cfg.Open = true
	}

	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	// Build the site on first run.
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "index.html")); os.IsNotExist(err) {
		fmt.Printf("No site found at %s, generating it first.\n", cfg.OutputDir)
		g := &site.Generator{
			Catalog:      c,
			OutputDir:    cfg.OutputDir,
			Title:        cfg.Title,
			Theme:        cfg.Theme,
			Accent:       cfg.Accent,
			CodeLanguage: cfg.CodeLanguage,
			Reporter:     progress.NewReporter(),
		}
		if _, err := g.Generate(); err != nil {
			return fmt.Errorf("generating site: %w", err)
		}
	}

	// Prefer the SQLite index for search when the build produced one.
	var store *index.Store
	indexPath := filepath.Join(cfg.OutputDir, "index.db")
	if _, err := os.Stat(indexPath); err == nil {
		store, err = index.Open(indexPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open search index %s: %v\n", indexPath, err)
			fmt.Fprintln(os.Stderr, "Falling back to in-memory search.")
			store = nil
		} else {
			defer store.Close()
		}
	}

	return site.Serve(site.ServeOptions{
		Dir:     cfg.OutputDir,
		Port:    cfg.Port,
		Open:    cfg.Open,
		Catalog: c,
		Index:   store,
	})
}
