package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"docsite/internal/progress"
	"docsite/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static documentation site",
	Long:  `Reads the docData.json catalog and generates a self-contained static HTML site with the folder tree, explanation and code views, themes, and a search index.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().String("theme", "", "override the configured theme")
	buildCmd.Flags().String("accent", "", "override the configured accent")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	if th, _ := cmd.Flags().GetString("theme"); th != "" {
		cfg.Theme = th
	}
	if ac, _ := cmd.Flags().GetString("accent"); ac != "" {
		cfg.Accent = ac
	}

	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	if c.Len() == 0 {
		fmt.Println("Catalog is empty; generating the site shell only.")
	}

	g := &site.Generator{
		Catalog:      c,
		OutputDir:    cfg.OutputDir,
		Title:        cfg.Title,
		Theme:        cfg.Theme,
		Accent:       cfg.Accent,
		CodeLanguage: cfg.CodeLanguage,
		Reporter:     progress.NewReporter(),
	}
	pages, err := g.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", cfg.OutputDir, pages)
	return nil
}
