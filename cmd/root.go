package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docsite",
	Short: "Static documentation browser for precomputed code explanations",
	Long: `Docsite turns a docData.json catalog of per-file explanations and
source code into a self-contained static website with a folder tree,
markdown and highlighted code views, themes, and search. It can also
serve the site locally and expose the catalog to AI agents via MCP.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".docsite.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
