package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"docsite/internal/catalog"
	"docsite/internal/index"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search the documentation catalog by file name",
	Long:  `Searches the generated SQLite index (or the catalog directly when no site has been built) for files whose name contains the given term.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	results, err := searchResults(cfg.OutputDir, cfg.Data, cfg.Include, cfg.Exclude, term)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Printf("Found %d result(s):\n\n", len(results))
	for i, r := range results {
		fmt.Printf("  %d. %s [%s]\n", i+1, r.Path, r.Language)
		if r.Summary != "" {
			fmt.Printf("     %s\n", r.Summary)
		}
	}
	return nil
}

// searchResults answers the query from the SQLite index when one exists,
// otherwise by filtering the catalog in memory.
func searchResults(outputDir, dataPath string, include, exclude []string, term string) ([]index.Entry, error) {
	indexPath := filepath.Join(outputDir, "index.db")
	if _, err := os.Stat(indexPath); err == nil {
		store, err := index.Open(indexPath)
		if err != nil {
			return nil, fmt.Errorf("opening search index: %w", err)
		}
		defer store.Close()
		return store.Search(term)
	}

	c, err := catalog.LoadFiltered(dataPath, include, exclude)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", dataPath, err)
	}

	var results []index.Entry
	for _, g := range c.Filter(term).OrderedGroups() {
		for _, f := range g.Files {
			results = append(results, index.Entry{
				Path:     f.Path,
				Name:     f.Name,
				Folder:   g.Folder,
				Language: catalog.DetectLanguage(f.Path),
			})
		}
	}
	return results, nil
}
