package site

import (
	"encoding/json"
	"os"
	"strings"

	"docsite/internal/catalog"
)

// SearchEntry represents a single searchable file in the generated site.
type SearchEntry struct {
	Page     string `json:"page"`
	Path     string `json:"path"`
	Name     string `json:"name"`
	Folder   string `json:"folder"`
	Title    string `json:"title"`
	Language string `json:"language"`
	Summary  string `json:"summary"`
}

// BuildSearchIndex derives search entries from the catalog, one per file
// record, in rendered-tree order.
func BuildSearchIndex(c *catalog.Catalog) []SearchEntry {
	var entries []SearchEntry
	for _, g := range c.OrderedGroups() {
		for _, f := range g.Files {
			entries = append(entries, SearchEntry{
				Page:     PagePath(f.Path),
				Path:     f.Path,
				Name:     f.Name,
				Folder:   g.Folder,
				Title:    extractTitle(f.Explanation, f.Name),
				Language: catalog.DetectLanguage(f.Path),
				Summary:  extractSummary(f.Explanation),
			})
		}
	}
	return entries
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// extractTitle pulls the first # heading from markdown content, or falls
// back to the given name.
func extractTitle(explanation, fallback string) string {
	for _, line := range strings.Split(explanation, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return fallback
}

// extractSummary returns the first non-empty, non-heading line of the
// explanation, truncated to a reasonable length.
func extractSummary(explanation string) string {
	for _, line := range strings.Split(explanation, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len(line) > 200 {
			return line[:200] + "..."
		}
		return line
	}
	return ""
}
