package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docsite/internal/catalog"
	"docsite/internal/index"
	"docsite/internal/progress"
)

func generateTestSite(t *testing.T, c *catalog.Catalog) string {
	t.Helper()
	out := t.TempDir()
	g := &Generator{
		Catalog:   c,
		OutputDir: out,
		Title:     "Test Project",
		Theme:     "github",
		Accent:    "emerald",
		Reporter:  progress.NopReporter{},
	}
	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != c.Len() {
		t.Errorf("pages = %d, want %d", n, c.Len())
	}
	return out
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestGenerateScenario(t *testing.T) {
	// Single-record catalog: one root group, one file.
	c := &catalog.Catalog{Groups: []catalog.FolderGroup{
		{Folder: ".", Files: []catalog.FileRecord{
			{Path: "a.cs", Name: "a.cs", Explanation: "# A", Code: "class A{}"},
		}},
	}}
	out := generateTestSite(t, c)

	page := readFile(t, filepath.Join(out, "files", "a.cs.html"))
	if !strings.Contains(page, "<h1") || !strings.Contains(page, ">A</h1>") {
		t.Error("explanation heading A not rendered")
	}
	// Highlighting splits the source across token spans, so match the
	// pieces rather than the raw text.
	if !strings.Contains(page, ">A</span>") || !strings.Contains(page, "{}") {
		t.Error("code view content missing")
	}
	// Line numbers present in the code view.
	if !strings.Contains(page, `"ln"`) && !strings.Contains(page, `"lnt"`) {
		t.Error("code view missing line numbers")
	}
	// Explanation is the active view on load.
	if !strings.Contains(page, `class="view markdown-body active"`) {
		t.Error("explanation view should start active")
	}
	if strings.Contains(page, `class="view code-view active"`) {
		t.Error("code view should not start active")
	}
	// Sidebar shows the root group with the file.
	if !strings.Contains(page, `data-folder="."`) {
		t.Error("root group missing from sidebar")
	}
	if !strings.Contains(page, ">a.cs</a>") {
		t.Error("file row missing from sidebar")
	}
}

func TestGenerateIndexIsIdleState(t *testing.T) {
	out := generateTestSite(t, testCatalog())

	html := readFile(t, filepath.Join(out, "index.html"))
	if !strings.Contains(html, "empty-state") {
		t.Error("index page should carry the empty state placeholder")
	}
	if !strings.Contains(html, "Select a file") {
		t.Error("placeholder text missing")
	}
	if strings.Contains(html, "view-tabs") {
		t.Error("idle page should not show view tabs")
	}
}

func TestGenerateAssets(t *testing.T) {
	out := generateTestSite(t, testCatalog())

	css := readFile(t, filepath.Join(out, "style.css"))
	for _, id := range []string{"github", "github-dark", "vscode-dark", "dracula", "solarized-light"} {
		if !strings.Contains(css, `[data-theme="`+id+`"]`) {
			t.Errorf("style.css missing theme block %q", id)
		}
	}
	for _, id := range []string{"blue", "purple", "emerald", "orange", "rose"} {
		if !strings.Contains(css, `[data-accent="`+id+`"]`) {
			t.Errorf("style.css missing accent block %q", id)
		}
	}

	for _, style := range []string{"github", "github-dark", "dracula", "solarized-light"} {
		sheet := readFile(t, filepath.Join(out, "highlight-"+style+".css"))
		if !strings.Contains(sheet, ".chroma") {
			t.Errorf("highlight-%s.css missing chroma selectors", style)
		}
	}

	js := readFile(t, filepath.Join(out, "script.js"))
	if !strings.Contains(js, "SIDEBAR_MIN = 200") || !strings.Contains(js, "SIDEBAR_MAX = 600") {
		t.Error("script.js missing sidebar width bounds")
	}
	if !strings.Contains(js, `"dracula":"dracula"`) {
		t.Error("script.js missing highlight style map")
	}
	if !strings.Contains(js, `"vscode-dark":"github-dark"`) {
		t.Error("script.js missing dark-theme style mapping")
	}
	// Every placeholder expands; no template delimiters survive.
	if strings.Contains(js, "/*{") {
		t.Error("script.js contains unexpanded placeholders")
	}
}

func TestGenerateDefaultHighlightSheet(t *testing.T) {
	out := t.TempDir()
	g := &Generator{
		Catalog:   testCatalog(),
		OutputDir: out,
		Title:     "T",
		Theme:     "dracula",
		Accent:    "rose",
	}
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	html := readFile(t, filepath.Join(out, "index.html"))
	if !strings.Contains(html, `data-theme="dracula"`) {
		t.Error("configured theme not applied to page")
	}
	if !strings.Contains(html, `data-accent="rose"`) {
		t.Error("configured accent not applied to page")
	}
	if !strings.Contains(html, "highlight-dracula.css") {
		t.Error("default highlight sheet should follow the configured theme")
	}
}

func TestGenerateUnknownThemeFallsBack(t *testing.T) {
	out := t.TempDir()
	g := &Generator{
		Catalog:   testCatalog(),
		OutputDir: out,
		Title:     "T",
		Theme:     "neon",
		Accent:    "teal",
	}
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	html := readFile(t, filepath.Join(out, "index.html"))
	if !strings.Contains(html, `data-theme="github"`) || !strings.Contains(html, `data-accent="emerald"`) {
		t.Error("unknown ids should fall back to defaults")
	}
}

func TestGenerateManifest(t *testing.T) {
	out := generateTestSite(t, testCatalog())

	var m struct {
		BuildID string `json:"build_id"`
		Pages   int    `json:"pages"`
		Theme   string `json:"theme"`
	}
	data := readFile(t, filepath.Join(out, "manifest.json"))
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		t.Fatalf("decoding manifest: %v", err)
	}
	if m.BuildID == "" {
		t.Error("manifest missing build id")
	}
	if m.Pages != 2 {
		t.Errorf("manifest pages = %d, want 2", m.Pages)
	}
	if m.Theme != "github" {
		t.Errorf("manifest theme = %q", m.Theme)
	}
}

func TestGenerateSQLiteIndex(t *testing.T) {
	out := generateTestSite(t, testCatalog())

	store, err := index.Open(filepath.Join(out, "index.db"))
	if err != nil {
		t.Fatalf("opening generated index: %v", err)
	}
	defer store.Close()

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("indexed files = %d, want 2", n)
	}

	results, err := store.Search("userservice")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Path != "src/Services/UserService.cs" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestGenerateSearchIndexJSON(t *testing.T) {
	out := generateTestSite(t, testCatalog())

	var entries []SearchEntry
	data := readFile(t, filepath.Join(out, "search-index.json"))
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		t.Fatalf("decoding search index: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("entries = %d, want 2", len(entries))
	}
}
