package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildSearchIndex(t *testing.T) {
	entries := BuildSearchIndex(testCatalog())

	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	// Tree order: root group first.
	if entries[0].Path != "Program.cs" {
		t.Errorf("first entry = %q, want Program.cs", entries[0].Path)
	}
	if entries[0].Title != "Entry" {
		t.Errorf("title = %q, want Entry (from # heading)", entries[0].Title)
	}
	if entries[0].Language != "C#" {
		t.Errorf("language = %q, want C#", entries[0].Language)
	}
	if entries[0].Page != "files/Program.cs.html" {
		t.Errorf("page = %q", entries[0].Page)
	}
}

func TestExtractTitleFallsBackToName(t *testing.T) {
	if got := extractTitle("no heading here", "fallback.cs"); got != "fallback.cs" {
		t.Errorf("extractTitle = %q, want fallback.cs", got)
	}
	if got := extractTitle("# Heading\nbody", "x"); got != "Heading" {
		t.Errorf("extractTitle = %q, want Heading", got)
	}
}

func TestExtractSummary(t *testing.T) {
	expl := "# Title\n\nThis service manages users.\n\nMore detail."
	if got := extractSummary(expl); got != "This service manages users." {
		t.Errorf("extractSummary = %q", got)
	}
	if got := extractSummary("# Only heading"); got != "" {
		t.Errorf("heading-only explanation should have empty summary, got %q", got)
	}
}

func TestWriteSearchIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-index.json")
	entries := BuildSearchIndex(testCatalog())

	if err := WriteSearchIndex(entries, path); err != nil {
		t.Fatalf("WriteSearchIndex: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading index: %v", err)
	}
	var decoded []SearchEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding index: %v", err)
	}
	if len(decoded) != len(entries) {
		t.Errorf("round-trip entries = %d, want %d", len(decoded), len(entries))
	}
}
