package index

import (
	"path/filepath"
	"testing"
)

func testEntries() []Entry {
	return []Entry{
		{Path: "src/Services/UserService.cs", Name: "UserService.cs", Folder: "src/Services", Language: "C#"},
		{Path: "Program.cs", Name: "Program.cs", Folder: ".", Language: "C#"},
		{Path: "src/App.cs", Name: "App.cs", Folder: "src", Language: "C#"},
	}
}

func TestRebuildAndSearch(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	if err := s.Rebuild(testEntries()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}

	results, err := s.Search("userservice")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Path != "src/Services/UserService.cs" {
		t.Errorf("case-insensitive search failed: %+v", results)
	}
}

func TestSearchOrdering(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	if err := s.Rebuild(testEntries()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	results, err := s.Search("")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := []string{".", "src", "src/Services"}
	if len(results) != len(want) {
		t.Fatalf("results = %d, want %d", len(results), len(want))
	}
	for i, w := range want {
		if results[i].Folder != w {
			t.Errorf("result[%d].Folder = %q, want %q", i, results[i].Folder, w)
		}
	}
}

func TestSearchNoMatches(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	if err := s.Rebuild(testEntries()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	results, err := s.Search("zzz")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
}

func TestRebuildReplaces(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	if err := s.Rebuild(testEntries()); err != nil {
		t.Fatalf("first Rebuild: %v", err)
	}
	if err := s.Rebuild([]Entry{{Path: "only.go", Name: "only.go", Folder: "."}}); err != nil {
		t.Fatalf("second Rebuild: %v", err)
	}

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("count after rebuild = %d, want 1", n)
	}
}

func TestOpenOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "index.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Rebuild(testEntries()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	s.Close()

	// Reopen and verify persistence.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	n, err := s2.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("count after reopen = %d, want 3", n)
	}
}
