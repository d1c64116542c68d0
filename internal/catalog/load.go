package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Load reads a catalog JSON file: an ordered array of folder groups, each
// with a folder name and an ordered list of file records. The UI performs no
// schema validation; missing fields simply decode to empty strings.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var groups []FolderGroup
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", path, err)
	}

	return &Catalog{Groups: groups}, nil
}

// LoadFiltered loads a catalog and drops records whose paths do not match
// the include patterns or do match the exclude patterns. Empty pattern
// lists include everything and exclude nothing. Group order and in-group
// file order are preserved.
func LoadFiltered(path string, include, exclude []string) (*Catalog, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	if len(include) == 0 && len(exclude) == 0 {
		return c, nil
	}

	out := &Catalog{}
	for _, g := range c.Groups {
		var kept []FileRecord
		for _, f := range g.Files {
			if !matchesAny(f.Path, include, true) {
				continue
			}
			if matchesAny(f.Path, exclude, false) {
				continue
			}
			kept = append(kept, f)
		}
		out.Groups = append(out.Groups, FolderGroup{Folder: g.Folder, Files: kept})
	}
	return out, nil
}

// matchesAny checks relPath against a set of glob patterns. emptyResult is
// returned when the pattern list is empty, so includes default to true and
// excludes to false.
func matchesAny(relPath string, patterns []string, emptyResult bool) bool {
	if len(patterns) == 0 {
		return emptyResult
	}
	normalized := filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}
		// Also match against the bare filename so patterns like "*.cs" work.
		if matched, err := doublestar.PathMatch(pattern, filepath.Base(normalized)); err == nil && matched {
			return true
		}
	}
	return false
}
