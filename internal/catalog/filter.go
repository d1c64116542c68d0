package catalog

import (
	"sort"
	"strings"
)

// Filter derives a view of the catalog containing only files whose display
// name contains term case-insensitively. Grouping of surviving files is
// preserved; groups left empty are dropped from the derived view, never from
// the source catalog. An empty term keeps every file.
func (c *Catalog) Filter(term string) *Catalog {
	needle := strings.ToLower(term)

	out := &Catalog{}
	for _, g := range c.Groups {
		var kept []FileRecord
		for _, f := range g.Files {
			if needle == "" || strings.Contains(strings.ToLower(f.Name), needle) {
				kept = append(kept, f)
			}
		}
		if len(kept) > 0 {
			out.Groups = append(out.Groups, FolderGroup{Folder: g.Folder, Files: kept})
		}
	}
	return out
}

// OrderedGroups returns the non-empty folder groups sorted by ascending
// folder-name length. The sort is stable, so groups with equally long names
// keep their catalog order; the root group "." always sorts first.
func (c *Catalog) OrderedGroups() []FolderGroup {
	var groups []FolderGroup
	for _, g := range c.Groups {
		if len(g.Files) > 0 {
			groups = append(groups, g)
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Folder) < len(groups[j].Folder)
	})
	return groups
}
