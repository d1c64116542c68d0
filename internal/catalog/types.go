package catalog

// FileRecord is one documented source file from the catalog. Records are
// produced entirely by the external documentation extractor and are never
// mutated after load.
type FileRecord struct {
	// Path is the file's repository-relative path and serves as its
	// identity key; it is unique within the catalog.
	Path string `json:"path"`

	// Name is the display label shown in the file tree.
	Name string `json:"name"`

	// Explanation is markdown-formatted prose describing the file.
	Explanation string `json:"explanation"`

	// Code is the full raw source text.
	Code string `json:"code"`
}

// FolderGroup is an ordered collection of file records under one folder.
// The folder "." denotes the root group.
type FolderGroup struct {
	Folder string       `json:"folder"`
	Files  []FileRecord `json:"files"`
}

// Catalog is the ordered collection of folder groups driving the whole site.
type Catalog struct {
	Groups []FolderGroup
}

// Len returns the total number of file records across all groups.
func (c *Catalog) Len() int {
	n := 0
	for _, g := range c.Groups {
		n += len(g.Files)
	}
	return n
}

// Lookup finds a record by its path. The bool result reports whether the
// path exists in the catalog.
func (c *Catalog) Lookup(path string) (FileRecord, bool) {
	for _, g := range c.Groups {
		for _, f := range g.Files {
			if f.Path == path {
				return f, true
			}
		}
	}
	return FileRecord{}, false
}
