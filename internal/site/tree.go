package site

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"docsite/internal/catalog"
)

// RenderTree renders the sidebar file tree for a catalog as HTML. Non-empty
// folder groups appear in ascending folder-name-length order, each one
// collapsible and expanded by default. The file whose path equals activePath
// gets the active class. basePath is the relative prefix back to the site
// root (e.g. "../../" for a page two levels deep).
func RenderTree(c *catalog.Catalog, activePath, basePath string) string {
	var b strings.Builder

	b.WriteString(`<ul class="tree">` + "\n")
	for _, g := range c.OrderedGroups() {
		fmt.Fprintf(&b, `<li class="group expanded" data-folder="%s">`+"\n", html.EscapeString(g.Folder))
		fmt.Fprintf(&b, `<button type="button" class="group-toggle"><span class="group-arrow"></span>%s</button>`+"\n",
			html.EscapeString(groupLabel(g.Folder)))
		b.WriteString(`<ul class="group-files">` + "\n")
		for _, f := range g.Files {
			active := ""
			if f.Path == activePath {
				active = " active"
			}
			fmt.Fprintf(&b, `<li class="file%s"><a href="%s%s" data-name="%s">%s</a></li>`+"\n",
				active,
				basePath,
				escapePath(PagePath(f.Path)),
				html.EscapeString(strings.ToLower(f.Name)),
				html.EscapeString(f.Name))
		}
		b.WriteString("</ul>\n</li>\n")
	}
	b.WriteString("</ul>\n")

	return b.String()
}

// groupLabel returns the display label for a folder group. The root group
// "." is labelled with a plain slash.
func groupLabel(folder string) string {
	if folder == "." {
		return "/"
	}
	return folder
}

// PagePath maps a catalog file path to its generated page path.
func PagePath(filePath string) string {
	return "files/" + filePath + ".html"
}

// baseFor computes the relative prefix from a generated page back to the
// site root.
func baseFor(pagePath string) string {
	return strings.Repeat("../", strings.Count(pagePath, "/"))
}

// escapePath percent-encodes a slash-separated path for use in an href.
func escapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
