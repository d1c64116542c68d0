package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	texttemplate "text/template"
	"time"

	"github.com/google/uuid"

	"docsite/internal/catalog"
	"docsite/internal/index"
	"docsite/internal/progress"
	"docsite/internal/render"
	"docsite/internal/theme"
)

// Sidebar width bounds in CSS pixels, enforced by the generated resize
// handler.
const (
	SidebarMinWidth = 200
	SidebarMaxWidth = 600
)

// Generator builds the full static site from a catalog.
type Generator struct {
	Catalog   *catalog.Catalog
	OutputDir string
	Title     string

	// Theme and Accent are the ids every page starts with.
	Theme  string
	Accent string

	// CodeLanguage forces a fixed highlighter language for code views;
	// empty means infer per file.
	CodeLanguage string

	Reporter progress.Reporter
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title           string
	ProjectName     string
	ThemeID         string
	AccentID        string
	HighlightSheet  string
	BasePath        string
	TreeHTML        template.HTML
	HasFile         bool
	FilePath        string
	FileName        string
	Language        string
	ExplanationHTML template.HTML
	CodeHTML        template.HTML
}

// manifest describes one site build.
type manifest struct {
	BuildID     string `json:"build_id"`
	GeneratedAt string `json:"generated_at"`
	Title       string `json:"title"`
	Theme       string `json:"theme"`
	Accent      string `json:"accent"`
	Pages       int    `json:"pages"`
}

// Generate builds the site. Returns the number of file pages generated.
func (g *Generator) Generate() (int, error) {
	if g.Reporter == nil {
		g.Reporter = progress.NopReporter{}
	}
	if !theme.Valid(g.Theme) {
		g.Theme = theme.DefaultTheme
	}
	if !theme.ValidAccent(g.Accent) {
		g.Accent = theme.DefaultAccent
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	if err := g.writeAssets(); err != nil {
		return 0, err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	// Index page: the idle state before any file is selected.
	if err := g.renderIndex(tmpl); err != nil {
		return 0, fmt.Errorf("rendering index: %w", err)
	}

	// One page per file record.
	total := g.Catalog.Len()
	g.Reporter.Start(total)
	done := 0
	for _, grp := range g.Catalog.OrderedGroups() {
		for _, f := range grp.Files {
			if err := g.renderFilePage(tmpl, f); err != nil {
				return 0, fmt.Errorf("rendering %s: %w", f.Path, err)
			}
			done++
			g.Reporter.Update(done, f.Path)
		}
	}
	g.Reporter.Finish()

	// Search index, both as JSON for tooling and as the SQLite index
	// behind `docsite search` and the serve API.
	entries := BuildSearchIndex(g.Catalog)
	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}
	if err := g.writeSQLiteIndex(entries); err != nil {
		return 0, fmt.Errorf("writing sqlite index: %w", err)
	}

	if err := g.writeManifest(done); err != nil {
		return 0, fmt.Errorf("writing manifest: %w", err)
	}

	return done, nil
}

// writeAssets writes the stylesheet, per-theme highlight stylesheets, and
// the behavior script.
func (g *Generator) writeAssets() error {
	css := cssContent + "\n" + theme.CSSVariables()
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(css), 0o644); err != nil {
		return err
	}

	for _, style := range theme.HighlightStyles() {
		sheet, err := render.HighlightCSS(style)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("highlight-%s.css", style)
		if err := os.WriteFile(filepath.Join(g.OutputDir, name), []byte(sheet), 0o644); err != nil {
			return err
		}
	}

	js, err := buildScript()
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(js), 0o644)
}

// buildScript injects the theme tables and layout bounds into the behavior
// script so the JS never restates what Go already knows.
func buildScript() (string, error) {
	styleMap := make(map[string]string, len(theme.Themes))
	var themeIDs, themeNames []string
	for _, t := range theme.Themes {
		styleMap[t.ID] = theme.HighlightStyle(t.ID)
		themeIDs = append(themeIDs, t.ID)
		themeNames = append(themeNames, t.Name)
	}
	var accentIDs, accentNames, accentColors []string
	for _, a := range theme.Accents {
		accentIDs = append(accentIDs, a.ID)
		accentNames = append(accentNames, a.Name)
		accentColors = append(accentColors, a.Primary)
	}

	asJS := func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	}
	data := map[string]interface{}{
		"MinWidth": SidebarMinWidth,
		"MaxWidth": SidebarMaxWidth,
	}
	for key, v := range map[string]interface{}{
		"StyleMap":     styleMap,
		"ThemeIDs":     themeIDs,
		"ThemeNames":   themeNames,
		"AccentIDs":    accentIDs,
		"AccentNames":  accentNames,
		"AccentColors": accentColors,
	} {
		js, err := asJS(v)
		if err != nil {
			return "", err
		}
		data[key] = js
	}

	var buf bytes.Buffer
	jsTmpl, err := texttemplate.New("script").Delims("/*{", "}*/").Parse(jsContent)
	if err != nil {
		return "", fmt.Errorf("parsing script template: %w", err)
	}
	err = jsTmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing script template: %w", err)
	}
	return buf.String(), nil
}

// renderIndex writes the landing page with the empty-state placeholder.
func (g *Generator) renderIndex(tmpl *template.Template) error {
	data := g.basePage("")
	data.Title = g.Title

	return g.executePage(tmpl, data, filepath.Join(g.OutputDir, "index.html"))
}

// renderFilePage writes the page for a single file record with both the
// explanation and code views pre-rendered. The page loads with the
// explanation view active, which is what makes selecting a file reset the
// view mode.
func (g *Generator) renderFilePage(tmpl *template.Template, f catalog.FileRecord) error {
	pagePath := PagePath(f.Path)

	explanationHTML, err := render.Markdown(f.Explanation)
	if err != nil {
		return err
	}
	codeHTML, err := render.Code(f.Code, f.Path, g.CodeLanguage)
	if err != nil {
		return err
	}

	data := g.basePage(f.Path)
	data.Title = f.Name
	data.HasFile = true
	data.FilePath = f.Path
	data.FileName = f.Name
	data.Language = catalog.DetectLanguage(f.Path)
	data.ExplanationHTML = template.HTML(explanationHTML)
	data.CodeHTML = template.HTML(codeHTML)

	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(pagePath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return g.executePage(tmpl, data, outPath)
}

// basePage fills the fields shared by every page.
func (g *Generator) basePage(activePath string) pageData {
	basePath := ""
	if activePath != "" {
		basePath = baseFor(PagePath(activePath))
	}
	return pageData{
		ProjectName:    g.Title,
		ThemeID:        g.Theme,
		AccentID:       g.Accent,
		HighlightSheet: fmt.Sprintf("highlight-%s.css", theme.HighlightStyle(g.Theme)),
		BasePath:       basePath,
		TreeHTML:       template.HTML(RenderTree(g.Catalog, activePath, basePath)),
	}
}

func (g *Generator) executePage(tmpl *template.Template, data pageData, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, data)
}

// writeSQLiteIndex rebuilds the on-disk search index from the entries.
func (g *Generator) writeSQLiteIndex(entries []SearchEntry) error {
	store, err := index.Open(filepath.Join(g.OutputDir, "index.db"))
	if err != nil {
		return err
	}
	defer store.Close()

	rows := make([]index.Entry, len(entries))
	for i, e := range entries {
		rows[i] = index.Entry{
			Path:     e.Path,
			Name:     e.Name,
			Folder:   e.Folder,
			Language: e.Language,
			Summary:  e.Summary,
		}
	}
	return store.Rebuild(rows)
}

func (g *Generator) writeManifest(pages int) error {
	m := manifest{
		BuildID:     uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Title:       g.Title,
		Theme:       g.Theme,
		Accent:      g.Accent,
		Pages:       pages,
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, "manifest.json"), data, 0o644)
}
