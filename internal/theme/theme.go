// Package theme holds the fixed theme and accent tables for the generated
// site. It is the only writer of the shared presentation variables: the
// generator embeds its output into the stylesheet, and nothing else defines
// data-theme or data-accent rules.
package theme

// Theme is a named light/dark presentation mode paired with a syntax
// highlighter style table.
type Theme struct {
	ID   string
	Name string
	Dark bool

	// Palette applied through CSS custom properties.
	Bg     string
	BgAlt  string
	Fg     string
	Muted  string
	Border string
}

// Accent is a named color pair applied to interactive highlight styling.
type Accent struct {
	ID      string
	Name    string
	Primary string
	Dim     string
}

const (
	DefaultTheme  = "github"
	DefaultAccent = "emerald"
)

// Themes is the fixed theme enumeration, in picker order.
var Themes = []Theme{
	{ID: "github", Name: "GitHub Light", Dark: false,
		Bg: "#ffffff", BgAlt: "#f6f8fa", Fg: "#1f2328", Muted: "#656d76", Border: "#d1d9e0"},
	{ID: "github-dark", Name: "GitHub Dark", Dark: true,
		Bg: "#0d1117", BgAlt: "#161b22", Fg: "#e6edf3", Muted: "#8b949e", Border: "#30363d"},
	{ID: "vscode-dark", Name: "VS Code Dark", Dark: true,
		Bg: "#1e1e1e", BgAlt: "#252526", Fg: "#d4d4d4", Muted: "#858585", Border: "#3c3c3c"},
	{ID: "dracula", Name: "Dracula", Dark: true,
		Bg: "#282a36", BgAlt: "#343746", Fg: "#f8f8f2", Muted: "#6272a4", Border: "#44475a"},
	{ID: "solarized-light", Name: "Solarized Light", Dark: false,
		Bg: "#fdf6e3", BgAlt: "#eee8d5", Fg: "#657b83", Muted: "#93a1a1", Border: "#d9d2c2"},
}

// Accents is the fixed accent enumeration, in picker order.
var Accents = []Accent{
	{ID: "blue", Name: "Blue", Primary: "#3b82f6", Dim: "#60a5fa"},
	{ID: "purple", Name: "Purple", Primary: "#8b5cf6", Dim: "#a78bfa"},
	{ID: "emerald", Name: "Emerald", Primary: "#10b981", Dim: "#34d399"},
	{ID: "orange", Name: "Orange", Primary: "#f97316", Dim: "#fb923c"},
	{ID: "rose", Name: "Rose", Primary: "#f43f5e", Dim: "#fb7185"},
}

// Lookup returns the theme with the given id, falling back to the default
// theme for unknown ids.
func Lookup(id string) Theme {
	for _, t := range Themes {
		if t.ID == id {
			return t
		}
	}
	return Lookup(DefaultTheme)
}

// LookupAccent returns the accent with the given id, falling back to the
// default accent for unknown ids.
func LookupAccent(id string) Accent {
	for _, a := range Accents {
		if a.ID == id {
			return a
		}
	}
	return LookupAccent(DefaultAccent)
}

// Valid reports whether id names a known theme.
func Valid(id string) bool {
	for _, t := range Themes {
		if t.ID == id {
			return true
		}
	}
	return false
}

// ValidAccent reports whether id names a known accent.
func ValidAccent(id string) bool {
	for _, a := range Accents {
		if a.ID == id {
			return true
		}
	}
	return false
}

// HighlightStyle maps a theme id to its chroma style table. Dracula and
// Solarized always select their own tables; every other theme selects by its
// dark/light flag.
func HighlightStyle(id string) string {
	switch id {
	case "dracula":
		return "dracula"
	case "solarized-light":
		return "solarized-light"
	}
	if Lookup(id).Dark {
		return "github-dark"
	}
	return "github"
}

// HighlightStyles returns the distinct chroma style names referenced by the
// theme table, in theme order. The generator writes one stylesheet per entry.
func HighlightStyles() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range Themes {
		s := HighlightStyle(t.ID)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
