package theme

import (
	"fmt"
	"strings"
)

// CSSVariables renders the [data-theme] and [data-accent] custom-property
// blocks for every theme and accent. The result is appended to the base
// stylesheet at generation time; switching themes is then a pure attribute
// change on the document element.
func CSSVariables() string {
	var b strings.Builder

	for _, t := range Themes {
		fmt.Fprintf(&b, "[data-theme=%q] {\n", t.ID)
		fmt.Fprintf(&b, "  --bg: %s;\n", t.Bg)
		fmt.Fprintf(&b, "  --bg-alt: %s;\n", t.BgAlt)
		fmt.Fprintf(&b, "  --fg: %s;\n", t.Fg)
		fmt.Fprintf(&b, "  --muted: %s;\n", t.Muted)
		fmt.Fprintf(&b, "  --border: %s;\n", t.Border)
		b.WriteString("}\n")
	}

	for _, a := range Accents {
		fmt.Fprintf(&b, "[data-accent=%q] {\n", a.ID)
		fmt.Fprintf(&b, "  --accent: %s;\n", a.Primary)
		fmt.Fprintf(&b, "  --accent-dim: %s;\n", a.Dim)
		b.WriteString("}\n")
	}

	return b.String()
}
