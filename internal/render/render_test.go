package render

import (
	"strings"
	"testing"
)

func TestMarkdownHeading(t *testing.T) {
	out, err := Markdown("# A")
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, ">A</h1>") {
		t.Errorf("heading not rendered: %q", out)
	}
}

func TestMarkdownTable(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	out, err := Markdown(src)
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if !strings.Contains(out, "<table>") || !strings.Contains(out, "<th>a</th>") {
		t.Errorf("GFM table not rendered: %q", out)
	}
}

func TestMarkdownAutolink(t *testing.T) {
	out, err := Markdown("see https://example.com for details")
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if !strings.Contains(out, `<a href="https://example.com"`) {
		t.Errorf("URL not autolinked: %q", out)
	}
}

func TestMarkdownFencedCodeHighlighted(t *testing.T) {
	src := "```go\npackage main\n```\n"
	out, err := Markdown(src)
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if !strings.Contains(out, "chroma") {
		t.Errorf("fenced block not highlighted with chroma classes: %q", out)
	}
	if !strings.Contains(out, "package") {
		t.Errorf("fence content missing: %q", out)
	}
}

func TestMarkdownUnknownFenceLanguage(t *testing.T) {
	src := "```nosuchlang\nplain text\n```\n"
	out, err := Markdown(src)
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if !strings.Contains(out, "plain text") {
		t.Errorf("unknown-language fence content missing: %q", out)
	}
}

func TestMarkdownInlineCode(t *testing.T) {
	out, err := Markdown("use `foo()` here")
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if !strings.Contains(out, "<code>foo()</code>") {
		t.Errorf("inline code span not rendered: %q", out)
	}
}

func TestMarkdownEmptySource(t *testing.T) {
	out, err := Markdown("")
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if strings.TrimSpace(out) != "" {
		t.Errorf("empty source should render empty, got %q", out)
	}
}

func TestCodeLineNumbers(t *testing.T) {
	out, err := Code("class A{}\nclass B{}", "a.cs", "")
	if err != nil {
		t.Fatalf("Code: %v", err)
	}
	if !strings.Contains(out, "class") {
		t.Errorf("source text missing: %q", out)
	}
	// chroma emits line-number spans with the ln class in class mode.
	if !strings.Contains(out, `class="ln"`) && !strings.Contains(out, `class="lnt"`) {
		t.Errorf("line numbers missing: %q", out)
	}
}

func TestCodeLanguageInference(t *testing.T) {
	// Go keywords get keyword token classes when the lexer is matched by path.
	out, err := Code("package main\nfunc main() {}", "main.go", "")
	if err != nil {
		t.Fatalf("Code: %v", err)
	}
	if !strings.Contains(out, "<span") {
		t.Errorf("expected token spans in highlighted Go: %q", out)
	}
}

func TestCodeLanguageOverride(t *testing.T) {
	out, err := Code("class A{}", "a.xyz", "csharp")
	if err != nil {
		t.Fatalf("Code: %v", err)
	}
	if !strings.Contains(out, "class") {
		t.Errorf("override render missing source: %q", out)
	}
}

func TestCodeUnknownPathFallsBack(t *testing.T) {
	out, err := Code("just words", "noext", "")
	if err != nil {
		t.Fatalf("Code: %v", err)
	}
	if !strings.Contains(out, "just words") {
		t.Errorf("fallback render missing source: %q", out)
	}
}

func TestHighlightCSS(t *testing.T) {
	for _, style := range []string{"github", "github-dark", "dracula", "solarized-light"} {
		css, err := HighlightCSS(style)
		if err != nil {
			t.Fatalf("HighlightCSS(%s): %v", style, err)
		}
		if !strings.Contains(css, ".chroma") {
			t.Errorf("stylesheet for %s missing .chroma selectors", style)
		}
	}
}
