package render

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// codeFormatter renders full-source views with line numbers. Classes instead
// of inline styles, for the same reason as the markdown fences.
var codeFormatter = chromahtml.New(
	chromahtml.WithClasses(true),
	chromahtml.WithLineNumbers(true),
)

// Code renders a file's raw source as highlighted HTML with line numbers.
// The lexer is inferred from the file path; a non-empty langOverride forces
// a fixed language instead. Unrecognized files use the plaintext fallback.
func Code(source, path, langOverride string) (string, error) {
	lexer := lexerFor(path, langOverride)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("tokenising %s: %w", path, err)
	}

	var buf bytes.Buffer
	// The style argument is unused in class mode but required by the API.
	if err := codeFormatter.Format(&buf, styles.Fallback, iterator); err != nil {
		return "", fmt.Errorf("formatting %s: %w", path, err)
	}
	return buf.String(), nil
}

// lexerFor picks the chroma lexer for a file.
func lexerFor(path, langOverride string) chroma.Lexer {
	var lexer chroma.Lexer
	if langOverride != "" {
		lexer = lexers.Get(langOverride)
	} else {
		lexer = lexers.Match(path)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// HighlightCSS returns the stylesheet for a named chroma style. Unknown
// names resolve to chroma's fallback style.
func HighlightCSS(styleName string) (string, error) {
	style := styles.Get(styleName)

	var buf bytes.Buffer
	if err := codeFormatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("writing css for style %s: %w", styleName, err)
	}
	return buf.String(), nil
}
