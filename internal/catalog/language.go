package catalog

import (
	"path/filepath"
	"strings"
)

// extensionToLanguage maps file extensions to display-language names.
var extensionToLanguage = map[string]string{
	".go":    "Go",
	".py":    "Python",
	".ts":    "TypeScript",
	".tsx":   "TypeScript",
	".js":    "JavaScript",
	".jsx":   "JavaScript",
	".mjs":   "JavaScript",
	".java":  "Java",
	".rs":    "Rust",
	".c":     "C",
	".h":     "C",
	".cpp":   "C++",
	".cc":    "C++",
	".hpp":   "C++",
	".cs":    "C#",
	".rb":    "Ruby",
	".php":   "PHP",
	".swift": "Swift",
	".kt":    "Kotlin",
	".scala": "Scala",
	".sh":    "Shell",
	".bash":  "Shell",
	".sql":   "SQL",
	".html":  "HTML",
	".css":   "CSS",
	".scss":  "CSS",
	".yaml":  "YAML",
	".yml":   "YAML",
	".json":  "JSON",
	".toml":  "TOML",
	".md":    "Markdown",
	".proto": "Protobuf",
	".lua":   "Lua",
	".dart":  "Dart",
	".ex":    "Elixir",
	".hs":    "Haskell",
	".vue":   "Vue",
}

// filenameToLanguage maps specific filenames to language names.
var filenameToLanguage = map[string]string{
	"Dockerfile": "Dockerfile",
	"Makefile":   "Makefile",
	"Gemfile":    "Ruby",
	"Rakefile":   "Ruby",
}

// DetectLanguage returns the display language for a file path based on its
// extension or exact filename. Returns "unknown" for unrecognized files.
// The syntax highlighter picks its lexer separately; this name is used for
// the search index, the build manifest, and agent-facing output.
func DetectLanguage(path string) string {
	base := filepath.Base(path)

	if lang, ok := filenameToLanguage[base]; ok {
		return lang
	}

	ext := strings.ToLower(filepath.Ext(base))
	if ext == "" {
		return "unknown"
	}
	if lang, ok := extensionToLanguage[ext]; ok {
		return lang
	}
	return "unknown"
}
