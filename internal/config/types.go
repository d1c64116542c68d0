package config

// Config is the top-level docsite configuration, corresponding to .docsite.yml.
type Config struct {
	// Data is the path to the catalog JSON produced by the documentation
	// extractor.
	Data string `yaml:"data" koanf:"data"`

	// OutputDir receives the generated static site.
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`

	// Title is the project name shown in the sidebar header.
	Title string `yaml:"title" koanf:"title"`

	// Theme and Accent are the ids preselected when a page loads.
	Theme  string `yaml:"theme" koanf:"theme"`
	Accent string `yaml:"accent" koanf:"accent"`

	// Port for the local dev server.
	Port int `yaml:"port" koanf:"port"`

	// Include and Exclude are glob patterns applied to catalog file paths.
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`

	// CodeLanguage forces a fixed highlighter language for the code view.
	// Empty means infer the language from each file's path.
	CodeLanguage string `yaml:"code_language" koanf:"code_language"`

	// Open controls whether serve launches the default browser.
	Open bool `yaml:"open" koanf:"open"`
}
