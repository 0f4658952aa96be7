// Package config defines core configuration types for markpad.
// These are pure data structures; loading and merging live in the
// configloader package.
package config

// OutputFormat specifies how search results are printed.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
)

// IsValid returns true for a known output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON:
		return true
	default:
		return false
	}
}

// RenderConfig controls the Markdown renderer.
type RenderConfig struct {
	// Highlight enables syntax highlighting of fenced code blocks.
	Highlight bool `yaml:"highlight"`

	// HighlightStyle is the highlighter style name (e.g. "github").
	HighlightStyle string `yaml:"highlight_style"`

	// DetectLanguage guesses a language for untagged code fences.
	DetectLanguage bool `yaml:"detect_language"`
}

// SearchConfig holds the default find/replace options.
type SearchConfig struct {
	// CaseSensitive disables case folding.
	CaseSensitive bool `yaml:"case_sensitive"`

	// Regex treats queries as regular expressions.
	Regex bool `yaml:"regex"`

	// Flags holds extra pattern flag characters for regex mode.
	Flags string `yaml:"flags"`

	// WrapAround cycles match navigation past the boundaries.
	WrapAround bool `yaml:"wrap_around"`

	// HistoryLimit bounds the persisted query history.
	HistoryLimit int `yaml:"history_limit"`

	// HistoryFile overrides the default history location.
	HistoryFile string `yaml:"history_file"`
}

// Config is the root configuration structure for markpad.
type Config struct {
	// Render configures the Markdown renderer.
	Render RenderConfig `yaml:"render"`

	// Search configures the find/replace engine defaults.
	Search SearchConfig `yaml:"search"`

	// Ignore contains glob patterns excluded from batch rendering.
	Ignore []string `yaml:"ignore"`

	// Backups enables sidecar backups before in-place replacement.
	Backups bool `yaml:"backups"`

	// CLI-level options, never persisted to config files.

	// Jobs is the batch-render worker count (0 = auto).
	Jobs int `yaml:"-"`

	// DryRun shows replacements without writing files.
	DryRun bool `yaml:"-"`

	// Format selects the search output format.
	Format OutputFormat `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Highlight:      false,
			HighlightStyle: "github",
			DetectLanguage: false,
		},
		Search: SearchConfig{
			CaseSensitive: false,
			Regex:         false,
			WrapAround:    true,
			HistoryLimit:  50,
		},
		Backups: false,
		Format:  FormatText,
	}
}
