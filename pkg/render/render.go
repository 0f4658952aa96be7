// Package render converts Markdown source text to HTML markup.
//
// The renderer is a pure line-scanning and regular-expression pipeline.
// It is total: malformed input is never an error, it degrades to literal
// text. Backslash-escaped punctuation is lifted into opaque placeholder
// tokens before any stage runs and restored verbatim after the last stage,
// so no stage can reinterpret an escaped character as syntax.
package render

import "strings"

// Options controls optional rendering behavior. The zero value renders
// plain escaped code blocks with no language detection.
type Options struct {
	// Highlight renders fenced code through a syntax highlighter.
	Highlight bool

	// HighlightStyle is the highlighter style name. Empty selects "github".
	HighlightStyle string

	// DetectLanguage guesses a language for untagged code fences.
	DetectLanguage bool
}

// Renderer converts Markdown text to HTML. It holds no per-document state;
// Render may be called any number of times with unrelated inputs.
type Renderer struct {
	opts Options
}

// New creates a Renderer with the given options.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render converts source to HTML markup. It never fails.
func (r *Renderer) Render(source string) string {
	src := normalizeSource(source)
	src = extractEscapes(src)

	var b strings.Builder
	b.Grow(len(src) + len(src)/4)
	r.renderBlocks(&b, strings.Split(src, "\n"))

	return restoreEscapes(b.String())
}

// normalizeSource folds CRLF line endings to LF and replaces NUL bytes
// with U+FFFD. Escape tokens are NUL-delimited, so stripping literal
// NULs up front means input text can never forge a token.
func normalizeSource(s string) string {
	if strings.Contains(s, "\x00") {
		s = strings.ReplaceAll(s, "\x00", "�")
	}
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
