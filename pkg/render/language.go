package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
)

const defaultHighlightStyle = "github"

// langAliases folds common fence tags onto canonical names.
var langAliases = map[string]string{
	"sh":         "bash",
	"shell":      "bash",
	"zsh":        "bash",
	"js":         "javascript",
	"ts":         "typescript",
	"yml":        "yaml",
	"golang":     "go",
	"py":         "python",
	"rb":         "ruby",
	"dockerfile": "docker",
	"c++":        "cpp",
}

// fenceLanguage resolves the language for a fenced code block. A tagged
// fence gets alias normalization; an untagged fence optionally gets a
// guess from the content classifier.
func (r *Renderer) fenceLanguage(tag, code string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag != "" {
		if canon, ok := langAliases[tag]; ok {
			return canon
		}
		if lang, ok := enry.GetLanguageByAlias(tag); ok {
			return strings.ToLower(lang)
		}
		return tag
	}

	if !r.opts.DetectLanguage || strings.TrimSpace(code) == "" {
		return ""
	}
	return detectLanguage([]byte(code))
}

// detectLanguage guesses a language for untagged code. Returns "" when the
// classifier is not confident, so the block falls back to plain <pre><code>.
func detectLanguage(content []byte) string {
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return strings.ToLower(lang)
	}

	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript",
		"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
		"YAML", "HTML", "CSS",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return strings.ToLower(lang)
	}
	return ""
}

// highlight renders code through chroma's HTML formatter. Any failure
// reports false and the caller falls back to the escaped plain form.
func (r *Renderer) highlight(code, lang string) (string, bool) {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	styleName := r.opts.HighlightStyle
	if styleName == "" {
		styleName = defaultHighlightStyle
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	var buf strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(false))
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", false
	}
	return buf.String(), true
}
