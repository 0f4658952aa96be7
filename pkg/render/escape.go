package render

import (
	"fmt"
	"regexp"
	"strconv"
)

// Escaped punctuation is replaced by an opaque token carrying the code
// point. NUL delimiters cannot appear in text content, so tokens survive
// every later stage untouched.
var (
	escapePattern   = regexp.MustCompile("\\\\([\\\\`*_{}\\[\\]()#+\\-.!|])")
	escTokenPattern = regexp.MustCompile("\x00esc(\\d+)\x00")
)

// extractEscapes replaces each backslash-escaped character with a
// placeholder token.
func extractEscapes(s string) string {
	return escapePattern.ReplaceAllStringFunc(s, func(m string) string {
		return fmt.Sprintf("\x00esc%d\x00", m[1])
	})
}

// restoreEscapes converts placeholder tokens back to their literal
// characters. This is the final pipeline stage: nothing interprets the
// restored characters as markup.
func restoreEscapes(s string) string {
	return escTokenPattern.ReplaceAllStringFunc(s, func(m string) string {
		sub := escTokenPattern.FindStringSubmatch(m)
		n, err := strconv.Atoi(sub[1])
		if err != nil {
			return m
		}
		return string(rune(n))
	})
}
