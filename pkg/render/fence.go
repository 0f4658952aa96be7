package render

import (
	"fmt"
	"strings"
)

const fenceMarker = "```"

func isFenceOpen(trimmed string) bool {
	return strings.HasPrefix(trimmed, fenceMarker)
}

// renderFence consumes a fenced code block starting at lines[start].
// The content is HTML-escaped exactly once here and never reenters any
// other stage. An unclosed fence swallows the rest of the input rather
// than erroring.
func (r *Renderer) renderFence(b *strings.Builder, lines []string, start int) int {
	tag := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[start]), fenceMarker))

	end := start + 1
	for end < len(lines) && strings.TrimSpace(lines[end]) != fenceMarker {
		end++
	}

	code := strings.Join(lines[start+1:end], "\n")
	lang := r.fenceLanguage(tag, code)

	if r.opts.Highlight {
		if html, ok := r.highlight(code, lang); ok {
			b.WriteString(html)
			if !strings.HasSuffix(html, "\n") {
				b.WriteString("\n")
			}
			return skipFenceClose(lines, end)
		}
	}

	if lang != "" {
		fmt.Fprintf(b, "<pre><code class=\"language-%s\">", lang)
	} else {
		b.WriteString("<pre><code>")
	}
	b.WriteString(escapeHTML(code))
	b.WriteString("</code></pre>\n")

	return skipFenceClose(lines, end)
}

func skipFenceClose(lines []string, end int) int {
	if end < len(lines) {
		return end + 1
	}
	return end
}

// escapeHTML escapes the characters HTML assigns meaning to. Used for raw
// code content only; ordinary text passes through so inline HTML survives.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
