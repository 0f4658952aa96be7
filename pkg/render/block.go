package render

import (
	"fmt"
	"strings"
)

// renderBlocks is the block-level parser. It scans lines top to bottom and
// dispatches runs of lines to the structure parsers. Every input line lands
// in exactly one block; unrecognized content accumulates into paragraphs.
// Nested structures (blockquotes, lists) recurse back into this function
// over sliced line ranges.
func (r *Renderer) renderBlocks(b *strings.Builder, lines []string) {
	var para []string

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		parts := make([]string, 0, len(para))
		for _, l := range para {
			parts = append(parts, r.inline(strings.TrimSpace(l)))
		}
		body := strings.Join(parts, "<br>\n")
		if strings.TrimSpace(body) != "" {
			b.WriteString("<p>")
			b.WriteString(body)
			b.WriteString("</p>\n")
		}
		para = para[:0]
	}

	for i := 0; i < len(lines); {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			flushPara()
			i++

		case isFenceOpen(trimmed):
			flushPara()
			i = r.renderFence(b, lines, i)

		case quoteDepth(line) > 0:
			flushPara()
			i = r.renderBlockquote(b, lines, i)

		case isRule(trimmed):
			flushPara()
			b.WriteString("<hr>\n")
			i++

		case headingLevel(trimmed) > 0:
			flushPara()
			r.renderHeading(b, trimmed)
			i++

		case isTableStart(lines, i):
			flushPara()
			i = r.renderTable(b, lines, i)

		case isListLine(line):
			flushPara()
			i = r.renderList(b, lines, i)

		default:
			para = append(para, line)
			i++
		}
	}
	flushPara()
}

// isRule reports whether a line is a horizontal rule. Only the exact
// three-character forms count; anything longer falls through as text.
func isRule(trimmed string) bool {
	switch trimmed {
	case "---", "***", "___":
		return true
	}
	return false
}

// headingLevel returns the ATX heading level (1-6) of a line, or 0.
func headingLevel(trimmed string) int {
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0
	}
	if level == len(trimmed) || trimmed[level] != ' ' {
		return 0
	}
	return level
}

func (r *Renderer) renderHeading(b *strings.Builder, trimmed string) {
	level := headingLevel(trimmed)
	text := strings.TrimSpace(trimmed[level:])
	fmt.Fprintf(b, "<h%d>%s</h%d>\n", level, r.inline(text), level)
}

// quoteDepth counts leading '>' markers, allowing spaces before and
// between them. Zero means the line is not quoted.
func quoteDepth(line string) int {
	depth := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '>':
			depth++
		case ' ', '\t':
			// keep scanning
		default:
			return depth
		}
	}
	return depth
}

// stripQuoteMarker removes one leading '>' level from a quoted line.
func stripQuoteMarker(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i < len(line) && line[i] == '>' {
		i++
		if i < len(line) && line[i] == ' ' {
			i++
		}
	}
	return line[i:]
}

// renderBlockquote folds the maximal run of quoted lines into one
// blockquote. One '>' level is stripped per recursion, so deeper-quoted
// lines inside the run reenter this function and produce nested wrappers.
func (r *Renderer) renderBlockquote(b *strings.Builder, lines []string, start int) int {
	end := start
	for end < len(lines) && quoteDepth(lines[end]) > 0 {
		end++
	}

	inner := make([]string, 0, end-start)
	for _, l := range lines[start:end] {
		inner = append(inner, stripQuoteMarker(l))
	}

	b.WriteString("<blockquote>\n")
	r.renderBlocks(b, inner)
	b.WriteString("</blockquote>\n")
	return end
}
