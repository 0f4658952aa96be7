package render

import (
	"regexp"
	"strings"
)

// listIndentStep is the indentation width of one nesting level. Tabs
// expand to the same width.
const listIndentStep = 4

type listKind int

const (
	listUnordered listKind = iota
	listOrdered
)

var (
	bulletPattern  = regexp.MustCompile(`^(\s*)([-+*])\s+(.*)$`)
	orderedPattern = regexp.MustCompile(`^(\s*)(\d+)\.\s+(.*)$`)
)

func isListLine(line string) bool {
	return bulletPattern.MatchString(line) || orderedPattern.MatchString(line)
}

// splitMarker strips a list marker and reports the item kind and content.
func splitMarker(line string) (listKind, string, bool) {
	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		return listUnordered, m[3], true
	}
	if m := orderedPattern.FindStringSubmatch(line); m != nil {
		return listOrdered, m[3], true
	}
	return listUnordered, "", false
}

// indentWidth measures leading indentation in columns, expanding tabs to
// listIndentStep columns.
func indentWidth(line string) int {
	width := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			width++
		case '\t':
			width += listIndentStep
		default:
			return width
		}
	}
	return width
}

// renderList consumes the maximal run of marker lines starting at
// lines[start] and renders it as one or more list elements.
func (r *Renderer) renderList(b *strings.Builder, lines []string, start int) int {
	end := start
	for end < len(lines) && isListLine(lines[end]) {
		end++
	}
	r.renderListRun(b, lines[start:end], indentWidth(lines[start]))
	return end
}

type listItem struct {
	kind     listKind
	content  string
	children []string
}

// renderListRun parses one indentation level of a list run. Lines indented
// deeper than the current level accumulate as child lines of the nearest
// preceding item and recurse one level down; deeper lines with no
// preceding item are dropped. Consecutive items of differing marker kind
// split into separate list elements instead of mixing inside one.
func (r *Renderer) renderListRun(b *strings.Builder, run []string, indent int) {
	var items []listItem

	for _, line := range run {
		kind, content, ok := splitMarker(line)
		if !ok {
			continue
		}
		if indentWidth(line) > indent {
			if len(items) == 0 {
				// Orphaned over-indented line: no item to attach to.
				continue
			}
			last := &items[len(items)-1]
			last.children = append(last.children, line)
			continue
		}
		items = append(items, listItem{kind: kind, content: content})
	}

	// Run-length grouping by kind keeps adjacent unordered and ordered
	// items in separate elements.
	for i := 0; i < len(items); {
		j := i
		for j < len(items) && items[j].kind == items[i].kind {
			j++
		}
		r.renderListGroup(b, items[i:j], indent)
		i = j
	}
}

func (r *Renderer) renderListGroup(b *strings.Builder, items []listItem, indent int) {
	openTag, closeTag := "<ul>", "</ul>"
	if items[0].kind == listOrdered {
		openTag, closeTag = "<ol>", "</ol>"
	}

	b.WriteString(openTag)
	b.WriteString("\n")
	for _, it := range items {
		b.WriteString("<li>")
		b.WriteString(r.inline(strings.TrimSpace(it.content)))
		if len(it.children) > 0 {
			b.WriteString("\n")
			r.renderListRun(b, it.children, indent+listIndentStep)
		}
		b.WriteString("</li>\n")
	}
	b.WriteString(closeTag)
	b.WriteString("\n")
}
