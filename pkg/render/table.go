package render

import (
	"fmt"
	"regexp"
	"strings"
)

// Alignment is a table column alignment derived from the separator row.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// tableSepPattern matches a separator row: pipe-delimited cells of dashes
// with optional alignment colons.
var tableSepPattern = regexp.MustCompile(`^\s*\|?(\s*:?-+:?\s*\|)*\s*:?-+:?\s*\|?\s*$`)

// isTableStart reports whether lines[i] begins a table: a pipe-delimited
// header immediately followed by a separator row.
func isTableStart(lines []string, i int) bool {
	if !strings.Contains(lines[i], "|") {
		return false
	}
	if i+1 >= len(lines) {
		return false
	}
	next := lines[i+1]
	return strings.Contains(next, "|") && tableSepPattern.MatchString(next)
}

// splitCells splits a pipe-delimited row into trimmed cells, dropping the
// optional outer pipes.
func splitCells(line string) []string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	parts := strings.Split(s, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

// parseAlignments derives per-column alignment from separator cells.
func parseAlignments(cells []string) []Alignment {
	aligns := make([]Alignment, 0, len(cells))
	for _, c := range cells {
		left := strings.HasPrefix(c, ":")
		right := strings.HasSuffix(c, ":")
		switch {
		case left && right:
			aligns = append(aligns, AlignCenter)
		case right:
			aligns = append(aligns, AlignRight)
		default:
			aligns = append(aligns, AlignLeft)
		}
	}
	return aligns
}

// renderTable consumes a table starting at lines[start]. The header row
// fixes the column count; body rows are padded or truncated to it without
// complaint.
func (r *Renderer) renderTable(b *strings.Builder, lines []string, start int) int {
	header := splitCells(lines[start])
	aligns := parseAlignments(splitCells(lines[start+1]))

	// Alignment list follows the header's column count.
	for len(aligns) < len(header) {
		aligns = append(aligns, AlignLeft)
	}
	aligns = aligns[:len(header)]

	b.WriteString("<table>\n<thead>\n<tr>")
	for col, cell := range header {
		fmt.Fprintf(b, "<th align=\"%s\">%s</th>", aligns[col], r.inline(cell))
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	i := start + 2
	for i < len(lines) && strings.Contains(lines[i], "|") && strings.TrimSpace(lines[i]) != "" {
		cells := splitCells(lines[i])
		for len(cells) < len(header) {
			cells = append(cells, "")
		}
		cells = cells[:len(header)]

		b.WriteString("<tr>")
		for col, cell := range cells {
			fmt.Fprintf(b, "<td align=\"%s\">%s</td>", aligns[col], r.inline(cell))
		}
		b.WriteString("</tr>\n")
		i++
	}

	b.WriteString("</tbody>\n</table>\n")
	return i
}
