package pretty

import (
	"fmt"
	"strings"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // NUM, LOC, MATCH, LINE
	minNumWidth      = 3
	minLocWidth      = 8
	minMatchWidth    = 12
	minLineWidth     = 30
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableFormatter formats match rows as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

type columnWidths struct {
	num   int
	loc   int
	match int
	line  int
}

// FormatMatchTable formats match rows as a table. current is the
// zero-based cursor index, or -1 for none.
func (t *TableFormatter) FormatMatchTable(rows []MatchRow, current int) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths, row.Index == current))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	return builder.String()
}

// calculateColumnWidths determines column widths based on content.
func (t *TableFormatter) calculateColumnWidths(rows []MatchRow) columnWidths {
	widths := columnWidths{
		num:   minNumWidth,
		loc:   minLocWidth,
		match: minMatchWidth,
		line:  minLineWidth,
	}

	for _, row := range rows {
		num := len(fmt.Sprintf("%d", row.Index+1))
		if num > widths.num {
			widths.num = num
		}
		loc := len(fmt.Sprintf("%d:%d", row.Line, row.Column))
		if loc > widths.loc {
			widths.loc = loc
		}
		if len(row.Text()) > widths.match {
			widths.match = len(row.Text())
		}
		if len(row.LineText) > widths.line {
			widths.line = len(row.LineText)
		}
	}

	// Constrain to terminal width, shrinking the line column first.
	total := t.totalWidth(widths)
	if total > t.termWidth {
		excess := total - t.termWidth
		widths.line = max(minLineWidth, widths.line-excess)

		total = t.totalWidth(widths)
		if total > t.termWidth {
			excess = total - t.termWidth
			widths.match = max(minMatchWidth, widths.match-excess)
		}
	}

	return widths
}

// totalWidth calculates the full table width from column widths.
func (t *TableFormatter) totalWidth(widths columnWidths) int {
	return widths.num + widths.loc + widths.match + widths.line +
		tablePadding*tableColumnCount
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s ",
		widths.num, "#",
		widths.loc, "LOC",
		widths.match, "MATCH",
		widths.line, "LINE",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	sep := strings.Repeat(heavySeparator, t.totalWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatRow formats a single table row, highlighting the current match.
func (t *TableFormatter) formatRow(row MatchRow, widths columnWidths, current bool) string {
	loc := fmt.Sprintf("%d:%d", row.Line, row.Column)
	matchText := truncateString(row.Text(), widths.match)
	lineText := truncateString(strings.TrimSpace(row.LineText), widths.line)

	content := fmt.Sprintf(" %-*d  %-*s  %-*s  %-*s ",
		widths.num, row.Index+1,
		widths.loc, loc,
		widths.match, matchText,
		widths.line, lineText,
	)

	if current {
		return t.styles.TableCurrent.Render(content)
	}
	return content
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
