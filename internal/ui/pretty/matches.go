package pretty

import (
	"fmt"
	"sort"
	"strings"

	"github.com/markpadhq/markpad/pkg/match"
)

// currentMarker prefixes the row the cursor is on.
const currentMarker = "> "

// MatchRow is a single match located within its source line.
type MatchRow struct {
	// Index is the zero-based position in the match list.
	Index int

	// Line and Column are 1-based. Column counts bytes from the line start.
	Line   int
	Column int

	// LineText is the full source line containing the match start.
	LineText string

	// StartInLine and EndInLine delimit the matched text within LineText.
	// A match spanning multiple lines is clamped to the first line.
	StartInLine int
	EndInLine   int
}

// Text returns the matched portion of the line.
func (r MatchRow) Text() string {
	return r.LineText[r.StartInLine:r.EndInLine]
}

// BuildMatchRows locates each span within its source line.
func BuildMatchRows(source string, spans []match.Span) []MatchRow {
	lineStarts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	rows := make([]MatchRow, 0, len(spans))
	for i, span := range spans {
		// Find the line containing the span start.
		line := sort.Search(len(lineStarts), func(n int) bool {
			return lineStarts[n] > span.Start
		}) - 1

		lineStart := lineStarts[line]
		lineEnd := len(source)
		if line+1 < len(lineStarts) {
			lineEnd = lineStarts[line+1] - 1
		}

		end := span.End
		if end > lineEnd {
			end = lineEnd
		}

		rows = append(rows, MatchRow{
			Index:       i,
			Line:        line + 1,
			Column:      span.Start - lineStart + 1,
			LineText:    source[lineStart:lineEnd],
			StartInLine: span.Start - lineStart,
			EndInLine:   end - lineStart,
		})
	}
	return rows
}

// FormatMatchLine formats one match with its location and the source
// line, highlighting the matched text. The current match gets a marker.
func (s *Styles) FormatMatchLine(row MatchRow, current bool) string {
	marker := "  "
	if current {
		marker = s.Caret.Render(currentMarker)
	}

	location := s.Location.Render(fmt.Sprintf("%d:%d", row.Line, row.Column))

	text := s.Context.Render(row.LineText[:row.StartInLine]) +
		s.Match.Render(row.Text()) +
		s.Context.Render(row.LineText[row.EndInLine:])

	return fmt.Sprintf("%s%s  %s\n", marker, location, text)
}

// FormatMatchList formats all matches, marking the current one.
// current is the zero-based cursor index, or -1 for none.
func (s *Styles) FormatMatchList(rows []MatchRow, current int) string {
	var builder strings.Builder
	for _, row := range rows {
		builder.WriteString(s.FormatMatchLine(row, row.Index == current))
	}
	return builder.String()
}

// FormatCounter renders the "{current}/{total}" position indicator.
func (s *Styles) FormatCounter(counter string) string {
	return s.Counter.Render(counter)
}
