package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/markpadhq/markpad/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSearchSummary formats the match count for a query as one line.
// Example: `3 matches for "cat" (2/3)`.
func (s *Styles) FormatSearchSummary(query string, total int, counter string) string {
	if total == 0 {
		return s.Dim.Render(fmt.Sprintf("No matches for %q", query)) + "\n"
	}

	matchWord := "matches"
	if total == 1 {
		matchWord = "match"
	}

	return fmt.Sprintf("%s (%s)\n",
		s.Bold.Render(fmt.Sprintf("%d %s for %q", total, matchWord, query)),
		s.FormatCounter(counter),
	)
}

// FormatReplaceSummary formats the outcome of a replacement as one line.
// Example: "3 replacements in notes.md".
func (s *Styles) FormatReplaceSummary(count int, path string, dryRun bool) string {
	if count == 0 {
		return s.Dim.Render("Nothing replaced") + "\n"
	}

	word := "replacements"
	if count == 1 {
		word = "replacement"
	}

	msg := fmt.Sprintf("%d %s", count, word)
	if path != "" {
		msg += " in " + path
	}

	if dryRun {
		return s.SummaryValue.Render(msg) + s.Dim.Render(" (dry run, nothing written)") + "\n"
	}
	return s.Success.Render(msg) + "\n"
}

// FormatRenderSummaryOneLine formats render statistics as a single line.
// Example: "3 files rendered (2 written), 1 failed".
func (s *Styles) FormatRenderSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No Markdown files found") + "\n"
	}

	fileWord := wordFiles
	if stats.FilesRendered == 1 {
		fileWord = wordFile
	}

	parts := []string{
		fmt.Sprintf("%d %s rendered", stats.FilesRendered, fileWord),
	}

	if stats.FilesWritten > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d written", stats.FilesWritten)))
	}

	if stats.FilesFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesFailed)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatRenderSummary formats render statistics as a summary block.
func (s *Styles) FormatRenderSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files rendered:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesRendered)) + "\n")

	if stats.FilesWritten > 0 {
		builder.WriteString("  Files written:     " +
			s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
	}

	if stats.FilesFailed > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesFailed)) + "\n")
	}

	builder.WriteString("  HTML bytes:        " +
		s.SummaryValue.Render(strconv.FormatInt(stats.BytesRendered, 10)) + "\n")

	builder.WriteString("\n")

	if stats.FilesFailed > 0 {
		builder.WriteString(s.Failure.Render("Render completed with errors"))
	} else {
		builder.WriteString(s.Success.Render("Render passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
