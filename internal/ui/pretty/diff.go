package pretty

import (
	"fmt"
	"strings"

	"github.com/markpadhq/markpad/pkg/edit"
)

// FormatDiff renders a unified diff with colored add/remove lines.
func (s *Styles) FormatDiff(d *edit.Diff) string {
	if !d.HasChanges() {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(s.DiffHeader.Render(fmt.Sprintf("--- a/%s", d.Path)))
	builder.WriteString("\n")
	builder.WriteString(s.DiffHeader.Render(fmt.Sprintf("+++ b/%s", d.Path)))
	builder.WriteString("\n")

	for _, hunk := range d.Hunks {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OrigStart, hunk.OrigCount, hunk.ModStart, hunk.ModCount)
		builder.WriteString(s.DiffHunk.Render(header))
		builder.WriteString("\n")

		for _, line := range hunk.Lines {
			switch line.Kind {
			case edit.LineAdd:
				builder.WriteString(s.DiffAdd.Render("+" + line.Content))
			case edit.LineRemove:
				builder.WriteString(s.DiffRemove.Render("-" + line.Content))
			default:
				builder.WriteString(s.DiffContext.Render(" " + line.Content))
			}
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// FormatDiffStat renders a one-line change count.
// Example: "notes.md | +2 -1".
func (s *Styles) FormatDiffStat(d *edit.Diff) string {
	if !d.HasChanges() {
		return ""
	}

	return fmt.Sprintf("%s | %s %s\n",
		s.FilePath.Render(d.Path),
		s.DiffAdd.Render(fmt.Sprintf("+%d", d.Additions)),
		s.DiffRemove.Render(fmt.Sprintf("-%d", d.Deletions)),
	)
}
