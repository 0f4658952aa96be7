package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/markpadhq/markpad/internal/ui/pretty"
	"github.com/markpadhq/markpad/pkg/runner"
)

func TestFormatSearchSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name    string
		query   string
		total   int
		counter string
		want    string
	}{
		{
			name:    "no matches",
			query:   "cat",
			total:   0,
			counter: "0/0",
			want:    "No matches for \"cat\"\n",
		},
		{
			name:    "single match",
			query:   "cat",
			total:   1,
			counter: "1/1",
			want:    "1 match for \"cat\" (1/1)\n",
		},
		{
			name:    "several matches",
			query:   "cat",
			total:   3,
			counter: "2/3",
			want:    "3 matches for \"cat\" (2/3)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := styles.FormatSearchSummary(tt.query, tt.total, tt.counter)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatReplaceSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "Nothing replaced\n", styles.FormatReplaceSummary(0, "x.md", false))
	assert.Equal(t, "1 replacement in x.md\n", styles.FormatReplaceSummary(1, "x.md", false))
	assert.Equal(t, "3 replacements in x.md\n", styles.FormatReplaceSummary(3, "x.md", false))
	assert.Equal(t, "2 replacements\n", styles.FormatReplaceSummary(2, "", false))
	assert.Equal(t, "2 replacements in x.md (dry run, nothing written)\n",
		styles.FormatReplaceSummary(2, "x.md", true))
}

func TestFormatRenderSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "No Markdown files found\n",
		styles.FormatRenderSummaryOneLine(runner.Stats{}))

	got := styles.FormatRenderSummaryOneLine(runner.Stats{
		FilesDiscovered: 3,
		FilesRendered:   3,
		FilesWritten:    2,
	})
	assert.Equal(t, "3 files rendered, 2 written\n", got)

	got = styles.FormatRenderSummaryOneLine(runner.Stats{
		FilesDiscovered: 2,
		FilesRendered:   1,
		FilesFailed:     1,
	})
	assert.Equal(t, "1 file rendered, 1 failed\n", got)
}

func TestFormatRenderSummaryBlock(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	out := styles.FormatRenderSummary(runner.Stats{
		FilesDiscovered: 2,
		FilesRendered:   2,
		FilesWritten:    1,
		BytesRendered:   42,
	})

	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Files discovered:  2")
	assert.Contains(t, out, "Files written:     1")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "Render passed")

	failed := styles.FormatRenderSummary(runner.Stats{
		FilesDiscovered: 1,
		FilesFailed:     1,
	})
	assert.Contains(t, failed, "Render completed with errors")
}

func TestIsColorEnabled(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{"always", "always", true},
		{"never", "never", false},
		{"auto non-tty", "auto", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			got := pretty.IsColorEnabled(tt.mode, &fakeWriter{})
			assert.Equal(t, tt.want, got)
		})
	}
}

type fakeWriter struct{}

func (*fakeWriter) Write(p []byte) (int, error) { return len(p), nil }
