package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markpadhq/markpad/internal/cli"
)

// testNotes has two occurrences of "cat" on separate lines.
const testNotes = "the cat sat on the mat\na cat nap followed\n"

// writeTestConfig writes a minimal config that pins the history file
// inside the test directory so runs never touch the real user state.
func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()

	cfgFile := filepath.Join(dir, "markpad.yml")
	content := fmt.Sprintf("search:\n  history_file: %q\n", filepath.Join(dir, "history.yml"))
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0644))

	return cfgFile
}

// testCommand bundles a root command with its captured output buffers.
type testCommand struct {
	cmd    *cobra.Command
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestCommand() *testCommand {
	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	return &testCommand{cmd: cmd, stdout: &stdout, stderr: &stderr}
}

func (c *testCommand) run(args ...string) error {
	c.cmd.SetArgs(args)
	return c.cmd.Execute()
}

func TestIntegration_RenderToStdout(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "doc.md")
	require.NoError(t, os.WriteFile(mdFile, []byte("# Alpha\n\nSome text.\n"), 0644))

	c := newTestCommand()
	err := c.run("render", "--config", cfgFile, "--color", "never", mdFile)
	require.NoError(t, err)

	output := c.stdout.String()
	assert.Contains(t, output, "<h1>Alpha</h1>")
	assert.Contains(t, output, "<p>Some text.</p>")
}

func TestIntegration_RenderWrite(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "doc.md")
	require.NoError(t, os.WriteFile(mdFile, []byte("# Alpha\n"), 0644))

	c := newTestCommand()
	err := c.run("render", "--config", cfgFile, "--color", "never", "--write", mdFile)
	require.NoError(t, err)

	html, err := os.ReadFile(filepath.Join(tmpDir, "doc.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1>Alpha</h1>")

	// HTML goes to the file, not stdout.
	assert.NotContains(t, c.stdout.String(), "<h1>")
	assert.Contains(t, c.stdout.String(), "1 file rendered")
}

func TestIntegration_RenderMissingPath(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)

	c := newTestCommand()
	err := c.run("render", "--config", cfgFile, filepath.Join(tmpDir, "nope.md"))
	require.Error(t, err)
}

func TestIntegration_SearchText(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(mdFile, []byte(testNotes), 0644))

	c := newTestCommand()
	err := c.run("search", "--config", cfgFile, "--color", "never", "cat", mdFile)
	require.NoError(t, err)

	output := c.stdout.String()
	assert.Contains(t, output, `2 matches for "cat"`)
	assert.Contains(t, output, "(1/2)")
	assert.Contains(t, output, "1:5")
	assert.Contains(t, output, "2:3")
}

func TestIntegration_SearchNoMatches(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(mdFile, []byte(testNotes), 0644))

	c := newTestCommand()
	err := c.run("search", "--config", cfgFile, "--color", "never", "dog", mdFile)
	require.ErrorIs(t, err, cli.ErrNoMatchesFound)
	assert.Contains(t, c.stdout.String(), `No matches for "dog"`)
	assert.Equal(t, cli.ExitNoMatches, cli.ExitCodeFromError(err))
}

func TestIntegration_SearchJSON(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(mdFile, []byte(testNotes), 0644))

	c := newTestCommand()
	err := c.run("search", "--config", cfgFile, "--format", "json", "cat", mdFile)
	require.NoError(t, err)

	var payload struct {
		Query   string `json:"query"`
		Total   int    `json:"total"`
		Counter string `json:"counter"`
		Matches []struct {
			Start  int    `json:"start"`
			End    int    `json:"end"`
			Line   int    `json:"line"`
			Column int    `json:"column"`
			Text   string `json:"text"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(c.stdout.Bytes(), &payload))

	assert.Equal(t, "cat", payload.Query)
	assert.Equal(t, 2, payload.Total)
	assert.Equal(t, "1/2", payload.Counter)
	require.Len(t, payload.Matches, 2)
	assert.Equal(t, 4, payload.Matches[0].Start)
	assert.Equal(t, 7, payload.Matches[0].End)
	assert.Equal(t, 1, payload.Matches[0].Line)
	assert.Equal(t, 5, payload.Matches[0].Column)
	assert.Equal(t, "cat", payload.Matches[0].Text)
	assert.Equal(t, 2, payload.Matches[1].Line)
}

func TestIntegration_SearchRegex(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(mdFile, []byte("item 12 and item 345\n"), 0644))

	c := newTestCommand()
	err := c.run("search", "--config", cfgFile, "--color", "never", "--regex", `\d+`, mdFile)
	require.NoError(t, err)
	assert.Contains(t, c.stdout.String(), `2 matches for "\d+"`)
}

func TestIntegration_SearchInvalidPattern(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(mdFile, []byte(testNotes), 0644))

	c := newTestCommand()
	err := c.run("search", "--config", cfgFile, "--regex", "(", mdFile)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
}

func TestIntegration_SearchStdin(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)

	c := newTestCommand()
	c.cmd.SetIn(strings.NewReader(testNotes))

	err := c.run("search", "--config", cfgFile, "--color", "never", "cat", "-")
	require.NoError(t, err)
	assert.Contains(t, c.stdout.String(), `2 matches for "cat"`)
}

func TestIntegration_ReplaceAll(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(mdFile, []byte(testNotes), 0644))

	c := newTestCommand()
	err := c.run("replace", "--config", cfgFile, "--color", "never", "cat", "dog", mdFile)
	require.NoError(t, err)

	content, err := os.ReadFile(mdFile)
	require.NoError(t, err)
	assert.Equal(t, "the dog sat on the mat\na dog nap followed\n", string(content))
	assert.Contains(t, c.stdout.String(), "2 replacements in "+mdFile)
}

func TestIntegration_ReplaceFirst(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(mdFile, []byte(testNotes), 0644))

	c := newTestCommand()
	err := c.run("replace", "--config", cfgFile, "--color", "never", "--first", "cat", "dog", mdFile)
	require.NoError(t, err)

	content, err := os.ReadFile(mdFile)
	require.NoError(t, err)
	assert.Equal(t, "the dog sat on the mat\na cat nap followed\n", string(content))
}

func TestIntegration_ReplaceDryRun(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(mdFile, []byte(testNotes), 0644))

	c := newTestCommand()
	err := c.run("replace", "--config", cfgFile, "--color", "never", "--dry-run", "cat", "dog", mdFile)
	require.NoError(t, err)

	// File untouched.
	content, err := os.ReadFile(mdFile)
	require.NoError(t, err)
	assert.Equal(t, testNotes, string(content))

	output := c.stdout.String()
	assert.Contains(t, output, "- the cat sat on the mat")
	assert.Contains(t, output, "+ the dog sat on the mat")
	assert.Contains(t, output, "(dry run, nothing written)")
}

func TestIntegration_ReplaceBackup(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(mdFile, []byte(testNotes), 0644))

	c := newTestCommand()
	err := c.run("replace", "--config", cfgFile, "--color", "never", "--backup", "cat", "dog", mdFile)
	require.NoError(t, err)

	backup, err := os.ReadFile(mdFile + ".markpad.bak")
	require.NoError(t, err)
	assert.Equal(t, testNotes, string(backup))
}

func TestIntegration_ReplaceRegexGroups(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(mdFile, []byte("alice@example\n"), 0644))

	c := newTestCommand()
	err := c.run("replace", "--config", cfgFile, "--color", "never", "--regex",
		`(\w+)@(\w+)`, "$2:$1", mdFile)
	require.NoError(t, err)

	content, err := os.ReadFile(mdFile)
	require.NoError(t, err)
	assert.Equal(t, "example:alice\n", string(content))
}

func TestIntegration_ReplaceNoMatches(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(mdFile, []byte(testNotes), 0644))

	c := newTestCommand()
	err := c.run("replace", "--config", cfgFile, "--color", "never", "zebra", "dog", mdFile)
	require.ErrorIs(t, err, cli.ErrNoMatchesFound)

	content, err := os.ReadFile(mdFile)
	require.NoError(t, err)
	assert.Equal(t, testNotes, string(content))
}

func TestIntegration_HistoryRecordsSearches(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(mdFile, []byte(testNotes), 0644))

	c := newTestCommand()
	require.NoError(t, c.run("search", "--config", cfgFile, "--color", "never", "cat", mdFile))
	require.NoError(t, c.run("search", "--config", cfgFile, "--color", "never", "mat", mdFile))

	h := newTestCommand()
	require.NoError(t, h.run("history", "--config", cfgFile, "--color", "never"))

	output := h.stdout.String()
	assert.Contains(t, output, "Queries:")
	assert.Contains(t, output, "cat")
	assert.Contains(t, output, "mat")
}

func TestIntegration_HistoryClear(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := writeTestConfig(t, tmpDir)
	mdFile := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(mdFile, []byte(testNotes), 0644))

	c := newTestCommand()
	require.NoError(t, c.run("search", "--config", cfgFile, "--color", "never", "cat", mdFile))

	clearCmd := newTestCommand()
	require.NoError(t, clearCmd.run("history", "--config", cfgFile, "--clear"))

	after := newTestCommand()
	require.NoError(t, after.run("history", "--config", cfgFile, "--color", "never"))
	assert.Contains(t, after.stdout.String(), "No history yet")
}
