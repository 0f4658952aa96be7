package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		``,
		`plain text`,
		`\*escaped\*`,
		`\\ \` + "`" + ` \* \_ \{ \} \[ \] \( \) \# \+ \- \. \! \|`,
		`mixed \*esc\* and *raw*`,
	}
	for _, in := range inputs {
		extracted := extractEscapes(in)
		restored := restoreEscapes(extracted)

		// Restoration drops the backslashes: the escaped characters come
		// back as their literal selves.
		assert.NotContains(t, restored, `\*`)
		assert.Equal(t, restoreEscapes(extractEscapes(restored)), restored)
	}
}

func TestExtractEscapesHidesSyntax(t *testing.T) {
	t.Parallel()

	out := extractEscapes(`\*x\*`)
	assert.NotContains(t, out, "*")
	assert.Contains(t, out, "\x00esc42\x00")
}

func TestRestoreEscapesIgnoresMalformedTokens(t *testing.T) {
	t.Parallel()

	// A token-looking sequence with a non-numeric body passes through.
	assert.Equal(t, "\x00escx\x00", restoreEscapes("\x00escx\x00"))
}

func TestNulBytesCannotForgeTokens(t *testing.T) {
	t.Parallel()

	// A literal NUL-delimited token in the input must not be decoded as
	// an escaped character; NULs are replaced before extraction runs.
	r := New(Options{})
	out := r.Render("\x00esc65\x00")
	assert.NotContains(t, out, "A")
	assert.Contains(t, out, "�")
}

func TestRenderEqualAfterEscapeNormalization(t *testing.T) {
	t.Parallel()

	// Rendering input whose escapes were extracted and restored matches
	// rendering the literal characters directly.
	r := New(Options{})
	in := `\*not italic\*`
	normalized := restoreEscapes(extractEscapes(in))
	assert.Equal(t, r.Render(normalized), r.Render(`*not italic*`))
}
