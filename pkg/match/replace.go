package match

import (
	"strings"

	"github.com/markpadhq/markpad/pkg/edit"
)

// ReplaceCurrent substitutes the match under the cursor when selection
// equals its text (respecting case sensitivity) and returns the new
// snapshot. In regex mode the replacement template expands capture group
// references. When the selection does not equal the match, the engine
// advances to the next match instead of substituting, so a host whose
// selection drifted heals by retrying. The returned bool reports whether
// a substitution happened; after a substitution the index is stale until
// the host reindexes.
func (e *Engine) ReplaceCurrent(selection, replacement string) (string, bool, error) {
	if len(e.matches) == 0 {
		return e.source, false, ErrNoMatch
	}
	if e.current < 0 {
		e.Next()
	}

	span := e.matches[e.current]
	matched := e.source[span.Start:span.End]
	if !textEqual(selection, matched, e.opts.CaseSensitive) {
		e.Next()
		return e.source, false, nil
	}

	text := replacement
	if e.opts.Regex && e.re != nil {
		if idx := e.re.FindStringSubmatchIndex(matched); idx != nil {
			text = string(e.re.ExpandString(nil, replacement, matched, idx))
		}
	}

	b := edit.NewBuilder()
	b.Replace(span.Start, span.End, text)
	prepared, err := edit.Prepare(b.Edits, len(e.source))
	if err != nil {
		return e.source, false, err
	}

	out := edit.Apply(e.source, prepared)
	e.state = stateMutated
	return out, true, nil
}

// ReplaceAll substitutes every indexed match in one pass and returns the
// new snapshot plus the substitution count. Literal mode builds one edit
// per span and applies them together, so earlier substitutions cannot
// shift later offsets. Regex mode applies the compiled matcher globally
// in a single transformation with template expansion. Returns ErrNoMatch
// when the query occurs nowhere.
func (e *Engine) ReplaceAll(replacement string) (string, int, error) {
	if e.query == "" {
		return e.source, 0, nil
	}
	if len(e.matches) == 0 {
		return e.source, 0, ErrNoMatch
	}

	var out string
	if e.opts.Regex && e.re != nil {
		out = e.re.ReplaceAllString(e.source, replacement)
	} else {
		b := edit.NewBuilder()
		for _, span := range e.matches {
			b.Replace(span.Start, span.End, replacement)
		}
		prepared, err := edit.Prepare(b.Edits, len(e.source))
		if err != nil {
			return e.source, 0, err
		}
		out = edit.Apply(e.source, prepared)
	}

	count := len(e.matches)
	e.state = stateMutated
	return out, count, nil
}

func textEqual(a, b string, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}
