// Package match implements the find/replace engine over immutable text
// snapshots. The engine indexes every occurrence of a literal or pattern
// query as ordered, non-overlapping spans, tracks a current-match cursor,
// and produces replacement snapshots without ever mutating the text it
// was given. The host owns the buffer: it installs the snapshots the
// replace operations return and reindexes afterwards.
package match

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors. Both are status conditions, not fatal failures: the
// host surfaces them as messages and the engine stays usable.
var (
	// ErrInvalidPattern reports a query that failed to compile in regex
	// mode. The match set is left empty.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNoMatch reports a replace operation with nothing to replace.
	ErrNoMatch = errors.New("no match")
)

// Span is a half-open [Start, End) byte range into one source snapshot.
type Span struct {
	Start int
	End   int
}

// ValidFlags lists the pattern flag characters accepted in Options.Flags.
// "g" is tolerated as a no-op since scanning is always global.
const ValidFlags = "imsUg"

// Options configures a search.
type Options struct {
	// Regex treats the query as a regular expression instead of a
	// literal substring.
	Regex bool

	// CaseSensitive disables case folding. In regex mode this controls
	// the (?i) flag; in literal mode both haystack and needle fold.
	CaseSensitive bool

	// Flags holds extra pattern flag characters for regex mode
	// (multiline "m", dot-matches-newline "s"). Unknown characters are
	// ignored; global scanning is always on.
	Flags string

	// WrapAround makes Next and Previous cycle past the boundary
	// instead of clamping.
	WrapAround bool
}

// engineState tracks the reindex lifecycle.
type engineState int

const (
	stateIdle    engineState = iota // no trusted index
	stateIndexed                    // index matches the held snapshot
	stateMutated                    // a replace produced a new snapshot
)

// Engine holds the current query, its compiled matcher, the ordered match
// spans, and the cursor. Created once per editing session; navigation is
// only trustworthy between a Reindex and the next mutation.
type Engine struct {
	source  string
	query   string
	opts    Options
	re      *regexp.Regexp
	matches []Span
	current int
	state   engineState
}

// NewEngine creates an engine with no index.
func NewEngine() *Engine {
	return &Engine{current: -1}
}

// Reindex clears the previous matches and rebuilds the full span list for
// the given snapshot, query, and options. An empty query yields an empty
// match set with no error. A regex compile failure returns a wrapped
// ErrInvalidPattern and leaves the match set empty.
func (e *Engine) Reindex(source, query string, opts Options) error {
	e.source = source
	e.query = query
	e.opts = opts
	e.re = nil
	e.matches = nil
	e.current = -1
	e.state = stateIdle

	if query == "" {
		e.state = stateIndexed
		return nil
	}

	if opts.Regex {
		re, err := compilePattern(query, opts)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		e.re = re
		e.matches = scanRegex(source, re)
	} else {
		e.matches = scanLiteral(source, query, opts.CaseSensitive)
	}

	e.state = stateIndexed
	return nil
}

// Matches returns the ordered match spans of the current index.
func (e *Engine) Matches() []Span {
	return e.matches
}

// Current returns the cursor position into Matches, or -1.
func (e *Engine) Current() int {
	return e.current
}

// CurrentSpan returns the span under the cursor.
func (e *Engine) CurrentSpan() (Span, bool) {
	if e.current < 0 || e.current >= len(e.matches) {
		return Span{}, false
	}
	return e.matches[e.current], true
}

// Source returns the snapshot the index was built against.
func (e *Engine) Source() string {
	return e.source
}

// Indexed reports whether the match list can be trusted against the held
// snapshot. False after any replace until the host reindexes.
func (e *Engine) Indexed() bool {
	return e.state == stateIndexed
}

// Counter renders the human-readable "{current}/{total}" position string.
func (e *Engine) Counter() string {
	return fmt.Sprintf("%d/%d", e.current+1, len(e.matches))
}

// compilePattern builds the regex for a query. Case-insensitive searches
// get the "i" flag; requested extra flags are appended, deduplicated.
// The "g" flag has no Go counterpart: scanning is always global.
func compilePattern(query string, opts Options) (*regexp.Regexp, error) {
	flags := ""
	if !opts.CaseSensitive {
		flags = "i"
	}
	for _, f := range opts.Flags {
		switch f {
		case 'i', 'm', 's', 'U':
			if !strings.ContainsRune(flags, f) {
				flags += string(f)
			}
		}
	}

	expr := query
	if flags != "" {
		expr = "(?" + flags + ")" + query
	}
	return regexp.Compile(expr)
}
