package render

import (
	"fmt"
	"regexp"
	"strconv"
)

// Inline patterns, applied in specificity order: code spans first so their
// content is protected, images before links (image syntax is a superset
// prefix of link syntax), explicit links before bare autolinks.
var (
	codeSpanPattern = regexp.MustCompile("`([^`\n]+)`")
	imagePattern    = regexp.MustCompile(`!\[([^\]]*)\]\(\s*([^)\s]+)(?:\s+"([^"]*)")?\s*\)`)
	linkPattern     = regexp.MustCompile(`\[([^\]]+)\]\(\s*([^)\s]+)(?:\s+"([^"]*)")?\s*\)`)
	autolinkPattern = regexp.MustCompile(`\bhttps?://[^\s<>()]+`)
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)+\b`)

	boldPattern   = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*\n]+)\*`)
	strikePattern = regexp.MustCompile(`~~([^~\n]+)~~`)

	refTokenPattern = regexp.MustCompile("\x00ref(\\d+)\x00")
)

// inliner stashes rendered spans behind opaque tokens so later, less
// specific patterns cannot rewrite their interiors.
type inliner struct {
	stash []string
}

func (in *inliner) put(html string) string {
	tok := fmt.Sprintf("\x00ref%d\x00", len(in.stash))
	in.stash = append(in.stash, html)
	return tok
}

func (in *inliner) replace(re *regexp.Regexp, s string, render func([]string) string) string {
	return re.ReplaceAllStringFunc(s, func(m string) string {
		return in.put(render(re.FindStringSubmatch(m)))
	})
}

// restore expands stash tokens. A stashed span can itself contain tokens
// stashed earlier (a code span inside link text), so expansion repeats
// until the string is token-free; each pass only introduces tokens with
// smaller indices, so the loop is bounded by the stash depth.
func (in *inliner) restore(s string) string {
	for range len(in.stash) + 1 {
		if !refTokenPattern.MatchString(s) {
			break
		}
		s = refTokenPattern.ReplaceAllStringFunc(s, func(m string) string {
			sub := refTokenPattern.FindStringSubmatch(m)
			n, err := strconv.Atoi(sub[1])
			if err != nil || n >= len(in.stash) {
				return m
			}
			return in.stash[n]
		})
	}
	return s
}

// inline converts the inline span vocabulary of one text run to HTML.
func (r *Renderer) inline(s string) string {
	in := &inliner{}

	s = in.replace(codeSpanPattern, s, func(m []string) string {
		return "<code>" + escapeHTML(m[1]) + "</code>"
	})
	s = in.replace(imagePattern, s, func(m []string) string {
		if m[3] != "" {
			return fmt.Sprintf("<img src=%q alt=%q title=%q>", m[2], m[1], m[3])
		}
		return fmt.Sprintf("<img src=%q alt=%q>", m[2], m[1])
	})
	s = in.replace(linkPattern, s, func(m []string) string {
		if m[3] != "" {
			return fmt.Sprintf("<a href=%q title=%q>%s</a>", m[2], m[3], m[1])
		}
		return fmt.Sprintf("<a href=%q>%s</a>", m[2], m[1])
	})
	s = in.replace(autolinkPattern, s, func(m []string) string {
		return fmt.Sprintf("<a href=%q>%s</a>", m[0], m[0])
	})
	s = in.replace(emailPattern, s, func(m []string) string {
		return fmt.Sprintf("<a href=%q>%s</a>", "mailto:"+m[0], m[0])
	})

	s = boldPattern.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicPattern.ReplaceAllString(s, "<em>$1</em>")
	s = strikePattern.ReplaceAllString(s, "<del>$1</del>")

	return in.restore(s)
}
