package match

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanRegex collects every match of re left to right. Matching runs over
// the whole source in one call so anchors and word boundaries see their
// real context; scanning suffix slices would make every slice start look
// like a string start. FindAll guarantees forward progress past
// zero-length matches, so the scan terminates even for patterns like
// "x*" that match the empty string everywhere; the spans it yields are
// exactly the positions ReplaceAllString substitutes at.
func scanRegex(source string, re *regexp.Regexp) []Span {
	locs := re.FindAllStringIndex(source, -1)
	if len(locs) == 0 {
		return nil
	}
	spans := make([]Span, len(locs))
	for i, loc := range locs {
		spans[i] = Span{Start: loc[0], End: loc[1]}
	}
	return spans
}

// scanLiteral collects every non-overlapping occurrence of needle left to
// right. Case-insensitive mode folds both haystack and needle before
// comparing; when folding changes byte lengths the scan falls back to a
// rune-by-rune comparison so spans still index the original text.
func scanLiteral(source, needle string, caseSensitive bool) []Span {
	if needle == "" {
		return nil
	}
	if caseSensitive {
		return scanExact(source, needle, 0)
	}

	foldedSource := strings.ToLower(source)
	foldedNeedle := strings.ToLower(needle)
	if len(foldedSource) == len(source) {
		// Folding preserved offsets: scan the folded copy directly.
		return scanExact(foldedSource, foldedNeedle, 0)
	}
	return scanFolded(source, needle)
}

func scanExact(source, needle string, from int) []Span {
	var spans []Span
	pos := from
	for {
		idx := strings.Index(source[pos:], needle)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(needle)
		spans = append(spans, Span{Start: start, End: end})
		pos = end
	}
	return spans
}

// scanFolded handles haystacks whose lowercase form has a different byte
// length than the original (e.g. İ). Offsets always index the original.
func scanFolded(source, needle string) []Span {
	var spans []Span
	pos := 0
	for pos < len(source) {
		if n, ok := foldPrefixLen(source[pos:], needle); ok {
			spans = append(spans, Span{Start: pos, End: pos + n})
			pos += n
			continue
		}
		_, width := utf8.DecodeRuneInString(source[pos:])
		if width == 0 {
			width = 1
		}
		pos += width
	}
	return spans
}

// foldPrefixLen reports how many bytes of s case-insensitively match
// needle as a prefix.
func foldPrefixLen(s, needle string) (int, bool) {
	i := 0
	for _, nr := range needle {
		sr, width := utf8.DecodeRuneInString(s[i:])
		if width == 0 {
			return 0, false
		}
		if unicode.ToLower(sr) != unicode.ToLower(nr) {
			return 0, false
		}
		i += width
	}
	return i, true
}
