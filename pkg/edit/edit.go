// Package edit provides offset-based text edits and one-pass application.
// Bulk replacement builds one edit per match span and applies them in a
// single pass, so earlier substitutions never shift the offsets of later
// ones.
package edit

// Edit represents a single text replacement.
type Edit struct {
	// Start is the byte index where the edit begins (inclusive).
	Start int

	// End is the byte index where the edit ends (exclusive).
	End int

	// Text is the replacement text.
	Text string
}

// Builder accumulates edits against one text snapshot.
type Builder struct {
	Edits []Edit
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{Edits: make([]Edit, 0)}
}

// Replace adds an edit that replaces bytes [start, end) with text.
func (b *Builder) Replace(start, end int, text string) {
	b.Edits = append(b.Edits, Edit{Start: start, End: end, Text: text})
}

// Insert adds an edit that inserts text at offset.
func (b *Builder) Insert(offset int, text string) {
	b.Replace(offset, offset, text)
}

// Delete adds an edit that removes bytes [start, end).
func (b *Builder) Delete(start, end int) {
	b.Replace(start, end, "")
}
