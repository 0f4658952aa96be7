package edit

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError describes an edit whose range does not fit the content.
type ValidationError struct {
	Edit    Edit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.Start, e.Edit.End, e.Message)
}

// ConflictError describes two overlapping edits.
type ConflictError struct {
	First  Edit
	Second Edit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.First.Start, e.First.End, e.Second.Start, e.Second.End)
}

// Prepare validates edits against the content length, sorts them by start
// offset, and rejects overlaps. The input slice is not modified.
func Prepare(edits []Edit, contentLen int) ([]Edit, error) {
	if len(edits) == 0 {
		return edits, nil
	}

	for _, e := range edits {
		switch {
		case e.Start < 0:
			return nil, &ValidationError{Edit: e, Message: "start offset is negative"}
		case e.End < e.Start:
			return nil, &ValidationError{Edit: e, Message: "end offset is before start offset"}
		case e.End > contentLen:
			return nil, &ValidationError{
				Edit:    e,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", e.End, contentLen),
			}
		}
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return nil, &ConflictError{First: sorted[i-1], Second: sorted[i]}
		}
	}

	return sorted, nil
}

// Apply applies sorted, non-overlapping edits to content in one pass.
// Edits must be prepared with Prepare before calling.
func Apply(content string, edits []Edit) string {
	if len(edits) == 0 {
		return content
	}

	delta := 0
	for _, e := range edits {
		delta += len(e.Text) - (e.End - e.Start)
	}

	var out strings.Builder
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range edits {
		out.WriteString(content[cursor:e.Start])
		out.WriteString(e.Text)
		cursor = e.End
	}
	out.WriteString(content[cursor:])

	return out.String()
}
