package edit

import (
	"fmt"
	"strings"
)

// Diff is a unified diff between an original and a modified snapshot.
type Diff struct {
	// Path labels the diff header.
	Path string

	// Hunks contains the grouped changes with surrounding context.
	Hunks []Hunk

	// Additions and Deletions count changed lines.
	Additions int
	Deletions int
}

// Hunk is a run of changed lines plus context.
type Hunk struct {
	OrigStart int // 1-based start line in the original
	OrigCount int
	ModStart  int // 1-based start line in the modified text
	ModCount  int
	Lines     []Line
}

// Line is one line of a hunk.
type Line struct {
	Kind    LineKind
	Content string
}

// LineKind classifies a diff line.
type LineKind int

const (
	LineContext LineKind = iota
	LineAdd
	LineRemove
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// NewDiff computes a unified diff between original and modified content.
// Returns nil when the contents are identical.
func NewDiff(path, original, modified string) *Diff {
	if original == modified {
		return nil
	}

	orig := splitLines(original)
	mod := splitLines(modified)

	ops := diffOps(orig, mod)
	hunks := groupHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, h := range hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case LineAdd:
				d.Additions++
			case LineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// String renders the diff in unified format without color.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", d.Path, d.Path)
	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OrigStart, h.OrigCount, h.ModStart, h.ModCount)
		for _, l := range h.Lines {
			switch l.Kind {
			case LineAdd:
				b.WriteString("+")
			case LineRemove:
				b.WriteString("-")
			default:
				b.WriteString(" ")
			}
			b.WriteString(l.Content)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type diffOp struct {
	kind    LineKind
	content string
	origIdx int
	modIdx  int
}

// diffOps produces the full edit script between orig and mod using a
// longest-common-subsequence table.
func diffOps(orig, mod []string) []diffOp {
	// LCS length table.
	table := make([][]int, len(orig)+1)
	for i := range table {
		table[i] = make([]int, len(mod)+1)
	}
	for i := len(orig) - 1; i >= 0; i-- {
		for j := len(mod) - 1; j >= 0; j-- {
			if orig[i] == mod[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else {
				table[i][j] = max(table[i+1][j], table[i][j+1])
			}
		}
	}

	var ops []diffOp
	i, j := 0, 0
	for i < len(orig) && j < len(mod) {
		switch {
		case orig[i] == mod[j]:
			ops = append(ops, diffOp{kind: LineContext, content: orig[i], origIdx: i, modIdx: j})
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			ops = append(ops, diffOp{kind: LineRemove, content: orig[i], origIdx: i, modIdx: -1})
			i++
		default:
			ops = append(ops, diffOp{kind: LineAdd, content: mod[j], origIdx: -1, modIdx: j})
			j++
		}
	}
	for ; i < len(orig); i++ {
		ops = append(ops, diffOp{kind: LineRemove, content: orig[i], origIdx: i, modIdx: -1})
	}
	for ; j < len(mod); j++ {
		ops = append(ops, diffOp{kind: LineAdd, content: mod[j], origIdx: -1, modIdx: j})
	}
	return ops
}

// groupHunks groups contiguous changes into hunks with context lines.
func groupHunks(ops []diffOp) []Hunk {
	// Mark which op indices are changes.
	changed := make([]bool, len(ops))
	any := false
	for i, op := range ops {
		if op.kind != LineContext {
			changed[i] = true
			any = true
		}
	}
	if !any {
		return nil
	}

	// Mark ops to include: changes plus surrounding context.
	include := make([]bool, len(ops))
	for i := range ops {
		if !changed[i] {
			continue
		}
		lo := max(0, i-contextLines)
		hi := min(len(ops)-1, i+contextLines)
		for k := lo; k <= hi; k++ {
			include[k] = true
		}
	}

	var hunks []Hunk
	i := 0
	for i < len(ops) {
		if !include[i] {
			i++
			continue
		}
		start := i
		for i < len(ops) && include[i] {
			i++
		}
		hunks = append(hunks, buildHunk(ops[start:i]))
	}
	return hunks
}

func buildHunk(ops []diffOp) Hunk {
	h := Hunk{OrigStart: 1, ModStart: 1}

	// Hunk starts at the first op's line numbers (1-based).
	for _, op := range ops {
		if op.origIdx >= 0 {
			h.OrigStart = op.origIdx + 1
			break
		}
	}
	for _, op := range ops {
		if op.modIdx >= 0 {
			h.ModStart = op.modIdx + 1
			break
		}
	}

	for _, op := range ops {
		h.Lines = append(h.Lines, Line{Kind: op.kind, Content: op.content})
		switch op.kind {
		case LineContext:
			h.OrigCount++
			h.ModCount++
		case LineAdd:
			h.ModCount++
		case LineRemove:
			h.OrigCount++
		}
	}
	return h
}
