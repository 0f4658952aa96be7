package match

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/markpadhq/markpad/pkg/fsutil"
)

// DefaultHistoryLimit bounds each history list.
const DefaultHistoryLimit = 50

// History keeps the last accepted queries and replacement texts,
// most-recent-first, de-duplicated by exact string equality. The engine
// does not own it; hosts record entries when a search or replacement is
// accepted.
type History struct {
	Queries      []string `yaml:"queries"`
	Replacements []string `yaml:"replacements"`

	limit int
}

// NewHistory creates an empty history. A non-positive limit selects
// DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// AddQuery records an accepted query at the front of the list.
func (h *History) AddQuery(query string) {
	h.Queries = push(h.Queries, query, h.limit)
}

// AddReplacement records an accepted replacement text.
func (h *History) AddReplacement(text string) {
	h.Replacements = push(h.Replacements, text, h.limit)
}

// push prepends entry, removing any earlier duplicate and trimming to
// limit. Empty entries are not recorded.
func push(list []string, entry string, limit int) []string {
	if entry == "" {
		return list
	}
	if i := slices.Index(list, entry); i >= 0 {
		list = slices.Delete(list, i, i+1)
	}
	list = slices.Insert(list, 0, entry)
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}

// LoadHistory reads a history file. A missing file yields an empty
// history, not an error.
func LoadHistory(path string, limit int) (*History, error) {
	h := NewHistory(limit)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}

	if err := yaml.Unmarshal(data, h); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}

	// Re-trim in case the file exceeds the configured limit.
	if len(h.Queries) > h.limit {
		h.Queries = h.Queries[:h.limit]
	}
	if len(h.Replacements) > h.limit {
		h.Replacements = h.Replacements[:h.limit]
	}
	return h, nil
}

// Save writes the history atomically, creating parent directories as
// needed.
func (h *History) Save(ctx context.Context, path string) error {
	data, err := yaml.Marshal(h)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}

	if err := fsutil.WriteAtomic(ctx, path, data, 0); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
