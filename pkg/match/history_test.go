package match_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markpadhq/markpad/pkg/match"
)

func TestHistoryOrdering(t *testing.T) {
	t.Parallel()

	h := match.NewHistory(0)
	h.AddQuery("first")
	h.AddQuery("second")
	h.AddQuery("third")

	assert.Equal(t, []string{"third", "second", "first"}, h.Queries)
}

func TestHistoryDeduplicates(t *testing.T) {
	t.Parallel()

	h := match.NewHistory(0)
	h.AddQuery("a")
	h.AddQuery("b")
	h.AddQuery("a")

	assert.Equal(t, []string{"a", "b"}, h.Queries)
}

func TestHistoryLimit(t *testing.T) {
	t.Parallel()

	h := match.NewHistory(2)
	h.AddQuery("a")
	h.AddQuery("b")
	h.AddQuery("c")

	assert.Equal(t, []string{"c", "b"}, h.Queries)
}

func TestHistoryIgnoresEmptyEntries(t *testing.T) {
	t.Parallel()

	h := match.NewHistory(0)
	h.AddQuery("")
	h.AddReplacement("")

	assert.Empty(t, h.Queries)
	assert.Empty(t, h.Replacements)
}

func TestHistoryPersistence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "state", "history.yml")

	h := match.NewHistory(0)
	h.AddQuery("needle")
	h.AddReplacement("thread")
	require.NoError(t, h.Save(ctx, path))

	loaded, err := match.LoadHistory(path, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"needle"}, loaded.Queries)
	assert.Equal(t, []string{"thread"}, loaded.Replacements)
}

func TestLoadHistoryMissingFile(t *testing.T) {
	t.Parallel()

	h, err := match.LoadHistory(filepath.Join(t.TempDir(), "none.yml"), 0)
	require.NoError(t, err)
	assert.Empty(t, h.Queries)
}
