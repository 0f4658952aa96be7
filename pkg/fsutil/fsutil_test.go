package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markpadhq/markpad/pkg/fsutil"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("reads content and metadata", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "doc.md", "# hello\n")

		content, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "# hello\n", string(content))
		require.NotNil(t, info)
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(8), info.Size)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, _, err := fsutil.ReadFile(ctx, filepath.Join(t.TempDir(), "nope.md"))
		assert.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		_, _, err := fsutil.ReadFile(ctx, t.TempDir())
		assert.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unmodified", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "doc.md", "text")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		modified, err := fsutil.CheckModified(ctx, info)
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("content change detected", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "doc.md", "text")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("changed"), 0644))
		modified, err := fsutil.CheckModified(ctx, info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("deleted file counts as modified", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "doc.md", "text")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		require.NoError(t, os.Remove(path))
		modified, err := fsutil.CheckModified(ctx, info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()
		_, err := fsutil.CheckModified(ctx, nil)
		assert.ErrorIs(t, err, fsutil.ErrNilFileInfo)
	})
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out.md")
		require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("body"), 0))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "body", string(content))
	})

	t.Run("replaces existing content", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "out.md", "old")
		require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("new"), 0))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "out.md")
		require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("body"), 0))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := writeTemp(t, "out.md", "same")

	wrote, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("same"), 0)
	require.NoError(t, err)
	assert.False(t, wrote)

	wrote, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("different"), 0)
	require.NoError(t, err)
	assert.True(t, wrote)
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := writeTemp(t, "doc.md", "original")

	created, err := fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.True(t, created)

	backup, err := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "original", string(backup))

	// Second backup must not overwrite the first.
	require.NoError(t, os.WriteFile(path, []byte("edited"), 0644))
	created, err = fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.False(t, created)

	backup, err = os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "original", string(backup))
}
