package filesystem

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_WriteReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	a := New()
	path := filepath.Join(t.TempDir(), "nested", "dir", "log.json")

	require.NoError(t, a.WriteFile(ctx, path, []byte("[]")))

	data, err := a.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestAdapter_ExistsAndIsDirectory(t *testing.T) {
	ctx := context.Background()
	a := New()
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	ok, err := a.Exists(ctx, file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Exists(ctx, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)

	isDir, err := a.IsDirectory(ctx, dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = a.IsDirectory(ctx, file)
	require.NoError(t, err)
	assert.False(t, isDir)

	_, err = a.IsDirectory(ctx, filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestAdapter_RemoveAndRemoveAll(t *testing.T) {
	ctx := context.Background()
	a := New()
	dir := t.TempDir()
	file := filepath.Join(dir, "sub", "a.txt")
	require.NoError(t, a.WriteFile(ctx, file, []byte("x")))

	require.NoError(t, a.Remove(ctx, file))
	assert.ErrorIs(t, a.Remove(ctx, file), fs.ErrNotExist)

	require.NoError(t, a.RemoveAll(ctx, filepath.Join(dir, "sub")))
	assert.NoDirExists(t, filepath.Join(dir, "sub"))
}
