package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXDGDirs_FromEnvironment(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "config", "paneshell"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(root, "data", "paneshell"), dirs.DataHome)
	assert.Equal(t, filepath.Join(root, "state", "paneshell"), dirs.StateHome)

	logDir, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "state", "paneshell", "logs"), logDir)

	require.NoError(t, EnsureDirectories())
	assert.DirExists(t, dirs.DataHome)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(".dev", "paneshell"), filepath.Join(filepath.Base(filepath.Dir(dirs.DataHome)), filepath.Base(dirs.DataHome)))
	assert.Equal(t, dirs.ConfigHome, dirs.StateHome)
}

func TestGetDownloadDir(t *testing.T) {
	t.Setenv("XDG_DOWNLOAD_DIR", "/custom/downloads")

	dir, err := GetDownloadDir()

	require.NoError(t, err)
	assert.Equal(t, "/custom/downloads", dir)
}
