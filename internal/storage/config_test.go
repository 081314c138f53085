package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing config file returns defaults", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, DefaultDataFile, cfg.DataFile)
		assert.Equal(t, DefaultColor, cfg.Color)
	})

	t.Run("partial config merges with defaults", func(t *testing.T) {
		dir := writeConfig(t, "data_file: staff.txt\n")

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "staff.txt", cfg.DataFile)
		assert.Equal(t, DefaultColor, cfg.Color)
	})

	t.Run("color setting is honored", func(t *testing.T) {
		dir := writeConfig(t, "color: never\n")

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "never", cfg.Color)
	})

	t.Run("invalid color setting is an error", func(t *testing.T) {
		dir := writeConfig(t, "color: sometimes\n")

		_, err := LoadConfig(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid color setting")
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		dir := writeConfig(t, "data_file: [unclosed\n")

		_, err := LoadConfig(dir)
		assert.Error(t, err)
	})
}

func TestOpen(t *testing.T) {
	t.Run("default path is employees.txt under dir", func(t *testing.T) {
		dir := t.TempDir()

		s, err := Open(dir, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "employees.txt"), s.Path())
	})

	t.Run("config data_file is resolved relative to dir", func(t *testing.T) {
		dir := writeConfig(t, "data_file: staff.txt\n")

		s, err := Open(dir, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "staff.txt"), s.Path())
	})

	t.Run("absolute data_file is used as-is", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "roster.txt")
		dir := writeConfig(t, "data_file: "+target+"\n")

		s, err := Open(dir, "")
		require.NoError(t, err)
		assert.Equal(t, target, s.Path())
	})

	t.Run("override wins over config", func(t *testing.T) {
		dir := writeConfig(t, "data_file: staff.txt\n")

		s, err := Open(dir, "elsewhere.txt")
		require.NoError(t, err)
		assert.Equal(t, "elsewhere.txt", s.Path())
	})
}

// writeConfig creates a temp dir containing a .empconfig.yaml with the
// given content and returns the dir.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, configFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return dir
}
