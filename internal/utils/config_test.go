package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigYAML(t *testing.T) {
	cfg, err := ParseConfig([]byte("debug: true\nmax_bytes: 4096\nmax_allocs: 10\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, int64(4096), cfg.MaxBytes)
	assert.Equal(t, 10, cfg.MaxAllocs)
}

func TestParseConfigJSON(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"debug": false, "max_allocs": 3}`))
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.Equal(t, int64(0), cfg.MaxBytes)
	assert.Equal(t, 3, cfg.MaxAllocs)
}

func TestParseConfigAppliesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("max_bytes: -5\nmax_allocs: -1\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigInvalid(t *testing.T) {
	_, err := ParseConfig([]byte("max_bytes: [1, 2"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(dir, "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(dir, "ringq.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_allocs: 7\n"), 0644))
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.MaxAllocs)
	})
}
