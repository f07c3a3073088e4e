package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDefaultConfig(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "ytcap")

	require.NoError(t, EnsureDefaultConfig(configDir))

	data, err := os.ReadFile(filepath.Join(configDir, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "cache_transcripts")
}

func TestEnsureDefaultConfigKeepsExisting(t *testing.T) {
	configDir := t.TempDir()
	configPath := filepath.Join(configDir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("verbose = true\n"), 0644))

	require.NoError(t, EnsureDefaultConfig(configDir))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "verbose = true\n", string(data))
}
