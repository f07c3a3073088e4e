package cmd

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClaudeDesktopConfigPath(t *testing.T) {
	path, err := claudeDesktopConfigPath()
	switch runtime.GOOS {
	case "darwin", "linux":
		require.NoError(t, err)
		require.True(t, filepath.IsAbs(path))
		require.Equal(t, "claude_desktop_config.json", filepath.Base(path))
	case "windows":
		// Depends on APPDATA, which may be unset on CI runners.
		if err == nil {
			require.Equal(t, "claude_desktop_config.json", filepath.Base(path))
		}
	}
}
