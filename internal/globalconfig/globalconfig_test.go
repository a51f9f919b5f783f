package globalconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutInit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := LoadPersistentConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swiftup init")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &PersistentConfig{DataDir: filepath.Join(home, ".local/share/swiftup")}
	cfg.Add("5.7.0")
	cfg.Add("main-snapshot-2022-09-12")
	cfg.InUse = "5.7.0"
	require.NoError(t, cfg.Save())

	// data_dir is stored with a ~ prefix so the file survives a moved home
	raw, err := os.ReadFile(filepath.Join(home, ".config/swiftup/config.yml"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "~/.local/share/swiftup"), string(raw))

	loaded, err := LoadPersistentConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg.DataDir, loaded.DataDir)
	assert.Equal(t, cfg.Installed, loaded.Installed)
	assert.Equal(t, "5.7.0", loaded.InUse)
}

func TestToolchainPaths(t *testing.T) {
	cfg := &PersistentConfig{DataDir: "/data"}
	assert.Equal(t, "/data/toolchains", cfg.ToolchainsDir())
	assert.Equal(t, "/data/toolchains/5.7.0", cfg.ToolchainPath("5.7.0"))
	assert.Equal(t, "/data/active", cfg.ActiveLink())
}
