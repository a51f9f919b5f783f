package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftup/swiftup/internal/download"
	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/logger"
)

func testBase(t *testing.T, installed ...string) *Base {
	t.Helper()
	logger.UseTestMode()
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &globalconfig.PersistentConfig{DataDir: filepath.Join(home, "data")}
	for _, name := range installed {
		require.NoError(t, os.MkdirAll(cfg.ToolchainPath(name), 0o755))
		cfg.Add(name)
	}
	return NewBase(cfg, nil, nil)
}

func TestActivateUnknownToolchain(t *testing.T) {
	b := testBase(t)

	err := b.Activate("5.7.0")
	assert.ErrorIs(t, err, ErrNotInstalled)
}

func TestActivateDeactivate(t *testing.T) {
	b := testBase(t, "5.7.0")

	require.NoError(t, b.Activate("5.7.0"))
	assert.Equal(t, "5.7.0", b.Config.InUse)

	target, err := os.Readlink(b.Config.ActiveLink())
	require.NoError(t, err)
	assert.Equal(t, b.Config.ToolchainPath("5.7.0"), target)

	require.NoError(t, b.Deactivate())
	assert.Empty(t, b.Config.InUse)
	_, err = os.Lstat(b.Config.ActiveLink())
	assert.True(t, os.IsNotExist(err))

	// deactivating twice is fine
	require.NoError(t, b.Deactivate())
}

func TestProgressRenderer(t *testing.T) {
	var out bytes.Buffer
	render := ProgressRenderer(&out)

	render(download.Progress{Received: 512, Total: 1024})
	render(download.Progress{Received: 1024, Total: 1024})

	got := out.String()
	assert.Contains(t, got, "50%")
	assert.Contains(t, got, "100%")
	assert.True(t, bytes.HasSuffix(out.Bytes(), []byte("\n")), "completed transfer ends the line")
}

func TestProgressRendererUnknownTotal(t *testing.T) {
	var out bytes.Buffer
	render := ProgressRenderer(&out)

	render(download.Progress{Received: 2048, Total: -1})
	assert.Contains(t, out.String(), "2.0 KiB")
	assert.NotContains(t, out.String(), "%")
}
