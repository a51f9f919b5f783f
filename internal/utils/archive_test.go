package utils

import (
	"archive/tar"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArchive(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	for name, content := range entries {
		hdr := &tar.Header{Name: name, Mode: 0o755, Size: int64(len(content))}
		require.NoError(t, tw.WriteHeader(hdr))
		_, err = tw.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
}

func TestExtractTarGz(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "toolchain.tar.gz")
	writeArchive(t, archive, map[string]string{
		"swift-5.7.0-RELEASE-ubuntu22.04/usr/bin/swift":    "#!/bin/sh\n",
		"swift-5.7.0-RELEASE-ubuntu22.04/usr/lib/libswift": "lib",
		"swift-5.7.0-RELEASE-ubuntu22.04/LICENSE.txt":      "license",
	})

	dest := filepath.Join(dir, "out")
	require.NoError(t, ExtractTarGz(archive, dest))

	// the single top-level directory is stripped
	data, err := os.ReadFile(filepath.Join(dest, "usr", "bin", "swift"))
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\n", string(data))

	ok, err := FileExists(filepath.Join(dest, "LICENSE.txt"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExtractTarGzRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "evil.tar.gz")
	writeArchive(t, archive, map[string]string{
		"top/../../escape": "evil",
	})

	err := ExtractTarGz(archive, filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes destination")
}
