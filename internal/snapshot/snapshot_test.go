package snapshot

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileURL(t *testing.T) {
	dir := t.TempDir()
	u, err := FileURL(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "file://"))
	assert.True(t, strings.HasSuffix(u, "/index.html"))
}

func TestCapture_MissingPage(t *testing.T) {
	_, err := Capture(context.Background(), filepath.Join(t.TempDir(), "missing.html"), 0, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page not found")
}

func TestCapture_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	if !BrowserAvailable() {
		t.Skip("Skipping browser test: Chrome/Chromium not found")
	}

	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(`<html><body><p id="main-score">76</p></body></html>`), 0644))

	png, err := Capture(context.Background(), path, 0, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
