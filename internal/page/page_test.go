package page

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultTemplate(t *testing.T) {
	doc, err := Load("")
	require.NoError(t, err)

	for _, id := range []string{"main-score", "reaction-score", "memory-name", "verbal-icon", "visual-score"} {
		assert.Equal(t, 1, doc.Find("#"+id).Length(), "missing #%s", id)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(`<html><body><p id="main-score">0</p></body></html>`), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0", doc.Find("#main-score").Text())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/index.html")
	require.Error(t, err)

	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
	assert.Equal(t, "/nonexistent/index.html", tmplErr.Path)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestRender_RoundTrip(t *testing.T) {
	doc, err := Parse(strings.NewReader(DefaultTemplate()))
	require.NoError(t, err)

	doc.Find("#main-score").SetText("99")

	html, err := Render(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<p id="main-score">99</p>`)
	assert.Contains(t, html, `id="visual-icon"`)
}
