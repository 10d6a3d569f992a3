package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {"category": "Reaction", "score": 80, "icon": "./assets/images/icon-reaction.svg"},
  {"category": "Memory", "score": 92, "icon": "./assets/images/icon-memory.svg"},
  {"category": "Verbal", "score": 61, "icon": "./assets/images/icon-verbal.svg"},
  {"category": "Visual", "score": 72, "icon": "./assets/images/icon-visual.svg"}
]`

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.Source)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "application/json", result.ContentType)
	assert.Contains(t, string(result.Body), "Reaction")
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Contains(t, err.Error(), "HTTP error! status: 404")
}

func TestURL_CustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.Headers = map[string]string{"X-Test": "yes"}

	_, err := URL(context.Background(), server.URL, opts)
	require.NoError(t, err)
}

func TestFile_RelativeToBaseDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "data.json"), []byte(sampleJSON), 0644))

	opts := DefaultOptions()
	opts.BaseDir = dir

	result, err := File("./assets/data.json", opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "assets", "data.json"), result.Source)
	assert.Contains(t, string(result.Body), "Visual")
}

func TestFile_NotFound(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.json"), nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "file not found")
	assert.True(t, os.IsNotExist(fetchErr.Cause))
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, filepath.Join("site", "assets", "data.json"), ResolvePath("./assets/data.json", "site"))
	assert.Equal(t, "/abs/data.json", ResolvePath("/abs/data.json", "site"))
	assert.Equal(t, "/abs/data.json", ResolvePath("file:///abs/data.json", "site"))
	assert.Equal(t, filepath.Join("assets", "data.json"), ResolvePath("assets/data.json", ""))
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("http://example.com/data.json"))
	assert.True(t, IsRemote("https://example.com/data.json"))
	assert.False(t, IsRemote("./assets/data.json"))
	assert.False(t, IsRemote("file:///tmp/data.json"))
}

func TestSource_Empty(t *testing.T) {
	_, err := Source(context.Background(), "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty data source")
}

func TestResults_FromServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer server.Close()

	results, err := Results(context.Background(), server.URL, nil)
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "Reaction", results[0].Category)
	assert.Equal(t, 80, results[0].Score)
	assert.Equal(t, "./assets/images/icon-reaction.svg", results[0].Icon)
	assert.Equal(t, "Visual", results[3].Category)
	assert.Equal(t, 72, results[3].Score)
}

func TestResults_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	results, err := Results(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), "500")
}

func TestDecodeResults_NotArray(t *testing.T) {
	_, err := DecodeResults("data.json", []byte(`{"category": "Reaction"}`))
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "expected a JSON array")
}

func TestDecodeResults_InvalidJSON(t *testing.T) {
	_, err := DecodeResults("data.json", []byte(`[{ invalid json }]`))
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestDecodeResults_FractionalScore(t *testing.T) {
	_, err := DecodeResults("data.json", []byte(`[{"category": "Reaction", "score": 80.5, "icon": ""}]`))
	require.Error(t, err)
}

func TestDecodeResults_Empty(t *testing.T) {
	results, err := DecodeResults("data.json", []byte(" [] \n"))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestURL_NonOKSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNonAuthoritativeInfo)
		_, _ = w.Write([]byte(`[{"category": "Reaction", "score": 80, "icon": "r.svg"}]`))
	}))
	defer server.Close()

	results, err := Results(context.Background(), server.URL, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 80, results[0].Score)
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(http.StatusOK))
	assert.True(t, IsSuccess(http.StatusPartialContent))
	assert.True(t, IsSuccess(299))
	assert.False(t, IsSuccess(199))
	assert.False(t, IsSuccess(http.StatusMultipleChoices))
	assert.False(t, IsSuccess(http.StatusNotFound))
}

func TestDecodeResults_NullRecord(t *testing.T) {
	_, err := DecodeResults("data.json", []byte(`[null, {"category": "Memory", "score": 90, "icon": "m.svg"}]`))
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "record 0 is null", parseErr.UserMessage())
}

func TestError_UserMessage(t *testing.T) {
	err := &Error{Source: "http://host/data.json", Message: "HTTP error! status: 503", StatusCode: 503}
	assert.Equal(t, "HTTP error! status: 503", err.UserMessage())
	assert.Contains(t, err.Error(), "http://host/data.json")
}
