// Package fetch retrieves the results data file from a URL or a local path.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/results-summary/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResultsSummary/1.0)"

// Result holds the raw body of a fetched data source.
type Result struct {
	Source      string
	Body        []byte
	ContentType string
	StatusCode  int
}

// Error represents an error retrieving a data source.
type Error struct {
	Source     string
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UserMessage returns the short message shown on the page, without the source.
func (e *Error) UserMessage() string {
	return e.Message
}

// ParseError represents a data source whose body is not a JSON array of results.
type ParseError struct {
	Source string
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error for %s: %v", e.Source, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// UserMessage returns the short message shown on the page, without the source.
func (e *ParseError) UserMessage() string {
	return e.Cause.Error()
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	// BaseDir resolves relative file sources. Empty means the working directory.
	BaseDir string
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// Source retrieves the raw content of a data source. Sources with an http or
// https scheme are fetched over HTTP; anything else is read from disk.
func Source(ctx context.Context, source string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if source == "" {
		return nil, &Error{Source: source, Message: "empty data source"}
	}
	if IsRemote(source) {
		return URL(ctx, source, opts)
	}
	return File(source, opts)
}

// URL retrieves content from an http(s) URL.
// A status outside 2xx is an error; the partial Result is still returned.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			Source:  urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	client := &http.Client{
		Timeout: opts.Timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{
			Source:  urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{
			Source:  urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			Source:     urlStr,
			Message:    "failed to read response body",
			StatusCode: resp.StatusCode,
			Cause:      err,
		}
	}

	result := &Result{
		Source:      urlStr,
		Body:        bodyBytes,
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if !IsSuccess(resp.StatusCode) {
		return result, &Error{
			Source:     urlStr,
			Message:    fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	return result, nil
}

// IsSuccess reports whether an HTTP status is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= http.StatusOK && status <= 299
}

// File reads a local data source. Relative paths are resolved against opts.BaseDir.
func File(path string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	resolved := ResolvePath(path, opts.BaseDir)
	data, err := os.ReadFile(resolved)
	if err != nil {
		msg := "failed to read file"
		if os.IsNotExist(err) {
			msg = "file not found"
		}
		return nil, &Error{
			Source:  resolved,
			Message: msg,
			Cause:   err,
		}
	}

	return &Result{
		Source:      resolved,
		Body:        data,
		ContentType: "application/json",
	}, nil
}

// ResolvePath resolves a file source against baseDir. A file:// prefix is stripped.
func ResolvePath(path, baseDir string) string {
	if u, err := url.Parse(path); err == nil && u.Scheme == "file" {
		path = u.Path
	}
	if filepath.IsAbs(path) || baseDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}

// Results retrieves a data source and decodes it as an ordered list of category results.
func Results(ctx context.Context, source string, opts *Options) ([]types.CategoryResult, error) {
	result, err := Source(ctx, source, opts)
	if err != nil {
		return nil, err
	}
	return DecodeResults(result.Source, result.Body)
}

// DecodeResults decodes a JSON array of category results.
func DecodeResults(source string, body []byte) ([]types.CategoryResult, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &ParseError{Source: source, Cause: fmt.Errorf("expected a JSON array")}
	}

	var records []*types.CategoryResult
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, &ParseError{Source: source, Cause: err}
	}

	results := make([]types.CategoryResult, 0, len(records))
	for i, r := range records {
		if r == nil {
			return nil, &ParseError{Source: source, Cause: fmt.Errorf("record %d is null", i)}
		}
		results = append(results, *r)
	}
	return results, nil
}
