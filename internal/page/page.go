// Package page loads and serializes the HTML results page.
package page

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

//go:embed templates/results.html
var defaultTemplate string

// TemplateError represents an error loading or serializing the page template.
type TemplateError struct {
	Path    string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// DefaultTemplate returns the built-in results page markup.
func DefaultTemplate() string {
	return defaultTemplate
}

// Load parses the template at path. An empty path loads the built-in template.
func Load(path string) (*goquery.Document, error) {
	if path == "" {
		return Parse(strings.NewReader(defaultTemplate))
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Path:    path,
				Message: fmt.Sprintf("template file not found: %s", path),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Path:    path,
			Message: fmt.Sprintf("failed to read template file: %s", path),
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	doc, err := Parse(f)
	if err != nil {
		var tmplErr *TemplateError
		if errors.As(err, &tmplErr) {
			tmplErr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Parse parses HTML markup into a document.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}
	return doc, nil
}

// Render serializes the full document, including the doctype.
func Render(doc *goquery.Document) (string, error) {
	html, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return "", &TemplateError{
			Message: "failed to render HTML",
			Cause:   err,
		}
	}
	return html, nil
}

