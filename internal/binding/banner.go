package binding

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/results-summary/internal/types"
)

// ErrorBannerClass marks the element appended by RenderError.
const ErrorBannerClass = "load-error"

const errorBannerStyle = "color: red; padding: 10px; margin: 10px; border: 1px solid red;"

const cellStyle = "border: 1px solid #ddd; padding: 8px;"

// userMessager is implemented by errors that carry a short, page-facing message.
type userMessager interface {
	UserMessage() string
}

// RenderError appends a visible error block to the page body.
// Errors carrying a UserMessage show that message instead of the full chain.
// No category element is touched.
func RenderError(doc *goquery.Document, loadErr error) error {
	if doc == nil {
		return &BindError{Message: "document is nil"}
	}
	msg := "unknown error"
	if loadErr != nil {
		msg = loadErr.Error()
		var um userMessager
		if errors.As(loadErr, &um) {
			msg = um.UserMessage()
		}
	}

	banner := fmt.Sprintf(`<div class="%s" role="alert" style="%s"><strong>Error loading data:</strong> %s</div>`,
		ErrorBannerClass, errorBannerStyle, html.EscapeString(msg))

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return &BindError{Message: "page has no body element"}
	}
	body.AppendHtml(banner)
	return nil
}

// AppendTable appends a preview table listing every record to the page body.
func AppendTable(doc *goquery.Document, results []types.CategoryResult) error {
	if doc == nil {
		return &BindError{Message: "document is nil"}
	}

	var sb strings.Builder
	sb.WriteString(`<div class="data-preview"><h3>JSON Data Preview</h3>`)
	sb.WriteString(`<table style="border-collapse: collapse; width: 100%; margin: 20px 0;">`)
	sb.WriteString(`<thead><tr style="background-color: #f0f0f0;">`)
	for _, h := range []string{"Category", "Score", "Icon"} {
		sb.WriteString(fmt.Sprintf(`<th style="%s">%s</th>`, cellStyle, h))
	}
	sb.WriteString(`</tr></thead><tbody>`)
	for _, r := range results {
		sb.WriteString("<tr>")
		for _, v := range []string{r.Category, r.FormattedScore(), r.Icon} {
			sb.WriteString(fmt.Sprintf(`<td style="%s">%s</td>`, cellStyle, html.EscapeString(v)))
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString(`</tbody></table></div>`)

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return &BindError{Message: "page has no body element"}
	}
	body.AppendHtml(sb.String())
	return nil
}
