// Package binding writes category results into the results page.
//
// Records are matched to the fixed category slots by position. Each bound
// slot has three elements, <slot>-score, <slot>-name and <slot>-icon; the
// average of every record is written to #main-score.
package binding

import (
	"math"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/jonathan/results-summary/internal/types"
)

// Field identifies which part of a slot an update touched.
type Field string

const (
	FieldScore     Field = "score"
	FieldName      Field = "name"
	FieldIcon      Field = "icon"
	FieldMainScore Field = "main-score"
)

// Update records a single element write.
type Update struct {
	ElementID string
	Field     Field
	Value     string
}

// Report summarizes what Bind changed.
type Report struct {
	Updates    []Update
	BoundSlots []string
	Missing    []string // element ids that were not present in the page
	Average    int
	HasAverage bool
}

// Binder writes results into a document.
type Binder struct {
	logger *zap.Logger
}

// NewBinder creates a Binder. A nil logger disables logging.
func NewBinder(logger *zap.Logger) *Binder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Binder{logger: logger}
}

// Bind writes the first len(types.CategoryIDs) records into their slots and the
// average of all records into the main score element. Slots without a record
// and elements missing from the page are left untouched.
func (b *Binder) Bind(doc *goquery.Document, results []types.CategoryResult) (*Report, error) {
	if doc == nil {
		return nil, &BindError{Message: "document is nil"}
	}

	report := &Report{}

	for i, item := range results {
		slot, ok := types.SlotID(i)
		if !ok {
			break
		}

		b.setText(doc, report, types.ScoreElementID(slot), FieldScore, item.FormattedScore())
		b.setText(doc, report, types.NameElementID(slot), FieldName, item.Category)

		iconID := types.IconElementID(slot)
		if icon := byID(doc, iconID); icon.Length() > 0 {
			icon.SetAttr("src", item.Icon)
			icon.SetAttr("alt", item.IconAlt())
			report.Updates = append(report.Updates, Update{ElementID: iconID, Field: FieldIcon, Value: item.Icon})
			b.logger.Debug("Updated icon", zap.String("slot", slot), zap.String("icon", item.Icon))
		} else {
			b.missing(report, iconID)
		}

		report.BoundSlots = append(report.BoundSlots, slot)
	}

	avg, ok := Average(results)
	if !ok {
		b.logger.Debug("No results, main score left unchanged")
		return report, nil
	}
	report.Average = avg
	report.HasAverage = true
	b.setText(doc, report, types.MainScoreElementID, FieldMainScore, strconv.Itoa(avg))

	return report, nil
}

func (b *Binder) setText(doc *goquery.Document, report *Report, id string, field Field, value string) {
	sel := byID(doc, id)
	if sel.Length() == 0 {
		b.missing(report, id)
		return
	}
	sel.SetText(value)
	report.Updates = append(report.Updates, Update{ElementID: id, Field: field, Value: value})
	b.logger.Debug("Updated element", zap.String("id", id), zap.String("value", value))
}

func (b *Binder) missing(report *Report, id string) {
	report.Missing = append(report.Missing, id)
	b.logger.Debug("Element not found, skipping", zap.String("id", id))
}

// byID matches on the id attribute so ids need no CSS escaping.
func byID(doc *goquery.Document, id string) *goquery.Selection {
	return doc.FindMatcher(goquery.Single(`[id="` + id + `"]`))
}

// Average returns the mean of all scores rounded half up, and false for no results.
func Average(results []types.CategoryResult) (int, bool) {
	if len(results) == 0 {
		return 0, false
	}
	total := 0
	for _, r := range results {
		total += r.Score
	}
	return int(math.Floor(float64(total)/float64(len(results)) + 0.5)), true
}
