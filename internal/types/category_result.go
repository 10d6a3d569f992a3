// Package types provides type definitions for structured data used throughout the results-summary system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// MaxScore is the upper bound of a category score.
const MaxScore = 100

// CategoryIDs lists the fixed category slots of the results page, in display order.
// Input records are matched to these slots by position.
var CategoryIDs = []string{"reaction", "memory", "verbal", "visual"}

// CategoryResult represents one assessment category as delivered in the data file
type CategoryResult struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	Icon     string `json:"icon"`
}

// FormattedScore returns the score as displayed on the page, e.g. "80/100".
func (r CategoryResult) FormattedScore() string {
	return fmt.Sprintf("%d/%d", r.Score, MaxScore)
}

// IconAlt returns the alt text for the category icon.
func (r CategoryResult) IconAlt() string {
	return r.Category + " icon"
}

// SlotID returns the category slot id for the record at the given position,
// or false when the position is past the fixed slots.
func SlotID(index int) (string, bool) {
	if index < 0 || index >= len(CategoryIDs) {
		return "", false
	}
	return CategoryIDs[index], true
}

// ScoreElementID returns the id of the element that displays a slot's score.
func ScoreElementID(slot string) string { return slot + "-score" }

// NameElementID returns the id of the element that displays a slot's category name.
func NameElementID(slot string) string { return slot + "-name" }

// IconElementID returns the id of the image element for a slot's icon.
func IconElementID(slot string) string { return slot + "-icon" }

// MainScoreElementID is the id of the element that displays the average score.
const MainScoreElementID = "main-score"
