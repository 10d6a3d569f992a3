// Package observability provides logging and formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/results-summary/internal/binding"
	"github.com/jonathan/results-summary/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// SummaryLines returns the data summary: the average followed by one line per record.
func SummaryLines(results []types.CategoryResult, average int) []string {
	lines := make([]string, 0, len(results)+1)
	lines = append(lines, fmt.Sprintf("Average Score: %d/%d", average, types.MaxScore))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("%s: %s", r.Category, r.FormattedScore()))
	}
	return lines
}

// PrintSummary outputs the data summary for every record.
func (p *Printer) PrintSummary(results []types.CategoryResult, average int) {
	p.printBox("DATA SUMMARY", strings.Join(SummaryLines(results, average), "\n"))
}

// PrintBindReport outputs which elements were written and which were missing.
func (p *Printer) PrintBindReport(report *binding.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Slots bound:    %d\n", len(report.BoundSlots)))
	sb.WriteString(fmt.Sprintf("Elements set:   %d\n", len(report.Updates)))
	if report.HasAverage {
		sb.WriteString(fmt.Sprintf("Main score:     %d\n", report.Average))
	} else {
		sb.WriteString("Main score:     unchanged (no results)\n")
	}

	if len(report.Missing) > 0 {
		sb.WriteString("\nMissing elements:\n")
		count := min(len(report.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • #%s\n", report.Missing[i]))
		}
		if len(report.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Missing)-maxItemsToShow))
		}
	}

	p.printBox("BIND REPORT", sb.String())
}
