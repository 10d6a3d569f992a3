// Package pipeline provides the high-level orchestration for rendering the results page.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/results-summary/internal/binding"
	"github.com/jonathan/results-summary/internal/fetch"
	"github.com/jonathan/results-summary/internal/observability"
	"github.com/jonathan/results-summary/internal/page"
	"github.com/jonathan/results-summary/internal/types"
)

// StdoutPath selects standard output as the render destination.
const StdoutPath = "-"

// RunOptions holds configuration for a single render
type RunOptions struct {
	DataSource   string
	TemplatePath string
	OutPath      string
	ShowTable    bool
	Verbose      bool
	Timeout      time.Duration
	Logger       *zap.Logger
	// Stdout receives the page when OutPath is empty or "-".
	Stdout io.Writer
	// Stderr receives verbose output.
	Stderr io.Writer
}

// RunResult describes the outcome of a render
type RunResult struct {
	RunID   uuid.UUID
	Results []types.CategoryResult
	Report  *binding.Report
	HTML    string
	OutPath string
	// LoadErr is set when the data could not be retrieved; the page then carries the error banner.
	LoadErr error
}

// Run loads the page template, fetches the results, binds them and writes the page.
// A data load failure still writes the page, with an error banner, and is returned as the error.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	runID := uuid.New()
	logger = logger.With(zap.String("run_id", runID.String()))
	result := &RunResult{RunID: runID}

	doc, err := page.Load(opts.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load page template: %w", err)
	}

	fetchOpts := fetch.DefaultOptions()
	if opts.Timeout > 0 {
		fetchOpts.Timeout = opts.Timeout
	}
	if opts.TemplatePath != "" {
		fetchOpts.BaseDir = filepath.Dir(opts.TemplatePath)
	}

	logger.Info("Fetching data", zap.String("source", opts.DataSource))
	results, loadErr := fetch.Results(ctx, opts.DataSource, fetchOpts)
	if loadErr != nil {
		logger.Error("Error fetching data", zap.Error(loadErr))
		result.LoadErr = loadErr
		if err := binding.RenderError(doc, loadErr); err != nil {
			return nil, fmt.Errorf("failed to render error banner: %w", err)
		}
	} else {
		logger.Debug("Fetched data", zap.Int("records", len(results)))
		result.Results = results

		report, err := binding.NewBinder(logger).Bind(doc, results)
		if err != nil {
			return nil, fmt.Errorf("failed to bind results: %w", err)
		}
		result.Report = report

		if opts.ShowTable {
			if err := binding.AppendTable(doc, results); err != nil {
				return nil, fmt.Errorf("failed to append data table: %w", err)
			}
		}

		if report.HasAverage {
			observability.LogSummary(logger, results, report.Average)
		}
		if opts.Verbose {
			printer := observability.NewPrinter(stderr)
			if report.HasAverage {
				printer.PrintSummary(results, report.Average)
			}
			printer.PrintBindReport(report)
		}
	}

	html, err := page.Render(doc)
	if err != nil {
		return nil, err
	}
	result.HTML = html

	if err := writeOutput(opts.OutPath, html, stdout); err != nil {
		return nil, err
	}
	result.OutPath = opts.OutPath
	logger.Info("Page written", zap.String("out", displayPath(opts.OutPath)))

	if loadErr != nil {
		return result, fmt.Errorf("failed to load data: %w", loadErr)
	}
	return result, nil
}

// Summary holds the fetched results and their average.
type Summary struct {
	Results []types.CategoryResult
	Average int
	// HasAverage is false when there were no results to average.
	HasAverage bool
}

// Summarize fetches the results and returns them with their average, without touching a page.
func Summarize(ctx context.Context, source string, timeout time.Duration) (*Summary, error) {
	fetchOpts := fetch.DefaultOptions()
	if timeout > 0 {
		fetchOpts.Timeout = timeout
	}
	results, err := fetch.Results(ctx, source, fetchOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	avg, ok := binding.Average(results)
	return &Summary{Results: results, Average: avg, HasAverage: ok}, nil
}

func writeOutput(path, html string, stdout io.Writer) error {
	if path == "" || path == StdoutPath {
		if _, err := io.WriteString(stdout, html); err != nil {
			return fmt.Errorf("failed to write page: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write page %s: %w", path, err)
	}
	return nil
}

func displayPath(path string) string {
	if path == "" || path == StdoutPath {
		return "stdout"
	}
	return path
}
