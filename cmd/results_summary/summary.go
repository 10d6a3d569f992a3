package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/results-summary/internal/config"
	"github.com/jonathan/results-summary/internal/observability"
	"github.com/jonathan/results-summary/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the data summary without rendering a page",
	RunE:  runSummary,
}

var (
	summaryData    string
	summaryTimeout int
)

func init() {
	summaryCmd.Flags().StringVarP(&summaryData, "data", "d", "", "Data source URL or path (default: assets/data.json, or $RESULTS_DATA)")
	summaryCmd.Flags().IntVar(&summaryTimeout, "timeout", 0, "Remote fetch timeout in seconds (default: 30)")

	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	cfg := (&config.Config{Data: summaryData, TimeoutSeconds: summaryTimeout}).MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}

	summary, err := pipeline.Summarize(cmd.Context(), cfg.Data, time.Duration(cfg.TimeoutSeconds)*time.Second)
	if err != nil {
		return err
	}

	if !summary.HasAverage {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No results to summarize")
		return nil
	}

	if logger != nil {
		observability.LogSummary(logger, summary.Results, summary.Average)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintSummary(summary.Results, summary.Average)
	return nil
}
