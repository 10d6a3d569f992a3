package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/results-summary/internal/snapshot"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture a rendered page as PNG",
	Long:  "Opens a rendered results page in headless Chrome and writes a full-page PNG. Requires Chrome/Chromium to be installed.",
	RunE:  runScreenshot,
}

var (
	screenshotPage    string
	screenshotOut     string
	screenshotTimeout int
)

func init() {
	screenshotCmd.Flags().StringVarP(&screenshotPage, "page", "p", "", "Rendered HTML page (required)")
	screenshotCmd.Flags().StringVarP(&screenshotOut, "out", "o", "", "Output PNG file (required)")
	screenshotCmd.Flags().IntVar(&screenshotTimeout, "timeout", 30, "Capture timeout in seconds")

	if err := screenshotCmd.MarkFlagRequired("page"); err != nil {
		panic(fmt.Sprintf("failed to mark page flag as required: %v", err))
	}
	if err := screenshotCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(screenshotCmd)
}

func runScreenshot(cmd *cobra.Command, _ []string) error {
	png, err := snapshot.Capture(cmd.Context(), screenshotPage, time.Duration(screenshotTimeout)*time.Second, logger)
	if err != nil {
		return fmt.Errorf("failed to capture %s: %w", screenshotPage, err)
	}

	if err := os.WriteFile(screenshotOut, png, 0644); err != nil {
		return fmt.Errorf("failed to write screenshot %s: %w", screenshotOut, err)
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Screenshot: %s\n", screenshotOut)
	return nil
}
