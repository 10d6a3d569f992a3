package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the results_summary binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "results_summary"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// resetFlags restores every command flag variable to its default so
// in-process executions do not leak state between tests.
func resetFlags() {
	verbose = false
	renderData, renderTemplate, renderOut, renderConfigPath = "", "", "", ""
	renderShowTable = false
	renderTimeout = 0
	summaryData = ""
	summaryTimeout = 0
	screenshotPage, screenshotOut = "", ""
	screenshotTimeout = 30
}

// executeCommand runs the root command in-process and captures its output.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags()

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}
