// Package snapshot renders a written results page in headless Chrome and captures it as PNG.
// Requires Chrome/Chromium to be installed on the system.
package snapshot

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a whole capture, including browser start-up.
const DefaultTimeout = 30 * time.Second

// pngQuality makes chromedp encode the capture as PNG instead of JPEG.
const pngQuality = 100

var browserNames = []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "chrome"}

// BrowserAvailable reports whether a Chrome/Chromium binary is on PATH.
func BrowserAvailable() bool {
	for _, name := range browserNames {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// FileURL converts a local page path into a file:// URL.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve page path: %w", err)
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

// Capture loads the page at pagePath and returns a full-page PNG screenshot.
func Capture(ctx context.Context, pagePath string, timeout time.Duration, logger *zap.Logger) ([]byte, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if _, err := os.Stat(pagePath); err != nil {
		return nil, fmt.Errorf("page not found: %w", err)
	}

	pageURL, err := FileURL(pagePath)
	if err != nil {
		return nil, err
	}
	logger.Info("Starting headless browser", zap.String("url", pageURL))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			// file:// pages load their sibling assets
			chromedp.Flag("allow-file-access-from-files", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var buf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.FullScreenshot(&buf, pngQuality),
	)
	if err != nil {
		return nil, fmt.Errorf("browser capture failed: %w", err)
	}

	logger.Info("Captured screenshot", zap.Int("bytes", len(buf)))
	return buf, nil
}
