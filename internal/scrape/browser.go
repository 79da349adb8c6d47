package scrape

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// minContentLength is the minimum page text length to consider a plain
// HTTP fetch successful; shorter pages are likely JavaScript-rendered.
const minContentLength = 500

// ShouldUseBrowser reports whether a fetched page looks like an unrendered
// SPA shell and needs headless browser rendering.
func ShouldUseBrowser(html string) bool {
	return len(strings.TrimSpace(html)) < minContentLength
}

// BrowserFetcher renders pages in a headless browser. Requires
// Chrome/Chromium on the host.
type BrowserFetcher struct {
	timeout time.Duration
}

// NewBrowserFetcher creates a browser-backed fetcher.
func NewBrowserFetcher(timeout time.Duration) *BrowserFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &BrowserFetcher{timeout: timeout}
}

// Fetch navigates to the URL in a headless browser, waits for JavaScript
// to render, and returns the resulting HTML.
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, f.timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	return html, nil
}
