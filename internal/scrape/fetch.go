// Package scrape fetches and parses job postings from Greenhouse and Lever
// career boards.
package scrape

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

// Fetch defaults.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (compatible; JobPilot/1.0)"
	maxAttempts      = 3
)

// FetchError represents an error retrieving a board or posting page.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Fetcher retrieves HTML for a URL. Implemented by HTTPFetcher and
// BrowserFetcher.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches pages over plain HTTP with retry, exponential
// backoff, and a polite random delay between requests.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	delayMin  time.Duration
	delayMax  time.Duration
}

// NewHTTPFetcher creates a fetcher with the given inter-request delay
// bounds, in seconds.
func NewHTTPFetcher(delayMinSec, delayMaxSec float64) *HTTPFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
		delayMin:  time.Duration(delayMinSec * float64(time.Second)),
		delayMax:  time.Duration(delayMaxSec * float64(time.Second)),
	}
}

// Fetch retrieves a URL, retrying transient failures with exponential
// backoff. A random delay precedes every request so scraping stays polite.
func (f *HTTPFetcher) Fetch(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &FetchError{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	var lastErr error
	backoff := 2 * time.Second

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", &FetchError{URL: urlStr, Message: "canceled", Cause: ctx.Err()}
			}
			backoff *= 2
		}

		f.politeDelay(ctx)

		html, err := f.fetchOnce(ctx, urlStr)
		if err == nil {
			return html, nil
		}
		lastErr = err
	}

	return "", &FetchError{URL: urlStr, Message: "all attempts failed", Cause: lastErr}
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, urlStr string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

func (f *HTTPFetcher) politeDelay(ctx context.Context) {
	if f.delayMax <= 0 {
		return
	}
	delay := f.delayMin
	if f.delayMax > f.delayMin {
		delay += time.Duration(rand.Int63n(int64(f.delayMax - f.delayMin)))
	}
	select {
	case <-time.After(delay):
	case <-ctx.Done():
	}
}
