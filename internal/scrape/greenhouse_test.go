package scrape

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greenhouseBoardHTML = `<html><body>
<h1 class="company-name">Jobs at Acme</h1>
<div class="opening">
	<a href="/acme/jobs/100">Backend Engineer</a>
	<span class="location">San Francisco, CA</span>
</div>
<div class="opening">
	<a href="/acme/jobs/101">Frontend Engineer</a>
	<span class="location">Remote</span>
</div>
<div class="opening">
	<a href="/acme/jobs/102"></a>
</div>
</body></html>`

const greenhousePostingHTML = `<html><body>
<div id="content">
	<p>We are looking for a Python engineer.</p>
	<p>Experience with Docker required.</p>
</div>
</body></html>`

// fakeFetcher returns canned HTML per URL.
type fakeFetcher struct {
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.calls = append(f.calls, url)
	html, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("no page for %s", url)
	}
	return html, nil
}

func TestParseGreenhouseBoard_Listings(t *testing.T) {
	jobs, err := parseGreenhouseBoard(greenhouseBoardHTML, "acme")
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Backend Engineer", jobs[0].Title)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, "San Francisco, CA", jobs[0].Location)
	assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/100", jobs[0].URL)
	assert.Equal(t, "greenhouse", jobs[0].Source)
	assert.Equal(t, "scraped", jobs[0].Status)

	assert.Equal(t, "Frontend Engineer", jobs[1].Title)
	assert.Equal(t, "Remote", jobs[1].Location)
}

func TestParseGreenhouseBoard_FallsBackToBoardToken(t *testing.T) {
	html := `<div class="opening"><a href="/x/jobs/1">Engineer</a></div>`
	jobs, err := parseGreenhouseBoard(html, "acme")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "acme", jobs[0].Company)
}

func TestFillGreenhousePosting_Description(t *testing.T) {
	jobs, err := parseGreenhouseBoard(greenhouseBoardHTML, "acme")
	require.NoError(t, err)

	fillGreenhousePosting(&jobs[0], greenhousePostingHTML)
	assert.Equal(t, "We are looking for a Python engineer. Experience with Docker required.", jobs[0].Description)
}

func TestGreenhouseScrapeBoard_EndToEnd(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"https://boards.greenhouse.io/acme":          greenhouseBoardHTML,
		"https://boards.greenhouse.io/acme/jobs/100": greenhousePostingHTML,
		// jobs/101 intentionally missing: posting fetch failures degrade
		// to listing-only jobs
	}}

	scraper := NewGreenhouse(fetcher)
	jobs, err := scraper.ScrapeBoard(context.Background(), "acme", 0)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Contains(t, jobs[0].Description, "Python engineer")
	assert.Empty(t, jobs[1].Description)
}

func TestGreenhouseScrapeBoard_MaxJobs(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"https://boards.greenhouse.io/acme":          greenhouseBoardHTML,
		"https://boards.greenhouse.io/acme/jobs/100": greenhousePostingHTML,
	}}

	scraper := NewGreenhouse(fetcher)
	jobs, err := scraper.ScrapeBoard(context.Background(), "acme", 1)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestGreenhouseScrapeBoard_BoardFetchFails(t *testing.T) {
	scraper := NewGreenhouse(&fakeFetcher{pages: map[string]string{}})
	jobs, err := scraper.ScrapeBoard(context.Background(), "acme", 0)
	assert.Error(t, err)
	assert.Nil(t, jobs)
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", normalizeWhitespace("  a\n\tb   c  "))
}

func TestResolveURL(t *testing.T) {
	assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/1",
		resolveURL(greenhouseBaseURL, "/acme/jobs/1"))
	assert.Equal(t, "https://other.example.com/jobs/1",
		resolveURL(greenhouseBaseURL, "https://other.example.com/jobs/1"))
}
