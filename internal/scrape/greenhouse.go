package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/jobpilot/internal/types"
)

const greenhouseBaseURL = "https://boards.greenhouse.io"

// GreenhouseScraper scrapes job listings from Greenhouse-powered boards.
type GreenhouseScraper struct {
	fetcher Fetcher
}

// NewGreenhouse creates a Greenhouse scraper using the given fetcher.
func NewGreenhouse(fetcher Fetcher) *GreenhouseScraper {
	return &GreenhouseScraper{fetcher: fetcher}
}

// ScrapeBoard fetches a company's Greenhouse board and returns its job
// listings. Individual posting pages are fetched for full descriptions;
// a posting page that fails to load degrades to a listing-only job rather
// than failing the whole board.
func (s *GreenhouseScraper) ScrapeBoard(ctx context.Context, board string, maxJobs int) ([]types.Job, error) {
	boardURL := fmt.Sprintf("%s/%s", greenhouseBaseURL, board)

	html, err := s.fetcher.Fetch(ctx, boardURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch board %s: %w", board, err)
	}

	jobs, err := parseGreenhouseBoard(html, board)
	if err != nil {
		return nil, err
	}
	if maxJobs > 0 && len(jobs) > maxJobs {
		jobs = jobs[:maxJobs]
	}

	for i := range jobs {
		if jobs[i].URL == "" {
			continue
		}
		postingHTML, err := s.fetcher.Fetch(ctx, jobs[i].URL)
		if err != nil {
			continue
		}
		fillGreenhousePosting(&jobs[i], postingHTML)
	}

	return jobs, nil
}

// parseGreenhouseBoard extracts job listings from a Greenhouse board page.
func parseGreenhouseBoard(html, board string) ([]types.Job, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse board HTML: %w", err)
	}

	company := board
	if name := strings.TrimSpace(doc.Find("h1.company-name").First().Text()); name != "" {
		company = strings.TrimPrefix(name, "Jobs at ")
	}

	jobs := make([]types.Job, 0)
	doc.Find("div.opening").Each(func(_ int, opening *goquery.Selection) {
		link := opening.Find("a").First()
		title := strings.TrimSpace(link.Text())
		if title == "" {
			return
		}

		job := types.Job{
			Title:    title,
			Company:  company,
			Location: strings.TrimSpace(opening.Find("span.location").First().Text()),
			Source:   "greenhouse",
			Status:   "scraped",
		}
		if href, ok := link.Attr("href"); ok {
			job.URL = resolveURL(greenhouseBaseURL, href)
		}

		jobs = append(jobs, job)
	})

	return jobs, nil
}

// fillGreenhousePosting populates description fields from a posting page.
func fillGreenhousePosting(job *types.Job, html string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return
	}

	content := doc.Find("div#content").First()
	if content.Length() == 0 {
		content = doc.Find("div.job__description").First()
	}
	if content.Length() > 0 {
		job.Description = normalizeWhitespace(content.Text())
	}

	if job.Location == "" {
		job.Location = strings.TrimSpace(doc.Find("div.location").First().Text())
	}
}

func resolveURL(base, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
