package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/jobpilot/internal/types"
)

const leverBaseURL = "https://jobs.lever.co"

// LeverScraper scrapes job listings from Lever-powered boards.
type LeverScraper struct {
	fetcher Fetcher
}

// NewLever creates a Lever scraper using the given fetcher.
func NewLever(fetcher Fetcher) *LeverScraper {
	return &LeverScraper{fetcher: fetcher}
}

// ScrapeBoard fetches a company's Lever board and returns its job
// listings, fetching individual posting pages for full descriptions.
func (s *LeverScraper) ScrapeBoard(ctx context.Context, site string, maxJobs int) ([]types.Job, error) {
	boardURL := fmt.Sprintf("%s/%s", leverBaseURL, site)

	html, err := s.fetcher.Fetch(ctx, boardURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch board %s: %w", site, err)
	}

	jobs, err := parseLeverBoard(html, site)
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
		fillLeverPosting(&jobs[i], postingHTML)
	}

	return jobs, nil
}

// parseLeverBoard extracts job listings from a Lever board page.
func parseLeverBoard(html, site string) ([]types.Job, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse board HTML: %w", err)
	}

	jobs := make([]types.Job, 0)
	doc.Find("div.posting").Each(func(_ int, posting *goquery.Selection) {
		title := strings.TrimSpace(posting.Find(`h5[data-qa="posting-name"]`).First().Text())
		if title == "" {
			title = strings.TrimSpace(posting.Find("a.posting-title h5").First().Text())
		}
		if title == "" {
			return
		}

		job := types.Job{
			Title:    title,
			Company:  site,
			Location: strings.TrimSpace(posting.Find("span.sort-by-location").First().Text()),
			Source:   "lever",
			Status:   "scraped",
		}
		if href, ok := posting.Find("a.posting-title").First().Attr("href"); ok {
			job.URL = resolveURL(leverBaseURL, href)
		}

		jobs = append(jobs, job)
	})

	return jobs, nil
}

// fillLeverPosting populates description fields from a posting page.
func fillLeverPosting(job *types.Job, html string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return
	}

	if section := doc.Find("div.section-wrapper div.section").First(); section.Length() > 0 {
		job.Description = normalizeWhitespace(section.Text())
	}

	// Lever splits requirements into their own list sections
	var requirements []string
	doc.Find("div.posting-requirements li").Each(func(_ int, li *goquery.Selection) {
		if text := strings.TrimSpace(li.Text()); text != "" {
			requirements = append(requirements, text)
		}
	})
	if len(requirements) > 0 {
		job.Requirements = strings.Join(requirements, " ")
	}

	if job.Location == "" {
		job.Location = strings.TrimSpace(doc.Find("div.posting-categories div.location").First().Text())
	}
}
