package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/jobpilot/internal/config"
	"github.com/jonathan/jobpilot/internal/factbank"
	"github.com/jonathan/jobpilot/internal/lexicon"
	"github.com/jonathan/jobpilot/internal/location"
	"github.com/jonathan/jobpilot/internal/scoring"
	"github.com/jonathan/jobpilot/internal/scrape"
	"github.com/jonathan/jobpilot/internal/tailoring"
	"github.com/jonathan/jobpilot/internal/verification"
)

// newScorer builds a scorer from the configured candidate profile.
func newScorer(cfg *config.Config) *scoring.Scorer {
	return scoring.New(lexicon.Default(), cfg.Candidate)
}

// newClassifiers builds the visa detector and location parser.
func newClassifiers(cfg *config.Config) (*location.VisaDetector, *location.Parser) {
	return location.NewVisaDetector(cfg.VisaThreshold), location.NewParser()
}

// newGenerator loads the achievement bank and builds the asset generator.
func newGenerator(cfg *config.Config) (*tailoring.Generator, error) {
	bank, err := factbank.Load(cfg.AchievementBank)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievement bank: %w", err)
	}
	return tailoring.NewGenerator(bank, verification.New(bank)), nil
}

// newFetcher picks an HTTP or headless browser fetcher per config.
func newFetcher(cfg *config.Config) scrape.Fetcher {
	if cfg.UseBrowser {
		return scrape.NewBrowserFetcher(scrape.DefaultTimeout)
	}
	return scrape.NewHTTPFetcher(cfg.ScrapeDelayMin, cfg.ScrapeDelayMax)
}

// readInput reads text from a file path, or from stdin when path is "-"
// or empty.
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// parseSkillList splits a comma-separated skill list into trimmed,
// lowercased entries.
func parseSkillList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, strings.ToLower(trimmed))
		}
	}
	return skills
}
