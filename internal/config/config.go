// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/jonathan/jobpilot/internal/location"
	"github.com/jonathan/jobpilot/internal/types"
)

// Defaults applied when neither file nor environment provides a value.
const (
	DefaultPort           = 8000
	DefaultArtifactDir    = "artifacts"
	DefaultBankPath       = "config/achievement_bank.json"
	DefaultScrapeDelayMin = 1.0
	DefaultScrapeDelayMax = 3.0
)

// Config is the application configuration, loadable from a JSON file with
// environment variable overrides. All fields are optional; missing values
// fall back to defaults.
type Config struct {
	// Paths
	AchievementBank string `json:"achievement_bank,omitempty"` // Path to achievement bank JSON
	ArtifactDir     string `json:"artifact_dir,omitempty"`     // Directory for generated assets

	// Candidate profile
	Candidate types.CandidateProfile `json:"candidate"`

	// Services
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // HTTP API port

	// Scraping
	GreenhouseBoards []string `json:"greenhouse_boards,omitempty"` // Greenhouse board tokens
	LeverBoards      []string `json:"lever_boards,omitempty"`      // Lever site names
	ScrapeDelayMin   float64  `json:"scrape_delay_min,omitempty"`  // Seconds between requests (min)
	ScrapeDelayMax   float64  `json:"scrape_delay_max,omitempty"`  // Seconds between requests (max)
	UseBrowser       bool     `json:"use_browser,omitempty"`       // Headless browser for JS-rendered boards

	// Classification
	VisaThreshold float64 `json:"visa_threshold,omitempty"` // Visa-friendliness cutoff

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed progress information
}

// Load reads configuration from an optional JSON file, then applies .env
// and environment overrides, then fills defaults. A missing config file is
// an error only when a path was given explicitly.
func Load(path string) (*Config, error) {
	// .env is optional; ignore absence
	_ = godotenv.Load()

	cfg := &Config{}

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("JOBPILOT_DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("JOBPILOT_ACHIEVEMENT_BANK"); v != "" {
		c.AchievementBank = v
	}
	if v := os.Getenv("JOBPILOT_ARTIFACT_DIR"); v != "" {
		c.ArtifactDir = v
	}
	if v := os.Getenv("JOBPILOT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
}

func (c *Config) applyDefaults() {
	if c.AchievementBank == "" {
		c.AchievementBank = DefaultBankPath
	}
	if c.ArtifactDir == "" {
		c.ArtifactDir = DefaultArtifactDir
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.ScrapeDelayMin == 0 {
		c.ScrapeDelayMin = DefaultScrapeDelayMin
	}
	if c.ScrapeDelayMax == 0 {
		c.ScrapeDelayMax = DefaultScrapeDelayMax
	}
	if c.VisaThreshold == 0 {
		c.VisaThreshold = location.DefaultVisaThreshold
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.ScrapeDelayMin < 0 || c.ScrapeDelayMax < 0 {
		return fmt.Errorf("config error: scrape delays must be non-negative")
	}
	if c.ScrapeDelayMax < c.ScrapeDelayMin {
		return fmt.Errorf("config error: 'scrape_delay_max' must be >= 'scrape_delay_min'")
	}
	if c.VisaThreshold < 0 || c.VisaThreshold > 1 {
		return fmt.Errorf("config error: 'visa_threshold' must be in [0, 1]")
	}
	return nil
}
