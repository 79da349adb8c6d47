package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobpilot/internal/config"
	"github.com/jonathan/jobpilot/internal/db"
	"github.com/jonathan/jobpilot/internal/scrape"
	"github.com/jonathan/jobpilot/internal/types"
)

var scrapeCommand = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape configured Greenhouse and Lever boards",
	Long: `Fetches job listings from the Greenhouse and Lever boards named in
the config file. Jobs are saved to the database when a connection URL is
configured; otherwise they are printed as JSON.`,
	RunE: runScrapeCmd,
}

var (
	scrapeConfigPath string
	scrapeMaxJobs    int
	scrapeBrowser    bool
)

func init() {
	scrapeCommand.Flags().StringVar(&scrapeConfigPath, "config", "", "Path to config.json file")
	scrapeCommand.Flags().IntVar(&scrapeMaxJobs, "max-jobs", 0, "Maximum jobs per board (0 = no limit)")
	scrapeCommand.Flags().BoolVar(&scrapeBrowser, "use-browser", false, "Use headless browser for JS-rendered boards")

	rootCmd.AddCommand(scrapeCommand)
}

func runScrapeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load(scrapeConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = scrapeBrowser
	}

	jobs, err := scrapeBoards(ctx, cfg, scrapeMaxJobs)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Scraped %d jobs\n", len(jobs))

	if cfg.DatabaseURL == "" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(jobs)
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}
	for i := range jobs {
		id, err := database.SaveJob(ctx, &jobs[i])
		if err != nil {
			return err
		}
		jobs[i].ID = id
	}
	fmt.Fprintf(os.Stderr, "Saved %d jobs\n", len(jobs))
	return nil
}

// scrapeBoards collects jobs from every configured board. Per-board
// failures are reported and skipped so one broken board does not abort
// the whole run.
func scrapeBoards(ctx context.Context, cfg *config.Config, maxJobs int) ([]types.Job, error) {
	if len(cfg.GreenhouseBoards) == 0 && len(cfg.LeverBoards) == 0 {
		return nil, fmt.Errorf("no boards configured; set greenhouse_boards or lever_boards in the config file")
	}

	fetcher := newFetcher(cfg)
	greenhouse := scrape.NewGreenhouse(fetcher)
	lever := scrape.NewLever(fetcher)

	var jobs []types.Job
	for _, board := range cfg.GreenhouseBoards {
		scraped, err := greenhouse.ScrapeBoard(ctx, board, maxJobs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: greenhouse board %s: %v\n", board, err)
			continue
		}
		jobs = append(jobs, scraped...)
	}
	for _, site := range cfg.LeverBoards {
		scraped, err := lever.ScrapeBoard(ctx, site, maxJobs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: lever board %s: %v\n", site, err)
			continue
		}
		jobs = append(jobs, scraped...)
	}

	return jobs, nil
}
