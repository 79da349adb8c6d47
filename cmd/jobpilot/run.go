package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobpilot/internal/config"
	"github.com/jonathan/jobpilot/internal/db"
	"github.com/jonathan/jobpilot/internal/observability"
	"github.com/jonathan/jobpilot/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: scrape, classify, score, tailor",
	Long: `Scrapes every configured board, classifies and scores each job, and
generates tailored application assets for jobs at or above the tailoring
threshold. Results are persisted when a database URL is configured.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runMaxJobs     int
	runThreshold   int
	runConcurrency int
	runVerbose     bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file")
	runCommand.Flags().IntVar(&runMaxJobs, "max-jobs", 0, "Maximum jobs per board (0 = no limit)")
	runCommand.Flags().IntVar(&runThreshold, "threshold", 0, "Minimum score for asset generation (default 60)")
	runCommand.Flags().IntVar(&runConcurrency, "concurrency", 0, "Concurrent job processing limit (default 4)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print per-job details")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load(runConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	jobs, err := scrapeBoards(ctx, cfg, runMaxJobs)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Scraped %d jobs\n", len(jobs))

	var store pipeline.Store
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.Migrate(ctx); err != nil {
			return err
		}
		store = database
	}

	generator, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	visa, parser := newClassifiers(cfg)

	p := pipeline.New(newScorer(cfg), visa, parser, generator, pipeline.Options{
		Store:           store,
		ArtifactDir:     cfg.ArtifactDir,
		Concurrency:     runConcurrency,
		TailorThreshold: runThreshold,
	})

	results, err := p.ProcessJobs(ctx, jobs)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	tailored, failed := 0, 0
	for i := range results {
		result := &results[i]
		if cfg.Verbose {
			fmt.Printf("%s at %s\n", result.Job.Title, result.Job.Company)
			printer.PrintScoreResult(result.Score)
			printer.PrintClassification(result.Visa, result.Location)
			if result.Bundle != nil {
				printer.PrintBundle(result.Bundle)
			}
		}
		if result.Bundle != nil {
			tailored++
			if result.TailorErr != nil {
				failed++
				fmt.Fprintf(os.Stderr, "Warning: %s at %s: %v\n",
					result.Job.Title, result.Job.Company, result.TailorErr)
			}
		}
	}

	fmt.Printf("Processed %d jobs, tailored %d (%d failed verification)\n",
		len(results), tailored, failed)
	return nil
}
