package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobpilot/internal/config"
	"github.com/jonathan/jobpilot/internal/observability"
	"github.com/jonathan/jobpilot/internal/pipeline"
	"github.com/jonathan/jobpilot/internal/types"
)

var tailorCommand = &cobra.Command{
	Use:   "tailor",
	Short: "Generate truth-verified application assets for a job posting",
	Long: `Scores a job posting, then generates a tailored resume, ATS-plain
resume, cover email, outreach message, and metadata snapshot. Every text
asset is checked against the achievement bank; assets containing claims the
bank cannot verify are flagged and the command exits non-zero.`,
	RunE: runTailorCmd,
}

var (
	tailorConfigPath string
	tailorFile       string
	tailorTitle      string
	tailorCompany    string
	tailorURL        string
	tailorOutDir     string
)

func init() {
	tailorCommand.Flags().StringVar(&tailorConfigPath, "config", "", "Path to config.json file")
	tailorCommand.Flags().StringVarP(&tailorFile, "file", "f", "", "Path to job posting text file (default: stdin)")
	tailorCommand.Flags().StringVarP(&tailorTitle, "title", "t", "", "Job title")
	tailorCommand.Flags().StringVarP(&tailorCompany, "company", "c", "", "Company name")
	tailorCommand.Flags().StringVar(&tailorURL, "url", "", "Job posting URL")
	tailorCommand.Flags().StringVarP(&tailorOutDir, "out", "o", "", "Output directory (default: config artifact_dir)")

	_ = tailorCommand.MarkFlagRequired("title")
	_ = tailorCommand.MarkFlagRequired("company")

	rootCmd.AddCommand(tailorCommand)
}

func runTailorCmd(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(tailorConfigPath)
	if err != nil {
		return err
	}

	text, err := readInput(tailorFile)
	if err != nil {
		return err
	}

	job := &types.Job{
		Title:       tailorTitle,
		Company:     tailorCompany,
		URL:         tailorURL,
		Description: text,
	}

	// Score first so asset generation sees the extracted skills
	result := newScorer(cfg).ScoreText(text)
	job.Score = result.Score
	job.Skills = result.ExtractedSkills
	job.MatchReasons = result.MatchReasons

	generator, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	bundle, tailorErr := generator.BuildAssets(job)
	if bundle == nil {
		return tailorErr
	}

	outDir := tailorOutDir
	if outDir == "" {
		outDir = cfg.ArtifactDir
	}
	if err := pipeline.WriteAssets(outDir, job, bundle); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintBundle(bundle)
	fmt.Printf("Assets written under %s\n", outDir)

	if tailorErr != nil {
		return fmt.Errorf("generated assets failed truth verification: %w", tailorErr)
	}
	return nil
}
