package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobpilot/internal/config"
	"github.com/jonathan/jobpilot/internal/observability"
)

var scoreCommand = &cobra.Command{
	Use:   "score",
	Short: "Score a job posting against the candidate profile",
	Long: `Extracts skills from a job posting and computes a 0-100 compatibility
score against the configured candidate profile. Reads the posting text from
--file, or from stdin when --file is omitted.`,
	RunE: runScoreCmd,
}

var (
	scoreConfigPath string
	scoreFile       string
	scoreSkills     string
	scoreMustHave   string
	scoreJSON       bool
)

func init() {
	scoreCommand.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file")
	scoreCommand.Flags().StringVarP(&scoreFile, "file", "f", "", "Path to job posting text file (default: stdin)")
	scoreCommand.Flags().StringVar(&scoreSkills, "skills", "", "Comma-separated candidate skills (overrides config)")
	scoreCommand.Flags().StringVar(&scoreMustHave, "must-have", "", "Comma-separated must-have skills (overrides config)")
	scoreCommand.Flags().BoolVar(&scoreJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(scoreCommand)
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(scoreConfigPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("skills") {
		cfg.Candidate.Skills = parseSkillList(scoreSkills)
	}
	if cmd.Flags().Changed("must-have") {
		cfg.Candidate.MustHaveSkills = parseSkillList(scoreMustHave)
	}

	text, err := readInput(scoreFile)
	if err != nil {
		return err
	}

	result := newScorer(cfg).ScoreText(text)

	if scoreJSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScoreResult(result)
	fmt.Printf("Score: %d/100\n", result.Score)
	return nil
}
