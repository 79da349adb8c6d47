package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobpilot/internal/config"
	"github.com/jonathan/jobpilot/internal/observability"
)

var classifyCommand = &cobra.Command{
	Use:   "classify",
	Short: "Classify a job posting's visa friendliness and location",
	Long: `Runs visa sponsorship detection and location parsing over a job
posting. Reads the posting text from --file, or from stdin when --file is
omitted; the location header is given separately with --location.`,
	RunE: runClassifyCmd,
}

var (
	classifyConfigPath string
	classifyFile       string
	classifyLocation   string
	classifyJSON       bool
)

func init() {
	classifyCommand.Flags().StringVar(&classifyConfigPath, "config", "", "Path to config.json file")
	classifyCommand.Flags().StringVarP(&classifyFile, "file", "f", "", "Path to job posting text file (default: stdin)")
	classifyCommand.Flags().StringVarP(&classifyLocation, "location", "l", "", "Location string as shown on the posting")
	classifyCommand.Flags().BoolVar(&classifyJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(classifyCommand)
}

func runClassifyCmd(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(classifyConfigPath)
	if err != nil {
		return err
	}

	text, err := readInput(classifyFile)
	if err != nil {
		return err
	}

	visa, parser := newClassifiers(cfg)
	visaInfo := visa.Detect(text)
	locInfo := parser.Parse(classifyLocation, text)

	if classifyJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"visa":     visaInfo,
			"location": locInfo,
		})
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintClassification(visaInfo, locInfo)
	fmt.Printf("Visa friendly: %t\n", visaInfo.VisaFriendly)
	return nil
}
