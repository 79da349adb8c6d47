// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobpilot/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreResult outputs a human-readable summary of a scoring result.
func (p *Printer) PrintScoreResult(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Overlap:  %d%%\n", result.Analysis.OverlapPercentage))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Extracted skills (%d):\n", len(result.ExtractedSkills)))
	for i, skill := range result.ExtractedSkills {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.ExtractedSkills)-maxItemsToShow))
			break
		}
		sb.WriteString("  " + skill + "\n")
	}

	if len(result.MatchReasons) > 0 {
		sb.WriteString("\nMatch reasons:\n")
		for _, reason := range result.MatchReasons {
			sb.WriteString("  " + reason + "\n")
		}
	}

	p.printBox("Job Compatibility", sb.String())
}

// PrintClassification outputs visa and location classification results.
func (p *Printer) PrintClassification(visa types.VisaInfo, loc types.LocationInfo) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Visa friendly: %t (confidence %.2f)\n", visa.VisaFriendly, visa.Confidence))
	for i, keyword := range visa.Keywords {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(visa.Keywords)-maxItemsToShow))
			break
		}
		sb.WriteString("  " + keyword + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Country:  %s\n", orDash(loc.Country)))
	sb.WriteString(fmt.Sprintf("State:    %s\n", orDash(loc.StateProvince)))
	sb.WriteString(fmt.Sprintf("City:     %s\n", orDash(loc.City)))
	if loc.IsRemote {
		sb.WriteString(fmt.Sprintf("Remote:   %s\n", loc.RemoteType))
	}

	p.printBox("Location & Visa", sb.String())
}

// PrintBundle outputs a summary of generated assets and their
// verification status.
func (p *Printer) PrintBundle(bundle *types.AssetBundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Verified: %t\n\n", bundle.Verified))

	for _, assetType := range bundle.Metadata.Assets {
		record, checked := bundle.Metadata.Verification[assetType]
		status := "-"
		if checked {
			if record.Verified {
				status = "ok"
			} else {
				status = "FAILED"
			}
		}
		sb.WriteString(fmt.Sprintf("%-14s %s\n", assetType, status))
	}

	p.printBox("Tailored Assets", sb.String())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
