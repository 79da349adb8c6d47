package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobpilot/internal/types"
)

func TestPrintScoreResult_Output(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintScoreResult(&types.ScoreResult{
		Score:           64,
		ExtractedSkills: []string{"docker", "python", "react"},
		Analysis:        types.SkillAnalysis{OverlapPercentage: 40},
		MatchReasons:    []string{"Moderate skills match with some gaps"},
	})

	out := buf.String()
	assert.Contains(t, out, "Job Compatibility")
	assert.Contains(t, out, "Score:    64/100")
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "Moderate skills match")
}

func TestPrintScoreResult_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScoreResult_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintScoreResult(&types.ScoreResult{
		ExtractedSkills: []string{"a", "b", "c", "d", "e", "f", "g"},
	})

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintClassification_Output(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintClassification(
		types.VisaInfo{VisaFriendly: true, Keywords: []string{"h1b"}, Confidence: 1.0},
		types.LocationInfo{Country: "US", StateProvince: "CA", City: "San Francisco", IsRemote: true, RemoteType: types.RemoteHybrid},
	)

	out := buf.String()
	assert.Contains(t, out, "Visa friendly: true")
	assert.Contains(t, out, "h1b")
	assert.Contains(t, out, "Country:  US")
	assert.Contains(t, out, "Remote:   hybrid")
}

func TestPrintBundle_StatusPerAsset(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintBundle(&types.AssetBundle{
		Verified: false,
		Metadata: types.TailoringMetadata{
			Assets: []types.AssetType{types.AssetResume, types.AssetOutreachMsg},
			Verification: map[types.AssetType]types.AssetVerification{
				types.AssetResume:      {Verified: false},
				types.AssetOutreachMsg: {Verified: true},
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Verified: false")
	assert.Contains(t, out, "FAILED")
	assert.True(t, strings.Contains(out, "ok"))
}
