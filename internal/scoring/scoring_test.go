package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobpilot/internal/lexicon"
	"github.com/jonathan/jobpilot/internal/types"
)

func TestScore_WeightedCombination(t *testing.T) {
	// overlap 2/5 = 40%, must-have 1/1 = 100%: 0.6*40 + 0.4*100 = 64
	score := Score(
		[]string{"python", "react", "sql", "docker", "kubernetes"},
		[]string{"python", "react", "javascript"},
		[]string{"python"},
	)
	assert.Equal(t, 64, score)
}

func TestScore_EmptySetsDefaultToFullCredit(t *testing.T) {
	assert.Equal(t, 100, Score(nil, nil, nil))
	assert.Equal(t, 100, Score([]string{}, []string{"python"}, nil))
}

func TestScore_EmptyJobWithMustHaves(t *testing.T) {
	// No job skills: overlap full credit; must-have coverage still counts
	assert.Equal(t, 100, Score(nil, []string{"python"}, []string{"python"}))
	assert.Equal(t, 60, Score(nil, []string{"react"}, []string{"python"}))
}

func TestScore_PerfectMatch(t *testing.T) {
	score := Score(
		[]string{"python", "react"},
		[]string{"python", "react"},
		[]string{"python", "react"},
	)
	assert.Equal(t, 100, score)
}

func TestScore_ExtraCandidateSkillsNeverPenalize(t *testing.T) {
	base := Score([]string{"python"}, []string{"python"}, nil)
	withExtras := Score([]string{"python"}, []string{"python", "rust", "scala", "haskell"}, nil)
	assert.Equal(t, base, withExtras)
}

func TestScore_CaseAndWhitespaceInsensitive(t *testing.T) {
	score := Score([]string{"Python", " REACT "}, []string{"python", "react"}, nil)
	assert.Equal(t, 100, score)
}

func TestScore_NoOverlap(t *testing.T) {
	score := Score([]string{"cobol", "fortran"}, []string{"python"}, nil)
	// 0.6*0 + 0.4*100 (no must-haves)
	assert.Equal(t, 40, score)
}

func TestAnalyze_PartitionsSkills(t *testing.T) {
	analysis := Analyze(
		[]string{"python", "react", "sql"},
		[]string{"python", "go", "rust"},
	)

	assert.Equal(t, []string{"python"}, analysis.CommonSkills)
	assert.Equal(t, []string{"react", "sql"}, analysis.MissingSkills)
	assert.Equal(t, []string{"go", "rust"}, analysis.ExtraSkills)
	assert.Equal(t, 33, analysis.OverlapPercentage)
}

func TestAnalyze_EmptyJobSkills(t *testing.T) {
	analysis := Analyze(nil, []string{"python"})

	assert.Empty(t, analysis.CommonSkills)
	assert.Empty(t, analysis.MissingSkills)
	assert.Equal(t, []string{"python"}, analysis.ExtraSkills)
	assert.Equal(t, 0, analysis.OverlapPercentage)
}

func TestScoreText_EndToEnd(t *testing.T) {
	scorer := New(lexicon.Default(), types.CandidateProfile{
		Skills:         []string{"python", "react", "javascript"},
		MustHaveSkills: []string{"python"},
	})

	result := scorer.ScoreText("Looking for Python and React engineers with SQL, Docker, and Kubernetes")
	require.NotNil(t, result)

	assert.Equal(t, []string{"docker", "kubernetes", "python", "react", "sql"}, result.ExtractedSkills)
	assert.Equal(t, 64, result.Score)
	assert.Equal(t, []string{"python", "react"}, result.Analysis.CommonSkills)
	assert.NotEmpty(t, result.MatchReasons)
}

func TestScoreJob_UsesAllTextFields(t *testing.T) {
	scorer := New(lexicon.Default(), types.CandidateProfile{
		Skills: []string{"python", "docker"},
	})

	job := &types.Job{
		Description:  "Backend work in Python",
		Requirements: "Docker experience required",
	}
	result := scorer.ScoreJob(job)

	assert.Contains(t, result.ExtractedSkills, "python")
	assert.Contains(t, result.ExtractedSkills, "docker")
}
