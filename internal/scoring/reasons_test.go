package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchReasons_ExcellentBand(t *testing.T) {
	reasons := MatchReasons(
		[]string{"python", "react"},
		[]string{"python", "react", "go", "rust", "sql"},
		95,
	)

	require.NotEmpty(t, reasons)
	assert.Equal(t, "Excellent skill alignment with job requirements", reasons[0])
}

func TestMatchReasons_FixedOrder(t *testing.T) {
	// 2 common, 3 missing, 1 extra: assessment, highlight, gap lines
	reasons := MatchReasons(
		[]string{"python", "react", "sql", "docker", "kubernetes"},
		[]string{"python", "react", "javascript"},
		64,
	)

	require.Len(t, reasons, 3)
	assert.Equal(t, "Moderate skills match with some gaps", reasons[0])
	assert.Equal(t, "Relevant experience with python, react", reasons[1])
	assert.Equal(t, "Opportunity to develop skills in docker, kubernetes, sql", reasons[2])
}

func TestMatchReasons_StrongCoverage(t *testing.T) {
	common := []string{"python", "react", "sql", "docker", "kubernetes", "aws"}
	reasons := MatchReasons(common, common, 100)

	assert.Contains(t, reasons, "Strong coverage across 6 key technologies")
}

func TestMatchReasons_SolidFoundation(t *testing.T) {
	common := []string{"python", "react", "sql"}
	reasons := MatchReasons(common, common, 100)

	assert.Contains(t, reasons, "Solid foundation in 3 required skills")
}

func TestMatchReasons_ManyGapsOmitted(t *testing.T) {
	// More than 3 missing skills: no gap line
	reasons := MatchReasons(
		[]string{"a", "b", "c", "d", "e"},
		nil,
		0,
	)

	require.Len(t, reasons, 1)
	assert.Equal(t, "Limited skills overlap - significant gaps exist", reasons[0])
}

func TestMatchReasons_BonusSkills(t *testing.T) {
	reasons := MatchReasons(
		[]string{"python"},
		[]string{"python", "go", "rust", "scala"},
		100,
	)

	assert.Contains(t, reasons, "Brings additional valuable technical expertise")
}
