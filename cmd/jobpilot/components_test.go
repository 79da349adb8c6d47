package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobpilot/internal/config"
)

func TestParseSkillList(t *testing.T) {
	assert.Equal(t, []string{"python", "react"}, parseSkillList("Python, React"))
	assert.Equal(t, []string{"c++"}, parseSkillList(" C++ ,, "))
	assert.Nil(t, parseSkillList("   "))
	assert.Nil(t, parseSkillList(""))
}

func TestReadInput_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.txt")
	require.NoError(t, os.WriteFile(path, []byte("job text"), 0644))

	text, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, "job text", text)
}

func TestReadInput_MissingFile(t *testing.T) {
	_, err := readInput(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestNewScorer_UsesProfile(t *testing.T) {
	cfg := &config.Config{}
	cfg.Candidate.Skills = []string{"python"}

	result := newScorer(cfg).ScoreText("Python role")
	assert.Equal(t, 100, result.Score)
}

func TestNewClassifiers(t *testing.T) {
	cfg := &config.Config{VisaThreshold: 0.3}
	visa, parser := newClassifiers(cfg)
	require.NotNil(t, visa)
	require.NotNil(t, parser)

	assert.True(t, visa.Detect("h1b sponsorship offered").VisaFriendly)
}
