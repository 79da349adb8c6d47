package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobpilot/internal/lexicon"
)

func TestExtractSkills_EmptyText(t *testing.T) {
	skills := ExtractSkills("", lexicon.Default())
	require.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	text := "We need PYTHON and React experience"
	skills := ExtractSkills(text, lexicon.Default())

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "react")
}

func TestExtractSkills_WordBoundaries(t *testing.T) {
	skills := ExtractSkills("JavaScript developer wanted", lexicon.Default())

	assert.Contains(t, skills, "javascript")
	assert.NotContains(t, skills, "java")
}

func TestExtractSkills_SynonymsResolveToCanonical(t *testing.T) {
	text := "Deploy to k8s, store data in postgres"
	skills := ExtractSkills(text, lexicon.Default())

	assert.Contains(t, skills, "kubernetes")
	assert.Contains(t, skills, "postgresql")
	assert.NotContains(t, skills, "k8s")
	assert.NotContains(t, skills, "postgres")
}

func TestExtractSkills_CompoundPhrases(t *testing.T) {
	text := "Build REST APIs with Node.js and C++"
	skills := ExtractSkills(text, lexicon.Default())

	assert.Contains(t, skills, "rest")
	assert.Contains(t, skills, "api")
	assert.Contains(t, skills, "nodejs")
	assert.Contains(t, skills, "c++")
}

func TestExtractSkills_IrregularTokens(t *testing.T) {
	text := "C# services on .NET with CI/CD pipelines"
	skills := ExtractSkills(text, lexicon.Default())

	assert.Contains(t, skills, "c#")
	assert.Contains(t, skills, "dotnet")
	assert.Contains(t, skills, "cicd")
}

func TestExtractSkills_SortedAndDeduplicated(t *testing.T) {
	text := "python Python react React python"
	skills := ExtractSkills(text, lexicon.Default())

	assert.Equal(t, []string{"python", "react"}, skills)
}

func TestExtractSkills_NoMatches(t *testing.T) {
	skills := ExtractSkills("We bake artisanal bread", lexicon.Default())
	require.NotNil(t, skills)
	assert.Empty(t, skills)
}
