package lexicon

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Builds(t *testing.T) {
	lex := Default()
	require.NotNil(t, lex)

	assert.True(t, lex.Contains("python"))
	assert.True(t, lex.Contains("kubernetes"))
	assert.False(t, lex.Contains("cobol"))
}

func TestContains_CaseInsensitive(t *testing.T) {
	lex := Default()

	assert.True(t, lex.Contains("Python"))
	assert.True(t, lex.Contains("PYTHON"))
}

func TestCanonical_ResolvesSynonyms(t *testing.T) {
	lex := Default()

	assert.Equal(t, "kubernetes", lex.Canonical("k8s"))
	assert.Equal(t, "kubernetes", lex.Canonical("K8S"))
	assert.Equal(t, "postgresql", lex.Canonical("postgres"))
	assert.Equal(t, "nodejs", lex.Canonical("node"))

	// Unknown tokens pass through lowercased
	assert.Equal(t, "fortran", lex.Canonical("Fortran"))
}

func TestSkillPatterns_WordBoundaries(t *testing.T) {
	lex := Default()
	patterns := lex.SkillPatterns()

	java := patterns["java"]
	require.NotNil(t, java)
	assert.True(t, java.MatchString("We use Java daily"))
	assert.False(t, java.MatchString("We use JavaScript daily"))

	golang := patterns["go"]
	require.NotNil(t, golang)
	assert.True(t, golang.MatchString("Written in Go."))
	assert.False(t, golang.MatchString("Google and Django"))
}

func TestSkillPatterns_IrregularTokens(t *testing.T) {
	lex := Default()
	patterns := lex.SkillPatterns()

	cpp := patterns["c++"]
	require.NotNil(t, cpp)
	assert.True(t, cpp.MatchString("Modern C++ development"))
	assert.False(t, cpp.MatchString("plain c code"))

	csharp := patterns["c#"]
	require.NotNil(t, csharp)
	assert.True(t, csharp.MatchString("C# and .NET"))
	assert.False(t, csharp.MatchString("abc# nonsense"))
}

func TestSynonymPatterns_IrregularTokens(t *testing.T) {
	lex := Default()
	patterns := lex.SynonymPatterns()

	dotnet := patterns[".net"]
	require.NotNil(t, dotnet)
	assert.True(t, dotnet.MatchString("Experience with .NET required"))
}

func TestNew_SkipsBlankEntries(t *testing.T) {
	lex, err := New([]string{"python", "  ", ""}, map[string]string{"": "python"}, nil)
	require.NoError(t, err)

	assert.True(t, lex.Contains("python"))
	assert.Len(t, lex.SkillPatterns(), 1)
	assert.Empty(t, lex.SynonymPatterns())
}

func TestCompounds_MultiSkillPhrase(t *testing.T) {
	lex := Default()

	var restAPIs *CompoundPattern
	for i := range lex.Compounds() {
		if lex.Compounds()[i].Pattern.MatchString("building REST APIs") {
			restAPIs = &lex.Compounds()[i]
			break
		}
	}
	require.NotNil(t, restAPIs)
	assert.ElementsMatch(t, []string{"rest", "api"}, restAPIs.Skills)
}

func TestCompileTokenPattern_PlainToken(t *testing.T) {
	pattern, err := compileTokenPattern("python")
	require.NoError(t, err)
	assert.Equal(t, regexp.MustCompile(`(?i)\bpython\b`).String(), pattern.String())
}
