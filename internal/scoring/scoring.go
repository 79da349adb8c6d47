// Package scoring computes job compatibility scores from skill overlap.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/jobpilot/internal/extraction"
	"github.com/jonathan/jobpilot/internal/lexicon"
	"github.com/jonathan/jobpilot/internal/types"
)

// Weights for the two scoring components. These are exact contracts:
// expected scores in tests depend on them bit-for-bit.
const (
	overlapWeight  = 0.6
	mustHaveWeight = 0.4
)

// Score calculates the 0-100 compatibility score.
//
// overlap = |job ∩ candidate| / |job| as a percentage, 100 when the job
// lists no skills (no requirements means full credit). mustHave coverage is
// computed the same way over the must-have set. Final score is
// round(0.6*overlap + 0.4*mustHave). Extra candidate skills never penalize.
func Score(jobSkills, candidateSkills, mustHaveSkills []string) int {
	job := toSet(jobSkills)
	candidate := toSet(candidateSkills)
	mustHave := toSet(mustHaveSkills)

	overlapScore := 100.0
	if len(job) > 0 {
		overlapScore = float64(intersectionSize(job, candidate)) / float64(len(job)) * 100
	}

	mustHaveScore := 100.0
	if len(mustHave) > 0 {
		mustHaveScore = float64(intersectionSize(mustHave, candidate)) / float64(len(mustHave)) * 100
	}

	return int(math.Round(overlapScore*overlapWeight + mustHaveScore*mustHaveWeight))
}

// Analyze compares job skills against candidate skills, returning sorted
// common/missing/extra sets and the overlap percentage.
func Analyze(jobSkills, candidateSkills []string) types.SkillAnalysis {
	job := toSet(jobSkills)
	candidate := toSet(candidateSkills)

	common := make([]string, 0)
	missing := make([]string, 0)
	for skill := range job {
		if candidate[skill] {
			common = append(common, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	extra := make([]string, 0)
	for skill := range candidate {
		if !job[skill] {
			extra = append(extra, skill)
		}
	}

	sort.Strings(common)
	sort.Strings(missing)
	sort.Strings(extra)

	overlapPct := 0
	if len(job) > 0 {
		overlapPct = int(math.Round(float64(len(common)) / float64(len(job)) * 100))
	}

	return types.SkillAnalysis{
		CommonSkills:      common,
		MissingSkills:     missing,
		ExtraSkills:       extra,
		OverlapPercentage: overlapPct,
	}
}

// Scorer scores raw job text against a candidate profile. Stateless after
// construction; safe for concurrent use.
type Scorer struct {
	lex     *lexicon.Lexicon
	profile types.CandidateProfile
}

// New creates a Scorer bound to a lexicon and candidate profile.
func New(lex *lexicon.Lexicon, profile types.CandidateProfile) *Scorer {
	return &Scorer{lex: lex, profile: profile}
}

// ScoreText runs the full extraction-scoring pipeline on raw job text.
func (s *Scorer) ScoreText(text string) *types.ScoreResult {
	extracted := extraction.ExtractSkills(text, s.lex)
	score := Score(extracted, s.profile.Skills, s.profile.MustHaveSkills)

	return &types.ScoreResult{
		Score:           score,
		ExtractedSkills: extracted,
		Analysis:        Analyze(extracted, s.profile.Skills),
		MatchReasons:    MatchReasons(extracted, s.profile.Skills, score),
	}
}

// ScoreJob scores a job record's combined free-text fields.
func (s *Scorer) ScoreJob(job *types.Job) *types.ScoreResult {
	return s.ScoreText(job.FullText())
}

func toSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		normalized := strings.ToLower(strings.TrimSpace(skill))
		if normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

func intersectionSize(a, b map[string]bool) int {
	n := 0
	for key := range a {
		if b[key] {
			n++
		}
	}
	return n
}
