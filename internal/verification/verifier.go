package verification

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/jobpilot/internal/factbank"
	"github.com/jonathan/jobpilot/internal/types"
)

// DefaultAchievementThreshold is the percentage above which an unmatched
// improvement claim is flagged. Fixed product constant; do not retune
// without guidance.
const DefaultAchievementThreshold = 50

// technologyPlaceholder in a prohibited claim matches any technology name.
const technologyPlaceholder = "[technology]"

// commonTechnologies is the fixed list scanned for unverified technology
// claims. Any of these found as a whole word must also appear in the
// bank's professional-use set.
var commonTechnologies = []string{
	"python", "javascript", "react", "django", "fastapi", "docker", "kubernetes",
	"aws", "postgres", "mysql", "redis", "jenkins", "git", "linux", "nodejs",
}

// yearsPattern matches any bare "N years" mention. The claim is flagged
// on the number alone; no qualifying phrase is required, so wording like
// "spent 12 years building systems" cannot slip past the ceiling.
var yearsPattern = regexp.MustCompile(`(?i)\b(\d+)\+?\s*years?\b`)

// overYearsPattern matches "over N years", which claims strictly more than
// N and is therefore flagged already when N equals the ceiling.
var overYearsPattern = regexp.MustCompile(`(?i)\bover\s+(\d+)\s*years?\b`)

// Quantified achievement claim patterns. Each captures the percentage.
var percentagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:improved|increased|reduced|decreased|optimized).*?by\s+(\d+)%`),
	regexp.MustCompile(`(?i)(\d+)%\s+(?:improvement|increase|reduction|decrease)`),
}

// achievementContextKeywords tie an improvement claim to the bank's
// performance achievements.
var achievementContextKeywords = []string{"performance", "response", "time"}

type prohibitedPattern struct {
	category string
	claim    string
	pattern  *regexp.Regexp
}

// Verifier validates generated content against the achievement bank.
// Patterns are compiled once at construction; the verifier is stateless
// afterwards and safe for concurrent use.
type Verifier struct {
	bank                 *factbank.Bank
	prohibited           []prohibitedPattern
	maxYears             int
	achievementThreshold int
}

// New creates a Verifier bound to an achievement bank.
func New(bank *factbank.Bank) *Verifier {
	v := &Verifier{
		bank:                 bank,
		maxYears:             bank.MaxExperienceYears(),
		achievementThreshold: DefaultAchievementThreshold,
	}
	v.compileProhibitedPatterns()
	return v
}

func (v *Verifier) compileProhibitedPatterns() {
	// Deterministic category order
	claims := v.bank.ProhibitedClaims()
	categories := make([]string, 0, len(claims))
	for category := range claims {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		for _, claim := range claims[category] {
			escaped := regexp.QuoteMeta(strings.ToLower(claim))
			// A [technology] placeholder in a claim matches any name
			escaped = strings.ReplaceAll(escaped, regexp.QuoteMeta(technologyPlaceholder), `.+?`)
			pattern, err := regexp.Compile(`(?i)` + escaped)
			if err != nil {
				// QuoteMeta output always compiles; placeholder expansion
				// keeps that property
				continue
			}
			v.prohibited = append(v.prohibited, prohibitedPattern{
				category: category,
				claim:    claim,
				pattern:  pattern,
			})
		}
	}
}

// Verify checks content against the bank. The contract is fail-closed: any
// detected issue sets Verified=false and returns a *VerificationError
// alongside the full result. Technology and skill mentions are reported in
// the result regardless of outcome.
func (v *Verifier) Verify(content, contentType string) (*types.VerificationResult, error) {
	result := &types.VerificationResult{
		ContentType:           contentType,
		Verified:              true,
		Issues:                []types.VerificationIssue{},
		TechnologiesMentioned: v.extractTechnologies(content),
		SkillsMentioned:       v.extractSoftSkills(content),
	}

	result.Issues = append(result.Issues, v.checkProhibitedClaims(content)...)
	result.Issues = append(result.Issues, v.checkTechnologyClaims(content)...)
	result.Issues = append(result.Issues, v.checkExperienceClaims(content)...)
	result.Issues = append(result.Issues, v.checkAchievementClaims(content)...)

	if len(result.Issues) > 0 {
		result.Verified = false
		return result, &VerificationError{ContentType: contentType, Result: result}
	}

	return result, nil
}

func (v *Verifier) checkProhibitedClaims(content string) []types.VerificationIssue {
	issues := make([]types.VerificationIssue, 0)

	for _, entry := range v.prohibited {
		for _, match := range entry.pattern.FindAllStringIndex(content, -1) {
			found := content[match[0]:match[1]]
			issues = append(issues, types.VerificationIssue{
				Type:        types.IssueProhibitedClaim,
				Category:    entry.category,
				FoundText:   found,
				Position:    &types.Span{Start: match[0], End: match[1]},
				Description: fmt.Sprintf("Prohibited claim found: %q (category: %s)", found, entry.category),
			})
		}
	}

	return issues
}

func (v *Verifier) checkTechnologyClaims(content string) []types.VerificationIssue {
	issues := make([]types.VerificationIssue, 0)
	words := wordSet(content)

	for _, tech := range commonTechnologies {
		if words[tech] && !v.bank.IsProfessionalTech(tech) {
			issues = append(issues, types.VerificationIssue{
				Type:        types.IssueUnverifiedTechnology,
				FoundText:   tech,
				Description: fmt.Sprintf("Technology %q mentioned but not in achievement bank professional skills", tech),
			})
		}
	}

	return issues
}

func (v *Verifier) checkExperienceClaims(content string) []types.VerificationIssue {
	issues := make([]types.VerificationIssue, 0)

	flag := func(match []int, years int) {
		issues = append(issues, types.VerificationIssue{
			Type:        types.IssueInflatedExperience,
			FoundText:   content[match[0]:match[1]],
			Position:    &types.Span{Start: match[0], End: match[1]},
			Description: fmt.Sprintf("Experience claim of %d years exceeds verified maximum of %d", years, v.maxYears),
		})
	}

	// Offsets of year counts already reported, so a bare match inside an
	// "over N years" claim is not flagged twice.
	flagged := make(map[int]bool)

	for _, match := range overYearsPattern.FindAllStringSubmatchIndex(content, -1) {
		years, err := strconv.Atoi(content[match[2]:match[3]])
		if err != nil {
			continue
		}
		if years >= v.maxYears {
			flag(match[:2], years)
			flagged[match[2]] = true
		}
	}

	for _, match := range yearsPattern.FindAllStringSubmatchIndex(content, -1) {
		if flagged[match[2]] {
			continue
		}
		years, err := strconv.Atoi(content[match[2]:match[3]])
		if err != nil {
			continue
		}
		if years > v.maxYears {
			flag(match[:2], years)
		}
	}

	return issues
}

func (v *Verifier) checkAchievementClaims(content string) []types.VerificationIssue {
	issues := make([]types.VerificationIssue, 0)
	verified := v.bank.QuantifiableAchievements()

	for _, pattern := range percentagePatterns {
		for _, match := range pattern.FindAllStringSubmatchIndex(content, -1) {
			percentage, err := strconv.Atoi(content[match[2]:match[3]])
			if err != nil {
				continue
			}
			if percentage <= v.achievementThreshold {
				continue
			}

			found := strings.ToLower(content[match[0]:match[1]])
			if claimIsVerified(found, verified) {
				continue
			}

			issues = append(issues, types.VerificationIssue{
				Type:        types.IssueUnverifiedAchievement,
				FoundText:   content[match[0]:match[1]],
				Position:    &types.Span{Start: match[0], End: match[1]},
				Description: fmt.Sprintf("Large improvement claim (%d%%) not found in verified achievements", percentage),
			})
		}
	}

	return issues
}

// claimIsVerified heuristically matches an improvement claim against the
// bank's verified achievements by co-occurring context keywords.
func claimIsVerified(foundText string, achievements []types.Achievement) bool {
	hasContext := false
	for _, keyword := range achievementContextKeywords {
		if strings.Contains(foundText, keyword) {
			hasContext = true
			break
		}
	}
	if !hasContext {
		return false
	}

	for _, achievement := range achievements {
		desc := strings.ToLower(achievement.Description)
		if strings.Contains(desc, "performance") && achievement.Verification != "" {
			return true
		}
	}

	return false
}

// extractTechnologies reports every bank technology name found in the
// content, for observability.
func (v *Verifier) extractTechnologies(content string) []string {
	lower := strings.ToLower(content)
	seen := make(map[string]bool)
	mentioned := make([]string, 0)

	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		if strings.Contains(lower, strings.ToLower(name)) {
			seen[name] = true
			mentioned = append(mentioned, name)
		}
	}

	tech := v.bank.TechnicalSkills()
	for _, lang := range tech.ProgrammingLanguages {
		add(lang.Name)
		for _, framework := range lang.Frameworks {
			add(framework)
		}
	}
	for _, t := range tech.Technologies {
		add(t.Name)
	}

	return mentioned
}

// extractSoftSkills reports every bank soft skill found in the content.
func (v *Verifier) extractSoftSkills(content string) []string {
	lower := strings.ToLower(content)
	mentioned := make([]string, 0)

	for _, skill := range v.bank.SoftSkills() {
		if strings.Contains(lower, strings.ToLower(skill.Skill)) {
			mentioned = append(mentioned, skill.Skill)
		}
	}

	return mentioned
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

func wordSet(content string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range wordPattern.FindAllString(strings.ToLower(content), -1) {
		words[word] = true
	}
	return words
}
