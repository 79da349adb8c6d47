package factbank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/jobpilot/internal/types"
)

//go:embed schema.json
var bankSchema []byte

// defaultMaxExperienceYears applies when the bank omits verification rules.
const defaultMaxExperienceYears = 5

// Bank wraps the loaded achievement bank with precomputed lookup indexes.
// Read-only after Load; safe for concurrent use.
type Bank struct {
	data types.AchievementBank

	// Lowercased names of all professional-use technologies, including
	// frameworks, services, and tools.
	professionalTech map[string]bool
}

// Load reads, schema-validates, and indexes an achievement bank JSON file.
// Any failure here should abort startup rather than be deferred to first
// use.
func Load(path string) (*Bank, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	return Parse(content)
}

// Parse validates and indexes achievement bank JSON content.
func Parse(content []byte) (*Bank, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(bankSchema),
		gojsonschema.NewBytesLoader(content),
	)
	if err != nil {
		return nil, &LoadError{Message: "schema validation could not run", Cause: err}
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, &LoadError{
			Message: "invalid achievement bank: " + strings.Join(details, "; "),
		}
	}

	var data types.AchievementBank
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, &LoadError{Message: "failed to unmarshal JSON", Cause: err}
	}

	bank := &Bank{
		data:             data,
		professionalTech: make(map[string]bool),
	}
	bank.indexProfessionalTech()

	return bank, nil
}

func (b *Bank) indexProfessionalTech() {
	for _, lang := range b.data.TechnicalSkills.ProgrammingLanguages {
		if !lang.ProfessionalUse {
			continue
		}
		b.professionalTech[strings.ToLower(lang.Name)] = true
		for _, framework := range lang.Frameworks {
			b.professionalTech[strings.ToLower(framework)] = true
		}
	}
	for _, tech := range b.data.TechnicalSkills.Technologies {
		if !tech.ProfessionalUse {
			continue
		}
		b.professionalTech[strings.ToLower(tech.Name)] = true
		for _, service := range tech.Services {
			b.professionalTech[strings.ToLower(service)] = true
		}
		for _, tool := range tech.Tools {
			b.professionalTech[strings.ToLower(tool)] = true
		}
	}
}

// IsProfessionalTech reports whether name is a professional-use technology
// in the bank (including frameworks, services, and tools).
func (b *Bank) IsProfessionalTech(name string) bool {
	return b.professionalTech[strings.ToLower(name)]
}

// MaxExperienceYears returns the experience-claim ceiling.
func (b *Bank) MaxExperienceYears() int {
	if b.data.VerificationRules.MaxExperienceYears > 0 {
		return b.data.VerificationRules.MaxExperienceYears
	}
	return defaultMaxExperienceYears
}

// ProhibitedClaims returns the categorized prohibited phrase lists.
func (b *Bank) ProhibitedClaims() map[string][]string {
	return b.data.ProhibitedClaims
}

// Achievements returns all verified achievements in bank order.
func (b *Bank) Achievements() []types.Achievement {
	return b.data.Achievements
}

// QuantifiableAchievements returns achievements flagged quantifiable.
func (b *Bank) QuantifiableAchievements() []types.Achievement {
	quantifiable := make([]types.Achievement, 0)
	for _, achievement := range b.data.Achievements {
		if achievement.Quantifiable {
			quantifiable = append(quantifiable, achievement)
		}
	}
	return quantifiable
}

// SoftSkills returns the bank's soft skill entries.
func (b *Bank) SoftSkills() []types.SoftSkill {
	return b.data.SoftSkills
}

// TechnicalSkills returns the bank's technical skill sections.
func (b *Bank) TechnicalSkills() types.TechnicalSkills {
	return b.data.TechnicalSkills
}

// VerifiedSkillsForJob returns bank entries matching the given job skills,
// in bank order (languages before technologies). Only skills present in
// the bank are returned; a job-mentioned skill with no bank entry is
// excluded. This is the anti-fabrication lookup used by content generation.
func (b *Bank) VerifiedSkillsForJob(jobSkills []string) []types.VerifiedSkill {
	wanted := make(map[string]bool, len(jobSkills))
	for _, skill := range jobSkills {
		wanted[strings.ToLower(skill)] = true
	}

	matched := make([]types.VerifiedSkill, 0)

	for _, lang := range b.data.TechnicalSkills.ProgrammingLanguages {
		if !wanted[strings.ToLower(lang.Name)] {
			continue
		}
		matched = append(matched, types.VerifiedSkill{
			Name:            lang.Name,
			Type:            "programming_language",
			YearsExperience: lang.YearsExperience,
			Proficiency:     lang.Proficiency,
			ProfessionalUse: lang.ProfessionalUse,
			Frameworks:      lang.Frameworks,
		})
	}

	for _, tech := range b.data.TechnicalSkills.Technologies {
		if !wanted[strings.ToLower(tech.Name)] {
			continue
		}
		matched = append(matched, types.VerifiedSkill{
			Name:            tech.Name,
			Type:            "technology",
			YearsExperience: tech.YearsExperience,
			Proficiency:     tech.Proficiency,
			ProfessionalUse: tech.ProfessionalUse,
		})
	}

	return matched
}
