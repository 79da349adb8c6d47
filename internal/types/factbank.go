// Package types provides type definitions for structured data used throughout the jobpilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AchievementBank is the static, human-curated ground truth of what the
// candidate can truthfully claim. Loaded once at startup and treated as
// read-only for the process lifetime.
type AchievementBank struct {
	TechnicalSkills   TechnicalSkills     `json:"technical_skills"`
	Achievements      []Achievement       `json:"achievements"`
	SoftSkills        []SoftSkill         `json:"soft_skills,omitempty"`
	ProhibitedClaims  map[string][]string `json:"prohibited_claims"`
	VerificationRules VerificationRules   `json:"verification_rules"`
}

// TechnicalSkills groups verified programming languages and technologies.
type TechnicalSkills struct {
	ProgrammingLanguages []ProgrammingLanguage `json:"programming_languages"`
	Technologies         []Technology          `json:"technologies"`
}

// ProgrammingLanguage is a verified language skill with proficiency metadata.
type ProgrammingLanguage struct {
	Name            string   `json:"name"`
	YearsExperience int      `json:"years_experience"`
	Proficiency     string   `json:"proficiency"`
	ProfessionalUse bool     `json:"professional_use"`
	Frameworks      []string `json:"frameworks,omitempty"`
}

// Technology is a verified tool, platform, or service skill.
type Technology struct {
	Name            string   `json:"name"`
	YearsExperience int      `json:"years_experience"`
	Proficiency     string   `json:"proficiency"`
	ProfessionalUse bool     `json:"professional_use"`
	Services        []string `json:"services,omitempty"`
	Tools           []string `json:"tools,omitempty"`
}

// Achievement is a verified, quantifiable accomplishment the candidate may
// claim verbatim.
type Achievement struct {
	Description  string `json:"description"`
	Context      string `json:"context,omitempty"`
	Quantifiable bool   `json:"quantifiable"`
	Verification string `json:"verification,omitempty"`
}

// SoftSkill is a non-technical skill tracked for mention reporting.
type SoftSkill struct {
	Skill    string `json:"skill"`
	Evidence string `json:"evidence,omitempty"`
}

// VerificationRules holds ceilings applied during content verification.
type VerificationRules struct {
	MaxExperienceYears int `json:"max_experience_years"`
}

// VerifiedSkill is a bank entry matched to a job requirement, carrying the
// proficiency metadata needed for truthful bullet generation.
type VerifiedSkill struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	YearsExperience int      `json:"years_experience"`
	Proficiency     string   `json:"proficiency"`
	ProfessionalUse bool     `json:"professional_use"`
	Frameworks      []string `json:"frameworks,omitempty"`
}
