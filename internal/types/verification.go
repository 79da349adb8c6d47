// Package types provides type definitions for structured data used throughout the jobpilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Verification issue types.
const (
	IssueProhibitedClaim       = "prohibited_claim"
	IssueUnverifiedTechnology  = "unverified_technology"
	IssueInflatedExperience    = "inflated_experience"
	IssueUnverifiedAchievement = "unverified_achievement"
)

// VerificationIssue describes a single unverifiable claim found in content.
type VerificationIssue struct {
	Type        string `json:"type"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description"`
	FoundText   string `json:"found_text,omitempty"`
	Position    *Span  `json:"position,omitempty"`
}

// Span marks the byte range of a match within the verified content.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// VerificationResult reports the outcome of verifying a piece of generated
// content against the achievement bank. Technology and skill mentions are
// always reported, regardless of whether verification passed.
type VerificationResult struct {
	ContentType           string              `json:"content_type"`
	Verified              bool                `json:"verified"`
	Issues                []VerificationIssue `json:"issues"`
	TechnologiesMentioned []string            `json:"technologies_mentioned"`
	SkillsMentioned       []string            `json:"skills_mentioned"`
}
