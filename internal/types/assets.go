// Package types provides type definitions for structured data used throughout the jobpilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AssetType identifies one of the generated application artifacts.
type AssetType string

// Generated artifact kinds.
const (
	AssetResume      AssetType = "resume"
	AssetResumeATS   AssetType = "resume_ats"
	AssetCoverEmail  AssetType = "cover_email"
	AssetOutreachMsg AssetType = "outreach_msg"
	AssetMetadata    AssetType = "meta_json"
)

// AssetVerification records the verification outcome for a single asset.
type AssetVerification struct {
	Verified bool                `json:"verified"`
	Error    string              `json:"error,omitempty"`
	Issues   []VerificationIssue `json:"issues,omitempty"`
}

// TailoringMetadata is the metadata snapshot bundled with every asset set.
type TailoringMetadata struct {
	Job          Job                             `json:"job"`
	Skills       TailoringSkills                 `json:"skills"`
	Timestamp    string                          `json:"timestamp"`
	Version      string                          `json:"version"`
	Assets       []AssetType                     `json:"assets_created"`
	Verification map[AssetType]AssetVerification `json:"truth_verification"`
}

// TailoringSkills summarizes the skill match the assets were tailored to.
type TailoringSkills struct {
	Extracted    []string `json:"extracted"`
	Verified     []string `json:"verified"`
	MatchReasons []string `json:"match_reasons"`
}

// AssetBundle is the complete output of tailored content generation.
// Verified is false when any text asset failed truth verification; callers
// must check it before delivering content.
type AssetBundle struct {
	Assets   map[AssetType]string `json:"assets"`
	Metadata TailoringMetadata    `json:"metadata"`
	Verified bool                 `json:"verified"`
}
