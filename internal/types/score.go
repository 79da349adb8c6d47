// Package types provides type definitions for structured data used throughout the jobpilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillAnalysis compares job requirements against candidate skills.
// All slices are sorted for deterministic output.
type SkillAnalysis struct {
	CommonSkills      []string `json:"common_skills"`
	MissingSkills     []string `json:"missing_skills"`
	ExtraSkills       []string `json:"extra_skills"`
	OverlapPercentage int      `json:"overlap_percentage"`
}

// ScoreResult is the full output of scoring a job description against a
// candidate profile. Immutable once produced; persistence is the caller's
// concern.
type ScoreResult struct {
	Score           int           `json:"score"`
	ExtractedSkills []string      `json:"extracted_skills"`
	Analysis        SkillAnalysis `json:"analysis"`
	MatchReasons    []string      `json:"match_reasons"`
}
