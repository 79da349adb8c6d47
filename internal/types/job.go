// Package types provides type definitions for structured data used throughout the jobpilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// Job represents a scraped job posting. Free-text fields may be empty;
// scraped markup is inherently noisy and downstream consumers must tolerate
// missing fields.
type Job struct {
	ID           uuid.UUID `json:"id,omitempty"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	URL          string    `json:"url,omitempty"`
	Location     string    `json:"location,omitempty"`
	Description  string    `json:"description,omitempty"`
	Requirements string    `json:"requirements,omitempty"`
	Benefits     string    `json:"benefits,omitempty"`
	Source       string    `json:"source,omitempty"`
	Status       string    `json:"status,omitempty"`

	// Derived fields, filled in by scoring and classification
	Score        int      `json:"score,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	MatchReasons []string `json:"match_reasons,omitempty"`

	VisaFriendly  bool   `json:"visa_friendly,omitempty"`
	Country       string `json:"country,omitempty"`
	StateProvince string `json:"state_province,omitempty"`
	City          string `json:"city,omitempty"`
	IsRemote      bool   `json:"is_remote,omitempty"`
	RemoteType    string `json:"remote_type,omitempty"`
}

// FullText returns the concatenated free-text fields used for skill
// extraction and visa detection.
func (j *Job) FullText() string {
	text := ""
	if j.Description != "" {
		text += j.Description + " "
	}
	if j.Requirements != "" {
		text += j.Requirements + " "
	}
	if j.Benefits != "" {
		text += j.Benefits
	}
	return text
}

// CandidateProfile holds the candidate's own skill inventory. It is supplied
// by configuration; the core never mutates it.
type CandidateProfile struct {
	Skills         []string `json:"skills"`
	MustHaveSkills []string `json:"must_have_skills"`
}
