// Package types provides type definitions for structured data used throughout the jobpilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Remote work types, ordered from most to least remote.
const (
	RemoteFull       = "full"
	RemoteHybrid     = "hybrid"
	RemoteOccasional = "occasional"
)

// VisaInfo captures visa sponsorship signals detected in a job posting.
// Negative matches are recorded in Keywords with a "NOT: " prefix so
// consumers can distinguish polarity without re-scanning the text.
type VisaInfo struct {
	VisaFriendly bool     `json:"visa_friendly"`
	Keywords     []string `json:"keywords"`
	Confidence   float64  `json:"confidence"`
}

// LocationInfo is the structured result of parsing a job posting's location.
// Ambiguous or malformed input degrades to partial results; fields are left
// empty rather than guessed.
type LocationInfo struct {
	Country       string `json:"country,omitempty"`
	StateProvince string `json:"state_province,omitempty"`
	City          string `json:"city,omitempty"`
	IsRemote      bool   `json:"is_remote"`
	RemoteType    string `json:"remote_type,omitempty"`
}
