package location

import (
	"regexp"
	"strings"

	"github.com/jonathan/jobpilot/internal/types"
)

// bareRemote matches a standalone "remote" token, used as a fallback when no
// tier phrase matched (a location field of just "Remote" is full remote).
var bareRemote = regexp.MustCompile(`(?i)\bremote\b`)

// Parser extracts structured location data from job postings. Stateless;
// safe for concurrent use.
type Parser struct{}

// NewParser creates a location parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts location data from the posting's location field, with the
// description as additional context for remote and country detection.
// Malformed input degrades to partial results; Parse never fails.
func (p *Parser) Parse(locationText, description string) types.LocationInfo {
	if locationText == "" && description == "" {
		return types.LocationInfo{}
	}

	combined := strings.ToLower(locationText + " " + description)

	remoteType := detectRemoteType(combined)

	info := types.LocationInfo{
		IsRemote:   remoteType != "",
		RemoteType: remoteType,
	}

	if locationText != "" {
		parts := strings.Split(locationText, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch {
		case len(parts) >= 2:
			info.City = parts[0]
			if abbr, ok := matchUSState(parts[1]); ok {
				info.StateProvince = abbr
				info.Country = "US"
			} else {
				// Not a US state; keep the raw value
				info.StateProvince = parts[1]
			}
		case len(parts) == 1 && parts[0] != "":
			if abbr, ok := matchUSState(parts[0]); ok {
				info.StateProvince = abbr
				info.Country = "US"
			} else {
				info.City = parts[0]
			}
		}
	}

	if info.Country == "" {
		info.Country = detectCountry(combined)
	}

	return info
}

// detectRemoteType scans the remote tier table in order; the first tier
// with a matching phrase wins.
func detectRemoteType(text string) string {
	for _, tier := range remoteTiers {
		for _, phrase := range tier.phrases {
			if strings.Contains(text, phrase) {
				return tier.remoteType
			}
		}
	}
	if bareRemote.MatchString(text) {
		return types.RemoteFull
	}
	return ""
}

// matchUSState matches a location part against US state names and postal
// abbreviations, case-insensitively.
func matchUSState(part string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(part))
	if abbr, ok := usStates[lower]; ok {
		return abbr, true
	}
	for _, abbr := range usStates {
		if lower == strings.ToLower(abbr) {
			return abbr, true
		}
	}
	return "", false
}

// detectCountry scans the country keyword table against the combined text.
func detectCountry(text string) string {
	for _, entry := range countryPatterns {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.code
			}
		}
	}
	return ""
}
