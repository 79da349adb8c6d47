package location

// usStates maps lowercase US state names to postal abbreviations.
var usStates = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR", "california": "CA",
	"colorado": "CO", "connecticut": "CT", "delaware": "DE", "florida": "FL", "georgia": "GA",
	"hawaii": "HI", "idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
	"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS", "missouri": "MO",
	"montana": "MT", "nebraska": "NE", "nevada": "NV", "new hampshire": "NH", "new jersey": "NJ",
	"new mexico": "NM", "new york": "NY", "north carolina": "NC", "north dakota": "ND", "ohio": "OH",
	"oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT", "vermont": "VT",
	"virginia": "VA", "washington": "WA", "west virginia": "WV", "wisconsin": "WI", "wyoming": "WY",
	"district of columbia": "DC",
}

// countryEntry pairs an ISO-ish code with the keywords that imply it.
// Ordered list so detection is deterministic.
type countryEntry struct {
	code     string
	keywords []string
}

var countryPatterns = []countryEntry{
	{"US", []string{"united states", "usa", "america"}},
	{"CA", []string{"canada", "canadian"}},
	{"GB", []string{"united kingdom", "uk", "britain", "england", "scotland", "wales"}},
	{"AU", []string{"australia", "australian"}},
	{"DE", []string{"germany", "german"}},
	{"FR", []string{"france", "french"}},
	{"NL", []string{"netherlands", "dutch"}},
	{"SE", []string{"sweden", "swedish"}},
	{"NO", []string{"norway", "norwegian"}},
	{"DK", []string{"denmark", "danish"}},
}

// remoteTier pairs a remote-work type with its trigger phrases. Tiers are
// checked in order; the first tier with a match wins.
type remoteTier struct {
	remoteType string
	phrases    []string
}

var remoteTiers = []remoteTier{
	{"full", []string{
		"fully remote", "completely remote", "100% remote", "remote only",
		"remote-first", "remote work", "work from home", "wfh", "distributed team",
		"anywhere in the world", "location independent",
	}},
	{"hybrid", []string{
		"hybrid", "hybrid remote", "remote hybrid", "flexible remote",
		"part remote", "partial remote", "some remote", "remote friendly",
		"2-3 days remote", "remote 2-3 days",
	}},
	{"occasional", []string{
		"remote optional", "remote when needed", "occasional remote",
		"remote as needed", "flexible location",
	}},
}
