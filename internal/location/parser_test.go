package location

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobpilot/internal/types"
)

func TestParse_CityWithStateAbbreviation(t *testing.T) {
	parser := NewParser()
	info := parser.Parse("San Francisco, CA", "")

	assert.Equal(t, "San Francisco", info.City)
	assert.Equal(t, "CA", info.StateProvince)
	assert.Equal(t, "US", info.Country)
	assert.False(t, info.IsRemote)
}

func TestParse_CityWithFullStateName(t *testing.T) {
	parser := NewParser()
	info := parser.Parse("Austin, Texas", "")

	assert.Equal(t, "Austin", info.City)
	assert.Equal(t, "TX", info.StateProvince)
	assert.Equal(t, "US", info.Country)
}

func TestParse_StateOnly(t *testing.T) {
	parser := NewParser()
	info := parser.Parse("California", "")

	assert.Empty(t, info.City)
	assert.Equal(t, "CA", info.StateProvince)
	assert.Equal(t, "US", info.Country)
}

func TestParse_NonUSLocation(t *testing.T) {
	parser := NewParser()
	info := parser.Parse("London, UK", "")

	assert.Equal(t, "London", info.City)
	assert.Equal(t, "UK", info.StateProvince)
	assert.Equal(t, "GB", info.Country)
}

func TestParse_BareRemoteIsFullRemote(t *testing.T) {
	parser := NewParser()
	info := parser.Parse("Remote", "")

	assert.True(t, info.IsRemote)
	assert.Equal(t, types.RemoteFull, info.RemoteType)
}

func TestParse_RemoteTiers(t *testing.T) {
	parser := NewParser()

	tests := map[string]struct {
		description string
		remoteType  string
	}{
		"fully remote":   {"This is a fully remote position", types.RemoteFull},
		"work from home": {"Work from home with quarterly onsites", types.RemoteFull},
		"hybrid":         {"Hybrid remote role in our Berlin office", types.RemoteHybrid},
		"occasional":     {"Remote optional for this position", types.RemoteOccasional},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			info := parser.Parse("", tc.description)
			assert.True(t, info.IsRemote)
			assert.Equal(t, tc.remoteType, info.RemoteType)
		})
	}
}

func TestParse_CountryFromDescription(t *testing.T) {
	parser := NewParser()
	info := parser.Parse("", "Our team is based in Germany with offices in Munich")

	assert.Equal(t, "DE", info.Country)
}

func TestParse_EmptyInput(t *testing.T) {
	parser := NewParser()
	info := parser.Parse("", "")

	assert.Equal(t, types.LocationInfo{}, info)
}

func TestParse_UnknownSinglePartIsCity(t *testing.T) {
	parser := NewParser()
	info := parser.Parse("Toronto", "")

	assert.Equal(t, "Toronto", info.City)
	assert.Empty(t, info.StateProvince)
}

func TestMatchUSState_Abbreviations(t *testing.T) {
	abbr, ok := matchUSState("wa")
	assert.True(t, ok)
	assert.Equal(t, "WA", abbr)

	_, ok = matchUSState("zz")
	assert.False(t, ok)
}
