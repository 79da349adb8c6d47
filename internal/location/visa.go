// Package location classifies job postings for visa sponsorship signals and
// geographic location. Both classifiers are heuristic keyword matchers:
// noisy input degrades to partial results, never to an error.
package location

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/jobpilot/internal/types"
)

// DefaultVisaThreshold is the raw-score cutoff above which a posting is
// considered visa-friendly. The comparison is strictly greater-than.
const DefaultVisaThreshold = 0.3

// visaKeywords maps sponsorship signals to confidence weights.
var visaKeywords = map[string]float64{
	// Direct sponsorship mentions
	"h-1b":                     1.0,
	"h1b":                      1.0,
	"h-1b sponsorship":         1.0,
	"h1b sponsorship":          1.0,
	"visa sponsorship":         1.0,
	"sponsor visa":             1.0,
	"sponsors visas":           1.0,
	"will sponsor":             1.0,
	"can sponsor":              1.0,
	"eligible for sponsorship": 1.0,

	// Student visa programs
	"opt":          0.9,
	"cpt":          0.9,
	"stem opt":     1.0,
	"f-1":          0.8,
	"f1":           0.8,
	"student visa": 0.8,

	// Other work visas
	"tn visa": 0.9,
	"tn-1":    0.9,
	"l-1":     0.8,
	"l1":      0.8,
	"o-1":     0.8,
	"e-3":     0.8,

	// General sponsorship terms
	"sponsorship available":    0.9,
	"sponsorship provided":     0.9,
	"immigration sponsorship":  1.0,
	"work authorization":       0.7,
	"employment authorization": 0.7,
	"ead":                      0.6,

	// Less direct but positive indicators
	"international candidates": 0.6,
	"global talent":            0.5,
	"worldwide remote":         0.4,
}

// negativeVisaKeywords carry negative weights signaling no sponsorship.
var negativeVisaKeywords = map[string]float64{
	"no sponsorship":              -1.0,
	"no visa sponsorship":         -1.0,
	"no h-1b":                     -1.0,
	"no h1b":                      -1.0,
	"us citizens only":            -1.0,
	"citizenship required":        -1.0,
	"must be authorized":          -0.8,
	"authorized to work":          -0.8,
	"work authorization required": -0.7,
	"eligible to work in us":      -0.5,
	"us work authorization":       -0.5,
}

// VisaDetector scans job text for sponsorship signals. Stateless after
// construction; safe for concurrent use.
type VisaDetector struct {
	positive  map[string]float64
	negative  map[string]float64
	posOrder  []string
	negOrder  []string
	threshold float64
}

// NewVisaDetector creates a detector with the built-in keyword tables and
// the given friendliness threshold. Keyword order is fixed at construction
// so matched keyword lists are deterministic.
func NewVisaDetector(threshold float64) *VisaDetector {
	return &VisaDetector{
		positive:  visaKeywords,
		negative:  negativeVisaKeywords,
		posOrder:  sortedKeys(visaKeywords),
		negOrder:  sortedKeys(negativeVisaKeywords),
		threshold: threshold,
	}
}

// Detect scans text for visa sponsorship keywords. All matched keywords are
// recorded; negative matches get a "NOT: " prefix. Confidence is the
// absolute raw score clamped to 1.0, and VisaFriendly requires the raw
// score to strictly exceed the threshold.
func (d *VisaDetector) Detect(text string) types.VisaInfo {
	if text == "" {
		return types.VisaInfo{Keywords: []string{}}
	}

	lower := strings.ToLower(text)
	keywords := make([]string, 0)
	rawScore := 0.0

	for _, keyword := range d.posOrder {
		if strings.Contains(lower, keyword) {
			keywords = append(keywords, keyword)
			rawScore += d.positive[keyword]
		}
	}

	for _, keyword := range d.negOrder {
		if strings.Contains(lower, keyword) {
			keywords = append(keywords, "NOT: "+keyword)
			rawScore += d.negative[keyword]
		}
	}

	return types.VisaInfo{
		VisaFriendly: rawScore > d.threshold,
		Keywords:     keywords,
		Confidence:   math.Min(math.Abs(rawScore), 1.0),
	}
}

func sortedKeys(table map[string]float64) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
