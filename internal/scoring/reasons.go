package scoring

import (
	"fmt"
	"strings"
)

// Score bands for the overall assessment line.
const (
	bandExcellent = 90
	bandStrong    = 80
	bandGood      = 70
	bandModerate  = 60
)

// MatchReasons generates deterministic, human-readable reasons for a match
// score. Order is fixed: overall assessment, skill highlights, gaps, then
// bonus skills.
func MatchReasons(jobSkills, candidateSkills []string, score int) []string {
	analysis := Analyze(jobSkills, candidateSkills)
	reasons := make([]string, 0, 4)

	switch {
	case score >= bandExcellent:
		reasons = append(reasons, "Excellent skill alignment with job requirements")
	case score >= bandStrong:
		reasons = append(reasons, "Strong technical skills match")
	case score >= bandGood:
		reasons = append(reasons, "Good skills overlap with growth potential")
	case score >= bandModerate:
		reasons = append(reasons, "Moderate skills match with some gaps")
	default:
		reasons = append(reasons, "Limited skills overlap - significant gaps exist")
	}

	common := analysis.CommonSkills
	if len(common) > 0 {
		switch {
		case len(common) >= 5:
			reasons = append(reasons, fmt.Sprintf("Strong coverage across %d key technologies", len(common)))
		case len(common) >= 3:
			reasons = append(reasons, fmt.Sprintf("Solid foundation in %d required skills", len(common)))
		default:
			top := common
			if len(top) > 3 {
				top = top[:3]
			}
			reasons = append(reasons, fmt.Sprintf("Relevant experience with %s", strings.Join(top, ", ")))
		}
	}

	missing := analysis.MissingSkills
	if len(missing) > 0 && len(missing) <= 3 {
		reasons = append(reasons, fmt.Sprintf("Opportunity to develop skills in %s", strings.Join(missing, ", ")))
	}

	if len(analysis.ExtraSkills) >= 3 {
		reasons = append(reasons, "Brings additional valuable technical expertise")
	}

	return reasons
}
