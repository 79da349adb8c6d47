// Package extraction provides deterministic skill extraction from free text.
package extraction

import (
	"sort"

	"github.com/jonathan/jobpilot/internal/lexicon"
)

// ExtractSkills scans free text against the lexicon and returns the sorted,
// deduplicated set of canonical skills mentioned. Matching is
// case-insensitive with word-boundary semantics; irregular tokens and
// compound phrases are handled by the lexicon's precompiled patterns.
// Empty text yields an empty result. Pure function of (text, lexicon).
func ExtractSkills(text string, lex *lexicon.Lexicon) []string {
	if text == "" {
		return []string{}
	}

	found := make(map[string]bool)

	// Direct canonical skill matches
	for skill, pattern := range lex.SkillPatterns() {
		if pattern.MatchString(text) {
			found[skill] = true
		}
	}

	// Synonym matches resolve to their canonical skill
	for synonym, pattern := range lex.SynonymPatterns() {
		canonical := lex.Canonical(synonym)
		if !lex.Contains(canonical) {
			continue
		}
		if pattern.MatchString(text) {
			found[canonical] = true
		}
	}

	// Compound patterns may contribute multiple canonical skills each
	for _, compound := range lex.Compounds() {
		if !compound.Pattern.MatchString(text) {
			continue
		}
		for _, skill := range compound.Skills {
			if lex.Contains(skill) {
				found[skill] = true
			}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	return skills
}
