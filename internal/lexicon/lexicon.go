// Package lexicon provides the static skill lexicon used for skill extraction.
package lexicon

import (
	"fmt"
	"regexp"
	"strings"
)

// CompoundPattern maps a compiled regex to the canonical skills it implies.
// A single phrase can contribute more than one canonical skill ("REST APIs"
// yields both "rest" and "api").
type CompoundPattern struct {
	Pattern *regexp.Regexp
	Skills  []string
}

// Lexicon is an immutable skill matching table: canonical skill names,
// synonym aliases, and compound-term patterns. Built once at startup and
// safe for concurrent use.
type Lexicon struct {
	canonical map[string]bool
	synonyms  map[string]string
	compounds []CompoundPattern

	// Per-skill word-boundary patterns, precompiled. Irregular tokens such
	// as "c++" and ".net" contain non-word characters that break \b
	// semantics and get custom boundary rules.
	skillPatterns   map[string]*regexp.Regexp
	synonymPatterns map[string]*regexp.Regexp
}

// New builds a Lexicon from canonical skills, a synonym→canonical map, and
// compound patterns. Synonyms whose canonical skill is not in the canonical
// set are kept; they map to canonicals introduced by the synonym table
// itself (e.g. "ci/cd" → "cicd").
func New(canonical []string, synonyms map[string]string, compounds []CompoundPattern) (*Lexicon, error) {
	lex := &Lexicon{
		canonical:       make(map[string]bool, len(canonical)),
		synonyms:        make(map[string]string, len(synonyms)),
		compounds:       compounds,
		skillPatterns:   make(map[string]*regexp.Regexp, len(canonical)),
		synonymPatterns: make(map[string]*regexp.Regexp, len(synonyms)),
	}

	for _, skill := range canonical {
		name := strings.ToLower(strings.TrimSpace(skill))
		if name == "" {
			continue
		}
		lex.canonical[name] = true
		pattern, err := compileTokenPattern(name)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern for skill %q: %w", name, err)
		}
		lex.skillPatterns[name] = pattern
	}

	for synonym, target := range synonyms {
		syn := strings.ToLower(strings.TrimSpace(synonym))
		if syn == "" {
			continue
		}
		lex.synonyms[syn] = strings.ToLower(target)
		pattern, err := compileTokenPattern(syn)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern for synonym %q: %w", syn, err)
		}
		lex.synonymPatterns[syn] = pattern
	}

	return lex, nil
}

// Contains reports whether skill is a canonical lexicon entry.
func (l *Lexicon) Contains(skill string) bool {
	return l.canonical[strings.ToLower(skill)]
}

// SkillPatterns returns the canonical skill → compiled pattern table.
func (l *Lexicon) SkillPatterns() map[string]*regexp.Regexp {
	return l.skillPatterns
}

// SynonymPatterns returns the synonym → compiled pattern table.
func (l *Lexicon) SynonymPatterns() map[string]*regexp.Regexp {
	return l.synonymPatterns
}

// Canonical resolves a synonym to its canonical skill. Returns the input
// unchanged when it is not a known synonym.
func (l *Lexicon) Canonical(synonym string) string {
	if target, ok := l.synonyms[strings.ToLower(synonym)]; ok {
		return target
	}
	return strings.ToLower(synonym)
}

// Compounds returns the ordered compound pattern list.
func (l *Lexicon) Compounds() []CompoundPattern {
	return l.compounds
}

// compileTokenPattern builds a case-insensitive matching pattern for a
// token. Tokens beginning or ending with non-word characters cannot use
// standard \b boundaries on that side.
func compileTokenPattern(token string) (*regexp.Regexp, error) {
	escaped := regexp.QuoteMeta(token)

	leading := `\b`
	trailing := `\b`
	if !isWordChar(token[0]) {
		leading = ``
	}
	if !isWordChar(token[len(token)-1]) {
		trailing = ``
	}

	return regexp.Compile(`(?i)` + leading + escaped + trailing)
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
