// Package matcher decides whether a voice-recognized word counts as a correct
// utterance of an expected mantra word. Matching runs exact equality first,
// then a curated per-word variant table covering common transliterations and
// mis-recognitions in Latin and Devanagari script, and finally an
// edit-distance similarity fallback. Acoustically confusable word pairs
// (shyam/shyama, radhe/krishna) are guarded against before any fuzzy scoring
// so a close similarity score can never cross-match two distinct words.
package matcher

import (
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"
)

// DefaultFuzzyThreshold is the minimum similarity ratio for the fuzzy
// fallback. Tunable via config; 0.85 keeps sham→shyam while rejecting
// unrelated words.
const DefaultFuzzyThreshold = 0.85

// minFuzzyLength is the shortest normalized string eligible for fuzzy
// scoring. Below this, edit-distance ratios are too noisy to trust.
const minFuzzyLength = 3

// variants maps each canonical mantra word to its accepted spoken spellings.
// The lists are deliberately disjoint: shyam carries no variant that could be
// read as shyama and vice versa.
var variants = map[string][]string{
	"radhe":   {"radhe", "राधे", "radhey", "radhai", "rade", "radey", "radi", "radhi"},
	"krishna": {"krishna", "कृष्णा", "krisha", "krisna", "krishnaa", "krsna"},
	"shyam":   {"shyam", "श्याम", "sham", "shaam", "syam", "shym"},
	"shyama":  {"shyama", "श्यामा", "shyamaa", "शामा"},
}

// confusable lists word pairs that sound alike but must never cross-match.
// Checked symmetrically: a recognized string containing the other member of
// the pair fails the match regardless of similarity.
var confusable = map[string]string{
	"shyam":   "shyama",
	"shyama":  "shyam",
	"radhe":   "krishna",
	"krishna": "radhe",
}

var (
	// Combining marks (\p{M}) must survive normalization: Devanagari matras
	// and viramas are marks, and stripping them collapses distinct words
	// (श्याम and श्यामा would both become शयम).
	punctRe = regexp.MustCompile(`[^\p{L}\p{M}\p{N}\s]`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lowercases, trims, strips punctuation and collapses internal
// whitespace runs. Deterministic; no locale handling beyond case folding.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = punctRe.ReplaceAllString(text, "")
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// Similarity is an edit-distance ratio on the 0..1 scale: 1 minus the
// Levenshtein distance over the longer length.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	dist := matchr.Levenshtein(a, b)
	return 1 - float64(dist)/float64(longest)
}

// Matcher holds the tunable fuzzy threshold. Zero value is not usable;
// construct with New.
type Matcher struct {
	fuzzyThreshold float64
}

// New returns a Matcher with the given fuzzy threshold; values outside (0,1]
// fall back to DefaultFuzzyThreshold.
func New(fuzzyThreshold float64) *Matcher {
	if fuzzyThreshold <= 0 || fuzzyThreshold > 1 {
		fuzzyThreshold = DefaultFuzzyThreshold
	}
	return &Matcher{fuzzyThreshold: fuzzyThreshold}
}

// Match reports whether recognized counts as an utterance of expected. The
// similarity score is always returned so callers can surface it as feedback
// on a miss.
func (m *Matcher) Match(recognized, expected string) (matched bool, score float64) {
	rec := Normalize(recognized)
	exp := Normalize(expected)
	score = Similarity(rec, exp)

	if rec == "" || exp == "" {
		return false, score
	}
	if rec == exp {
		return true, score
	}

	if vars, ok := variants[exp]; ok {
		for _, v := range vars {
			if rec == Normalize(v) {
				return true, score
			}
		}
	}

	// Anti-confusion guard runs before any fuzzy scoring.
	if other, ok := confusable[exp]; ok {
		if rec == other || strings.Contains(rec, other) {
			return false, score
		}
	}

	if len([]rune(rec)) >= minFuzzyLength && len([]rune(exp)) >= minFuzzyLength && score >= m.fuzzyThreshold {
		return true, score
	}

	return false, score
}
