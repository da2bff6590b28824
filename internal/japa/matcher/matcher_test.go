package matcher_test

import (
	"testing"

	"sadguru-seva-be/internal/japa/matcher"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Radhe  ", "radhe"},
		{"KRISHNA!", "krishna"},
		{"shyam,  shyam", "shyam shyam"},
		{"राधे।", "राधे"},
		{"श्यामा", "श्यामा"},
		{"कृष्णा!", "कृष्णा"},
		{"", ""},
		{"...", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, matcher.Normalize(c.in), "Normalize(%q)", c.in)
	}
}

func TestMatch_ExactAndVariants(t *testing.T) {
	m := matcher.New(matcher.DefaultFuzzyThreshold)

	exact := [][2]string{
		{"radhe", "radhe"},
		{"Krishna", "krishna"},
		{"राधे", "radhe"},
		{"कृष्णा", "krishna"},
		{"krisna", "krishna"},
		{"radhey", "radhe"},
		{"shaam", "shyam"},
		{"shyamaa", "shyama"},
	}
	for _, c := range exact {
		ok, _ := m.Match(c[0], c[1])
		assert.True(t, ok, "Match(%q, %q)", c[0], c[1])
	}
}

func TestMatch_AntiConfusion(t *testing.T) {
	m := matcher.New(matcher.DefaultFuzzyThreshold)

	// shyam and shyama share a long prefix but must never cross-match.
	ok, score := m.Match("shyama", "shyam")
	assert.False(t, ok)
	assert.Greater(t, score, 0.7, "the guard must fire even when similarity is high")

	ok, _ = m.Match("shyam", "shyama")
	assert.False(t, ok)

	ok, _ = m.Match("krishna", "radhe")
	assert.False(t, ok)
	ok, _ = m.Match("radhe", "krishna")
	assert.False(t, ok)

	// Devanagari spellings keep their matras, so the longer श्यामा can never
	// fall into shyam's variant list.
	ok, _ = m.Match("श्यामा", "shyam")
	assert.False(t, ok)
	ok, _ = m.Match("श्याम", "shyama")
	assert.False(t, ok)
}

func TestMatch_FuzzyFallback(t *testing.T) {
	m := matcher.New(matcher.DefaultFuzzyThreshold)

	ok, score := m.Match("krishme", "krishna")
	assert.False(t, ok, "two edits in seven runes must not clear 0.85")
	assert.Less(t, score, 0.85)

	ok, score = m.Match("krishnu", "krishna")
	assert.True(t, ok)
	assert.GreaterOrEqual(t, score, 0.85)

	ok, score = m.Match("xyz", "krishna")
	assert.False(t, ok)
	assert.Less(t, score, 0.5)
}

func TestMatch_ShortStringsSkipFuzzy(t *testing.T) {
	m := matcher.New(0.5)

	// Two-rune strings stay out of fuzzy scoring entirely.
	ok, _ := m.Match("ra", "radhe")
	assert.False(t, ok)
}

func TestMatch_EmptyInput(t *testing.T) {
	m := matcher.New(matcher.DefaultFuzzyThreshold)

	ok, _ := m.Match("", "radhe")
	assert.False(t, ok)
	ok, _ = m.Match("   ", "radhe")
	assert.False(t, ok)
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, matcher.Similarity("radhe", "radhe"), 0.0001)
	assert.InDelta(t, 0.0, matcher.Similarity("abc", "xyz"), 0.0001)
	// One edit over seven runes.
	assert.InDelta(t, 6.0/7.0, matcher.Similarity("krishna", "krishnu"), 0.0001)
}

func TestNewClampsThreshold(t *testing.T) {
	m := matcher.New(-1)
	// Falls back to the default: a 0.857 similarity passes.
	ok, _ := m.Match("krishnu", "krishna")
	assert.True(t, ok)
}
