package pattern_test

import (
	"testing"

	"sadguru-seva-be/internal/japa/pattern"

	"github.com/stretchr/testify/assert"
)

func TestTotalUtterances(t *testing.T) {
	assert.Equal(t, 16, pattern.TotalUtterances)
	assert.Equal(t, 11, pattern.GroupCount())
}

func TestGroupAt_WrapsOutOfRange(t *testing.T) {
	first := pattern.GroupAt(1)

	assert.Equal(t, first, pattern.GroupAt(0))
	assert.Equal(t, first, pattern.GroupAt(-3))
	assert.Equal(t, first, pattern.GroupAt(pattern.GroupCount()+1))
}

func TestAdvance_FullCycle(t *testing.T) {
	pos, rep := 1, 1
	completions := 0

	for i := 1; i <= pattern.TotalUtterances; i++ {
		var done bool
		pos, rep, done = pattern.Advance(pos, rep)
		if done {
			completions++
			assert.Equal(t, pattern.TotalUtterances, i, "cycle must complete on the final utterance")
		}
	}

	assert.Equal(t, 1, completions, "exactly one completion per cycle")
	assert.Equal(t, 1, pos)
	assert.Equal(t, 1, rep)

	// The 17th call starts the next cycle.
	pos, rep, done := pattern.Advance(pos, rep)
	assert.False(t, done)
	assert.Equal(t, 2, pos)
	assert.Equal(t, 1, rep)
}

func TestAdvance_NoEarlyAdvance(t *testing.T) {
	// Group 4 (krishna x3): position must not move until all three
	// repetitions are spoken.
	pos, rep, done := pattern.Advance(4, 1)
	assert.False(t, done)
	assert.Equal(t, 4, pos)
	assert.Equal(t, 2, rep)

	pos, rep, done = pattern.Advance(4, 2)
	assert.False(t, done)
	assert.Equal(t, 4, pos)
	assert.Equal(t, 3, rep)

	pos, rep, done = pattern.Advance(4, 3)
	assert.False(t, done)
	assert.Equal(t, 5, pos)
	assert.Equal(t, 1, rep)
}

func TestAdvance_WrapCompletesCycle(t *testing.T) {
	last := pattern.GroupCount()
	reps := pattern.GroupAt(last).Repetitions

	pos, rep, done := pattern.Advance(last, reps)
	assert.True(t, done)
	assert.Equal(t, 1, pos)
	assert.Equal(t, 1, rep)
}

func TestExpected(t *testing.T) {
	e := pattern.Expected(4, 2)
	assert.Equal(t, "krishna", e.Word)
	assert.Equal(t, 2, e.RepetitionNumber)
	assert.Equal(t, 3, e.TotalRepetitions)
	assert.Equal(t, 4, e.Position)
	// Groups 1-3 contribute one utterance each.
	assert.Equal(t, 5, e.UtteranceIndex)
}

func TestUtteranceIndex_CoversWholeCycle(t *testing.T) {
	seen := make(map[int]bool)
	for posIdx, g := range pattern.Mantra {
		for rep := 1; rep <= g.Repetitions; rep++ {
			idx := pattern.UtteranceIndex(posIdx+1, rep)
			assert.False(t, seen[idx], "utterance index %d assigned twice", idx)
			seen[idx] = true
		}
	}
	assert.Len(t, seen, pattern.TotalUtterances)
	assert.True(t, seen[1])
	assert.True(t, seen[pattern.TotalUtterances])
}

func TestDisplay(t *testing.T) {
	words := pattern.Display()

	assert.Len(t, words, pattern.TotalUtterances)
	assert.Equal(t, 1, words[0].WordOrder)
	assert.Equal(t, "radhe", words[0].Word)
	assert.False(t, words[0].IsRepetition)
	assert.Equal(t, pattern.TotalUtterances, words[len(words)-1].WordOrder)
	// Last group is radhe x2, so the final display word is its repetition.
	assert.True(t, words[len(words)-1].IsRepetition)
	assert.Equal(t, 2, words[len(words)-1].RepetitionNumber)
}
