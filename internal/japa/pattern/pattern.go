// Package pattern holds the canonical Hari Jap mantra sequence and the pure
// position/repetition transitions over it. Nothing here touches storage; the
// JapaService owns persistence of the pointers this package produces.
package pattern

// Group is one canonical word of the mantra together with the number of
// consecutive repetitions it must be spoken before the sequence moves on.
type Group struct {
	Word        string
	Devanagari  string
	Repetitions int
}

// Mantra is the production sequence. It is loaded once and read-only; 11
// groups, 16 utterances per full cycle.
var Mantra = []Group{
	{Word: "radhe", Devanagari: "राधे", Repetitions: 1},
	{Word: "krishna", Devanagari: "कृष्णा", Repetitions: 1},
	{Word: "radhe", Devanagari: "राधे", Repetitions: 1},
	{Word: "krishna", Devanagari: "कृष्णा", Repetitions: 3},
	{Word: "radhe", Devanagari: "राधे", Repetitions: 3},
	{Word: "shyam", Devanagari: "श्याम", Repetitions: 1},
	{Word: "radhe", Devanagari: "राधे", Repetitions: 1},
	{Word: "shyama", Devanagari: "श्यामा", Repetitions: 1},
	{Word: "shyam", Devanagari: "श्याम", Repetitions: 1},
	{Word: "shyama", Devanagari: "शामा", Repetitions: 1},
	{Word: "radhe", Devanagari: "राधे", Repetitions: 2},
}

// TotalUtterances is the number of spoken words in one full cycle.
var TotalUtterances = func() int {
	total := 0
	for _, g := range Mantra {
		total += g.Repetitions
	}
	return total
}()

// GroupCount returns the number of pattern groups in the mantra.
func GroupCount() int {
	return len(Mantra)
}

// GroupAt returns the group at the given 1-based position. Out-of-range
// positions wrap to the start of the cycle instead of failing; a stale or
// corrupt pointer simply restarts the mantra.
func GroupAt(position int) Group {
	if position < 1 || position > len(Mantra) {
		position = 1
	}
	return Mantra[position-1]
}

// ExpectedUtterance fully qualifies the word a practitioner should speak next.
type ExpectedUtterance struct {
	Word             string
	Devanagari       string
	RepetitionNumber int
	TotalRepetitions int
	Position         int
	// UtteranceIndex is the 1-based index into the flattened cycle. It is a
	// derived display value only, never a source of truth.
	UtteranceIndex int
}

// Expected combines the group at position with the supplied repetition index.
func Expected(position, repetition int) ExpectedUtterance {
	if position < 1 || position > len(Mantra) {
		position = 1
	}
	g := Mantra[position-1]
	return ExpectedUtterance{
		Word:             g.Word,
		Devanagari:       g.Devanagari,
		RepetitionNumber: repetition,
		TotalRepetitions: g.Repetitions,
		Position:         position,
		UtteranceIndex:   UtteranceIndex(position, repetition),
	}
}

// UtteranceIndex computes the flat 1-based index of (position, repetition)
// within one cycle: the repetitions of all prior groups plus repetition.
func UtteranceIndex(position, repetition int) int {
	if position < 1 || position > len(Mantra) {
		position = 1
	}
	idx := 0
	for i := 0; i < position-1; i++ {
		idx += Mantra[i].Repetitions
	}
	return idx + repetition
}

// Advance moves the (position, repetition) pointer past one matched
// utterance. The position only changes once every repetition of the current
// group has been spoken; wrapping past the last group completes a cycle and
// resets the pointer to (1, 1).
func Advance(position, repetition int) (newPosition, newRepetition int, cycleCompleted bool) {
	if position < 1 || position > len(Mantra) {
		position = 1
	}
	g := Mantra[position-1]
	if repetition < g.Repetitions {
		return position, repetition + 1, false
	}
	newPosition = position + 1
	if newPosition > len(Mantra) {
		return 1, 1, true
	}
	return newPosition, 1, false
}

// DisplayWord is one entry of the flattened cycle used for client-side
// rendering of the full mantra.
type DisplayWord struct {
	WordOrder        int    `json:"word_order"`
	Word             string `json:"word_english"`
	Devanagari       string `json:"word_devanagari"`
	IsRepetition     bool   `json:"is_repetition"`
	RepetitionNumber int    `json:"repetition_number"`
	TotalRepetitions int    `json:"total_repetitions"`
}

// Display flattens the mantra into its per-utterance sequence.
func Display() []DisplayWord {
	words := make([]DisplayWord, 0, TotalUtterances)
	order := 1
	for _, g := range Mantra {
		for rep := 1; rep <= g.Repetitions; rep++ {
			words = append(words, DisplayWord{
				WordOrder:        order,
				Word:             g.Word,
				Devanagari:       g.Devanagari,
				IsRepetition:     rep > 1,
				RepetitionNumber: rep,
				TotalRepetitions: g.Repetitions,
			})
			order++
		}
	}
	return words
}
