package textseg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuleTableValidation(t *testing.T) {
	tests := []struct {
		name string
		data RuleData
	}{
		{"no tables", RuleData{}},
		{"inverted range", RuleData{Word: [][3]int{{0x62, 0x61, prALetter}}}},
		{"overlapping ranges", RuleData{Word: [][3]int{
			{0x41, 0x5A, prALetter},
			{0x50, 0x60, prNumeric},
		}}},
		{"out of order", RuleData{Word: [][3]int{
			{0x61, 0x7A, prALetter},
			{0x41, 0x5A, prALetter},
		}}},
		{"unknown class", RuleData{Word: [][3]int{{0x41, 0x5A, prMax + 7}}}},
		{"suppression without full stop", RuleData{
			Sentence:     sentenceBreakCodePoints,
			Suppressions: []string{"Dr"},
		}},
		{"empty suppression", RuleData{
			Sentence:     sentenceBreakCodePoints,
			Suppressions: []string{"."},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRuleTable(tt.data)
			assert.ErrorIs(t, err, ErrMalformedTable)
		})
	}
}

func TestRuleTableSupports(t *testing.T) {
	table, err := NewRuleTable(RuleData{
		Line: lineBreakCodePoints,
		Word: wordBreakCodePoints,
	})
	require.NoError(t, err)
	assert.True(t, table.Supports(KindLine))
	assert.False(t, table.Supports(KindSentence))
	assert.True(t, table.Supports(KindWord))
	assert.False(t, table.Supports(Kind(42)))
}

func TestBuiltinRules(t *testing.T) {
	table := BuiltinRules()
	require.NotNil(t, table)
	assert.Same(t, table, BuiltinRules())
	for _, kind := range []Kind{KindLine, KindSentence, KindWord} {
		assert.True(t, table.Supports(kind), kind)
	}
}

func TestClassifyDefaultsToAny(t *testing.T) {
	table := BuiltinRules()
	// U+FFFF is unassigned in all three classification tables.
	for _, kind := range []Kind{KindLine, KindSentence, KindWord} {
		assert.Equal(t, prAny, table.classify(kind, 0xFFFF), kind)
	}
	assert.Equal(t, prALetter, table.classify(KindWord, 'a'))
	assert.Equal(t, prUpper, table.classify(KindSentence, 'A'))
	assert.Equal(t, prNU, table.classify(KindLine, '7'))
}

func TestBreakClassAssignments(t *testing.T) {
	table := BuiltinRules()
	assert.Equal(t, prEX, table.classify(KindLine, '?'))
	assert.Equal(t, prEX, table.classify(KindLine, '!'))
	assert.Equal(t, prBB, table.classify(KindLine, '`'))
	assert.Equal(t, prZWJ, table.classify(KindWord, '\u200D'))
	assert.Equal(t, prExtPict, table.classify(KindWord, '\U0001F469'))
	assert.Equal(t, prExtPict, table.classify(KindWord, '©'))
}

func TestGeneratedTablesAreValid(t *testing.T) {
	for name, ranges := range map[string][][3]int{
		"line":     lineBreakCodePoints,
		"sentence": sentenceBreakCodePoints,
		"word":     wordBreakCodePoints,
	} {
		prev := -1
		for i, r := range ranges {
			if r[0] > r[1] || r[0] <= prev {
				t.Errorf("%s entry %d: bad range %#x..%#x", name, i, r[0], r[1])
			}
			if r[2] <= prAny || r[2] >= prMax {
				t.Errorf("%s entry %d: bad class %d", name, i, r[2])
			}
			prev = r[1]
		}
	}
}
