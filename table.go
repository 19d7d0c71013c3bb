package textseg

import (
	"fmt"
	"strings"
	"sync"
)

// Kind selects the boundary type a Segmenter detects.
type Kind int

const (
	KindLine Kind = iota // Line break opportunities (UAX #14)
	KindSentence         // Sentence boundaries (UAX #29)
	KindWord             // Word boundaries (UAX #29)
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindSentence:
		return "sentence"
	case KindWord:
		return "word"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// RuleData is the raw material for a RuleTable. Each classification
// table is a list of [startCodePoint, endCodePoint, class] entries,
// sorted ascending by start with no overlaps; class values are the pr*
// constants. A nil table leaves that segmentation kind unsupported.
//
// Suppressions are abbreviations, full stop included ("Dr.", "etc."),
// whose trailing full stop must not be treated as a sentence
// terminator. They bake the abbreviation-versus-terminator precedence
// into the table so the runtime machine stays a single forward pass.
type RuleData struct {
	Line         [][3]int
	Sentence     [][3]int
	Word         [][3]int
	Suppressions []string
}

// RuleTable is an immutable set of boundary classification rules.
// Loaded once via NewRuleTable or BuiltinRules and then read
// concurrently by any number of segmenters and iterators.
type RuleTable struct {
	line         [][3]int
	sentence     [][3]int
	word         [][3]int
	suppressions map[string]struct{}

	// Precomputed ASCII classes, the hot path for Western text.
	asciiLine     [128]int
	asciiSentence [128]int
	asciiWord     [128]int
}

// NewRuleTable validates data and builds a RuleTable from it. All
// structural problems surface here as ErrMalformedTable; classification
// itself never fails.
func NewRuleTable(data RuleData) (*RuleTable, error) {
	if data.Line == nil && data.Sentence == nil && data.Word == nil {
		return nil, fmt.Errorf("%w: no classification tables", ErrMalformedTable)
	}
	if err := validateRanges("line", data.Line); err != nil {
		return nil, err
	}
	if err := validateRanges("sentence", data.Sentence); err != nil {
		return nil, err
	}
	if err := validateRanges("word", data.Word); err != nil {
		return nil, err
	}

	t := &RuleTable{
		line:     data.Line,
		sentence: data.Sentence,
		word:     data.Word,
	}
	for r := rune(0); r < 128; r++ {
		t.asciiLine[r] = property(t.line, r)
		t.asciiSentence[r] = property(t.sentence, r)
		t.asciiWord[r] = property(t.word, r)
	}
	if len(data.Suppressions) > 0 {
		t.suppressions = make(map[string]struct{}, len(data.Suppressions))
		for _, s := range data.Suppressions {
			if !strings.HasSuffix(s, ".") || len(s) < 2 {
				return nil, fmt.Errorf("%w: suppression %q must be an abbreviation ending in a full stop", ErrMalformedTable, s)
			}
			t.suppressions[s] = struct{}{}
		}
	}
	return t, nil
}

func validateRanges(name string, ranges [][3]int) error {
	prev := -1
	for i, cpRange := range ranges {
		from, to, class := cpRange[0], cpRange[1], cpRange[2]
		if from > to {
			return fmt.Errorf("%w: %s entry %d: range %#x..%#x is inverted", ErrMalformedTable, name, i, from, to)
		}
		if from <= prev {
			return fmt.Errorf("%w: %s entry %d: range %#x..%#x overlaps or is out of order", ErrMalformedTable, name, i, from, to)
		}
		if class <= prAny || class >= prMax {
			return fmt.Errorf("%w: %s entry %d: unknown class %d", ErrMalformedTable, name, i, class)
		}
		prev = to
	}
	return nil
}

// Supports reports whether the table carries rules for the given kind.
func (t *RuleTable) Supports(kind Kind) bool {
	switch kind {
	case KindLine:
		return t.line != nil
	case KindSentence:
		return t.sentence != nil
	case KindWord:
		return t.word != nil
	}
	return false
}

// classify maps a code point to its break class for the given kind.
// Unmapped code points yield prAny, the default "other" class.
func (t *RuleTable) classify(kind Kind, r rune) int {
	switch kind {
	case KindLine:
		if r < 128 {
			return t.asciiLine[r]
		}
		return property(t.line, r)
	case KindSentence:
		if r < 128 {
			return t.asciiSentence[r]
		}
		return property(t.sentence, r)
	case KindWord:
		if r < 128 {
			return t.asciiWord[r]
		}
		return property(t.word, r)
	}
	return prAny
}

// isSuppressed reports whether word, full stop included, is a known
// abbreviation that must not terminate a sentence.
func (t *RuleTable) isSuppressed(word string) bool {
	_, ok := t.suppressions[word]
	return ok
}

// defaultSuppressions are the built-in English abbreviation
// suppressions, mirroring the common locale suppression lists.
var defaultSuppressions = []string{
	"Mr.", "Mrs.", "Ms.", "Dr.", "Prof.", "Rev.", "Hon.", "St.",
	"Jr.", "Sr.", "Capt.", "Gen.", "Sgt.", "Lt.", "Col.",
	"vs.", "etc.", "e.g.", "i.e.", "cf.", "al.", "approx.",
	"Inc.", "Ltd.", "Co.", "Corp.", "Dept.", "Univ.",
	"Mt.", "Ave.", "Blvd.", "Rd.", "No.", "Nos.", "Fig.", "Figs.",
	"Jan.", "Feb.", "Mar.", "Apr.", "Jun.", "Jul.", "Aug.",
	"Sep.", "Sept.", "Oct.", "Nov.", "Dec.",
}

var (
	builtinOnce  sync.Once
	builtinTable *RuleTable
)

// BuiltinRules returns the compiled-in rule table: the generated UCD
// classification tables for all three kinds plus the default English
// suppressions. The table is built once and shared.
func BuiltinRules() *RuleTable {
	builtinOnce.Do(func() {
		t, err := NewRuleTable(RuleData{
			Line:         lineBreakCodePoints,
			Sentence:     sentenceBreakCodePoints,
			Word:         wordBreakCodePoints,
			Suppressions: defaultSuppressions,
		})
		if err != nil {
			// The generated tables are validated by tests; reaching
			// this means the build itself is broken.
			panic(err)
		}
		builtinTable = t
	})
	return builtinTable
}
