package textseg

import "testing"

func TestSentenceBoundaries(t *testing.T) {
	tests := []struct {
		input string
		want  []int32
	}{
		{"", nil},
		{"Hello.", []int32{6}},
		{"Hello. World.", []int32{7, 13}},
		{"Hello! How are you?", []int32{7, 19}},
		{"One sentence, two clauses.", []int32{26}},
		{"The U.S.A. is big.", []int32{18}},
		// A lowercase continuation after the full stop keeps the
		// sentence going even though "fig." is no known abbreviation.
		{"See fig. 4 for details.", []int32{23}},
		{"A\nB", []int32{2, 3}},
		{"A\r\nB", []int32{3, 4}},
		{"He said no. (She agreed.)", []int32{12, 25}},
	}
	for _, tt := range tests {
		if got := boundaries(t, KindSentence, tt.input); !equalOffsets(got, tt.want) {
			t.Errorf("%q: got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestAbbreviationSuppressions(t *testing.T) {
	tests := []struct {
		input string
		want  []int32
	}{
		// "Dr." must not end the first sentence.
		{"Dr. Smith went home. She left.", []int32{21, 30}},
		{"Visit Mt. Fuji. Then rest.", []int32{16, 26}},
		// "Smith." is no abbreviation, so the break stands.
		{"Ask Smith. Then go.", []int32{11, 19}},
	}
	for _, tt := range tests {
		if got := boundaries(t, KindSentence, tt.input); !equalOffsets(got, tt.want) {
			t.Errorf("%q: got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWithoutSuppressions(t *testing.T) {
	table, err := NewRuleTable(RuleData{Sentence: sentenceBreakCodePoints})
	if err != nil {
		t.Fatal(err)
	}
	seg, err := NewSegmenter(table, KindSentence)
	if err != nil {
		t.Fatal(err)
	}
	it := seg.SegmentUTF8([]byte("Dr. Smith went home. She left."))
	var got []int32
	for b := it.Next(); b != Done; b = it.Next() {
		got = append(got, b)
	}
	// Without the abbreviation list, "Dr." terminates a sentence.
	want := []int32{4, 21, 30}
	if !equalOffsets(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
