package textseg

import "testing"

// boundaries collects all boundary offsets of the given UTF-8 string
// for the given segmentation kind.
func boundaries(t *testing.T, kind Kind, s string) []int32 {
	t.Helper()
	seg, err := NewSegmenter(BuiltinRules(), kind)
	if err != nil {
		t.Fatal(err)
	}
	it := seg.SegmentUTF8([]byte(s))
	var offsets []int32
	for b := it.Next(); b != Done; b = it.Next() {
		offsets = append(offsets, b)
	}
	return offsets
}

func equalOffsets(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWordBoundaries(t *testing.T) {
	tests := []struct {
		input string
		want  []int32
	}{
		{"", nil},
		{"a", []int32{1}},
		{"Hello, world!", []int32{5, 6, 7, 12, 13}},
		{"can't stop", []int32{5, 6, 10}},
		{"a1b2", []int32{4}},
		{"1,000.5", []int32{7}},
		{"foo_bar baz", []int32{7, 8, 11}},
		{"x\u0301y", []int32{4}},
		{"a\r\nb", []int32{1, 3, 4}},
		{"\U0001F1E9\U0001F1EA\U0001F1EB\U0001F1F7", []int32{8, 16}},
		// Emoji ZWJ sequences stay one word.
		{"\U0001F469\u200D\U0001F469", []int32{11}},
		{"\U0001F469\u200D\U0001F469\u200D\U0001F467", []int32{18}},
	}
	for _, tt := range tests {
		if got := boundaries(t, KindWord, tt.input); !equalOffsets(got, tt.want) {
			t.Errorf("%q: got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLineBoundaries(t *testing.T) {
	tests := []struct {
		input string
		want  []int32
	}{
		{"", nil},
		{"a", []int32{1}},
		{"hello world", []int32{6, 11}},
		{"well-known", []int32{5, 10}},
		{"100.50", []int32{6}},
		{"a\r\nb", []int32{3, 4}},
		{"foo (bar)", []int32{4, 9}},
		{"a\u00ADb", []int32{3, 4}},
		{"日本語", []int32{3, 6, 9}},
		// Exclamation-class punctuation glues to a preceding ideograph.
		{"日?", []int32{4}},
		{"日!", []int32{4}},
		{"para one\npara two", []int32{5, 9, 14, 17}},
	}
	for _, tt := range tests {
		if got := boundaries(t, KindLine, tt.input); !equalOffsets(got, tt.want) {
			t.Errorf("%q: got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIteratorExhaustion(t *testing.T) {
	seg, err := NewSegmenter(BuiltinRules(), KindWord)
	if err != nil {
		t.Fatal(err)
	}
	it := seg.SegmentUTF8([]byte("ab"))
	if got := it.Next(); got != 2 {
		t.Errorf("first Next: got %d, want 2", got)
	}
	for i := 0; i < 3; i++ {
		if got := it.Next(); got != Done {
			t.Errorf("Next after exhaustion: got %d, want Done", got)
		}
	}
}

func TestEmptyBufferIsDone(t *testing.T) {
	for _, kind := range []Kind{KindLine, KindSentence, KindWord} {
		seg, err := NewSegmenter(BuiltinRules(), kind)
		if err != nil {
			t.Fatal(err)
		}
		it := seg.SegmentUTF8(nil)
		if got := it.Next(); got != Done {
			t.Errorf("%s: empty buffer: got %d, want Done", kind, got)
		}
	}
}

func TestOffsetsStrictlyIncreasing(t *testing.T) {
	const text = "Dr. Smith found 1,000 reasons. He wrote them down, one by one, " +
		"in a well-known notebook.\nThen he stopped."
	for _, kind := range []Kind{KindLine, KindSentence, KindWord} {
		offsets := boundaries(t, kind, text)
		if len(offsets) == 0 {
			t.Errorf("%s: no boundaries", kind)
			continue
		}
		prev := int32(0)
		for _, b := range offsets {
			if b <= prev {
				t.Errorf("%s: offset %d after %d is not increasing", kind, b, prev)
			}
			prev = b
		}
		if last := offsets[len(offsets)-1]; last != int32(len(text)) {
			t.Errorf("%s: final boundary %d, want text length %d", kind, last, len(text))
		}
	}
}
