package textseg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSegmenterValidation(t *testing.T) {
	_, err := NewSegmenter(nil, KindWord)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewSegmenter(BuiltinRules(), Kind(42))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	// A table carrying only word rules cannot build a line segmenter.
	wordOnly, err := NewRuleTable(RuleData{Word: wordBreakCodePoints})
	require.NoError(t, err)
	_, err = NewSegmenter(wordOnly, KindLine)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = NewSegmenter(wordOnly, KindWord)
	assert.NoError(t, err)
}

func TestSegmentUTF16OddLength(t *testing.T) {
	seg, err := NewSegmenter(BuiltinRules(), KindWord)
	require.NoError(t, err)

	_, err = seg.SegmentUTF16([]byte{0x61, 0x00, 0x62})
	assert.ErrorIs(t, err, ErrInvalidInput)

	it, err := seg.SegmentUTF16([]byte{0x61, 0x00, 0x62, 0x00})
	require.NoError(t, err)
	assert.Equal(t, int32(2), it.Next())
	assert.Equal(t, Done, it.Next())
}

func TestSegmentDispatch(t *testing.T) {
	seg, err := NewSegmenter(BuiltinRules(), KindWord)
	require.NoError(t, err)

	_, err = seg.Segment([]byte("ab"), Encoding(99))
	assert.ErrorIs(t, err, ErrInvalidInput)

	for _, enc := range []Encoding{EncodingLatin1, EncodingUTF8} {
		it, err := seg.Segment([]byte("ab"), enc)
		require.NoError(t, err, enc)
		assert.Equal(t, int32(2), it.Next(), enc)
	}
}

func TestSegmentLatin1HighBytes(t *testing.T) {
	seg, err := NewSegmenter(BuiltinRules(), KindWord)
	require.NoError(t, err)

	// "café au lait" in Latin-1: é is a single 0xE9 byte.
	buf := []byte{'c', 'a', 'f', 0xE9, ' ', 'a', 'u', ' ', 'l', 'a', 'i', 't'}
	it := seg.SegmentLatin1(buf)
	var got []int32
	for b := it.Next(); b != Done; b = it.Next() {
		got = append(got, b)
	}
	assert.Equal(t, []int32{4, 5, 7, 8, 12}, got)
}

// A Segmenter is shared; each iterator is independent.
func TestSegmenterConcurrentUse(t *testing.T) {
	seg, err := NewSegmenter(BuiltinRules(), KindWord)
	require.NoError(t, err)

	const text = "The quick brown fox jumps over the lazy dog."
	results := make(chan []int32, 2)
	for i := 0; i < 2; i++ {
		go func() {
			it := seg.SegmentUTF8([]byte(text))
			var offsets []int32
			for b := it.Next(); b != Done; b = it.Next() {
				offsets = append(offsets, b)
			}
			results <- offsets
		}()
	}
	first := <-results
	second := <-results
	assert.Equal(t, first, second)
	require.NotEmpty(t, first)
	assert.Equal(t, int32(len(text)), first[len(first)-1])
}

func TestErrorCodeMapping(t *testing.T) {
	assert.Equal(t, ErrorNone, CodeOf(nil))
	assert.Equal(t, ErrorInvalidConfiguration, CodeOf(ErrInvalidConfiguration))
	assert.Equal(t, ErrorInvalidInput, CodeOf(ErrInvalidInput))
	assert.Equal(t, ErrorAllocationFailure, CodeOf(ErrAllocationFailure))
	assert.Equal(t, ErrorMalformedTable, CodeOf(ErrMalformedTable))
	assert.Equal(t, ErrorUnknown, CodeOf(errors.New("unrelated")))

	_, err := NewSegmenter(nil, KindWord)
	assert.Equal(t, ErrorInvalidConfiguration, CodeOf(err))
}
