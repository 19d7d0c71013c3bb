package textseg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

// utf16le encodes s as little-endian UTF-16 without a BOM.
func utf16le(t *testing.T, s string) []byte {
	t.Helper()
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	buf, err := enc.Bytes([]byte(s))
	require.NoError(t, err)
	return buf
}

func utf16Boundaries(t *testing.T, kind Kind, s string) []int32 {
	t.Helper()
	seg, err := NewSegmenter(BuiltinRules(), kind)
	require.NoError(t, err)
	it, err := seg.SegmentUTF16(utf16le(t, s))
	require.NoError(t, err)
	var offsets []int32
	for b := it.Next(); b != Done; b = it.Next() {
		offsets = append(offsets, b)
	}
	return offsets
}

func TestUTF16Offsets(t *testing.T) {
	// Offsets are 16-bit units, so BMP text matches its rune count.
	assert.Equal(t, []int32{5, 6, 7, 12, 13}, utf16Boundaries(t, KindWord, "Hello, world!"))
	assert.Equal(t, []int32{6, 11}, utf16Boundaries(t, KindLine, "hello world"))
	assert.Equal(t, []int32{7, 13}, utf16Boundaries(t, KindSentence, "Hello. World."))
}

func TestUTF16SurrogatePairs(t *testing.T) {
	// U+1F600 occupies two units; the offsets around it show it.
	assert.Equal(t, []int32{1, 3, 4}, utf16Boundaries(t, KindWord, "a\U0001F600b"))
	assert.Equal(t, []int32{1, 3, 4}, utf16Boundaries(t, KindLine, "a\U0001F600b"))
}

func TestUTF16UnpairedSurrogate(t *testing.T) {
	seg, err := NewSegmenter(BuiltinRules(), KindWord)
	require.NoError(t, err)

	// A lone high surrogate between letters decodes as U+FFFD and
	// stays a single unit wide.
	buf := []byte{0x61, 0x00, 0x00, 0xD8, 0x62, 0x00}
	it, err := seg.SegmentUTF16(buf)
	require.NoError(t, err)
	var got []int32
	for b := it.Next(); b != Done; b = it.Next() {
		got = append(got, b)
	}
	assert.Equal(t, []int32{1, 2, 3}, got)
}

func TestUTF8InvalidBytes(t *testing.T) {
	seg, err := NewSegmenter(BuiltinRules(), KindWord)
	require.NoError(t, err)

	// A stray continuation byte decodes as U+FFFD, one byte wide, and
	// iteration still covers the whole buffer.
	it := seg.SegmentUTF8([]byte{'a', 0x80, 'b'})
	var got []int32
	for b := it.Next(); b != Done; b = it.Next() {
		got = append(got, b)
	}
	assert.Equal(t, []int32{1, 2, 3}, got)
}

func TestSourceDecoding(t *testing.T) {
	r, size := latin1Source([]byte{0xE9}).decode(0)
	assert.Equal(t, 'é', r)
	assert.Equal(t, 1, size)

	src := utf16Source(utf16le(t, "\U0001F600"))
	assert.Equal(t, 2, src.len())
	r, size = src.decode(0)
	assert.Equal(t, '\U0001F600', r)
	assert.Equal(t, 2, size)
}
