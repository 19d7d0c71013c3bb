package textseg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleLifecycle(t *testing.T) {
	seg, err := NewSegmenter(BuiltinRules(), KindWord)
	require.NoError(t, err)

	res := NewIteratorHandle(seg, []byte("Hi there"), EncodingUTF8)
	require.True(t, res.IsOK())
	h := res.Ok()

	var got []int32
	for b := HandleNext(h); b != Done; b = HandleNext(h) {
		got = append(got, b)
	}
	assert.Equal(t, []int32{2, 3, 8}, got)
	assert.Equal(t, Done, HandleNext(h))

	DestroyHandle(h)
}

func TestHandleConstructionFailure(t *testing.T) {
	seg, err := NewSegmenter(BuiltinRules(), KindWord)
	require.NoError(t, err)

	res := NewIteratorHandle(seg, []byte{0x61}, EncodingUTF16)
	require.False(t, res.IsOK())
	assert.ErrorIs(t, res.Err(), ErrInvalidInput)
	assert.Equal(t, ErrorInvalidInput, res.Code())

	res = NewIteratorHandle(nil, []byte("x"), EncodingUTF8)
	require.False(t, res.IsOK())
	assert.Equal(t, ErrorInvalidConfiguration, res.Code())
}

func TestHandleUseAfterDestroyPanics(t *testing.T) {
	seg, err := NewSegmenter(BuiltinRules(), KindWord)
	require.NoError(t, err)

	res := NewIteratorHandle(seg, []byte("x"), EncodingUTF8)
	require.True(t, res.IsOK())
	h := res.Ok()
	DestroyHandle(h)

	assert.Panics(t, func() { HandleNext(h) })
	assert.Panics(t, func() { DestroyHandle(h) })
}

func TestHandlesAreDistinct(t *testing.T) {
	seg, err := NewSegmenter(BuiltinRules(), KindWord)
	require.NoError(t, err)

	a := NewIteratorHandle(seg, []byte("one two"), EncodingUTF8).Ok()
	b := NewIteratorHandle(seg, []byte("one two"), EncodingUTF8).Ok()
	defer DestroyHandle(a)
	defer DestroyHandle(b)

	require.NotEqual(t, a, b)

	// Advancing one handle leaves the other untouched.
	assert.Equal(t, int32(3), HandleNext(a))
	assert.Equal(t, int32(3), HandleNext(b))
	assert.Equal(t, int32(4), HandleNext(a))
	assert.Equal(t, int32(4), HandleNext(b))
}
