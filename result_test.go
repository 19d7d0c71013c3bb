package textseg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultVariants(t *testing.T) {
	ok := Ok(7)
	require.True(t, ok.IsOK())
	assert.Equal(t, 7, ok.Ok())
	assert.Equal(t, ErrorNone, ok.Code())

	fail := Fail[int](ErrInvalidInput)
	require.False(t, fail.IsOK())
	assert.ErrorIs(t, fail.Err(), ErrInvalidInput)
	assert.Equal(t, ErrorInvalidInput, fail.Code())
}

func TestResultWrongVariantPanics(t *testing.T) {
	assert.Panics(t, func() { Ok(7).Err() })
	assert.Panics(t, func() { Fail[int](ErrInvalidInput).Ok() })
	assert.Panics(t, func() { Fail[int](nil) })
}
