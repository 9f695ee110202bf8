package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk(t *testing.T) {
	r := Ok(42)

	require.True(t, r.IsSuccess())
	require.False(t, r.IsFailure())
	assert.Equal(t, 42, r.Value())
	assert.Panics(t, func() { _ = r.Err() })

	v, err := r.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestFail(t *testing.T) {
	cause := errors.New("Database error")
	r := Fail[string](cause)

	require.True(t, r.IsFailure())
	require.False(t, r.IsSuccess())
	assert.Same(t, cause, r.Err())
	assert.Panics(t, func() { _ = r.Value() })

	v, err := r.Unwrap()
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, v)
}

func TestFail_NilErrorPanics(t *testing.T) {
	assert.Panics(t, func() { Fail[int](nil) })
}

func TestExclusivity(t *testing.T) {
	results := []Result[[]string]{
		Ok[[]string](nil),
		Ok([]string{}),
		Ok([]string{"a"}),
		Fail[[]string](errors.New("boom")),
	}
	for _, r := range results {
		assert.NotEqual(t, r.IsSuccess(), r.IsFailure())
	}
}
