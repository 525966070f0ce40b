package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestSentinelWrapping(t *testing.T) {
	err := NewInvalidRequestError("offset %d is negative", -3)

	assert.True(t, IsInvalidRequestError(err))
	assert.False(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), "offset -3 is negative")
}

func TestWrapInvalidRequest(t *testing.T) {
	cause := New("missing xpath")
	err := WrapInvalidRequest(cause, "autocomplete")

	assert.True(t, Is(err, ErrInvalidRequest))
	assert.Contains(t, err.Error(), "autocomplete")
	assert.Contains(t, err.Error(), "missing xpath")
}

func TestIsNilSafe(t *testing.T) {
	assert.False(t, IsInvalidRequestError(nil))
	assert.False(t, IsNotFoundError(nil))
}
