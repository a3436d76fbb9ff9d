package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneKeepsCodeOverridesMessage(t *testing.T) {
	err := Clone(ErrNotFound, "booking not found")
	assert.Equal(t, ErrNotFound.Code, err.Code)
	assert.Equal(t, "booking not found", err.Message)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, ErrInternal.Code, "operation failed")

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "operation failed")
	assert.Contains(t, err.Error(), "boom")
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	typed := Clone(ErrValidation, "bad score")
	require.Equal(t, typed, FromError(typed))

	wrapped := FromError(stderrors.New("boom"))
	assert.Equal(t, ErrInternal.Code, wrapped.Code)
}
