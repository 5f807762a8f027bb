package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	err := NotFound("Product not found")
	e := From(err)
	require.NotNil(t, e)
	assert.Equal(t, KindNotFound, e.Kind)
	assert.Equal(t, "Product not found", e.Message)

	// Wrapped errors still resolve to their kind.
	wrapped := fmt.Errorf("update stock: %w", Conflict("duplicate"))
	e = From(wrapped)
	require.NotNil(t, e)
	assert.Equal(t, KindConflict, e.Kind)

	assert.Nil(t, From(errors.New("plain")))
	assert.Nil(t, From(nil))
}

func TestStoreKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Store("Failed to fetch current stock", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to fetch current stock", err.Message)
	assert.Contains(t, err.Error(), "connection refused")
}
