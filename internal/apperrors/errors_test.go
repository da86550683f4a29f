package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	assert.Equal(t, "product not found: p1", NewNotFoundError("product", "p1").Error())
	assert.Equal(t, "product not found", NewNotFoundError("product", "").Error())
}

func TestValidationError(t *testing.T) {
	single := NewValidationError("name", "is required")
	assert.Equal(t, "name: is required", single.Error())
	assert.Len(t, single.Issues, 1)

	multi := NewValidationErrors([]FieldIssue{
		{Field: "name", Message: "is required"},
		{Field: "price", Message: "must be at least 0"},
	})
	require.NotNil(t, multi)
	assert.Equal(t, "name", multi.Field)
	assert.Equal(t, "name: is required; price: must be at least 0", multi.Error())

	assert.Nil(t, NewValidationErrors(nil))
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create category: %w", NewConflictError("category", "name already exists"))

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "category conflict: name already exists", conflict.Error())
}

func TestTimeoutAndUnavailable(t *testing.T) {
	assert.Equal(t, "operation timed out: list products", NewTimeoutError("list products").Error())
	assert.Equal(t, "operation timed out", NewTimeoutError("").Error())
	assert.Equal(t, "service unavailable: store ping failed", NewServiceUnavailableError("store ping failed").Error())
}
