package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	t.Run("should report a generic message with no field errors", func(t *testing.T) {
		ve := NewValidationError()
		assert.Equal(t, "validation error", ve.Error())
	})

	t.Run("should report a single field error directly", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("task_name")

		assert.Contains(t, ve.Error(), "task_name")
		assert.Contains(t, ve.Error(), "required")
	})

	t.Run("should join multiple field errors", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("task_name")
		ve.AddInvalidValueError("status", "Done", "unknown status")

		assert.Contains(t, ve.Error(), "multiple validation errors")
		assert.Contains(t, ve.Error(), "task_name")
		assert.Contains(t, ve.Error(), "status")
	})
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())

	ve.AddRequiredError("task_name")
	assert.True(t, ve.HasErrors())
}

func TestValidationError_GetFieldErrors(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("task_name")
	ve.AddInvalidLengthError("task_name", "x", 2, 10)
	ve.AddInvalidValueError("status", "Done", "unknown status")

	nameErrors := ve.GetFieldErrors("task_name")
	require.Len(t, nameErrors, 2)
	assert.Equal(t, ErrorTypeRequired, nameErrors[0].Type)
	assert.Equal(t, ErrorTypeInvalidLength, nameErrors[1].Type)

	assert.Empty(t, ve.GetFieldErrors("description"))
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	t.Run("should use the single message as-is", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("task_name")

		assert.Equal(t, "task_name is required", ve.GetUserFriendlyMessage())
	})

	t.Run("should list multiple messages as bullets", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("task_name")
		ve.AddInvalidValueError("task_id", 0, "must be a positive integer")

		message := ve.GetUserFriendlyMessage()
		assert.Contains(t, message, "Multiple validation errors occurred")
		assert.Contains(t, message, "- task_name is required")
	})
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError()))
	assert.False(t, IsValidationError(assert.AnError))
}
