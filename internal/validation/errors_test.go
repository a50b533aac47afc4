package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessages(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		ve := NewValidationError()
		assert.False(t, ve.HasErrors())
		assert.Equal(t, "validation error", ve.Error())
	})

	t.Run("single error", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("title")

		assert.True(t, ve.HasErrors())
		assert.Contains(t, ve.Error(), "title")
		assert.Contains(t, ve.GetUserFriendlyMessage(), "title is required")
	})

	t.Run("multiple errors", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("title")
		ve.AddInvalidLengthError("description", "x", 0, 2000)

		assert.Contains(t, ve.Error(), "multiple validation errors")
		assert.Contains(t, ve.GetUserFriendlyMessage(), "Multiple validation errors occurred")
	})
}

func TestAddErrorHelpers(t *testing.T) {
	ve := NewValidationError()
	ve.AddInvalidLengthError("title", "x", 1, 200)
	ve.AddInvalidValueError("priority", "urgent", "must be one of low, medium, high")

	titleErrors := ve.GetFieldErrors("title")
	assert.Len(t, titleErrors, 1)
	assert.Equal(t, ErrorTypeInvalidLength, titleErrors[0].Type)

	priorityErrors := ve.GetFieldErrors("priority")
	assert.Len(t, priorityErrors, 1)
	assert.Equal(t, ErrorTypeInvalidValue, priorityErrors[0].Type)
	assert.Contains(t, priorityErrors[0].Message, "low, medium, high")

	assert.Empty(t, ve.GetFieldErrors("missing"))
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("title")

	assert.True(t, IsValidationError(ve))
	assert.False(t, IsValidationError(errors.New("plain")))
}
