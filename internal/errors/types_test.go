package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeDatabase, "database"},
		{ErrorTypeUnauthenticated, "unauthenticated"},
		{ErrorTypePermission, "permission"},
		{ErrorTypeRateLimited, "rate_limited"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestAppErrorError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := &AppError{Type: ErrorTypeNotFound, Message: "task not found: 42"}
		assert.Equal(t, "not_found: task not found: 42", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("disk full")
		err := &AppError{Type: ErrorTypeDatabase, Message: "write failed", Cause: cause}
		assert.Contains(t, err.Error(), "write failed")
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &AppError{Type: ErrorTypeDatabase, Message: "wrapped", Cause: cause}

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestAppErrorIsType(t *testing.T) {
	err := NewPermissionError("update", "task")

	assert.True(t, err.IsType(ErrorTypePermission))
	assert.False(t, err.IsType(ErrorTypeNotFound))
}

func TestAppErrorContext(t *testing.T) {
	err := &AppError{Type: ErrorTypeValidation, Message: "bad input"}
	err.WithContext("field", "title")

	value, exists := err.GetContext("field")
	assert.True(t, exists)
	assert.Equal(t, "title", value)

	_, exists = err.GetContext("missing")
	assert.False(t, exists)
}
