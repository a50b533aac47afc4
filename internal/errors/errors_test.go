package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "abc-123")

	assert.True(t, err.IsType(ErrorTypeNotFound))
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Contains(t, err.Error(), "task")
	assert.Contains(t, err.Error(), "abc-123")
}

func TestNewUnauthenticatedError(t *testing.T) {
	err := NewUnauthenticatedError()

	assert.True(t, err.IsType(ErrorTypeUnauthenticated))
	assert.Equal(t, "UNAUTHENTICATED", err.Code)
}

func TestNewPermissionError(t *testing.T) {
	err := NewPermissionError("delete", "task")

	assert.True(t, err.IsType(ErrorTypePermission))
	assert.Contains(t, err.Error(), "delete")
	assert.Contains(t, err.Error(), "task")
}

func TestNewRateLimitedError(t *testing.T) {
	err := NewRateLimitedError("createTask", 3*time.Second)

	assert.True(t, err.IsType(ErrorTypeRateLimited))
	assert.Equal(t, "RATE_LIMITED", err.Code)
	assert.Contains(t, err.Error(), "createTask")

	retryAfter, ok := RetryAfter(err)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, retryAfter)
}

func TestRetryAfterOnOtherErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found error", NewNotFoundError("task", "1")},
		{"plain error", errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := RetryAfter(tt.err)
			assert.False(t, ok)
		})
	}
}

func TestAsAppError(t *testing.T) {
	t.Run("direct AppError", func(t *testing.T) {
		original := NewValidationError("bad title", nil)
		appErr, ok := AsAppError(original)
		require.True(t, ok)
		assert.Equal(t, original, appErr)
	})

	t.Run("wrapped AppError", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", NewNotFoundError("task", "1"))
		appErr, ok := AsAppError(wrapped)
		require.True(t, ok)
		assert.True(t, appErr.IsType(ErrorTypeNotFound))
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := AsAppError(errors.New("plain"))
		assert.False(t, ok)
	})
}

func TestIsErrorType(t *testing.T) {
	err := NewRateLimitedError("updateTask", time.Second)

	assert.True(t, IsErrorType(err, ErrorTypeRateLimited))
	assert.False(t, IsErrorType(err, ErrorTypeValidation))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeRateLimited))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"validation passes message through", NewValidationError("title is required", nil), "title is required"},
		{"not found passes message through", NewNotFoundError("task", "9"), "not found"},
		{"unauthenticated is generic", NewUnauthenticatedError(), "signed in"},
		{"permission is generic", NewPermissionError("update", "task"), "do not have access"},
		{"database hides detail", NewDatabaseError("insert", errors.New("disk full")), "database error"},
		{"plain error unchanged", errors.New("plain failure"), "plain failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, GetUserMessage(tt.err), tt.contains)
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "RATE_LIMITED", GetErrorCode(NewRateLimitedError("createTask", time.Second)))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(errors.New("plain")))
}
