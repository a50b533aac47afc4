package errors

import (
	"errors"
	"fmt"
	"time"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    "DATABASE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewUnauthenticatedError creates a new unauthenticated error
func NewUnauthenticatedError() *AppError {
	return &AppError{
		Type:    ErrorTypeUnauthenticated,
		Message: "not authenticated",
		Code:    "UNAUTHENTICATED",
		Context: make(map[string]interface{}),
	}
}

// NewPermissionError creates a new permission error for an ownership mismatch
func NewPermissionError(operation string, resource string) *AppError {
	return &AppError{
		Type:    ErrorTypePermission,
		Message: fmt.Sprintf("permission denied for %s on %s", operation, resource),
		Code:    "PERMISSION_DENIED",
		Context: map[string]interface{}{
			"operation": operation,
			"resource":  resource,
		},
	}
}

// NewRateLimitedError creates a new rate limited error carrying the minimum
// wait before the operation could be admitted again
func NewRateLimitedError(operation string, retryAfter time.Duration) *AppError {
	return &AppError{
		Type:    ErrorTypeRateLimited,
		Message: fmt.Sprintf("rate limit exceeded for %s, retry in %s", operation, retryAfter),
		Code:    "RATE_LIMITED",
		Context: map[string]interface{}{
			"operation":   operation,
			"retry_after": retryAfter,
		},
	}
}

// RetryAfter extracts the retry-after hint from a rate limited error
func RetryAfter(err error) (time.Duration, bool) {
	appErr, ok := AsAppError(err)
	if !ok || !appErr.IsType(ErrorTypeRateLimited) {
		return 0, false
	}
	value, exists := appErr.GetContext("retry_after")
	if !exists {
		return 0, false
	}
	retryAfter, ok := value.(time.Duration)
	return retryAfter, ok
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation:
			return appErr.Message
		case ErrorTypeNotFound:
			return appErr.Message
		case ErrorTypeUnauthenticated:
			return "You must be signed in to perform this action."
		case ErrorTypePermission:
			return "You do not have access to this record."
		case ErrorTypeRateLimited:
			return appErr.Message
		case ErrorTypeDatabase:
			return "A database error occurred. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}
