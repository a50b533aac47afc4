package sqlite

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todo-backend/internal/errors"
)

// mockResult implements sql.Result for rows-affected tests
type mockResult struct {
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) { return 0, nil }

func (m mockResult) RowsAffected() (int64, error) { return m.rowsAffected, m.err }

func TestHandleNoRowsError(t *testing.T) {
	t.Run("converts no rows to not found", func(t *testing.T) {
		err := HandleNoRowsError(sql.ErrNoRows, "task", "abc")
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
		assert.Contains(t, err.Error(), "task not found: abc")
	})

	t.Run("passes other errors through", func(t *testing.T) {
		cause := errors.New("connection lost")
		assert.Equal(t, cause, HandleNoRowsError(cause, "task", "abc"))
	})
}

func TestValidateRowsAffected(t *testing.T) {
	t.Run("rows affected", func(t *testing.T) {
		assert.NoError(t, ValidateRowsAffected(mockResult{rowsAffected: 1}, "task", "abc"))
	})

	t.Run("zero rows is not found", func(t *testing.T) {
		err := ValidateRowsAffected(mockResult{rowsAffected: 0}, "task", "abc")
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
	})

	t.Run("rows affected failure is a database error", func(t *testing.T) {
		err := ValidateRowsAffected(mockResult{err: errors.New("driver failure")}, "task", "abc")
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
	})
}

func TestHandleDatabaseError(t *testing.T) {
	cause := errors.New("disk full")
	err := HandleDatabaseError("create task", cause)

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
	assert.ErrorIs(t, err, cause)
}
