package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-backend/internal/domain"
)

func TestValidateTitle(t *testing.T) {
	tv := NewTaskValidator()

	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"valid title", "Buy groceries", false},
		{"single character", "x", false},
		{"max length", strings.Repeat("a", 200), false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 201), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tv.ValidateTitle(tt.title)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidateDescription(""))
	assert.NoError(t, tv.ValidateDescription(strings.Repeat("d", 2000)))
	assert.Error(t, tv.ValidateDescription(strings.Repeat("d", 2001)))
}

func TestValidatePriority(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidatePriority(domain.PriorityLow))
	assert.NoError(t, tv.ValidatePriority(domain.PriorityMedium))
	assert.NoError(t, tv.ValidatePriority(domain.PriorityHigh))
	assert.Error(t, tv.ValidatePriority(domain.Priority("urgent")))
}

func TestValidateForCreation(t *testing.T) {
	tv := NewTaskValidator()

	t.Run("title only", func(t *testing.T) {
		assert.NoError(t, tv.ValidateForCreation("Write tests", nil, nil))
	})

	t.Run("all fields valid", func(t *testing.T) {
		description := "details"
		priority := domain.PriorityHigh
		assert.NoError(t, tv.ValidateForCreation("Write tests", &description, &priority))
	})

	t.Run("collects errors from every field", func(t *testing.T) {
		description := strings.Repeat("d", 2001)
		priority := domain.Priority("urgent")
		err := tv.ValidateForCreation("", &description, &priority)
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Len(t, validationErr.Errors, 3)
		assert.NotEmpty(t, validationErr.GetFieldErrors("title"))
		assert.NotEmpty(t, validationErr.GetFieldErrors("description"))
		assert.NotEmpty(t, validationErr.GetFieldErrors("priority"))
	})
}

func TestValidateForUpdate(t *testing.T) {
	tv := NewTaskValidator()

	t.Run("empty patch is valid", func(t *testing.T) {
		assert.NoError(t, tv.ValidateForUpdate(domain.TaskPatch{}))
	})

	t.Run("valid fields", func(t *testing.T) {
		title := "Renamed"
		priority := domain.PriorityLow
		assert.NoError(t, tv.ValidateForUpdate(domain.TaskPatch{Title: &title, Priority: &priority}))
	})

	t.Run("invalid title", func(t *testing.T) {
		title := "   "
		err := tv.ValidateForUpdate(domain.TaskPatch{Title: &title})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestGetValidTitle(t *testing.T) {
	tv := NewTaskValidator()

	title, err := tv.GetValidTitle("  Buy groceries  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy groceries", title)

	_, err = tv.GetValidTitle("   ")
	assert.Error(t, err)
}
