package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-backend/internal/domain"
)

func TestValidatePreferencesPatch(t *testing.T) {
	pv := NewPreferencesValidator()

	t.Run("empty patch is valid", func(t *testing.T) {
		assert.NoError(t, pv.ValidatePatch(domain.PreferencesPatch{}))
	})

	t.Run("all valid fields", func(t *testing.T) {
		theme := domain.ThemeDark
		priority := domain.PriorityLow
		sortOrder := domain.SortOrderUpdated
		patch := domain.PreferencesPatch{Theme: &theme, DefaultPriority: &priority, SortOrder: &sortOrder}
		assert.NoError(t, pv.ValidatePatch(patch))
	})

	t.Run("invalid theme", func(t *testing.T) {
		theme := domain.Theme("sepia")
		err := pv.ValidatePatch(domain.PreferencesPatch{Theme: &theme})
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.NotEmpty(t, validationErr.GetFieldErrors("theme"))
	})

	t.Run("multiple invalid fields collect", func(t *testing.T) {
		theme := domain.Theme("sepia")
		priority := domain.Priority("urgent")
		sortOrder := domain.SortOrder("random")
		patch := domain.PreferencesPatch{Theme: &theme, DefaultPriority: &priority, SortOrder: &sortOrder}

		err := pv.ValidatePatch(patch)
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Len(t, validationErr.Errors, 3)
	})
}
