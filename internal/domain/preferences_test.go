package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeIsValid(t *testing.T) {
	assert.True(t, ThemeLight.IsValid())
	assert.True(t, ThemeDark.IsValid())
	assert.True(t, ThemeSystem.IsValid())
	assert.False(t, Theme("neon").IsValid())
}

func TestSortOrderIsValid(t *testing.T) {
	assert.True(t, SortOrderCreated.IsValid())
	assert.True(t, SortOrderUpdated.IsValid())
	assert.True(t, SortOrderPriority.IsValid())
	assert.False(t, SortOrder("alphabetical").IsValid())
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences("owner-1")

	assert.Equal(t, "owner-1", prefs.OwnerID)
	assert.Equal(t, ThemeSystem, prefs.Theme)
	assert.Equal(t, PriorityMedium, prefs.DefaultPriority)
	assert.Equal(t, SortOrderCreated, prefs.SortOrder)
	assert.Empty(t, prefs.ID, "defaults are not persisted")
}

func TestPreferencesPatchIsEmpty(t *testing.T) {
	assert.True(t, PreferencesPatch{}.IsEmpty())

	theme := ThemeDark
	assert.False(t, PreferencesPatch{Theme: &theme}.IsEmpty())
}
