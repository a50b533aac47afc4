package validation

import (
	"todo-backend/internal/domain"
)

// PreferencesValidator provides validation for preference updates
type PreferencesValidator struct {
	validator *Validator
}

// NewPreferencesValidator creates a new preferences validator
func NewPreferencesValidator() *PreferencesValidator {
	return &PreferencesValidator{
		validator: NewValidator(),
	}
}

// ValidatePatch validates the provided fields of a preferences patch
func (pv *PreferencesValidator) ValidatePatch(patch domain.PreferencesPatch) error {
	validationError := NewValidationError()

	if patch.Theme != nil && !pv.validator.IsValidTheme(*patch.Theme) {
		validationError.AddInvalidValueError("theme", string(*patch.Theme),
			"must be one of light, dark, system")
	}
	if patch.DefaultPriority != nil && !pv.validator.IsValidPriority(*patch.DefaultPriority) {
		validationError.AddInvalidValueError("defaultPriority", string(*patch.DefaultPriority),
			"must be one of low, medium, high")
	}
	if patch.SortOrder != nil && !pv.validator.IsValidSortOrder(*patch.SortOrder) {
		validationError.AddInvalidValueError("sortOrder", string(*patch.SortOrder),
			"must be one of created, updated, priority")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
