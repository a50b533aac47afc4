package validation

import (
	"strings"

	"todo-backend/internal/config"
	"todo-backend/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance using default limits
func NewValidator() *Validator {
	return &Validator{config: nil}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// TrimString trims leading and trailing whitespace
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTitleLength checks if a trimmed title length is within configured limits
func (v *Validator) IsValidTitleLength(title string) bool {
	length := len(strings.TrimSpace(title))
	return length >= v.TitleMinLength() && length <= v.TitleMaxLength()
}

// IsValidDescriptionLength checks if a description is within the configured limit
func (v *Validator) IsValidDescriptionLength(description string) bool {
	return len(description) <= v.DescriptionMaxLength()
}

// IsValidPriority checks if a priority value is a known level
func (v *Validator) IsValidPriority(priority domain.Priority) bool {
	return priority.IsValid()
}

// IsValidTheme checks if a theme value is a known theme
func (v *Validator) IsValidTheme(theme domain.Theme) bool {
	return theme.IsValid()
}

// IsValidSortOrder checks if a sort order value is a known ordering
func (v *Validator) IsValidSortOrder(sortOrder domain.SortOrder) bool {
	return sortOrder.IsValid()
}

// TitleMinLength returns the configured minimum title length or default
func (v *Validator) TitleMinLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMinLength
	}
	return 1
}

// TitleMaxLength returns the configured maximum title length or default
func (v *Validator) TitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return 200
}

// DescriptionMaxLength returns the configured maximum description length or default
func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 2000
}
