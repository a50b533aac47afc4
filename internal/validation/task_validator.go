package validation

import (
	"todo-backend/internal/domain"
)

// TaskValidator provides validation for task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWith creates a new task validator sharing a base validator
func NewTaskValidatorWith(validator *Validator) *TaskValidator {
	return &TaskValidator{validator: validator}
}

// ValidateTitle validates a task title for creation or update.
// The title is trimmed before length checks.
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmedTitle := tv.validator.TrimString(title)

	if !tv.validator.IsNonEmptyString(trimmedTitle) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidTitleLength(trimmedTitle) {
		validationError.AddInvalidLengthError("title", trimmedTitle,
			tv.validator.TitleMinLength(), tv.validator.TitleMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateDescription validates an optional task description
func (tv *TaskValidator) ValidateDescription(description string) error {
	if !tv.validator.IsValidDescriptionLength(description) {
		validationError := NewValidationError()
		validationError.AddInvalidLengthError("description", description,
			0, tv.validator.DescriptionMaxLength())
		return validationError
	}
	return nil
}

// ValidatePriority validates a priority level
func (tv *TaskValidator) ValidatePriority(priority domain.Priority) error {
	if !tv.validator.IsValidPriority(priority) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("priority", string(priority),
			"must be one of low, medium, high")
		return validationError
	}
	return nil
}

// ValidateForCreation validates all fields for a new task
func (tv *TaskValidator) ValidateForCreation(title string, description *string, priority *domain.Priority) error {
	validationError := NewValidationError()

	tv.collect(validationError, tv.ValidateTitle(title))
	if description != nil {
		tv.collect(validationError, tv.ValidateDescription(*description))
	}
	if priority != nil {
		tv.collect(validationError, tv.ValidatePriority(*priority))
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateForUpdate validates the provided fields of a task patch
func (tv *TaskValidator) ValidateForUpdate(patch domain.TaskPatch) error {
	validationError := NewValidationError()

	if patch.Title != nil {
		tv.collect(validationError, tv.ValidateTitle(*patch.Title))
	}
	if patch.Description != nil {
		tv.collect(validationError, tv.ValidateDescription(*patch.Description))
	}
	if patch.Priority != nil {
		tv.collect(validationError, tv.ValidatePriority(*patch.Priority))
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidTitle returns the trimmed title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimString(title), nil
}

func (tv *TaskValidator) collect(into *ValidationError, err error) {
	if err == nil {
		return
	}
	if fieldErrs, ok := err.(*ValidationError); ok {
		into.Errors = append(into.Errors, fieldErrs.Errors...)
	}
}
