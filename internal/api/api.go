package api

import (
	"context"
	"strings"

	"todo-backend/internal/auth"
	"todo-backend/internal/config"
	"todo-backend/internal/domain"
	"todo-backend/internal/errors"
	"todo-backend/internal/logging"
	"todo-backend/internal/ratelimit"
	"todo-backend/internal/repository/sqlite"
	"todo-backend/internal/services"
	"todo-backend/internal/validation"
)

// API is the full externally invoked operation surface. Every call runs the
// same pipeline: resolve identity, check the rate budget (mutations only),
// verify ownership for id-addressed operations, validate input, then execute
// against the repository. Nothing is written before the whole pipeline passes.
type API interface {
	// Task operations
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	ListTasksByStatus(ctx context.Context, completed bool) ([]*domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	CreateTask(ctx context.Context, title string, description *string, priority *domain.Priority) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	ToggleTaskCompletion(ctx context.Context, id string, completed bool) (*domain.Task, error)
	RemoveTask(ctx context.Context, id string) error
	ClearCompletedTasks(ctx context.Context) (int64, error)

	// Reporting operations
	GetTaskStats(ctx context.Context) (*services.TaskStats, error)
	DashboardSummary(ctx context.Context) (*services.DashboardSummary, error)
	DashboardRecent(ctx context.Context, limit int) ([]*services.RecentRow, error)

	// Preferences operations
	GetPreferences(ctx context.Context) (*domain.Preferences, error)
	InitializePreferences(ctx context.Context) (*domain.Preferences, error)
	UpdatePreferences(ctx context.Context, patch domain.PreferencesPatch) (*domain.Preferences, error)
}

type apiImpl struct {
	repo           sqlite.Repository
	resolver       auth.Resolver
	limiter        ratelimit.Limiter
	reporting      services.ReportingService
	mapper         *domain.Mapper
	taskValidator  *validation.TaskValidator
	prefsValidator *validation.PreferencesValidator
}

// New creates a new API instance. The rate limiter's policy table decides
// which operations are throttled; operations without a policy pass through.
func New(repo sqlite.Repository, resolver auth.Resolver, limiter ratelimit.Limiter, cfg *config.Config) API {
	return &apiImpl{
		repo:           repo,
		resolver:       resolver,
		limiter:        limiter,
		reporting:      services.NewReportingService(repo),
		mapper:         domain.NewMapper(),
		taskValidator:  validation.NewTaskValidatorWith(validation.NewValidatorWithConfig(cfg)),
		prefsValidator: validation.NewPreferencesValidator(),
	}
}

// authenticate resolves the caller's owner identity
func (a *apiImpl) authenticate(ctx context.Context) (string, error) {
	return a.resolver.Resolve(ctx)
}

// checkLimit charges one token for a mutating operation
func (a *apiImpl) checkLimit(operation string, ownerID string) error {
	decision := a.limiter.Consume(operation, ownerID)
	if !decision.Admitted {
		logging.Debugf("rate limit rejected %s for owner %s, retry after %s\n", operation, ownerID, decision.RetryAfter)
		return errors.NewRateLimitedError(operation, decision.RetryAfter)
	}
	return nil
}

// authorizeTask fetches a task and verifies the caller owns it. A record
// owned by someone else fails with a permission error, never not-found.
func (a *apiImpl) authorizeTask(ctx context.Context, operation string, id string, ownerID string) (*sqlite.Task, error) {
	dbTask, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if dbTask.OwnerID != ownerID {
		return nil, errors.NewPermissionError(operation, "task").WithContext("identifier", id)
	}
	return dbTask, nil
}

// ListTasks returns all of the caller's tasks, newest first
func (a *apiImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	ownerID, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	dbTasks, err := a.repo.ListTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return a.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// ListTasksByStatus returns the caller's tasks filtered by completion status
func (a *apiImpl) ListTasksByStatus(ctx context.Context, completed bool) ([]*domain.Task, error) {
	ownerID, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	dbTasks, err := a.repo.ListTasksByOwnerAndStatus(ctx, ownerID, completed)
	if err != nil {
		return nil, err
	}
	return a.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// GetTask returns a single task the caller owns
func (a *apiImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	ownerID, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	dbTask, err := a.authorizeTask(ctx, "view", id, ownerID)
	if err != nil {
		return nil, err
	}

	task := a.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// CreateTask creates a new task for the caller. Title and description are
// trimmed before validation and storage.
func (a *apiImpl) CreateTask(ctx context.Context, title string, description *string, priority *domain.Priority) (*domain.Task, error) {
	ownerID, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.checkLimit(config.OperationCreateTask, ownerID); err != nil {
		return nil, err
	}

	if err := a.taskValidator.ValidateForCreation(title, description, priority); err != nil {
		return nil, errors.NewValidationError(err.Error(), err)
	}

	dbTask := &sqlite.Task{
		OwnerID: ownerID,
		Title:   strings.TrimSpace(title),
	}
	if description != nil {
		trimmed := strings.TrimSpace(*description)
		dbTask.Description = &trimmed
	}
	if priority != nil {
		value := string(*priority)
		dbTask.Priority = &value
	}

	if err := a.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	task := a.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// UpdateTask merges the patch into a task the caller owns
func (a *apiImpl) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	ownerID, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.checkLimit(config.OperationUpdateTask, ownerID); err != nil {
		return nil, err
	}

	if _, err := a.authorizeTask(ctx, "update", id, ownerID); err != nil {
		return nil, err
	}

	if err := a.taskValidator.ValidateForUpdate(patch); err != nil {
		return nil, errors.NewValidationError(err.Error(), err)
	}

	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
	}
	if patch.Description != nil {
		trimmed := strings.TrimSpace(*patch.Description)
		patch.Description = &trimmed
	}

	dbTask, err := a.repo.UpdateTask(ctx, id, a.mapper.Task.PatchToDatabase(patch))
	if err != nil {
		return nil, err
	}

	task := a.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// ToggleTaskCompletion sets the completion status of a task the caller owns.
// Shares the update budget, matching how often completion is toggled.
func (a *apiImpl) ToggleTaskCompletion(ctx context.Context, id string, completed bool) (*domain.Task, error) {
	ownerID, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.checkLimit(config.OperationUpdateTask, ownerID); err != nil {
		return nil, err
	}

	if _, err := a.authorizeTask(ctx, "update", id, ownerID); err != nil {
		return nil, err
	}

	dbTask, err := a.repo.SetTaskCompletion(ctx, id, completed)
	if err != nil {
		return nil, err
	}

	task := a.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// RemoveTask deletes a task the caller owns
func (a *apiImpl) RemoveTask(ctx context.Context, id string) error {
	ownerID, err := a.authenticate(ctx)
	if err != nil {
		return err
	}

	if err := a.checkLimit(config.OperationDeleteTask, ownerID); err != nil {
		return err
	}

	if _, err := a.authorizeTask(ctx, "delete", id, ownerID); err != nil {
		return err
	}

	return a.repo.DeleteTask(ctx, id)
}

// ClearCompletedTasks deletes all of the caller's completed tasks and returns
// the number deleted. Shares the delete budget.
func (a *apiImpl) ClearCompletedTasks(ctx context.Context) (int64, error) {
	ownerID, err := a.authenticate(ctx)
	if err != nil {
		return 0, err
	}

	if err := a.checkLimit(config.OperationDeleteTask, ownerID); err != nil {
		return 0, err
	}

	return a.repo.DeleteCompletedTasks(ctx, ownerID)
}

// GetTaskStats returns summary statistics over the caller's tasks
func (a *apiImpl) GetTaskStats(ctx context.Context) (*services.TaskStats, error) {
	ownerID, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	return a.reporting.GetTaskStats(ctx, ownerID)
}

// DashboardSummary returns per-kind record counts scoped to the caller
func (a *apiImpl) DashboardSummary(ctx context.Context) (*services.DashboardSummary, error) {
	ownerID, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	return a.reporting.DashboardSummary(ctx, ownerID)
}

// DashboardRecent returns the caller's most recently touched tasks
func (a *apiImpl) DashboardRecent(ctx context.Context, limit int) ([]*services.RecentRow, error) {
	ownerID, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	return a.reporting.DashboardRecent(ctx, ownerID, limit)
}

// GetPreferences returns the caller's preferences, falling back to defaults
// without materializing a record
func (a *apiImpl) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	ownerID, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	dbPrefs, err := a.repo.GetPreferencesByOwner(ctx, ownerID)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			defaults := domain.DefaultPreferences(ownerID)
			return &defaults, nil
		}
		return nil, err
	}

	prefs := a.mapper.Preferences.FromDatabase(*dbPrefs)
	return &prefs, nil
}

// InitializePreferences creates the caller's preferences with defaults if
// absent. Idempotent: a second call returns the already-persisted record.
func (a *apiImpl) InitializePreferences(ctx context.Context) (*domain.Preferences, error) {
	ownerID, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	defaults := a.mapper.Preferences.ToDatabase(domain.DefaultPreferences(ownerID))
	dbPrefs, err := a.repo.CreatePreferences(ctx, &defaults)
	if err != nil {
		return nil, err
	}

	prefs := a.mapper.Preferences.FromDatabase(*dbPrefs)
	return &prefs, nil
}

// UpdatePreferences merges the patch into the caller's preferences, creating
// the record with merged defaults when it does not exist yet
func (a *apiImpl) UpdatePreferences(ctx context.Context, patch domain.PreferencesPatch) (*domain.Preferences, error) {
	ownerID, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.checkLimit(config.OperationUpdatePreferences, ownerID); err != nil {
		return nil, err
	}

	if err := a.prefsValidator.ValidatePatch(patch); err != nil {
		return nil, errors.NewValidationError(err.Error(), err)
	}

	existing, err := a.repo.GetPreferencesByOwner(ctx, ownerID)
	if err != nil {
		if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, err
		}

		seed := domain.DefaultPreferences(ownerID)
		if patch.Theme != nil {
			seed.Theme = *patch.Theme
		}
		if patch.DefaultPriority != nil {
			seed.DefaultPriority = *patch.DefaultPriority
		}
		if patch.SortOrder != nil {
			seed.SortOrder = *patch.SortOrder
		}

		dbSeed := a.mapper.Preferences.ToDatabase(seed)
		created, err := a.repo.CreatePreferences(ctx, &dbSeed)
		if err != nil {
			return nil, err
		}
		prefs := a.mapper.Preferences.FromDatabase(*created)
		return &prefs, nil
	}

	updated, err := a.repo.UpdatePreferences(ctx, existing.ID, a.mapper.Preferences.PatchToDatabase(patch))
	if err != nil {
		return nil, err
	}

	prefs := a.mapper.Preferences.FromDatabase(*updated)
	return &prefs, nil
}
