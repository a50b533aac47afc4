package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"todo-backend/internal/errors"
	"todo-backend/internal/repository/sqlite/migrations"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id string) (*Task, error)
	ListTasksByOwner(ctx context.Context, ownerID string) ([]*Task, error)
	ListTasksByOwnerAndStatus(ctx context.Context, ownerID string, completed bool) ([]*Task, error)
	CountTasksByOwner(ctx context.Context, ownerID string) (int, error)
	CountTasksByOwnerAndStatus(ctx context.Context, ownerID string, completed bool) (int, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (*Task, error)
	SetTaskCompletion(ctx context.Context, id string, completed bool) (*Task, error)
	DeleteTask(ctx context.Context, id string) error
	DeleteCompletedTasks(ctx context.Context, ownerID string) (int64, error)

	// Preferences operations
	CreatePreferences(ctx context.Context, prefs *Preferences) (*Preferences, error)
	GetPreferencesByOwner(ctx context.Context, ownerID string) (*Preferences, error)
	UpdatePreferences(ctx context.Context, id string, patch PreferencesPatch) (*Preferences, error)
	CountPreferencesByOwner(ctx context.Context, ownerID string) (int, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db    *sql.DB
	clock Clock
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithClock(dbPath, systemClock{})
}

// NewWithClock creates a repository whose timestamps come from the given clock
func NewWithClock(dbPath string, clock Clock) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, clock: clock}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const taskColumns = "id, owner_id, title, description, is_completed, completed_at, priority, created_at, updated_at"

// CreateTask inserts a new task, assigning its ID and timestamps
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	now := nowMillis(r.clock)
	task.ID = uuid.NewString()
	task.CreatedAt = now
	task.UpdatedAt = now
	task.Completed = false
	task.CompletedAt = nil

	query := `
	INSERT INTO tasks (id, owner_id, title, description, is_completed, completed_at, priority, created_at, updated_at)
	VALUES (?, ?, ?, ?, 0, NULL, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, task.ID, task.OwnerID, task.Title, task.Description, task.Priority, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return HandleDatabaseError("create task", err)
	}
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (*Task, error) {
	query := `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", id, id)
}

// ListTasksByOwner retrieves all tasks for an owner, newest first.
// Ties on created_at break by id descending so the order is deterministic.
func (r *SQLiteRepository) ListTasksByOwner(ctx context.Context, ownerID string) ([]*Task, error) {
	query := `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE owner_id = ?
	ORDER BY created_at DESC, id DESC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", ownerID)
}

// ListTasksByOwnerAndStatus retrieves an owner's tasks filtered by completion status
func (r *SQLiteRepository) ListTasksByOwnerAndStatus(ctx context.Context, ownerID string, completed bool) ([]*Task, error) {
	query := `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE owner_id = ? AND is_completed = ?
	ORDER BY created_at DESC, id DESC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", ownerID, completed)
}

// CountTasksByOwner counts all tasks for an owner
func (r *SQLiteRepository) CountTasksByOwner(ctx context.Context, ownerID string) (int, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE owner_id = ?`
	return QueryCount(ctx, r.db, query, "tasks", ownerID)
}

// CountTasksByOwnerAndStatus counts an owner's tasks with the given completion status
func (r *SQLiteRepository) CountTasksByOwnerAndStatus(ctx context.Context, ownerID string, completed bool) (int, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE owner_id = ? AND is_completed = ?`
	return QueryCount(ctx, r.db, query, "tasks", ownerID, completed)
}

// UpdateTask merges the provided patch fields into a task and bumps updated_at.
// Owner and created_at are never touched.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*Task, error) {
	sets := []string{"updated_at = ?"}
	args := []interface{}{nowMillis(r.clock)}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *patch.Priority)
	}
	args = append(args, id)

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if err := ExecuteWithRowsAffected(ctx, r.db, query, "task", id, args...); err != nil {
		return nil, err
	}

	return r.GetTask(ctx, id)
}

// SetTaskCompletion sets the completion status, keeping completed_at in sync:
// set to now when completing, cleared when reopening.
func (r *SQLiteRepository) SetTaskCompletion(ctx context.Context, id string, completed bool) (*Task, error) {
	now := nowMillis(r.clock)

	var query string
	var args []interface{}
	if completed {
		query = `UPDATE tasks SET is_completed = 1, completed_at = ?, updated_at = ? WHERE id = ?`
		args = []interface{}{now, now, id}
	} else {
		query = `UPDATE tasks SET is_completed = 0, completed_at = NULL, updated_at = ? WHERE id = ?`
		args = []interface{}{now, id}
	}

	if err := ExecuteWithRowsAffected(ctx, r.db, query, "task", id, args...); err != nil {
		return nil, err
	}

	return r.GetTask(ctx, id)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", id, id)
}

// DeleteCompletedTasks deletes all completed tasks for an owner and returns
// the number deleted. The count comes from the same DELETE statement, so no
// record is counted but not deleted or vice versa.
func (r *SQLiteRepository) DeleteCompletedTasks(ctx context.Context, ownerID string) (int64, error) {
	query := `DELETE FROM tasks WHERE owner_id = ? AND is_completed = 1`
	return ExecuteReturningCount(ctx, r.db, query, ownerID)
}

const preferencesColumns = "id, owner_id, theme, default_priority, sort_order, created_at, updated_at"

// CreatePreferences inserts the preferences row for an owner if absent and
// returns the persisted row. The owner_id UNIQUE constraint plus ON CONFLICT
// DO NOTHING make this idempotent: a second call returns the existing record
// without materializing a duplicate.
func (r *SQLiteRepository) CreatePreferences(ctx context.Context, prefs *Preferences) (*Preferences, error) {
	now := nowMillis(r.clock)

	query := `
	INSERT INTO preferences (id, owner_id, theme, default_priority, sort_order, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(owner_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, uuid.NewString(), prefs.OwnerID, prefs.Theme, prefs.DefaultPriority, prefs.SortOrder, now, now)
	if err != nil {
		return nil, HandleDatabaseError("create preferences", err)
	}

	return r.GetPreferencesByOwner(ctx, prefs.OwnerID)
}

// GetPreferencesByOwner retrieves the preferences row for an owner
func (r *SQLiteRepository) GetPreferencesByOwner(ctx context.Context, ownerID string) (*Preferences, error) {
	query := `
	SELECT ` + preferencesColumns + `
	FROM preferences
	WHERE owner_id = ?`

	return QuerySingle(ctx, r.db, query, ScanPreferences, "preferences", ownerID, ownerID)
}

// UpdatePreferences merges the provided patch fields and bumps updated_at
func (r *SQLiteRepository) UpdatePreferences(ctx context.Context, id string, patch PreferencesPatch) (*Preferences, error) {
	sets := []string{"updated_at = ?"}
	args := []interface{}{nowMillis(r.clock)}

	if patch.Theme != nil {
		sets = append(sets, "theme = ?")
		args = append(args, *patch.Theme)
	}
	if patch.DefaultPriority != nil {
		sets = append(sets, "default_priority = ?")
		args = append(args, *patch.DefaultPriority)
	}
	if patch.SortOrder != nil {
		sets = append(sets, "sort_order = ?")
		args = append(args, *patch.SortOrder)
	}
	args = append(args, id)

	query := "UPDATE preferences SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if err := ExecuteWithRowsAffected(ctx, r.db, query, "preferences", id, args...); err != nil {
		return nil, err
	}

	query = `SELECT ` + preferencesColumns + ` FROM preferences WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanPreferences, "preferences", id, id)
}

// CountPreferencesByOwner counts the preferences rows for an owner (0 or 1)
func (r *SQLiteRepository) CountPreferencesByOwner(ctx context.Context, ownerID string) (int, error) {
	query := `SELECT COUNT(*) FROM preferences WHERE owner_id = ?`
	return QueryCount(ctx, r.db, query, "preferences", ownerID)
}
