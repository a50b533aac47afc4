package sqlite

// Task represents a task row. Timestamps are epoch milliseconds assigned by
// the repository; CompletedAt is set iff Completed is true.
type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description *string
	Completed   bool
	CompletedAt *int64
	Priority    *string
	CreatedAt   int64
	UpdatedAt   int64
}

// Preferences represents the singleton per-owner preferences row.
// OwnerID carries a UNIQUE constraint.
type Preferences struct {
	ID              string
	OwnerID         string
	Theme           string
	DefaultPriority string
	SortOrder       string
	CreatedAt       int64
	UpdatedAt       int64
}

// TaskPatch carries the mutable task columns for a partial update.
// Nil slots are left untouched by UpdateTask.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *string
}

// PreferencesPatch carries the mutable preference columns for a partial update.
type PreferencesPatch struct {
	Theme           *string
	DefaultPriority *string
	SortOrder       *string
}
