package domain

// Priority represents the priority level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is the priority assumed when a caller has no stated preference.
const DefaultPriority = PriorityMedium

// IsValid checks if the priority is one of the known levels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a single owned unit of work in the domain model.
// This is a pure domain model without database-specific concerns.
// Timestamps are store-assigned epoch milliseconds.
type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description *string
	Completed   bool
	CompletedAt *int64
	Priority    *Priority
	CreatedAt   int64
	UpdatedAt   int64
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.OwnerID != "" && t.Title != ""
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// TaskPatch carries the mutable task fields for a partial update.
// A nil slot leaves the stored field untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
}

// IsEmpty returns true when the patch would change nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil
}
