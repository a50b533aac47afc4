package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var description sql.NullString
	var completedAt sql.NullInt64
	var priority sql.NullString

	err := scanner.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&description,
		&task.Completed,
		&completedAt,
		&priority,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		task.Description = &description.String
	}
	if completedAt.Valid {
		task.CompletedAt = &completedAt.Int64
	}
	if priority.Valid {
		task.Priority = &priority.String
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanPreferences scans a single preferences row
func ScanPreferences(scanner Scanner) (*Preferences, error) {
	prefs := &Preferences{}
	err := scanner.Scan(
		&prefs.ID,
		&prefs.OwnerID,
		&prefs.Theme,
		&prefs.DefaultPriority,
		&prefs.SortOrder,
		&prefs.CreatedAt,
		&prefs.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return prefs, nil
}
