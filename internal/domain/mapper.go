package domain

import (
	"todo-backend/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	task := Task{
		ID:          dbTask.ID,
		OwnerID:     dbTask.OwnerID,
		Title:       dbTask.Title,
		Description: dbTask.Description,
		Completed:   dbTask.Completed,
		CompletedAt: dbTask.CompletedAt,
		CreatedAt:   dbTask.CreatedAt,
		UpdatedAt:   dbTask.UpdatedAt,
	}
	if dbTask.Priority != nil {
		priority := Priority(*dbTask.Priority)
		task.Priority = &priority
	}
	return task
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		domainTask := m.FromDatabase(*dbTask)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}

// PatchToDatabase converts a domain TaskPatch to a database TaskPatch.
func (m *TaskMapper) PatchToDatabase(patch TaskPatch) sqlite.TaskPatch {
	dbPatch := sqlite.TaskPatch{
		Title:       patch.Title,
		Description: patch.Description,
	}
	if patch.Priority != nil {
		priority := string(*patch.Priority)
		dbPatch.Priority = &priority
	}
	return dbPatch
}

// PreferencesMapper handles conversion between domain and database Preferences models.
type PreferencesMapper struct{}

// NewPreferencesMapper creates a new PreferencesMapper instance.
func NewPreferencesMapper() *PreferencesMapper {
	return &PreferencesMapper{}
}

// FromDatabase converts a database Preferences to a domain Preferences.
func (m *PreferencesMapper) FromDatabase(dbPrefs sqlite.Preferences) Preferences {
	return Preferences{
		ID:              dbPrefs.ID,
		OwnerID:         dbPrefs.OwnerID,
		Theme:           Theme(dbPrefs.Theme),
		DefaultPriority: Priority(dbPrefs.DefaultPriority),
		SortOrder:       SortOrder(dbPrefs.SortOrder),
		CreatedAt:       dbPrefs.CreatedAt,
		UpdatedAt:       dbPrefs.UpdatedAt,
	}
}

// ToDatabase converts a domain Preferences to a database Preferences.
func (m *PreferencesMapper) ToDatabase(prefs Preferences) sqlite.Preferences {
	return sqlite.Preferences{
		ID:              prefs.ID,
		OwnerID:         prefs.OwnerID,
		Theme:           string(prefs.Theme),
		DefaultPriority: string(prefs.DefaultPriority),
		SortOrder:       string(prefs.SortOrder),
		CreatedAt:       prefs.CreatedAt,
		UpdatedAt:       prefs.UpdatedAt,
	}
}

// PatchToDatabase converts a domain PreferencesPatch to a database PreferencesPatch.
func (m *PreferencesMapper) PatchToDatabase(patch PreferencesPatch) sqlite.PreferencesPatch {
	dbPatch := sqlite.PreferencesPatch{}
	if patch.Theme != nil {
		theme := string(*patch.Theme)
		dbPatch.Theme = &theme
	}
	if patch.DefaultPriority != nil {
		priority := string(*patch.DefaultPriority)
		dbPatch.DefaultPriority = &priority
	}
	if patch.SortOrder != nil {
		sortOrder := string(*patch.SortOrder)
		dbPatch.SortOrder = &sortOrder
	}
	return dbPatch
}

// Mapper bundles the per-record-kind mappers.
type Mapper struct {
	Task        *TaskMapper
	Preferences *PreferencesMapper
}

// NewMapper creates a new Mapper instance.
func NewMapper() *Mapper {
	return &Mapper{
		Task:        NewTaskMapper(),
		Preferences: NewPreferencesMapper(),
	}
}
