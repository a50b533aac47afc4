package services

import (
	"context"
	"sort"

	"todo-backend/internal/repository/sqlite"
)

// Record kinds the dashboard reports over. The set is closed at build time;
// adding a kind means adding a count query here.
const (
	KindTasks       = "tasks"
	KindPreferences = "preferences"
)

// StatusActive and StatusCompleted are the display statuses for recent rows
const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
)

// DefaultRecentLimit caps the recent-activity view when the caller gives no limit
const DefaultRecentLimit = 5

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	repo sqlite.Repository
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(repo sqlite.Repository) ReportingService {
	return &reportingServiceImpl{repo: repo}
}

// GetTaskStats computes total/active/completed counts and the completion rate
// for an owner. An empty collection yields a zero rate, not a division error.
func (s *reportingServiceImpl) GetTaskStats(ctx context.Context, ownerID string) (*TaskStats, error) {
	total, err := s.repo.CountTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	completed, err := s.repo.CountTasksByOwnerAndStatus(ctx, ownerID, true)
	if err != nil {
		return nil, err
	}

	stats := &TaskStats{
		Total:     total,
		Completed: completed,
		Active:    total - completed,
	}
	if total > 0 {
		stats.CompletionRate = float64(completed) / float64(total) * 100
	}

	return stats, nil
}

// DashboardSummary counts records per kind for an owner plus the overall total
func (s *reportingServiceImpl) DashboardSummary(ctx context.Context, ownerID string) (*DashboardSummary, error) {
	taskCount, err := s.repo.CountTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	prefsCount, err := s.repo.CountPreferencesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	perKind := map[string]int{
		KindTasks:       taskCount,
		KindPreferences: prefsCount,
	}

	summary := &DashboardSummary{PerKind: perKind}
	for _, count := range perKind {
		summary.TotalRecords += count
	}

	return summary, nil
}

// DashboardRecent returns the owner's tasks most recently touched first,
// truncated to limit. Tasks without an update timestamp sort last.
func (s *reportingServiceImpl) DashboardRecent(ctx context.Context, ownerID string, limit int) ([]*RecentRow, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	tasks, err := s.repo.ListTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].UpdatedAt > tasks[j].UpdatedAt
	})

	if len(tasks) > limit {
		tasks = tasks[:limit]
	}

	rows := make([]*RecentRow, len(tasks))
	for i, task := range tasks {
		row := &RecentRow{
			ID:          task.ID,
			DisplayName: task.Title,
			Status:      StatusActive,
			UpdatedAt:   task.UpdatedAt,
		}
		if row.DisplayName == "" {
			row.DisplayName = "Untitled"
		}
		if task.Completed {
			row.Status = StatusCompleted
		}
		rows[i] = row
	}

	return rows, nil
}
