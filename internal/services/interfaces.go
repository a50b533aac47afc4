package services

import (
	"context"
)

// TaskStats represents summary statistics over an owner's tasks
type TaskStats struct {
	Total          int     `json:"total"`
	Active         int     `json:"active"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"` // Percentage, unrounded
}

// DashboardSummary represents per-kind record counts for an owner
type DashboardSummary struct {
	TotalRecords int            `json:"total_records"`
	PerKind      map[string]int `json:"per_kind"`
}

// RecentRow is the projection of a task for the recent-activity view
type RecentRow struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Status      string `json:"status"`
	UpdatedAt   int64  `json:"updated_at"`
}

// ReportingService derives counts and summaries from stored records.
// It is a read-only consumer of the repository.
type ReportingService interface {
	GetTaskStats(ctx context.Context, ownerID string) (*TaskStats, error)
	DashboardSummary(ctx context.Context, ownerID string) (*DashboardSummary, error)
	DashboardRecent(ctx context.Context, ownerID string, limit int) ([]*RecentRow, error)
}
