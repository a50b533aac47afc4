package services

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-backend/internal/repository/sqlite"
)

type stepClock struct {
	current time.Time
}

func (c *stepClock) Now() time.Time {
	c.current = c.current.Add(time.Millisecond)
	return c.current
}

func setupReportingService(t *testing.T) (ReportingService, sqlite.Repository) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	clock := &stepClock{current: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	repo, err := sqlite.NewWithClock(dbPath, clock)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return NewReportingService(repo), repo
}

func addTask(t *testing.T, repo sqlite.Repository, ownerID, title string, completed bool) *sqlite.Task {
	t.Helper()

	task := &sqlite.Task{OwnerID: ownerID, Title: title}
	require.NoError(t, repo.CreateTask(context.Background(), task))
	if completed {
		updated, err := repo.SetTaskCompletion(context.Background(), task.ID, true)
		require.NoError(t, err)
		return updated
	}
	return task
}

func TestGetTaskStats(t *testing.T) {
	service, repo := setupReportingService(t)
	ctx := context.Background()

	t.Run("no tasks", func(t *testing.T) {
		stats, err := service.GetTaskStats(ctx, "empty-owner")
		require.NoError(t, err)
		assert.Zero(t, stats.Total)
		assert.Zero(t, stats.Active)
		assert.Zero(t, stats.Completed)
		assert.Zero(t, stats.CompletionRate)
	})

	t.Run("mixed statuses", func(t *testing.T) {
		addTask(t, repo, "owner-1", "a", false)
		addTask(t, repo, "owner-1", "b", false)
		addTask(t, repo, "owner-1", "c", true)
		addTask(t, repo, "owner-2", "elsewhere", true)

		stats, err := service.GetTaskStats(ctx, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 2, stats.Active)
		assert.Equal(t, 1, stats.Completed)
		assert.InDelta(t, 100.0/3.0, stats.CompletionRate, 0.0001)
	})

	t.Run("all completed", func(t *testing.T) {
		addTask(t, repo, "owner-3", "done", true)

		stats, err := service.GetTaskStats(ctx, "owner-3")
		require.NoError(t, err)
		assert.Equal(t, 100.0, stats.CompletionRate)
	})
}

func TestDashboardSummary(t *testing.T) {
	service, repo := setupReportingService(t)
	ctx := context.Background()

	t.Run("no records", func(t *testing.T) {
		summary, err := service.DashboardSummary(ctx, "empty-owner")
		require.NoError(t, err)
		assert.Zero(t, summary.TotalRecords)
		assert.Equal(t, map[string]int{KindTasks: 0, KindPreferences: 0}, summary.PerKind)
	})

	t.Run("counts per kind", func(t *testing.T) {
		addTask(t, repo, "owner-1", "a", false)
		addTask(t, repo, "owner-1", "b", true)
		_, err := repo.CreatePreferences(ctx, &sqlite.Preferences{
			OwnerID:         "owner-1",
			Theme:           "system",
			DefaultPriority: "medium",
			SortOrder:       "created",
		})
		require.NoError(t, err)

		summary, err := service.DashboardSummary(ctx, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, 3, summary.TotalRecords)
		assert.Equal(t, 2, summary.PerKind[KindTasks])
		assert.Equal(t, 1, summary.PerKind[KindPreferences])
	})
}

func TestDashboardRecent(t *testing.T) {
	service, repo := setupReportingService(t)
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		rows, err := service.DashboardRecent(ctx, "empty-owner", 5)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("most recently updated first", func(t *testing.T) {
		first := addTask(t, repo, "owner-1", "first", false)
		second := addTask(t, repo, "owner-1", "second", false)

		// Touching the older task makes it the most recent
		bumped, err := repo.UpdateTask(ctx, first.ID, sqlite.TaskPatch{})
		require.NoError(t, err)
		require.Greater(t, bumped.UpdatedAt, second.UpdatedAt)

		rows, err := service.DashboardRecent(ctx, "owner-1", 5)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, first.ID, rows[0].ID)
		assert.Equal(t, second.ID, rows[1].ID)
	})

	t.Run("status reflects completion", func(t *testing.T) {
		done := addTask(t, repo, "owner-2", "done", true)
		active := addTask(t, repo, "owner-2", "active", false)

		rows, err := service.DashboardRecent(ctx, "owner-2", 5)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, active.ID, rows[0].ID)
		assert.Equal(t, StatusActive, rows[0].Status)
		assert.Equal(t, done.ID, rows[1].ID)
		assert.Equal(t, StatusCompleted, rows[1].Status)
	})

	t.Run("blank title falls back to Untitled", func(t *testing.T) {
		task := &sqlite.Task{OwnerID: "owner-5", Title: ""}
		require.NoError(t, repo.CreateTask(ctx, task))

		rows, err := service.DashboardRecent(ctx, "owner-5", 5)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Untitled", rows[0].DisplayName)
	})

	t.Run("limit truncates", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			addTask(t, repo, "owner-3", fmt.Sprintf("task %d", i), false)
		}

		rows, err := service.DashboardRecent(ctx, "owner-3", 3)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("non-positive limit uses the default", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			addTask(t, repo, "owner-4", fmt.Sprintf("task %d", i), false)
		}

		rows, err := service.DashboardRecent(ctx, "owner-4", 0)
		require.NoError(t, err)
		assert.Len(t, rows, DefaultRecentLimit)
	})
}
