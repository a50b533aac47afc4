package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"todo-backend/internal/domain"
)

func (a *App) newListCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your tasks, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.commandContext(cmd)

			var tasks []*domain.Task
			var err error
			switch status {
			case "all", "":
				tasks, err = a.api.ListTasks(ctx)
			case "active":
				tasks, err = a.api.ListTasksByStatus(ctx, false)
			case "completed":
				tasks, err = a.api.ListTasksByStatus(ctx, true)
			default:
				return fmt.Errorf("invalid status %q: must be all, active, or completed", status)
			}
			if err != nil {
				return a.errors.Handle("list tasks", err)
			}

			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}

			for _, task := range tasks {
				printTask(cmd, task)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "all", "filter by status: all, active, completed")
	return cmd
}

func (a *App) newAddCommand() *cobra.Command {
	var description string
	var priority string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.commandContext(cmd)

			var descPtr *string
			if cmd.Flags().Changed("description") {
				descPtr = &description
			}
			var priorityPtr *domain.Priority
			if cmd.Flags().Changed("priority") {
				p := domain.Priority(priority)
				priorityPtr = &p
			}

			task, err := a.api.CreateTask(ctx, args[0], descPtr, priorityPtr)
			if err != nil {
				return a.errors.Handle("create task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s: %s\n", task.ID, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "optional description")
	cmd.Flags().StringVar(&priority, "priority", "", "priority: low, medium, high")
	return cmd
}

func (a *App) newEditCommand() *cobra.Command {
	var title string
	var description string
	var priority string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a task's title, description, or priority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.commandContext(cmd)

			patch := domain.TaskPatch{}
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("priority") {
				p := domain.Priority(priority)
				patch.Priority = &p
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to update: provide --title, --description, or --priority")
			}

			task, err := a.api.UpdateTask(ctx, args[0], patch)
			if err != nil {
				return a.errors.Handle("update task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s: %s\n", task.ID, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&priority, "priority", "", "new priority: low, medium, high")
	return cmd
}

func (a *App) newDoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.api.ToggleTaskCompletion(a.commandContext(cmd), args[0], true)
			if err != nil {
				return a.errors.Handle("complete task", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed: %s\n", task.Title)
			return nil
		},
	}
}

func (a *App) newReopenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <id>",
		Short: "Mark a completed task as active again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.api.ToggleTaskCompletion(a.commandContext(cmd), args[0], false)
			if err != nil {
				return a.errors.Handle("reopen task", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reopened: %s\n", task.Title)
			return nil
		},
	}
}

func (a *App) newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.api.RemoveTask(a.commandContext(cmd), args[0]); err != nil {
				return a.errors.Handle("delete task", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task deleted.")
			return nil
		},
	}
}

func (a *App) newClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all completed tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := a.api.ClearCompletedTasks(a.commandContext(cmd))
			if err != nil {
				return a.errors.Handle("clear completed tasks", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d completed task(s).\n", count)
			return nil
		},
	}
}

func (a *App) newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completion statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.api.GetTaskStats(a.commandContext(cmd))
			if err != nil {
				return a.errors.Handle("get statistics", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d  Active: %d  Completed: %d  Completion rate: %.1f%%\n",
				stats.Total, stats.Active, stats.Completed, stats.CompletionRate)
			return nil
		},
	}
}

func printTask(cmd *cobra.Command, task *domain.Task) {
	marker := "[ ]"
	if task.Completed {
		marker = "[x]"
	}
	line := fmt.Sprintf("%s %s  %s", marker, task.ID, task.Title)
	if task.Priority != nil {
		line += fmt.Sprintf(" (%s)", *task.Priority)
	}
	line += "  " + time.UnixMilli(task.CreatedAt).Format("2006-01-02 15:04")
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
