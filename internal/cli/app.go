package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"todo-backend/internal/api"
	"todo-backend/internal/auth"
	"todo-backend/internal/config"
)

// App wires the cobra command tree to the API layer
type App struct {
	api    api.API
	config *config.Config
	errors *ErrorHandler

	owner string
}

// NewApp creates a new CLI application with the injected API
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
		errors: NewErrorHandler(),
	}
}

// Run parses arguments and executes the selected command
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.newRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "A per-user todo list backend",
		Long: `todo manages a private per-user task list.

Every command acts on behalf of a single owner, supplied with --owner or
the TODO_OWNER environment variable. Mutating commands are rate limited
per owner; a rejected command reports how long to wait before retrying.

EXAMPLES:
  todo add "Write report" --priority high     # Create a task
  todo list --status active                   # List open tasks
  todo done <id>                              # Mark a task completed
  todo clear                                  # Delete all completed tasks
  todo stats                                  # Completion statistics
  todo prefs set --theme dark                 # Update preferences
  todo dashboard                              # Counts and recent activity

CONFIGURATION:
  TODO_OWNER                          Owner identity for all commands
  TODO_DB_DIR                         Database directory (default: ~/.todo)
  TODO_DB_FILENAME                    Database filename (default: todo.db)
  TODO_VALIDATION_TITLE_MAX           Max title length (default: 200)
  TODO_VALIDATION_DESCRIPTION_MAX     Max description length (default: 2000)
  TODO_APP_TIMEOUT                    Command timeout (default: 60s)
  TODO_DEBUG                          Enable debug output`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&a.owner, "owner", os.Getenv("TODO_OWNER"), "owner identity to act as")

	root.AddCommand(
		a.newListCommand(),
		a.newAddCommand(),
		a.newEditCommand(),
		a.newDoneCommand(),
		a.newReopenCommand(),
		a.newRemoveCommand(),
		a.newClearCommand(),
		a.newStatsCommand(),
		a.newPrefsCommand(),
		a.newDashboardCommand(),
	)

	return root
}

// commandContext attaches the owner identity to the command's context so the
// API's resolver can pick it up
func (a *App) commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if a.owner != "" {
		ctx = auth.WithOwner(ctx, a.owner)
	}
	return ctx
}
