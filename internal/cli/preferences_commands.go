package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"todo-backend/internal/domain"
)

func (a *App) newPrefsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change your preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := a.api.GetPreferences(a.commandContext(cmd))
			if err != nil {
				return a.errors.Handle("get preferences", err)
			}
			printPreferences(cmd, prefs)
			return nil
		},
	}

	cmd.AddCommand(a.newPrefsInitCommand(), a.newPrefsSetCommand())
	return cmd
}

func (a *App) newPrefsInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Persist default preferences (no-op if already present)",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := a.api.InitializePreferences(a.commandContext(cmd))
			if err != nil {
				return a.errors.Handle("initialize preferences", err)
			}
			printPreferences(cmd, prefs)
			return nil
		},
	}
}

func (a *App) newPrefsSetCommand() *cobra.Command {
	var theme string
	var priority string
	var sortOrder string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update one or more preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := domain.PreferencesPatch{}
			if cmd.Flags().Changed("theme") {
				t := domain.Theme(theme)
				patch.Theme = &t
			}
			if cmd.Flags().Changed("priority") {
				p := domain.Priority(priority)
				patch.DefaultPriority = &p
			}
			if cmd.Flags().Changed("sort") {
				s := domain.SortOrder(sortOrder)
				patch.SortOrder = &s
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to update: provide --theme, --priority, or --sort")
			}

			prefs, err := a.api.UpdatePreferences(a.commandContext(cmd), patch)
			if err != nil {
				return a.errors.Handle("update preferences", err)
			}
			printPreferences(cmd, prefs)
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "theme: light, dark, system")
	cmd.Flags().StringVar(&priority, "priority", "", "default priority: low, medium, high")
	cmd.Flags().StringVar(&sortOrder, "sort", "", "sort order: created, updated, priority")
	return cmd
}

func printPreferences(cmd *cobra.Command, prefs *domain.Preferences) {
	fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s  Default priority: %s  Sort order: %s\n",
		prefs.Theme, prefs.DefaultPriority, prefs.SortOrder)
}
