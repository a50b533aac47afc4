package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) newDashboardCommand() *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show record counts and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.commandContext(cmd)

			summary, err := a.api.DashboardSummary(ctx)
			if err != nil {
				return a.errors.Handle("load dashboard", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Total records: %d\n", summary.TotalRecords)
			kinds := make([]string, 0, len(summary.PerKind))
			for kind := range summary.PerKind {
				kinds = append(kinds, kind)
			}
			sort.Strings(kinds)
			for _, kind := range kinds {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d\n", kind, summary.PerKind[kind])
			}

			rows, err := a.api.DashboardRecent(ctx, recent)
			if err != nil {
				return a.errors.Handle("load recent activity", err)
			}

			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recent activity.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Recent:")
			for _, row := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s  %-9s  %s  %s\n",
					row.ID, row.Status, row.DisplayName,
					time.UnixMilli(row.UpdatedAt).Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 0, "number of recent rows to show (default 5)")
	return cmd
}
