package cli

import (
	"github.com/alexanderramin/bittrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"home"},
		Short:   "Show headline figures, due-soon issues and recent activity",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}
}

func runDashboard(cmd *cobra.Command, app *App) error {
	resp, err := app.Dashboard.Get(cmd.Context(), app.dashboardRequest())
	if err != nil {
		return err
	}
	printOut(cmd, formatter.FormatDashboard(resp))
	return nil
}

func newProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the user card with age and lifetime totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Profile.Get(cmd.Context(), app.dashboardRequest())
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatProfile(resp))
			return nil
		},
	}
}

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report dataset integrity problems",
		Long: `Counts every entity in the store and lists references that do not
resolve: categories of the wrong type, more than one default account and
similar. Problems are reported, not fixed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Check.Run(cmd.Context())
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatCheck(resp))
			return nil
		},
	}
}
