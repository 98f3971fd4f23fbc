package cli

import (
	"github.com/alexanderramin/bittrack/internal/cli/formatter"
	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects"},
		Short:   "List and inspect projects",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectStageCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var req contract.ProjectListRequest

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects with progress and payments",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Projects.List(cmd.Context(), req)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatProjectList(resp))
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Query, "search", "s", "", "Match title, description or tag (case-insensitive)")
	cmd.Flags().StringVar(&req.Status, "status", "all", "Filter by status: all, active, completed, archived")

	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "show ID",
		Aliases: []string{"inspect"},
		Short:   "Show milestones, issues, time and payments for a project",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Projects.Show(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatProjectDetail(resp, app.now()))
			return nil
		},
	}
}

func newProjectStageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stage MILESTONE_ID STAGE",
		Short: "Move a milestone to planned, working, closed or payment-received",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Projects.SetMilestoneStage(cmd.Context(), contract.MilestoneStageRequest{
				MilestoneID: args[0],
				Stage:       args[1],
			})
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatMilestoneStage(view))
			return nil
		},
	}
}
