package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/bittrack/internal/cli/formatter"
	"github.com/alexanderramin/bittrack/internal/config"
	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/spf13/cobra"
)

func newTimeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Track focus time",
	}

	cmd.AddCommand(
		newTimeListCmd(app),
		newTimeLogCmd(app),
		newTimeTimerCmd(app),
	)

	return cmd
}

func newTimeListCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List time entries grouped by day with today and week totals",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := app.now()
			req := contract.NewTimeListRequest()
			req.Now = &ref
			req.ProjectID = projectID
			if app.Config.WeeklyGoalMin > 0 {
				req.WeeklyGoalMin = app.Config.WeeklyGoalMin
			}

			resp, err := app.Time.List(cmd.Context(), req)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatTimeList(resp, ref))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Only entries for this project ID")

	return cmd
}

func newTimeLogCmd(app *App) *cobra.Command {
	var (
		projectID   string
		issueID     string
		description string
		minutes     int
		date        string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a time entry",
		Example: `  bittrack time log --project proj1 --minutes 90
  bittrack time log -p proj1 -m 45 --issue issue2 --date 2025-01-09 -d "Navigation markup"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			day := app.now()
			if date != "" {
				parsed, err := config.ParseDay(date)
				if err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
				}
				day = parsed
			}

			if projectID == "" && app.interactive() {
				picked, err := pickProject(ctx, app)
				if err != nil {
					return err
				}
				projectID = picked
			}

			return logTime(ctx, cmd, app, contract.LogTimeRequest{
				ProjectID:   projectID,
				IssueID:     issueID,
				Description: description,
				Minutes:     minutes,
				Date:        startOfDay(day),
			})
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project ID (picked interactively when omitted)")
	cmd.Flags().StringVar(&issueID, "issue", "", "Issue ID within the project")
	cmd.Flags().StringVarP(&description, "description", "d", "", "What was worked on")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Duration in minutes")
	cmd.Flags().StringVar(&date, "date", "", "Day worked, YYYY-MM-DD (default: today)")

	return cmd
}

func logTime(ctx context.Context, cmd *cobra.Command, app *App, req contract.LogTimeRequest) error {
	entry, err := app.Time.Log(ctx, req)
	if err != nil {
		return err
	}

	title := entry.ProjectID
	if detail, err := app.Projects.Show(ctx, entry.ProjectID); err == nil {
		title = detail.Summary.Project.Title
	}
	printOut(cmd, formatter.FormatTimeLogged(entry, title))
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

