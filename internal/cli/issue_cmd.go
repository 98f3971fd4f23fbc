package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bittrack/internal/cli/formatter"
	"github.com/alexanderramin/bittrack/internal/config"
	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/spf13/cobra"
)

func newIssueCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "issue",
		Aliases: []string{"issues"},
		Short:   "Inspect issues across projects",
	}

	cmd.AddCommand(
		newIssueDueCmd(app),
		newIssueAddCmd(app),
		newIssueStatusCmd(app, "status ID STATUS", "Set an issue's status: open, in-progress, closed", ""),
		newIssueStatusCmd(app, "close ID", "Close an issue", domain.IssueClosed),
		newIssueStatusCmd(app, "reopen ID", "Reopen a closed issue", domain.IssueOpen),
		newIssueCommentCmd(app),
	)

	return cmd
}

func newIssueDueCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List open issues with the nearest due dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := app.now()
			resp, err := app.Issues.DueSoon(cmd.Context(), contract.DueSoonRequest{Now: &ref, Limit: limit})
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatDueSoon(resp))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", app.Config.DueSoonLimit, "Maximum issues to show")

	return cmd
}

func newIssueAddCmd(app *App) *cobra.Command {
	var (
		req  contract.NewIssueRequest
		tags string
		due  string
	)

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create an open issue in a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			req.Title = args[0]
			if tags != "" {
				for _, tag := range strings.Split(tags, ",") {
					if tag = strings.TrimSpace(tag); tag != "" {
						req.Tags = append(req.Tags, tag)
					}
				}
			}
			if due != "" {
				d, err := config.ParseDay(due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: expected YYYY-MM-DD", due)
				}
				req.DueDate = &d
			}
			if req.ProjectID == "" && app.interactive() {
				picked, err := pickProject(ctx, app)
				if err != nil {
					return err
				}
				req.ProjectID = picked
			}

			issue, err := app.Issues.Create(ctx, req)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatIssueSaved("Created", issue))
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.ProjectID, "project", "p", "", "Project ID (picked interactively when omitted)")
	cmd.Flags().StringVar(&req.MilestoneID, "milestone", "", "Milestone ID within the project")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "Longer description")
	cmd.Flags().StringVar(&req.Priority, "priority", "", "low, medium (default), high or critical")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&due, "due", "", "Due date YYYY-MM-DD")

	return cmd
}

// newIssueStatusCmd builds a status command. A fixed status takes one
// argument; an empty one reads the status from the second argument.
func newIssueStatusCmd(app *App, use, short string, fixed domain.IssueStatus) *cobra.Command {
	nargs := 1
	if fixed == "" {
		nargs = 2
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := string(fixed)
			if fixed == "" {
				status = args[1]
			}
			issue, err := app.Issues.SetStatus(cmd.Context(), contract.IssueStatusRequest{IssueID: args[0], Status: status})
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatIssueSaved("Updated", issue))
			return nil
		},
	}
}

func newIssueCommentCmd(app *App) *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "comment ID TEXT",
		Short: "Comment on an issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Issues.Comment(cmd.Context(), contract.CommentRequest{
				IssueID: args[0],
				Author:  author,
				Content: args[1],
			})
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatCommentAdded(c))
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Comment author (default: profile name)")

	return cmd
}
