package cli

import (
	"github.com/alexanderramin/bittrack/internal/cli/formatter"
	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/spf13/cobra"
)

func newAnalyticsCmd(app *App) *cobra.Command {
	req := contract.NewAnalyticsRequest()
	if app.Config.AnalyticsMonths > 0 {
		req.Months = app.Config.AnalyticsMonths
	}

	cmd := &cobra.Command{
		Use:     "analytics",
		Aliases: []string{"stats"},
		Short:   "Show income and expense trends, focus per day and issue breakdowns",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := app.now()
			req.Now = &ref
			resp, err := app.Analytics.Get(cmd.Context(), req)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatAnalytics(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&req.Months, "months", req.Months, "Calendar months of income and expenses")
	cmd.Flags().IntVar(&req.Days, "days", req.Days, "Days of focus time")

	return cmd
}
