package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/bittrack/internal/config"
	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Dashboard service.DashboardService
	Projects  service.ProjectService
	Issues    service.IssueService
	Time      service.TimeService
	Wallet    service.WalletService
	Analytics service.AnalyticsService
	Settings  service.SettingsService
	Profile   service.ProfileService
	Check     service.CheckService

	// Load fills the store from a seed file before any command runs.
	// Empty path means the bundled demo data. Nil skips loading.
	Load func(ctx context.Context, path string) error

	Config config.Config

	// Clock supplies the wall clock when no reference date is pinned.
	Clock func() time.Time

	// IsInteractive reports whether stdin is a terminal. Pickers and the
	// focus timer only run when it returns true.
	IsInteractive func() bool
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	dataPath string
	now      string
}

func registerGlobalFlags(fs *pflag.FlagSet, opts *globalOptions, cfg config.Config) {
	fs.StringVar(&opts.dataPath, "data", cfg.DataPath, "Seed file to load (default: bundled demo data)")
	fs.StringVar(&opts.now, "now", "", "Reference date YYYY-MM-DD for today, this week and this month")
}

// NewRootCmd creates the top-level "bittrack" command and registers all
// subcommands against the provided App. Running it without a subcommand
// prints the dashboard.
func NewRootCmd(app *App) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "bittrack",
		Short:         "Projects, focus time and wallet at a glance",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.now != "" {
				ref, err := config.ParseDay(opts.now)
				if err != nil {
					return fmt.Errorf("invalid --now %q: expected YYYY-MM-DD", opts.now)
				}
				app.Config.Now = &ref
			}
			if app.Load == nil {
				return nil
			}
			if err := app.Load(cmd.Context(), opts.dataPath); err != nil {
				return fmt.Errorf("loading data: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}
	registerGlobalFlags(root.PersistentFlags(), opts, app.Config)

	root.AddCommand(
		newDashboardCmd(app),
		newProjectCmd(app),
		newIssueCmd(app),
		newTimeCmd(app),
		newWalletCmd(app),
		newAnalyticsCmd(app),
		newSettingsCmd(app),
		newProfileCmd(app),
		newCheckCmd(app),
	)

	return root
}

// now returns the reference instant for date-relative figures.
func (a *App) now() time.Time {
	clock := a.Clock
	if clock == nil {
		clock = time.Now
	}
	return a.Config.Reference(clock)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) dashboardRequest() contract.DashboardRequest {
	req := contract.NewDashboardRequest()
	ref := a.now()
	req.Now = &ref
	if a.Config.DueSoonLimit > 0 {
		req.DueSoonLimit = a.Config.DueSoonLimit
	}
	if a.Config.WeeklyGoalMin > 0 {
		req.WeeklyGoalMin = a.Config.WeeklyGoalMin
	}
	return req
}

func printOut(cmd *cobra.Command, text string) {
	fmt.Fprintln(cmd.OutOrStdout(), text)
}
