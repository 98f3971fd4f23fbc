package cli

import (
	"fmt"

	"github.com/alexanderramin/bittrack/internal/cli/formatter"
	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and edit theme, payment account, categories and Discord notifications",
		Long: `Edits go to a working copy that "settings show" marks as unsaved until
"settings save" writes it. Pass --save to an edit to write it immediately.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings(cmd, app)
		},
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsThemeCmd(app),
		newSettingsAccountCmd(app),
		newSettingsCategoryCmd(app),
		newSettingsDiscordCmd(app),
		newSettingsSaveCmd(app),
	)

	return cmd
}

func showSettings(cmd *cobra.Command, app *App) error {
	resp, err := app.Settings.Get(cmd.Context())
	if err != nil {
		return err
	}
	printOut(cmd, formatter.FormatSettings(resp))
	return nil
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings(cmd, app)
		},
	}
}

// applySetting runs one action and prints the resulting settings, saving
// first when requested.
func applySetting(cmd *cobra.Command, app *App, action domain.Action, save bool) error {
	resp, err := app.Settings.Apply(cmd.Context(), action)
	if err != nil {
		return err
	}
	if save {
		if resp, err = saveSettings(cmd, app); err != nil {
			return err
		}
	}
	printOut(cmd, formatter.FormatSettings(resp))
	return nil
}

func saveSettings(cmd *cobra.Command, app *App) (*contract.SettingsResponse, error) {
	if app.interactive() {
		stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Saving settings...")
		defer stop()
	}
	return app.Settings.Save(cmd.Context())
}

func newSettingsThemeCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:       "theme [light|dark|system]",
		Short:     "Set the theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark), string(domain.ThemeSystem)},
		RunE: func(cmd *cobra.Command, args []string) error {
			var theme domain.Theme
			switch {
			case len(args) == 1:
				theme = domain.Theme(args[0])
			case app.interactive():
				current, err := app.Settings.Get(cmd.Context())
				if err != nil {
					return err
				}
				if theme, err = pickTheme(cmd.Context(), current.Settings.Theme); err != nil {
					return err
				}
			default:
				return fmt.Errorf("theme is required: light, dark or system")
			}
			return applySetting(cmd, app, domain.Action{Kind: domain.ActionSetTheme, Theme: theme}, save)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save immediately")

	return cmd
}

func newSettingsAccountCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "account ID",
		Short: "Set the default payment account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applySetting(cmd, app, domain.Action{Kind: domain.ActionSetPaymentAccount, AccountID: args[0]}, save)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save immediately")

	return cmd
}

func newSettingsCategoryCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "category",
		Short: "Add, rename or remove transaction categories",
	}
	cmd.PersistentFlags().BoolVar(&save, "save", false, "Save immediately")

	var typ string
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applySetting(cmd, app, domain.Action{
				Kind:         domain.ActionAddCategory,
				CategoryName: args[0],
				CategoryType: domain.TransactionType(typ),
			}, save)
		},
	}
	add.Flags().StringVar(&typ, "type", string(domain.TransactionExpense), "Category type: income or expense")

	rename := &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applySetting(cmd, app, domain.Action{
				Kind:         domain.ActionRenameCategory,
				CategoryID:   args[0],
				CategoryName: args[1],
			}, save)
		},
	}

	remove := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a category",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applySetting(cmd, app, domain.Action{Kind: domain.ActionRemoveCategory, CategoryID: args[0]}, save)
		},
	}

	cmd.AddCommand(add, rename, remove)

	return cmd
}

func newSettingsDiscordCmd(app *App) *cobra.Command {
	var (
		notification string
		save         bool
	)

	cmd := &cobra.Command{
		Use:   "discord",
		Short: "Toggle Discord notifications, or one notification kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			action := domain.Action{Kind: domain.ActionToggleDiscord}
			if notification != "" {
				action = domain.Action{
					Kind:         domain.ActionToggleNotification,
					Notification: domain.NotificationKind(notification),
				}
			}
			return applySetting(cmd, app, action, save)
		},
	}

	cmd.Flags().StringVar(&notification, "notification", "",
		"Toggle one kind: project-created, milestone-completed, payment-received, daily-summary")
	cmd.Flags().BoolVar(&save, "save", false, "Save immediately")

	return cmd
}

func newSettingsSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Write pending settings changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := saveSettings(cmd, app)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.StyleGreen.Render("✔")+" Settings saved.")
			printOut(cmd, formatter.FormatSettings(resp))
			return nil
		},
	}
}
