package cli

import (
	"fmt"

	"github.com/alexanderramin/bittrack/internal/cli/formatter"
	"github.com/alexanderramin/bittrack/internal/config"
	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/spf13/cobra"
)

func newWalletCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Show accounts, net worth and this month's income and expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := app.now()
			resp, err := app.Wallet.Summary(cmd.Context(), contract.WalletRequest{Now: &ref})
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatWallet(resp))
			return nil
		},
	}

	cmd.AddCommand(
		newWalletTransactionsCmd(app),
		newWalletAddCmd(app),
	)

	return cmd
}

func newWalletTransactionsCmd(app *App) *cobra.Command {
	var req contract.TransactionListRequest

	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "List transactions, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Wallet.Transactions(cmd.Context(), req)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatTransactions(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Type, "type", "all", "Filter by type: all, income, expense")
	cmd.Flags().StringVarP(&req.Query, "search", "s", "", "Match description or notes (case-insensitive)")
	cmd.Flags().StringVar(&req.AccountID, "account", "", "Only transactions on this account ID")
	cmd.Flags().StringVar(&req.CategoryID, "category", "", "Only transactions in this category ID")

	return cmd
}

func newWalletAddCmd(app *App) *cobra.Command {
	var (
		req  contract.AddTransactionRequest
		date string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record income or an expense and update the account balance",
		Example: `  bittrack wallet add --type expense --amount 1500 --category 6 -d Groceries
  bittrack wallet add --type income --amount 150000 --category 2 --project proj1 --milestone mile1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			req.Date = startOfDay(app.now())
			if date != "" {
				d, err := config.ParseDay(date)
				if err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
				}
				req.Date = d
			}
			if req.AccountID == "" {
				summary, err := app.Wallet.Summary(ctx, contract.WalletRequest{})
				if err != nil {
					return err
				}
				req.AccountID = summary.DefaultAccountID
			}

			resp, err := app.Wallet.AddTransaction(ctx, req)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatTransactionAdded(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Type, "type", "expense", "income or expense")
	cmd.Flags().Int64VarP(&req.Amount, "amount", "a", 0, "Amount in whole currency units")
	cmd.Flags().StringVarP(&req.CategoryID, "category", "c", "", "Category ID (see `bittrack settings`)")
	cmd.Flags().StringVar(&req.AccountID, "account", "", "Account ID (default: the default payment account)")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "Short description")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&date, "date", "", "Transaction date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&req.ProjectID, "project", "", "Project the payment belongs to")
	cmd.Flags().StringVar(&req.MilestoneID, "milestone", "", "Milestone the payment settles")

	return cmd
}
