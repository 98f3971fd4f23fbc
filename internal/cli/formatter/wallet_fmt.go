package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
)

// FormatWallet renders account balances and the month's cash flow.
func FormatWallet(resp *contract.WalletResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("NET WORTH"), Bold(Currency(resp.NetWorth))))

	rows := make([][]string, 0, len(resp.Accounts))
	for _, a := range resp.Accounts {
		marker := ""
		if a.ID == resp.DefaultAccountID {
			marker = StyleYellow.Render("★ default")
		}
		balance := Currency(a.Balance)
		if a.Balance < 0 {
			balance = StyleRed.Render(balance)
		}
		rows = append(rows, []string{
			Bold(a.Name),
			AccountTypeLabel(a.Type).Render(),
			balance,
			marker,
		})
	}
	b.WriteString(RenderTableRight([]string{"ACCOUNT", "TYPE", "BALANCE", ""}, rows, 2))

	b.WriteString("\n" + Header(MonthYear(resp.Month)) + "\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		Dim("INCOME"), StyleGreen.Render(Currency(resp.MonthIncome)),
		Dim("EXPENSES"), StyleRed.Render(Currency(resp.MonthExpenses)),
		Dim("NET"), netAmount(resp.MonthIncome-resp.MonthExpenses)))

	if len(resp.Recent) > 0 {
		b.WriteString("\n" + Header("Recent Transactions") + "\n")
		b.WriteString(transactionTable(resp.Recent))
	}
	return RenderBox("Wallet", b.String())
}

// FormatTransactions renders a filtered transaction list, newest first.
func FormatTransactions(resp *contract.TransactionListResponse) string {
	if len(resp.Transactions) == 0 {
		return RenderBox("Transactions", Dim("No transactions match."))
	}
	var b strings.Builder
	b.WriteString(transactionTable(resp.Transactions))
	b.WriteString(fmt.Sprintf("\n%s %s   %s %s",
		Dim("IN"), StyleGreen.Render(Currency(resp.Income)),
		Dim("OUT"), StyleRed.Render(Currency(resp.Expenses))))
	return RenderBox("Transactions", b.String())
}

func transactionTable(views []contract.TransactionView) string {
	if len(views) == 0 {
		return Dim("No transactions yet.") + "\n"
	}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		t := v.Transaction
		rows = append(rows, []string{
			ShortDate(t.Date),
			OrDash(t.Description),
			Swatch(v.CategoryColor) + " " + v.CategoryName,
			v.AccountName,
			Signed(Currency(t.Amount), t.Type == domain.TransactionIncome),
		})
	}
	return RenderTableRight([]string{"DATE", "DESCRIPTION", "CATEGORY", "ACCOUNT", "AMOUNT"}, rows, 4)
}
