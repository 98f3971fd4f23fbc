package contract

import (
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/stats"
)

type WalletRequest struct {
	Now *time.Time
}

type WalletResponse struct {
	Month            time.Time
	Accounts         []*domain.WalletAccount
	DefaultAccountID string
	NetWorth         int64
	MonthIncome      int64
	MonthExpenses    int64
	Recent           []TransactionView
}

type TransactionListRequest struct {
	Type       string
	Query      string
	AccountID  string
	CategoryID string
}

func (r TransactionListRequest) Validate() error {
	if r.Type == "" || r.Type == stats.FilterAll || domain.ValidTransactionType(r.Type) {
		return nil
	}
	return invalid("unknown transaction type " + r.Type)
}

func (r TransactionListRequest) Filter() stats.TransactionFilter {
	return stats.TransactionFilter{
		Type:       r.Type,
		Query:      r.Query,
		AccountID:  r.AccountID,
		CategoryID: r.CategoryID,
	}
}

type TransactionListResponse struct {
	Transactions []TransactionView
	Income       int64
	Expenses     int64
}

// AddTransactionRequest records a transaction and moves the account balance
// by its amount: up for income, down for expense.
type AddTransactionRequest struct {
	Type        string
	Amount      int64
	CategoryID  string
	AccountID   string
	Description string
	Notes       string
	Date        time.Time
	ProjectID   string
	MilestoneID string
}

func (r AddTransactionRequest) Validate() error {
	switch {
	case !domain.ValidTransactionType(r.Type):
		return invalid("unknown transaction type " + r.Type)
	case r.Amount <= 0:
		return invalid("amount must be positive")
	case r.CategoryID == "":
		return invalid("category is required")
	case r.AccountID == "":
		return invalid("account is required")
	case r.Date.IsZero():
		return invalid("date is required")
	case r.MilestoneID != "" && r.ProjectID == "":
		return invalid("milestone payments need a project")
	}
	return nil
}

type AddTransactionResponse struct {
	Transaction TransactionView
	// Balance is the account balance after the transaction.
	Balance int64
}
