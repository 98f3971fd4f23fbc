package domain

import "time"

type WalletAccount struct {
	ID        string
	Name      string
	Type      AccountType
	Balance   int64
	IsDefault bool
}

type TransactionCategory struct {
	ID    string
	Name  string
	Type  TransactionType
	Color string
}

type Transaction struct {
	ID          string
	Type        TransactionType
	Amount      int64
	CategoryID  string
	AccountID   string
	Description string
	Notes       string
	Date        time.Time
	ProjectID   *string
	MilestoneID *string
	CreatedAt   time.Time
}

// IsMilestonePayment reports whether the transaction settles a project milestone.
func (t *Transaction) IsMilestonePayment() bool {
	return t.MilestoneID != nil && *t.MilestoneID != ""
}
