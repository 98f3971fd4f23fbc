package stats

import (
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
)

// Split partitions milestone budgets into received and pending amounts.
type Split struct {
	Received int64
	Pending  int64
}

// Total is the sum of both sides of the split.
func (s Split) Total() int64 {
	return s.Received + s.Pending
}

// PaymentSplit sums milestone budgets: payment-received stages count as
// received, every other stage counts as pending.
func PaymentSplit(milestones []*domain.Milestone) Split {
	var s Split
	for _, m := range milestones {
		if m.IsPaid() {
			s.Received += m.Budget
		} else {
			s.Pending += m.Budget
		}
	}
	return s
}

// NetWorth sums all wallet account balances.
func NetWorth(accounts []*domain.WalletAccount) int64 {
	var total int64
	for _, a := range accounts {
		total += a.Balance
	}
	return total
}

// TotalBudget sums project budgets.
func TotalBudget(projects []*domain.Project) int64 {
	var total int64
	for _, p := range projects {
		total += p.Budget
	}
	return total
}

// SumByType sums transaction amounts of the given type.
func SumByType(txs []*domain.Transaction, typ domain.TransactionType) int64 {
	var total int64
	for _, t := range txs {
		if t.Type == typ {
			total += t.Amount
		}
	}
	return total
}

// MonthlyTotal sums amounts of the given type whose date falls in the same
// calendar month and year as ref.
func MonthlyTotal(txs []*domain.Transaction, typ domain.TransactionType, ref time.Time) int64 {
	var total int64
	for _, t := range txs {
		if t.Type == typ && sameMonth(t.Date, ref) {
			total += t.Amount
		}
	}
	return total
}

// MonthlyIncome is the income booked in ref's calendar month.
func MonthlyIncome(txs []*domain.Transaction, ref time.Time) int64 {
	return MonthlyTotal(txs, domain.TransactionIncome, ref)
}

// MonthlyExpenses is the spending booked in ref's calendar month.
func MonthlyExpenses(txs []*domain.Transaction, ref time.Time) int64 {
	return MonthlyTotal(txs, domain.TransactionExpense, ref)
}

// MonthTotals is income and expense for one calendar month.
type MonthTotals struct {
	Year     int
	Month    time.Month
	Income   int64
	Expenses int64
}

// Net is income minus expenses.
func (m MonthTotals) Net() int64 {
	return m.Income - m.Expenses
}

// MonthlySeries returns totals for the given number of calendar months
// ending with ref's month, oldest first.
func MonthlySeries(txs []*domain.Transaction, ref time.Time, months int) []MonthTotals {
	if months <= 0 {
		return []MonthTotals{}
	}
	y, m, _ := ref.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)

	out := make([]MonthTotals, 0, months)
	for i := months - 1; i >= 0; i-- {
		month := first.AddDate(0, -i, 0)
		out = append(out, MonthTotals{
			Year:     month.Year(),
			Month:    month.Month(),
			Income:   MonthlyIncome(txs, month),
			Expenses: MonthlyExpenses(txs, month),
		})
	}
	return out
}
