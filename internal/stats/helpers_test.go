package stats

import (
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func issue(id string, status domain.IssueStatus, due *time.Time) *domain.Issue {
	return &domain.Issue{
		ID:        id,
		ProjectID: "proj1",
		Title:     "Issue " + id,
		Priority:  domain.PriorityMedium,
		Status:    status,
		DueDate:   due,
	}
}

func tx(id string, typ domain.TransactionType, amount int64, date time.Time) *domain.Transaction {
	cat := "1"
	if typ == domain.TransactionExpense {
		cat = "6"
	}
	return &domain.Transaction{
		ID:         id,
		Type:       typ,
		Amount:     amount,
		CategoryID: cat,
		AccountID:  "acc1",
		Date:       date,
	}
}

func entry(id string, minutes int, date time.Time) *domain.TimeEntry {
	return &domain.TimeEntry{ID: id, ProjectID: "proj1", Duration: minutes, Date: date}
}

// sampleDataset mirrors the bundled demo data closely enough for aggregate checks.
func sampleDataset() *domain.Dataset {
	return &domain.Dataset{
		User: domain.User{Name: "Alexander Ramin", BirthDate: day(2002, time.March, 15)},
		Projects: []*domain.Project{
			{ID: "proj1", Title: "E-commerce Platform", Description: "Full-stack online store",
				Status: domain.ProjectActive, Tags: []string{"React", "Node.js", "MongoDB"}, Budget: 500000},
			{ID: "proj2", Title: "Mobile App", Description: "Cross-platform fitness tracker",
				Status: domain.ProjectCompleted, Tags: []string{"React Native", "Firebase"}, Budget: 300000},
		},
		Milestones: []*domain.Milestone{
			{ID: "mile1", ProjectID: "proj1", Budget: 150000, Stage: domain.StagePaymentReceived},
			{ID: "mile2", ProjectID: "proj1", Budget: 200000, Stage: domain.StageWorking},
			{ID: "mile3", ProjectID: "proj2", Budget: 50000, Stage: domain.StagePaymentReceived},
		},
		Issues: []*domain.Issue{
			{ID: "issue1", ProjectID: "proj1", MilestoneID: ptr("mile2"), Priority: domain.PriorityHigh,
				Status: domain.IssueOpen, DueDate: ptr(day(2025, time.January, 20))},
			{ID: "issue2", ProjectID: "proj1", MilestoneID: ptr("mile2"), Priority: domain.PriorityCritical,
				Status: domain.IssueInProgress, DueDate: ptr(day(2025, time.January, 15))},
			{ID: "issue3", ProjectID: "proj1", MilestoneID: ptr("mile1"), Priority: domain.PriorityLow,
				Status: domain.IssueClosed, DueDate: ptr(day(2025, time.January, 5))},
			{ID: "issue4", ProjectID: "proj2", Priority: domain.PriorityMedium, Status: domain.IssueOpen},
		},
		TimeEntries: []*domain.TimeEntry{
			entry("time1", 120, time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)),
			entry("time2", 90, time.Date(2025, time.January, 10, 15, 0, 0, 0, time.UTC)),
			entry("time3", 60, time.Date(2025, time.January, 7, 10, 0, 0, 0, time.UTC)),
		},
		Accounts: []*domain.WalletAccount{
			{ID: "acc1", Name: "Cash", Type: domain.AccountCash, Balance: 25000, IsDefault: true},
			{ID: "acc2", Name: "Bank", Type: domain.AccountBank, Balance: 180000},
			{ID: "acc3", Name: "JazzCash", Type: domain.AccountMobileWallet, Balance: 0},
		},
		Transactions: []*domain.Transaction{
			tx("trans1", domain.TransactionIncome, 150000, day(2025, time.January, 5)),
			tx("trans2", domain.TransactionExpense, 5000, day(2025, time.January, 8)),
			tx("trans3", domain.TransactionExpense, 2500, day(2025, time.January, 9)),
			tx("trans4", domain.TransactionIncome, 80000, day(2024, time.January, 10)),
		},
		Settings: domain.Settings{
			Theme: domain.ThemeSystem,
			IncomeCategories: []domain.TransactionCategory{
				{ID: "1", Name: "Client Payment", Type: domain.TransactionIncome, Color: domain.DefaultIncomeColor},
			},
			ExpenseCategories: []domain.TransactionCategory{
				{ID: "6", Name: "Software", Type: domain.TransactionExpense, Color: domain.DefaultExpenseColor},
			},
		},
	}
}
