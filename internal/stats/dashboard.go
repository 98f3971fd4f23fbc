package stats

import (
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
)

// Defaults taken from the dashboard: five due-soon rows and a 40 hour week.
const (
	DefaultDueSoonLimit  = 5
	DefaultWeeklyGoalMin = 2400
)

// DashboardOptions tunes the derived dashboard figures.
type DashboardOptions struct {
	DueSoonLimit  int
	WeeklyGoalMin int
}

// DefaultDashboardOptions returns the stock dashboard options.
func DefaultDashboardOptions() DashboardOptions {
	return DashboardOptions{
		DueSoonLimit:  DefaultDueSoonLimit,
		WeeklyGoalMin: DefaultWeeklyGoalMin,
	}
}

// Dashboard derives every headline figure from the dataset as of now.
func Dashboard(ds *domain.Dataset, now time.Time, opts DashboardOptions) domain.DashboardStats {
	split := PaymentSplit(ds.Milestones)
	weekly := FocusInWeek(ds.TimeEntries, now)

	return domain.DashboardStats{
		TotalProjects:     len(ds.Projects),
		ActiveProjects:    CountProjectsByStatus(ds.Projects, domain.ProjectActive),
		TotalBudget:       TotalBudget(ds.Projects),
		ReceivedPayments:  split.Received,
		PendingPayments:   split.Pending,
		ThisMonthIncome:   MonthlyIncome(ds.Transactions, now),
		ThisMonthExpenses: MonthlyExpenses(ds.Transactions, now),
		NetWorth:          NetWorth(ds.Accounts),
		TodayFocusTime:    FocusOnDay(ds.TimeEntries, now),
		WeeklyFocusTime:   weekly,
		WeeklyGoalPct:     WeeklyGoalPct(weekly, opts.WeeklyGoalMin),
		OpenIssues:        OpenIssueCount(ds.Issues),
		DueSoonIssues:     len(DueSoon(ds.Issues, opts.DueSoonLimit)),
	}
}
