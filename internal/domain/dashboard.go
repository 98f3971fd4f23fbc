package domain

// DashboardStats is the dashboard headline snapshot. It is always derived
// from a Dataset on demand and never stored.
type DashboardStats struct {
	TotalProjects     int
	ActiveProjects    int
	TotalBudget       int64
	ReceivedPayments  int64
	PendingPayments   int64
	ThisMonthIncome   int64
	ThisMonthExpenses int64
	NetWorth          int64
	TodayFocusTime    int // minutes
	WeeklyFocusTime   int // minutes
	WeeklyGoalPct     float64
	OpenIssues        int
	DueSoonIssues     int
}

// MonthlyNet is income minus expenses for the current month.
func (s DashboardStats) MonthlyNet() int64 {
	return s.ThisMonthIncome - s.ThisMonthExpenses
}
