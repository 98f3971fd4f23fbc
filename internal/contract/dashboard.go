package contract

import (
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/stats"
)

type DashboardRequest struct {
	Now           *time.Time
	DueSoonLimit  int
	WeeklyGoalMin int
}

func NewDashboardRequest() DashboardRequest {
	return DashboardRequest{
		DueSoonLimit:  stats.DefaultDueSoonLimit,
		WeeklyGoalMin: stats.DefaultWeeklyGoalMin,
	}
}

// Reference is the instant "today" and "this month" are measured from.
func (r DashboardRequest) Reference() time.Time {
	return refTime(r.Now)
}

type DashboardResponse struct {
	GeneratedAt        time.Time
	User               domain.User
	Age                domain.Age
	Stats              domain.DashboardStats
	WeeklyGoalMin      int
	DueSoon            []IssueView
	ActiveProjects     []ProjectSummary
	RecentEntries      []TimeEntryView
	RecentTransactions []TransactionView
}
