package contract

import (
	"time"

	"github.com/alexanderramin/bittrack/internal/stats"
)

type TimeListRequest struct {
	Now           *time.Time
	ProjectID     string
	WeeklyGoalMin int
}

func NewTimeListRequest() TimeListRequest {
	return TimeListRequest{WeeklyGoalMin: stats.DefaultWeeklyGoalMin}
}

type DayGroupView struct {
	Date    time.Time
	Minutes int
	Entries []TimeEntryView
}

type TimeListResponse struct {
	Groups        []DayGroupView
	TodayMin      int
	WeekMin       int
	TotalMin      int
	WeeklyGoalMin int
	WeeklyGoalPct float64
}

type LogTimeRequest struct {
	ProjectID   string
	IssueID     string
	Description string
	Minutes     int
	Date        time.Time
}

// Validate checks the fields that need no store lookup.
func (r LogTimeRequest) Validate() error {
	switch {
	case r.ProjectID == "":
		return invalid("project is required")
	case r.Minutes <= 0:
		return invalid("minutes must be positive")
	case r.Date.IsZero():
		return invalid("date is required")
	}
	return nil
}
