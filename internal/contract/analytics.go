package contract

import (
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/stats"
)

type AnalyticsRequest struct {
	Now    *time.Time
	Months int
	Days   int
}

func NewAnalyticsRequest() AnalyticsRequest {
	return AnalyticsRequest{Months: 6, Days: 7}
}

type StatusCount struct {
	Status domain.ProjectStatus
	Count  int
}

type AnalyticsResponse struct {
	GeneratedAt  time.Time
	Months       []stats.MonthTotals
	DailyFocus   []stats.DayFocus
	FocusTotal   int
	Priorities   []stats.PriorityCount
	Tags         []stats.TagShare
	StatusCounts []StatusCount
	Payments     stats.Split
}
