package service

import (
	"context"
	"time"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/repository"
	"github.com/alexanderramin/bittrack/internal/stats"
)

type analyticsService struct {
	repos    repository.Repositories
	observer UseCaseObserver
}

func NewAnalyticsService(repos repository.Repositories, observers ...UseCaseObserver) AnalyticsService {
	return &analyticsService{repos: repos, observer: useCaseObserverOrNoop(observers)}
}

func (s *analyticsService) Get(ctx context.Context, req contract.AnalyticsRequest) (resp *contract.AnalyticsResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "analytics.get", startedAt, err, map[string]any{
			"months": req.Months,
			"days":   req.Days,
		})
	}()

	ds, err := loadDataset(ctx, s.repos)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	months, days := req.Months, req.Days
	if months <= 0 {
		months = 6
	}
	if days <= 0 {
		days = 7
	}

	daily := stats.DailyFocus(ds.TimeEntries, now, days)
	focusTotal := 0
	for _, d := range daily {
		focusTotal += d.Minutes
	}

	statuses := make([]contract.StatusCount, 0, len(domain.ProjectStatuses))
	for _, st := range domain.ProjectStatuses {
		statuses = append(statuses, contract.StatusCount{
			Status: st,
			Count:  stats.CountProjectsByStatus(ds.Projects, st),
		})
	}

	return &contract.AnalyticsResponse{
		GeneratedAt:  now,
		Months:       stats.MonthlySeries(ds.Transactions, now, months),
		DailyFocus:   daily,
		FocusTotal:   focusTotal,
		Priorities:   stats.PriorityBreakdown(ds.Issues),
		Tags:         stats.TagDistribution(ds.Projects),
		StatusCounts: statuses,
		Payments:     stats.PaymentSplit(ds.Milestones),
	}, nil
}
