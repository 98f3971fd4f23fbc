package service

import (
	"context"
	"time"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/repository"
	"github.com/alexanderramin/bittrack/internal/stats"
)

type dashboardService struct {
	repos    repository.Repositories
	observer UseCaseObserver
}

func NewDashboardService(repos repository.Repositories, observers ...UseCaseObserver) DashboardService {
	return &dashboardService{repos: repos, observer: useCaseObserverOrNoop(observers)}
}

func (s *dashboardService) Get(ctx context.Context, req contract.DashboardRequest) (resp *contract.DashboardResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "dashboard.get", startedAt, err, nil)
	}()

	ds, err := loadDataset(ctx, s.repos)
	if err != nil {
		return nil, err
	}

	now := req.Reference()
	opts := stats.DashboardOptions{DueSoonLimit: req.DueSoonLimit, WeeklyGoalMin: req.WeeklyGoalMin}

	var active []contract.ProjectSummary
	for _, p := range ds.Projects {
		if p.Status == domain.ProjectActive {
			active = append(active, summarizeProject(ds, p))
		}
	}

	return &contract.DashboardResponse{
		GeneratedAt:        now,
		User:               ds.User,
		Age:                domain.CalculateAge(ds.User.BirthDate, now),
		Stats:              stats.Dashboard(ds, now, opts),
		WeeklyGoalMin:      req.WeeklyGoalMin,
		DueSoon:            issueViews(ds, stats.DueSoon(ds.Issues, req.DueSoonLimit)),
		ActiveProjects:     active,
		RecentEntries:      entryViews(ds, recentEntries(ds.TimeEntries, contract.RecentLimit)),
		RecentTransactions: transactionViews(ds, recentTransactions(ds.Transactions, contract.RecentLimit)),
	}, nil
}
