package service

import (
	"context"
	"time"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/repository"
	"github.com/alexanderramin/bittrack/internal/stats"
)

type profileService struct {
	repos    repository.Repositories
	observer UseCaseObserver
}

func NewProfileService(repos repository.Repositories, observers ...UseCaseObserver) ProfileService {
	return &profileService{repos: repos, observer: useCaseObserverOrNoop(observers)}
}

func (s *profileService) Get(ctx context.Context, req contract.DashboardRequest) (resp *contract.ProfileResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "profile.get", startedAt, err, nil)
	}()

	ds, err := loadDataset(ctx, s.repos)
	if err != nil {
		return nil, err
	}
	now := req.Reference()

	return &contract.ProfileResponse{
		User:           ds.User,
		Age:            domain.CalculateAge(ds.User.BirthDate, now),
		AsOf:           now,
		Projects:       len(ds.Projects),
		ActiveProjects: stats.CountProjectsByStatus(ds.Projects, domain.ProjectActive),
		OpenIssues:     stats.OpenIssueCount(ds.Issues),
		LoggedMin:      stats.TotalDuration(ds.TimeEntries),
		NetWorth:       stats.NetWorth(ds.Accounts),
	}, nil
}
