package service

import (
	"context"
	"time"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/repository"
	"github.com/alexanderramin/bittrack/internal/stats"
)

type checkService struct {
	repos    repository.Repositories
	observer UseCaseObserver
}

func NewCheckService(repos repository.Repositories, observers ...UseCaseObserver) CheckService {
	return &checkService{repos: repos, observer: useCaseObserverOrNoop(observers)}
}

// Run reports every broken reference in the stored dataset. Violations are
// findings, not errors.
func (s *checkService) Run(ctx context.Context) (resp *contract.CheckResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{}
		if resp != nil {
			fields["violations"] = len(resp.Violations)
		}
		reportUseCase(ctx, s.observer, "check.run", startedAt, err, fields)
	}()

	ds, err := loadDataset(ctx, s.repos)
	if err != nil {
		return nil, err
	}

	violations := stats.CheckIntegrity(ds)
	lines := make([]string, 0, len(violations))
	for _, v := range violations {
		lines = append(lines, v.String())
	}
	return &contract.CheckResponse{Counts: countEntities(ds), Violations: lines}, nil
}
