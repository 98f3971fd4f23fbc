package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/db"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/repository"
	"github.com/alexanderramin/bittrack/internal/stats"
	"github.com/google/uuid"
)

type timeService struct {
	repos    repository.Repositories
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTimeService(repos repository.Repositories, uow db.UnitOfWork, observers ...UseCaseObserver) TimeService {
	return &timeService{repos: repos, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *timeService) List(ctx context.Context, req contract.TimeListRequest) (resp *contract.TimeListResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{}
		if req.ProjectID != "" {
			fields["project_id"] = req.ProjectID
		}
		reportUseCase(ctx, s.observer, "time.list", startedAt, err, fields)
	}()

	ds, err := loadDataset(ctx, s.repos)
	if err != nil {
		return nil, err
	}

	entries := ds.TimeEntries
	if req.ProjectID != "" {
		if _, ok := stats.ProjectByID(ds.Projects, req.ProjectID); !ok {
			return nil, fmt.Errorf("project %s: %w", req.ProjectID, repository.ErrNotFound)
		}
		entries = stats.EntriesForProject(entries, req.ProjectID)
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	goal := req.WeeklyGoalMin
	if goal <= 0 {
		goal = stats.DefaultWeeklyGoalMin
	}

	groups := stats.GroupByDay(entries)
	views := make([]contract.DayGroupView, 0, len(groups))
	for _, g := range groups {
		views = append(views, contract.DayGroupView{
			Date:    g.Date,
			Minutes: g.Minutes,
			Entries: entryViews(ds, g.Entries),
		})
	}

	week := stats.FocusInWeek(entries, now)
	return &contract.TimeListResponse{
		Groups:        views,
		TodayMin:      stats.FocusOnDay(entries, now),
		WeekMin:       week,
		TotalMin:      stats.TotalDuration(entries),
		WeeklyGoalMin: goal,
		WeeklyGoalPct: stats.WeeklyGoalPct(week, goal),
	}, nil
}

// Log records a time entry after checking that its project exists and that
// the optional issue belongs to that project.
func (s *timeService) Log(ctx context.Context, req contract.LogTimeRequest) (entry *domain.TimeEntry, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "time.log", startedAt, err, map[string]any{
			"project_id": req.ProjectID,
			"minutes":    req.Minutes,
		})
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry = &domain.TimeEntry{
		ID:          uuid.New().String(),
		ProjectID:   req.ProjectID,
		Description: req.Description,
		Duration:    req.Minutes,
		Date:        req.Date,
		CreatedAt:   time.Now().UTC(),
	}
	if req.IssueID != "" {
		issueID := req.IssueID
		entry.IssueID = &issueID
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepos := repository.NewSQLiteRepositories(tx)

		if _, err := txRepos.Projects.GetByID(ctx, req.ProjectID); err != nil {
			return unknownRef(err, "project", req.ProjectID)
		}
		if entry.IssueID != nil {
			issue, err := txRepos.Issues.GetByID(ctx, *entry.IssueID)
			if err != nil {
				return unknownRef(err, "issue", *entry.IssueID)
			}
			if issue.ProjectID != req.ProjectID {
				return &contract.RequestError{
					Code:    contract.ErrUnknownRef,
					Message: fmt.Sprintf("issue %s belongs to project %s", issue.ID, issue.ProjectID),
				}
			}
		}
		return txRepos.TimeEntries.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// unknownRef turns a not-found lookup into a request error and passes other
// failures through.
func unknownRef(err error, kind, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &contract.RequestError{
			Code:    contract.ErrUnknownRef,
			Message: fmt.Sprintf("unknown %s %s", kind, id),
		}
	}
	return err
}
