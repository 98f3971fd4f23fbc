package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/repository"
	"github.com/alexanderramin/bittrack/internal/stats"
)

type projectService struct {
	repos    repository.Repositories
	observer UseCaseObserver
}

func NewProjectService(repos repository.Repositories, observers ...UseCaseObserver) ProjectService {
	return &projectService{repos: repos, observer: useCaseObserverOrNoop(observers)}
}

func (s *projectService) List(ctx context.Context, req contract.ProjectListRequest) (resp *contract.ProjectListResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{"status": req.Status}
		if resp != nil {
			fields["matched"] = len(resp.Projects)
		}
		reportUseCase(ctx, s.observer, "project.list", startedAt, err, fields)
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	ds, err := loadDataset(ctx, s.repos)
	if err != nil {
		return nil, err
	}

	matched := stats.FilterProjects(ds.Projects, stats.ProjectFilter{Query: req.Query, Status: req.Status})
	summaries := make([]contract.ProjectSummary, 0, len(matched))
	for _, p := range matched {
		summaries = append(summaries, summarizeProject(ds, p))
	}
	return &contract.ProjectListResponse{Projects: summaries, Total: len(ds.Projects)}, nil
}

func (s *projectService) Show(ctx context.Context, id string) (resp *contract.ProjectDetailResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "project.show", startedAt, err, map[string]any{"project_id": id})
	}()

	ds, err := loadDataset(ctx, s.repos)
	if err != nil {
		return nil, err
	}
	project, ok := stats.ProjectByID(ds.Projects, id)
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, repository.ErrNotFound)
	}

	issues := stats.IssuesForProject(ds.Issues, id)
	milestones := stats.MilestonesForProject(ds.Milestones, id)
	views := make([]contract.MilestoneView, 0, len(milestones))
	for _, m := range milestones {
		views = append(views, contract.MilestoneView{
			Milestone: m,
			Progress:  stats.MilestoneProgress(m.ID, issues),
		})
	}

	var payments []*domain.Transaction
	for _, t := range ds.Transactions {
		if t.ProjectID != nil && *t.ProjectID == id {
			payments = append(payments, t)
		}
	}

	return &contract.ProjectDetailResponse{
		Summary:       summarizeProject(ds, project),
		Milestones:    views,
		Issues:        issues,
		RecentEntries: entryViews(ds, recentEntries(stats.EntriesForProject(ds.TimeEntries, id), contract.RecentLimit)),
		Payments:      transactionViews(ds, stats.SortTransactionsByDateDesc(payments)),
	}, nil
}

// SetMilestoneStage moves a milestone to stage. Stages are not forced to
// advance in order; a payment can be undone by moving back to closed.
func (s *projectService) SetMilestoneStage(ctx context.Context, req contract.MilestoneStageRequest) (view *contract.MilestoneView, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "project.milestone_stage", startedAt, err, map[string]any{
			"milestone_id": req.MilestoneID,
			"stage":        req.Stage,
		})
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Milestones.UpdateStage(ctx, req.MilestoneID, domain.MilestoneStage(req.Stage)); err != nil {
		return nil, unknownRef(err, "milestone", req.MilestoneID)
	}

	m, err := s.repos.Milestones.GetByID(ctx, req.MilestoneID)
	if err != nil {
		return nil, err
	}
	issues, err := s.repos.Issues.ListByProject(ctx, m.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}
	return &contract.MilestoneView{Milestone: m, Progress: stats.MilestoneProgress(m.ID, issues)}, nil
}
