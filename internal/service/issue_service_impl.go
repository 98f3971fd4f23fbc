package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/db"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/repository"
	"github.com/alexanderramin/bittrack/internal/stats"
	"github.com/google/uuid"
)

type issueService struct {
	repos    repository.Repositories
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewIssueService(repos repository.Repositories, uow db.UnitOfWork, observers ...UseCaseObserver) IssueService {
	return &issueService{repos: repos, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *issueService) DueSoon(ctx context.Context, req contract.DueSoonRequest) (resp *contract.DueSoonResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "issue.due_soon", startedAt, err, map[string]any{"limit": req.Limit})
	}()

	limit := req.Limit
	if limit <= 0 {
		limit = stats.DefaultDueSoonLimit
	}
	ds, err := loadDataset(ctx, s.repos)
	if err != nil {
		return nil, err
	}

	asOf := time.Now()
	if req.Now != nil {
		asOf = *req.Now
	}
	return &contract.DueSoonResponse{
		AsOf:      asOf,
		Issues:    issueViews(ds, stats.DueSoon(ds.Issues, limit)),
		OpenCount: stats.OpenIssueCount(ds.Issues),
	}, nil
}

// Create adds an open issue. The milestone, when given, must belong to the
// same project.
func (s *issueService) Create(ctx context.Context, req contract.NewIssueRequest) (issue *domain.Issue, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "issue.create", startedAt, err, map[string]any{"project_id": req.ProjectID})
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	issue = &domain.Issue{
		ID:          uuid.New().String(),
		ProjectID:   req.ProjectID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Tags:        append([]string{}, req.Tags...),
		Priority:    domain.PriorityMedium,
		Status:      domain.IssueOpen,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Priority != "" {
		issue.Priority = domain.IssuePriority(req.Priority)
	}
	if req.MilestoneID != "" {
		milestoneID := req.MilestoneID
		issue.MilestoneID = &milestoneID
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepos := repository.NewSQLiteRepositories(tx)

		if _, err := txRepos.Projects.GetByID(ctx, req.ProjectID); err != nil {
			return unknownRef(err, "project", req.ProjectID)
		}
		if issue.MilestoneID != nil {
			m, err := txRepos.Milestones.GetByID(ctx, req.MilestoneID)
			if err != nil {
				return unknownRef(err, "milestone", req.MilestoneID)
			}
			if m.ProjectID != req.ProjectID {
				return &contract.RequestError{
					Code:    contract.ErrUnknownRef,
					Message: fmt.Sprintf("milestone %s belongs to project %s", m.ID, m.ProjectID),
				}
			}
		}
		return txRepos.Issues.Create(ctx, issue)
	})
	if err != nil {
		return nil, err
	}
	return issue, nil
}

func (s *issueService) SetStatus(ctx context.Context, req contract.IssueStatusRequest) (issue *domain.Issue, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "issue.set_status", startedAt, err, map[string]any{
			"issue_id": req.IssueID,
			"status":   req.Status,
		})
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Issues.UpdateStatus(ctx, req.IssueID, domain.IssueStatus(req.Status)); err != nil {
		return nil, unknownRef(err, "issue", req.IssueID)
	}
	return s.repos.Issues.GetByID(ctx, req.IssueID)
}

// Comment appends a comment, signed with the profile name when no author is
// given.
func (s *issueService) Comment(ctx context.Context, req contract.CommentRequest) (comment *domain.Comment, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "issue.comment", startedAt, err, map[string]any{"issue_id": req.IssueID})
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	comment = &domain.Comment{
		ID:        uuid.New().String(),
		IssueID:   req.IssueID,
		Author:    strings.TrimSpace(req.Author),
		Content:   strings.TrimSpace(req.Content),
		CreatedAt: time.Now().UTC(),
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepos := repository.NewSQLiteRepositories(tx)

		if _, err := txRepos.Issues.GetByID(ctx, req.IssueID); err != nil {
			return unknownRef(err, "issue", req.IssueID)
		}
		if comment.Author == "" {
			user, err := txRepos.Profile.Get(ctx)
			if err != nil {
				return fmt.Errorf("loading profile: %w", err)
			}
			comment.Author = user.Name
		}
		return txRepos.Issues.AddComment(ctx, comment)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}
