package repository

import (
	"context"

	"github.com/alexanderramin/bittrack/internal/domain"
)

// List methods return rows in insertion order unless stated otherwise.

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	List(ctx context.Context) ([]*domain.Milestone, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Milestone, error)
	UpdateStage(ctx context.Context, id string, stage domain.MilestoneStage) error
}

type IssueRepo interface {
	Create(ctx context.Context, i *domain.Issue) error
	GetByID(ctx context.Context, id string) (*domain.Issue, error)
	List(ctx context.Context) ([]*domain.Issue, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Issue, error)
	UpdateStatus(ctx context.Context, id string, status domain.IssueStatus) error
	AddComment(ctx context.Context, c *domain.Comment) error
}

type TimeEntryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) error
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	List(ctx context.Context) ([]*domain.TimeEntry, error)
}

type AccountRepo interface {
	Create(ctx context.Context, a *domain.WalletAccount) error
	GetByID(ctx context.Context, id string) (*domain.WalletAccount, error)
	List(ctx context.Context) ([]*domain.WalletAccount, error)
	AdjustBalance(ctx context.Context, id string, delta int64) error
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context) ([]*domain.Transaction, error)
}

// SettingsRepo stores the single settings record together with its
// transaction categories.
type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s *domain.Settings) error
}

type UserProfileRepo interface {
	Get(ctx context.Context) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) error
}
