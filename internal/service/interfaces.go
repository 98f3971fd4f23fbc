package service

import (
	"context"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/seed"
)

// ImportResult holds the outcome of loading a dataset into the store.
type ImportResult struct {
	Counts contract.EntityCounts
}

type ImportService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *seed.Schema) (*ImportResult, error)
	ImportDataset(ctx context.Context, ds *domain.Dataset) (*ImportResult, error)
}

type DashboardService interface {
	Get(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error)
}

type ProjectService interface {
	List(ctx context.Context, req contract.ProjectListRequest) (*contract.ProjectListResponse, error)
	Show(ctx context.Context, id string) (*contract.ProjectDetailResponse, error)
	SetMilestoneStage(ctx context.Context, req contract.MilestoneStageRequest) (*contract.MilestoneView, error)
}

type IssueService interface {
	DueSoon(ctx context.Context, req contract.DueSoonRequest) (*contract.DueSoonResponse, error)
	Create(ctx context.Context, req contract.NewIssueRequest) (*domain.Issue, error)
	SetStatus(ctx context.Context, req contract.IssueStatusRequest) (*domain.Issue, error)
	Comment(ctx context.Context, req contract.CommentRequest) (*domain.Comment, error)
}

type TimeService interface {
	List(ctx context.Context, req contract.TimeListRequest) (*contract.TimeListResponse, error)
	Log(ctx context.Context, req contract.LogTimeRequest) (*domain.TimeEntry, error)
}

type WalletService interface {
	Summary(ctx context.Context, req contract.WalletRequest) (*contract.WalletResponse, error)
	Transactions(ctx context.Context, req contract.TransactionListRequest) (*contract.TransactionListResponse, error)
	AddTransaction(ctx context.Context, req contract.AddTransactionRequest) (*contract.AddTransactionResponse, error)
}

type AnalyticsService interface {
	Get(ctx context.Context, req contract.AnalyticsRequest) (*contract.AnalyticsResponse, error)
}

// SettingsService edits a working copy of the settings. Apply changes only
// the working copy; Save writes it to the store.
type SettingsService interface {
	Get(ctx context.Context) (*contract.SettingsResponse, error)
	Apply(ctx context.Context, action domain.Action) (*contract.SettingsResponse, error)
	Save(ctx context.Context) (*contract.SettingsResponse, error)
}

type ProfileService interface {
	Get(ctx context.Context, req contract.DashboardRequest) (*contract.ProfileResponse, error)
}

type CheckService interface {
	Run(ctx context.Context) (*contract.CheckResponse, error)
}
