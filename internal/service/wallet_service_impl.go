package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/db"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/repository"
	"github.com/alexanderramin/bittrack/internal/stats"
	"github.com/google/uuid"
)

type walletService struct {
	repos    repository.Repositories
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewWalletService(repos repository.Repositories, uow db.UnitOfWork, observers ...UseCaseObserver) WalletService {
	return &walletService{repos: repos, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *walletService) Summary(ctx context.Context, req contract.WalletRequest) (resp *contract.WalletResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "wallet.summary", startedAt, err, nil)
	}()

	ds, err := loadDataset(ctx, s.repos)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	resp = &contract.WalletResponse{
		Month:         now,
		Accounts:      ds.Accounts,
		NetWorth:      stats.NetWorth(ds.Accounts),
		MonthIncome:   stats.MonthlyIncome(ds.Transactions, now),
		MonthExpenses: stats.MonthlyExpenses(ds.Transactions, now),
		Recent:        transactionViews(ds, recentTransactions(ds.Transactions, contract.RecentLimit)),
	}
	// The settings choice wins over the account flag.
	if ds.Settings.DefaultPaymentAccount != "" {
		resp.DefaultAccountID = ds.Settings.DefaultPaymentAccount
	} else if acc, ok := stats.DefaultAccount(ds.Accounts); ok {
		resp.DefaultAccountID = acc.ID
	}
	return resp, nil
}

func (s *walletService) Transactions(ctx context.Context, req contract.TransactionListRequest) (resp *contract.TransactionListResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{"type": req.Type}
		if resp != nil {
			fields["matched"] = len(resp.Transactions)
		}
		reportUseCase(ctx, s.observer, "wallet.transactions", startedAt, err, fields)
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	ds, err := loadDataset(ctx, s.repos)
	if err != nil {
		return nil, err
	}

	matched := stats.SortTransactionsByDateDesc(stats.FilterTransactions(ds.Transactions, req.Filter()))
	return &contract.TransactionListResponse{
		Transactions: transactionViews(ds, matched),
		Income:       stats.SumByType(matched, domain.TransactionIncome),
		Expenses:     stats.SumByType(matched, domain.TransactionExpense),
	}, nil
}

// AddTransaction records t and applies it to the account balance in one
// transaction. The category must exist with the same type as t, and a
// milestone must belong to the given project.
func (s *walletService) AddTransaction(ctx context.Context, req contract.AddTransactionRequest) (resp *contract.AddTransactionResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "wallet.add_transaction", startedAt, err, map[string]any{
			"type":       req.Type,
			"amount":     req.Amount,
			"account_id": req.AccountID,
		})
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	t := &domain.Transaction{
		ID:          uuid.New().String(),
		Type:        domain.TransactionType(req.Type),
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		AccountID:   req.AccountID,
		Description: req.Description,
		Notes:       req.Notes,
		Date:        req.Date,
		CreatedAt:   time.Now().UTC(),
	}
	if req.ProjectID != "" {
		projectID := req.ProjectID
		t.ProjectID = &projectID
	}
	if req.MilestoneID != "" {
		milestoneID := req.MilestoneID
		t.MilestoneID = &milestoneID
	}
	delta := t.Amount
	if t.Type == domain.TransactionExpense {
		delta = -delta
	}

	var (
		account  *domain.WalletAccount
		category domain.TransactionCategory
		project  *domain.Project
	)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepos := repository.NewSQLiteRepositories(tx)

		settings, err := txRepos.Settings.Get(ctx)
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		cat, ok := stats.CategoryByID(settings.Categories(), t.CategoryID)
		if !ok {
			return &contract.RequestError{Code: contract.ErrUnknownRef, Message: "unknown category " + t.CategoryID}
		}
		if cat.Type != t.Type {
			return &contract.RequestError{
				Code:    contract.ErrInvalidInput,
				Message: fmt.Sprintf("category %s is for %s, not %s", cat.Name, cat.Type, t.Type),
			}
		}
		category = cat

		if t.ProjectID != nil {
			if project, err = txRepos.Projects.GetByID(ctx, *t.ProjectID); err != nil {
				return unknownRef(err, "project", *t.ProjectID)
			}
		}
		if t.MilestoneID != nil {
			m, err := txRepos.Milestones.GetByID(ctx, *t.MilestoneID)
			if err != nil {
				return unknownRef(err, "milestone", *t.MilestoneID)
			}
			if m.ProjectID != *t.ProjectID {
				return &contract.RequestError{
					Code:    contract.ErrUnknownRef,
					Message: fmt.Sprintf("milestone %s belongs to project %s", m.ID, m.ProjectID),
				}
			}
		}

		if err := txRepos.Accounts.AdjustBalance(ctx, t.AccountID, delta); err != nil {
			return unknownRef(err, "wallet account", t.AccountID)
		}
		if err := txRepos.Transactions.Create(ctx, t); err != nil {
			return err
		}
		account, err = txRepos.Accounts.GetByID(ctx, t.AccountID)
		return err
	})
	if err != nil {
		return nil, err
	}

	view := contract.TransactionView{
		Transaction:   t,
		CategoryName:  category.Name,
		CategoryColor: category.Color,
		AccountName:   account.Name,
	}
	if project != nil {
		view.ProjectTitle = project.Title
	}
	return &contract.AddTransactionResponse{Transaction: view, Balance: account.Balance}, nil
}
