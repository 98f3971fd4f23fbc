package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/db"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/repository"
	"github.com/alexanderramin/bittrack/internal/stats"
	"github.com/google/uuid"
)

type settingsService struct {
	repos    repository.Repositories
	uow      db.UnitOfWork
	observer UseCaseObserver

	mu    sync.Mutex
	draft *domain.Settings
}

func NewSettingsService(repos repository.Repositories, uow db.UnitOfWork, observers ...UseCaseObserver) SettingsService {
	return &settingsService{repos: repos, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *settingsService) Get(ctx context.Context) (*contract.SettingsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return s.response(ctx, *current, s.draft == nil)
}

// Apply runs one reducer over the working copy. Added categories get a fresh
// id, and a payment account must name an existing wallet account.
func (s *settingsService) Apply(ctx context.Context, action domain.Action) (resp *contract.SettingsResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "settings.apply", startedAt, err, map[string]any{"action": string(action.Kind)})
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	switch action.Kind {
	case domain.ActionAddCategory:
		if strings.TrimSpace(action.CategoryName) == "" {
			return nil, &contract.RequestError{Code: contract.ErrInvalidInput, Message: "category name is required"}
		}
		if action.CategoryID == "" {
			action.CategoryID = uuid.New().String()
		}
	case domain.ActionRenameCategory, domain.ActionRemoveCategory:
		if _, ok := stats.CategoryByID(current.Categories(), action.CategoryID); !ok {
			return nil, &contract.RequestError{Code: contract.ErrUnknownRef, Message: "unknown category " + action.CategoryID}
		}
	case domain.ActionSetPaymentAccount:
		if _, err := s.repos.Accounts.GetByID(ctx, action.AccountID); err != nil {
			return nil, unknownRef(err, "wallet account", action.AccountID)
		}
	}

	next, err := domain.Apply(*current, action)
	if err != nil {
		return nil, &contract.RequestError{Code: contract.ErrInvalidInput, Message: err.Error()}
	}
	s.draft = &next
	return s.response(ctx, next, false)
}

// Save writes the working copy. Saving with no pending changes is a no-op.
func (s *settingsService) Save(ctx context.Context) (resp *contract.SettingsResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "settings.save", startedAt, err, nil)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft != nil {
		draft := *s.draft
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLiteSettingsRepo(tx).Save(ctx, &draft)
		})
		if err != nil {
			return nil, fmt.Errorf("saving settings: %w", err)
		}
		s.draft = nil
	}

	current, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return s.response(ctx, *current, true)
}

// current returns the working copy, or the stored settings when no change is
// pending. Callers hold s.mu.
func (s *settingsService) current(ctx context.Context) (*domain.Settings, error) {
	if s.draft != nil {
		return s.draft, nil
	}
	stored, err := s.repos.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return stored, nil
}

func (s *settingsService) response(ctx context.Context, settings domain.Settings, saved bool) (*contract.SettingsResponse, error) {
	accounts, err := s.repos.Accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading wallet accounts: %w", err)
	}
	return &contract.SettingsResponse{Settings: settings, Accounts: accounts, Saved: saved}, nil
}
