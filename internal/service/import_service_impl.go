package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/bittrack/internal/db"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/repository"
	"github.com/alexanderramin/bittrack/internal/seed"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// ImportFile loads a seed file. An empty path selects the embedded default.
func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := seed.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading seed file: %w", err)
	}
	return s.ImportSchema(ctx, schema)
}

func (s *importService) ImportSchema(ctx context.Context, schema *seed.Schema) (*ImportResult, error) {
	ds, err := seed.Build(schema)
	if err != nil {
		return nil, err
	}
	return s.ImportDataset(ctx, ds)
}

// ImportDataset writes every record in one transaction; a failure leaves the
// store untouched.
func (s *importService) ImportDataset(ctx context.Context, ds *domain.Dataset) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{}
		if result != nil {
			fields["projects"] = result.Counts.Projects
			fields["issues"] = result.Counts.Issues
			fields["transactions"] = result.Counts.Transactions
		}
		reportUseCase(ctx, s.observer, "import.dataset", startedAt, err, fields)
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return writeDataset(ctx, repository.NewSQLiteRepositories(tx), ds)
	})
	if err != nil {
		return nil, err
	}
	return &ImportResult{Counts: countEntities(ds)}, nil
}

// writeDataset inserts parents before children so foreign keys hold.
func writeDataset(ctx context.Context, r repository.Repositories, ds *domain.Dataset) error {
	user := ds.User
	if err := r.Profile.Upsert(ctx, &user); err != nil {
		return fmt.Errorf("writing user profile: %w", err)
	}
	for _, p := range ds.Projects {
		if err := r.Projects.Create(ctx, p); err != nil {
			return fmt.Errorf("creating project %q: %w", p.Title, err)
		}
	}
	for _, m := range ds.Milestones {
		if err := r.Milestones.Create(ctx, m); err != nil {
			return fmt.Errorf("creating milestone %q: %w", m.Title, err)
		}
	}
	for _, i := range ds.Issues {
		if err := r.Issues.Create(ctx, i); err != nil {
			return fmt.Errorf("creating issue %q: %w", i.Title, err)
		}
	}
	for _, e := range ds.TimeEntries {
		if err := r.TimeEntries.Create(ctx, e); err != nil {
			return fmt.Errorf("creating time entry %s: %w", e.ID, err)
		}
	}
	for _, a := range ds.Accounts {
		if err := r.Accounts.Create(ctx, a); err != nil {
			return fmt.Errorf("creating wallet account %q: %w", a.Name, err)
		}
	}
	for _, t := range ds.Transactions {
		if err := r.Transactions.Create(ctx, t); err != nil {
			return fmt.Errorf("creating transaction %s: %w", t.ID, err)
		}
	}
	settings := ds.Settings
	if err := r.Settings.Save(ctx, &settings); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
