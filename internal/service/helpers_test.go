package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/bittrack/internal/repository"
	"github.com/alexanderramin/bittrack/internal/seed"
	"github.com/alexanderramin/bittrack/internal/testutil"
	"github.com/stretchr/testify/require"
)

// refDay is the reference date the default seed's figures are computed for.
var refDay = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func ptrTime(t time.Time) *time.Time { return &t }

// setupSeeded returns an in-memory database holding the embedded default seed.
func setupSeeded(t *testing.T) (*sql.DB, repository.Repositories) {
	t.Helper()
	database := testutil.NewTestDB(t)
	schema, err := seed.Default()
	require.NoError(t, err)

	_, err = NewImportService(testutil.NewTestUoW(database)).ImportSchema(context.Background(), schema)
	require.NoError(t, err)
	return database, repository.NewSQLiteRepositories(database)
}

// recordingObserver keeps every event it receives.
type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}
