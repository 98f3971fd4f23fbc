package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepo_CreateListAdjust(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAccountRepo(db)
	ctx := context.Background()

	cash := testutil.NewTestAccount("Cash", domain.AccountCash, 25000, true)
	bank := testutil.NewTestAccount("Meezan Bank", domain.AccountBank, 180000, false)
	require.NoError(t, repo.Create(ctx, cash))
	require.NoError(t, repo.Create(ctx, bank))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Cash", list[0].Name)
	assert.True(t, list[0].IsDefault)
	assert.False(t, list[1].IsDefault)

	require.NoError(t, repo.AdjustBalance(ctx, cash.ID, -30000))
	got, err := repo.GetByID(ctx, cash.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-5000), got.Balance)

	assert.ErrorIs(t, repo.AdjustBalance(ctx, "missing", 1), ErrNotFound)
}

func TestTransactionRepo_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTransactionRepo(db)
	ctx := context.Background()

	date := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	tx := testutil.NewTestTransaction(domain.TransactionIncome, 150000, "1", "acc2", date,
		testutil.WithTxDescription("MVP payment"),
		testutil.WithTxMilestone("proj1", "mile1"),
	)
	require.NoError(t, repo.Create(ctx, tx))

	got, err := repo.GetByID(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), got.Amount)
	assert.Equal(t, "MVP payment", got.Description)
	assert.True(t, got.IsMilestonePayment())
	assert.True(t, date.Equal(got.Date))

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransactionRepo_RejectsNegativeAmount(t *testing.T) {
	repo := NewSQLiteTransactionRepo(testutil.NewTestDB(t))

	tx := testutil.NewTestTransaction(domain.TransactionExpense, -1, "6", "acc1", time.Now())
	assert.Error(t, repo.Create(context.Background(), tx))
}

func TestTimeEntryRepo_KeepsCalendarDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := testutil.NewTestProject("Timed")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))
	repo := NewSQLiteTimeEntryRepo(db)

	karachi := time.FixedZone("PKT", 5*60*60)
	late := time.Date(2025, 1, 10, 23, 30, 0, 0, karachi)
	entry := testutil.NewTestTimeEntry(proj.ID, 90, late, testutil.WithEntryDescription("Late push"))
	require.NoError(t, repo.Create(ctx, entry))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	y, m, d := list[0].Date.Date()
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.January, m)
	assert.Equal(t, 10, d)
	assert.Nil(t, list[0].IssueID)
	assert.Equal(t, 90, list[0].Duration)
}
