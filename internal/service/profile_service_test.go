package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Get(t *testing.T) {
	_, repos := setupSeeded(t)

	resp, err := NewProfileService(repos).Get(context.Background(), contract.DashboardRequest{Now: ptrTime(refDay)})
	require.NoError(t, err)

	assert.Equal(t, "John Doe", resp.User.Name)
	assert.Equal(t, domain.Age{Years: 22, Months: 9, Days: 26}, resp.Age)
	assert.Equal(t, refDay, resp.AsOf)
	assert.Equal(t, 2, resp.Projects)
	assert.Equal(t, 1, resp.ActiveProjects)
	assert.Equal(t, 3, resp.OpenIssues)
	assert.Equal(t, 390, resp.LoggedMin)
	assert.Equal(t, int64(93500), resp.NetWorth)
}

func TestProfileService_Birthday(t *testing.T) {
	_, repos := setupSeeded(t)
	birthday := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	resp, err := NewProfileService(repos).Get(context.Background(), contract.DashboardRequest{Now: &birthday})
	require.NoError(t, err)
	assert.Equal(t, domain.Age{Years: 23}, resp.Age)
}

func TestCheckService_Run(t *testing.T) {
	_, repos := setupSeeded(t)
	svc := NewCheckService(repos)
	ctx := context.Background()

	resp, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, resp.Violations)
	assert.Equal(t, 4, resp.Counts.Transactions)

	require.NoError(t, repos.Transactions.Create(ctx, &domain.Transaction{
		ID:         "orphan",
		Type:       domain.TransactionExpense,
		Amount:     100,
		CategoryID: "404",
		AccountID:  "acc1",
		Date:       refDay,
		CreatedAt:  refDay,
	}))

	resp, err = svc.Run(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Violations, 1)
	assert.Contains(t, resp.Violations[0], "orphan")
}
