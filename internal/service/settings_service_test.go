package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_ApplyThenSave(t *testing.T) {
	database, repos := setupSeeded(t)
	svc := NewSettingsService(repos, testutil.NewTestUoW(database))
	ctx := context.Background()

	resp, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, resp.Settings.Theme)
	assert.True(t, resp.Saved)
	assert.Len(t, resp.Accounts, 3)

	resp, err = svc.Apply(ctx, domain.Action{Kind: domain.ActionSetTheme, Theme: domain.ThemeLight})
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, resp.Settings.Theme)
	assert.False(t, resp.Saved)

	stored, err := repos.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, stored.Theme, "apply must not write through")

	resp, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, resp.Settings.Theme)
	assert.False(t, resp.Saved)

	resp, err = svc.Save(ctx)
	require.NoError(t, err)
	assert.True(t, resp.Saved)

	stored, err = repos.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, stored.Theme)
}

func TestSettingsService_Categories(t *testing.T) {
	database, repos := setupSeeded(t)
	svc := NewSettingsService(repos, testutil.NewTestUoW(database))
	ctx := context.Background()

	resp, err := svc.Apply(ctx, domain.Action{
		Kind:         domain.ActionAddCategory,
		CategoryName: "Gifts",
		CategoryType: domain.TransactionIncome,
	})
	require.NoError(t, err)
	require.Len(t, resp.Settings.IncomeCategories, 6)
	added := resp.Settings.IncomeCategories[5]
	assert.Equal(t, "Gifts", added.Name)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, domain.DefaultIncomeColor, added.Color)

	resp, err = svc.Apply(ctx, domain.Action{Kind: domain.ActionRenameCategory, CategoryID: "6", CategoryName: "Groceries"})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", resp.Settings.ExpenseCategories[0].Name)

	resp, err = svc.Apply(ctx, domain.Action{Kind: domain.ActionRemoveCategory, CategoryID: "11"})
	require.NoError(t, err)
	assert.Len(t, resp.Settings.ExpenseCategories, 5)

	_, err = svc.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, 11, testutil.CountRows(t, database, "transaction_categories"))
}

func TestSettingsService_Rejects(t *testing.T) {
	database, repos := setupSeeded(t)
	obs := &recordingObserver{}
	svc := NewSettingsService(repos, testutil.NewTestUoW(database), obs)
	ctx := context.Background()

	tests := []struct {
		name   string
		action domain.Action
		code   contract.RequestErrorCode
	}{
		{"unknown account", domain.Action{Kind: domain.ActionSetPaymentAccount, AccountID: "nope"}, contract.ErrUnknownRef},
		{"unknown category", domain.Action{Kind: domain.ActionRenameCategory, CategoryID: "99", CategoryName: "x"}, contract.ErrUnknownRef},
		{"blank category", domain.Action{Kind: domain.ActionAddCategory, CategoryName: "  ", CategoryType: domain.TransactionExpense}, contract.ErrInvalidInput},
		{"bad theme", domain.Action{Kind: domain.ActionSetTheme, Theme: "neon"}, contract.ErrInvalidInput},
		{"bad notification", domain.Action{Kind: domain.ActionToggleNotification, Notification: "weekly"}, contract.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Apply(ctx, tt.action)
			var reqErr *contract.RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.code, reqErr.Code)
		})
	}

	resp, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, resp.Saved, "rejected actions leave no pending changes")
	assert.Len(t, obs.events, len(tests))
}

func TestSettingsService_PaymentAccountAndDiscord(t *testing.T) {
	database, repos := setupSeeded(t)
	svc := NewSettingsService(repos, testutil.NewTestUoW(database))
	ctx := context.Background()

	_, err := svc.Apply(ctx, domain.Action{Kind: domain.ActionSetPaymentAccount, AccountID: "acc1"})
	require.NoError(t, err)
	_, err = svc.Apply(ctx, domain.Action{Kind: domain.ActionToggleDiscord})
	require.NoError(t, err)
	resp, err := svc.Apply(ctx, domain.Action{Kind: domain.ActionToggleNotification, Notification: domain.NotifyDailySummary})
	require.NoError(t, err)

	assert.Equal(t, "acc1", resp.Settings.DefaultPaymentAccount)
	assert.True(t, resp.Settings.Discord.Enabled)
	assert.True(t, resp.Settings.Discord.Notifications.DailySummary)

	_, err = svc.Save(ctx)
	require.NoError(t, err)
	stored, err := repos.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acc1", stored.DefaultPaymentAccount)
	assert.True(t, stored.Discord.Notifications.DailySummary)
}
