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

func TestAnalyticsService_Get(t *testing.T) {
	_, repos := setupSeeded(t)
	req := contract.NewAnalyticsRequest()
	req.Now = ptrTime(refDay)
	req.Months = 3

	resp, err := NewAnalyticsService(repos).Get(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Months, 3)
	last := resp.Months[2]
	assert.Equal(t, 2025, last.Year)
	assert.Equal(t, time.January, last.Month)
	assert.Equal(t, int64(205000), last.Income)
	assert.Equal(t, int64(4700), last.Expenses)
	assert.Equal(t, time.November, resp.Months[0].Month)
	assert.Zero(t, resp.Months[0].Income)

	require.Len(t, resp.DailyFocus, 7)
	assert.Equal(t, 180, resp.DailyFocus[6].Minutes)
	assert.Equal(t, 390, resp.FocusTotal)

	require.Len(t, resp.Priorities, 4)
	assert.Equal(t, domain.PriorityCritical, resp.Priorities[0].Priority)
	assert.Equal(t, 1, resp.Priorities[0].Open)
	assert.Equal(t, 0, resp.Priorities[3].Open)

	require.Len(t, resp.Tags, 6)
	assert.Equal(t, "ecommerce", resp.Tags[0].Tag)

	assert.Equal(t, []contract.StatusCount{
		{Status: domain.ProjectActive, Count: 1},
		{Status: domain.ProjectCompleted, Count: 1},
		{Status: domain.ProjectArchived, Count: 0},
	}, resp.StatusCounts)
	assert.Equal(t, int64(200000), resp.Payments.Received)
	assert.Equal(t, int64(230000), resp.Payments.Pending)
}

func TestAnalyticsService_DefaultsWindow(t *testing.T) {
	_, repos := setupSeeded(t)

	resp, err := NewAnalyticsService(repos).Get(context.Background(), contract.AnalyticsRequest{Now: ptrTime(refDay)})
	require.NoError(t, err)
	assert.Len(t, resp.Months, 6)
	assert.Len(t, resp.DailyFocus, 7)
}
