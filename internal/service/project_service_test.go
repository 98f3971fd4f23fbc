package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_ListFilters(t *testing.T) {
	_, repos := setupSeeded(t)
	svc := NewProjectService(repos)
	ctx := context.Background()

	tests := []struct {
		name string
		req  contract.ProjectListRequest
		want []string
	}{
		{"everything", contract.ProjectListRequest{}, []string{"proj1", "proj2"}},
		{"status all", contract.ProjectListRequest{Status: "all"}, []string{"proj1", "proj2"}},
		{"by status", contract.ProjectListRequest{Status: "completed"}, []string{"proj2"}},
		{"by tag", contract.ProjectListRequest{Query: "SAAS"}, []string{"proj1"}},
		{"by description", contract.ProjectListRequest{Query: "react native"}, []string{"proj2"}},
		{"query and status", contract.ProjectListRequest{Query: "web", Status: "completed"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.List(ctx, tt.req)
			require.NoError(t, err)
			ids := []string{}
			for _, p := range resp.Projects {
				ids = append(ids, p.Project.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, 2, resp.Total)
		})
	}
}

func TestProjectService_ListRejectsUnknownStatus(t *testing.T) {
	_, repos := setupSeeded(t)
	_, err := NewProjectService(repos).List(context.Background(), contract.ProjectListRequest{Status: "paused"})

	var reqErr *contract.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, contract.ErrInvalidInput, reqErr.Code)
}

func TestProjectService_ListSummaries(t *testing.T) {
	_, repos := setupSeeded(t)
	resp, err := NewProjectService(repos).List(context.Background(), contract.ProjectListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Projects, 2)

	proj1 := resp.Projects[0]
	assert.Equal(t, 3, proj1.OpenIssues)
	assert.Equal(t, 3, proj1.TotalIssues)
	assert.Equal(t, 0.0, proj1.ProgressPct)
	assert.Equal(t, int64(0), proj1.Payments.Received)
	assert.Equal(t, int64(230000), proj1.Payments.Pending)
	assert.Equal(t, 270, proj1.LoggedMin)

	proj2 := resp.Projects[1]
	assert.Equal(t, 0, proj2.OpenIssues)
	assert.Equal(t, 100.0, proj2.ProgressPct)
	assert.Equal(t, int64(200000), proj2.Payments.Received)
	assert.Equal(t, 120, proj2.LoggedMin)
}

func TestProjectService_Show(t *testing.T) {
	_, repos := setupSeeded(t)
	svc := NewProjectService(repos)

	resp, err := svc.Show(context.Background(), "proj1")
	require.NoError(t, err)

	assert.Equal(t, "TechStartup Website", resp.Summary.Project.Title)
	require.Len(t, resp.Milestones, 2)
	assert.Equal(t, "mile1", resp.Milestones[0].Milestone.ID)
	assert.Equal(t, 2, resp.Milestones[0].Progress.Total)
	assert.Equal(t, 0, resp.Milestones[0].Progress.Completed)
	assert.Equal(t, 1, resp.Milestones[1].Progress.Total)
	assert.Len(t, resp.Issues, 3)
	assert.Len(t, resp.RecentEntries, 2)
	assert.Empty(t, resp.Payments)

	resp, err = svc.Show(context.Background(), "proj2")
	require.NoError(t, err)
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, "trans1", resp.Payments[0].Transaction.ID)
	assert.Equal(t, "Freelance", resp.Payments[0].CategoryName)
	assert.Equal(t, "with Father", resp.Payments[0].AccountName)
	assert.Equal(t, "E-commerce Mobile App", resp.Payments[0].ProjectTitle)
	assert.Equal(t, domain.StagePaymentReceived, resp.Milestones[0].Milestone.Stage)
	assert.Equal(t, 100.0, resp.Milestones[0].Progress.Pct)
}

func TestProjectService_ShowUnknown(t *testing.T) {
	_, repos := setupSeeded(t)
	obs := &recordingObserver{}

	_, err := NewProjectService(repos, obs).Show(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, "nope", obs.events[0].Fields["project_id"])
}

func TestProjectService_SetMilestoneStage(t *testing.T) {
	_, repos := setupSeeded(t)
	svc := NewProjectService(repos)
	ctx := context.Background()

	view, err := svc.SetMilestoneStage(ctx, contract.MilestoneStageRequest{MilestoneID: "mile1", Stage: "payment-received"})
	require.NoError(t, err)
	assert.Equal(t, domain.StagePaymentReceived, view.Milestone.Stage)
	assert.Equal(t, 2, view.Progress.Total)

	detail, err := svc.Show(ctx, "proj1")
	require.NoError(t, err)
	assert.Equal(t, int64(150000), detail.Summary.Payments.Received)
	assert.Equal(t, int64(80000), detail.Summary.Payments.Pending)

	_, err = svc.SetMilestoneStage(ctx, contract.MilestoneStageRequest{MilestoneID: "mile1", Stage: "shipped"})
	assert.Error(t, err)
	_, err = svc.SetMilestoneStage(ctx, contract.MilestoneStageRequest{MilestoneID: "mile9", Stage: "closed"})
	assert.Error(t, err)
}
