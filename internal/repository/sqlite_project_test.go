package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("E-commerce Platform",
		testutil.WithTags("React", "Node.js"),
		testutil.WithBudget(500000),
		testutil.WithLink("Repo", "https://github.com/example/shop"),
		testutil.WithLink("Staging", "https://staging.example.com"),
	)
	require.NoError(t, repo.Create(ctx, proj))

	got, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.Title, got.Title)
	assert.Equal(t, domain.ProjectActive, got.Status)
	assert.Equal(t, []string{"React", "Node.js"}, got.Tags)
	assert.Equal(t, int64(500000), got.Budget)
	require.Len(t, got.Links, 2)
	assert.Equal(t, "Repo", got.Links[0].Title)
	assert.Equal(t, "Staging", got.Links[1].Title)
	assert.True(t, proj.CreatedAt.Equal(got.CreatedAt))
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_ListKeepsInsertionOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	titles := []string{"Zeta", "Alpha", "Mu"}
	for _, title := range titles {
		require.NoError(t, repo.Create(ctx, testutil.NewTestProject(title, testutil.WithLink("Docs", "https://docs"))))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, p := range list {
		assert.Equal(t, titles[i], p.Title)
		assert.Len(t, p.Links, 1)
	}
}

func TestProjectRepo_UpdateReplacesLinks(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Mobile App", testutil.WithLink("Old", "https://old"))
	require.NoError(t, repo.Create(ctx, proj))

	proj.Status = domain.ProjectCompleted
	proj.Links = []domain.Link{{ID: "l2", Title: "New", URL: "https://new"}}
	require.NoError(t, repo.Update(ctx, proj))

	got, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectCompleted, got.Status)
	require.Len(t, got.Links, 1)
	assert.Equal(t, "New", got.Links[0].Title)
	assert.Equal(t, 1, testutil.CountRows(t, db, "project_links"))
}

func TestProjectRepo_DeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	projects := NewSQLiteProjectRepo(db)
	milestones := NewSQLiteMilestoneRepo(db)
	issues := NewSQLiteIssueRepo(db)

	proj := testutil.NewTestProject("Cascade")
	require.NoError(t, projects.Create(ctx, proj))
	ms := testutil.NewTestMilestone(proj.ID, "MVP")
	require.NoError(t, milestones.Create(ctx, ms))
	issue := testutil.NewTestIssue(proj.ID, "Bug", testutil.WithMilestone(ms.ID), testutil.WithComment("me", "hi"))
	require.NoError(t, issues.Create(ctx, issue))

	require.NoError(t, projects.Delete(ctx, proj.ID))

	_, err := milestones.GetByID(ctx, ms.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = issues.GetByID(ctx, issue.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, testutil.CountRows(t, db, "issue_comments"))
}
