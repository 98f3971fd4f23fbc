package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string { return &s }

func validMinimalSchema() *Schema {
	return &Schema{
		User: UserSeed{Name: "Test User", BirthDate: "2000-01-01"},
		Projects: []ProjectSeed{
			{ID: "p1", Title: "Project", Status: "active", CreatedAt: "2025-01-01"},
		},
		Milestones: []MilestoneSeed{
			{ID: "m1", ProjectID: "p1", Title: "MVP", Stage: "planned", CreatedAt: "2025-01-01"},
		},
		Issues: []IssueSeed{
			{ID: "i1", ProjectID: "p1", MilestoneID: ptrStr("m1"), Title: "Bug", Priority: "low", Status: "open", CreatedAt: "2025-01-02"},
		},
		Accounts: []AccountSeed{{ID: "a1", Name: "Cash", Type: "cash", IsDefault: true}},
		Settings: SettingsSeed{Theme: "light"},
	}
}

func TestDefault_IsValid(t *testing.T) {
	schema, err := Default()
	require.NoError(t, err)
	assert.Empty(t, Validate(schema))

	ds, err := Convert(schema)
	require.NoError(t, err)
	assert.Len(t, ds.Projects, 2)
	assert.Len(t, ds.Milestones, 3)
	assert.Len(t, ds.Issues, 4)
	assert.Len(t, ds.TimeEntries, 3)
	assert.Len(t, ds.Accounts, 3)
	assert.Len(t, ds.Transactions, 4)
	assert.Len(t, ds.Settings.IncomeCategories, 5)
	assert.Len(t, ds.Settings.ExpenseCategories, 6)
	assert.Equal(t, domain.ThemeDark, ds.Settings.Theme)
	assert.Equal(t, time.Date(2002, 3, 15, 0, 0, 0, 0, time.UTC), ds.User.BirthDate)
}

func TestConvert_CommentsInheritIssueID(t *testing.T) {
	schema, err := Default()
	require.NoError(t, err)
	ds, err := Convert(schema)
	require.NoError(t, err)

	issue := ds.Issues[0]
	require.Len(t, issue.Comments, 2)
	for _, c := range issue.Comments {
		assert.Equal(t, issue.ID, c.IssueID)
	}
	assert.Equal(t, time.Date(2025, 1, 8, 10, 30, 0, 0, time.UTC), issue.Comments[0].CreatedAt)
}

func TestConvert_DefaultsAndOptionalFields(t *testing.T) {
	ds, err := Build(validMinimalSchema())
	require.NoError(t, err)

	p := ds.Projects[0]
	assert.Equal(t, p.CreatedAt, p.UpdatedAt, "missing updated_at falls back to created_at")
	assert.NotNil(t, p.Tags)
	assert.NotNil(t, p.Links)
	require.NotNil(t, ds.Issues[0].MilestoneID)
	assert.Nil(t, ds.Issues[0].DueDate)
	assert.Equal(t, domain.ThemeLight, ds.Settings.Theme)
}

func TestConvert_CategoryColorsDefaultByType(t *testing.T) {
	s := validMinimalSchema()
	s.Settings.IncomeCategories = []CategorySeed{{ID: "c1", Name: " Salary "}}
	s.Settings.ExpenseCategories = []CategorySeed{{ID: "c2", Name: "Food"}}

	ds, err := Build(s)
	require.NoError(t, err)
	assert.Equal(t, "Salary", ds.Settings.IncomeCategories[0].Name)
	assert.Equal(t, domain.DefaultIncomeColor, ds.Settings.IncomeCategories[0].Color)
	assert.Equal(t, domain.TransactionExpense, ds.Settings.ExpenseCategories[0].Type)
	assert.Equal(t, domain.DefaultExpenseColor, ds.Settings.ExpenseCategories[0].Color)
}

func TestValidate_ValidMinimal(t *testing.T) {
	assert.Empty(t, Validate(validMinimalSchema()))
}

func TestValidate_CollectsEveryError(t *testing.T) {
	s := validMinimalSchema()
	s.Projects = append(s.Projects, ProjectSeed{ID: "p1", Status: "paused", CreatedAt: "yesterday"})
	s.Milestones[0].ProjectID = "ghost"
	s.Issues[0].MilestoneID = ptrStr("ghost")
	s.Issues[0].Comments = []CommentSeed{{ID: "c1", IssueID: "other", Content: "x", CreatedAt: "2025-01-01"}}
	s.TimeEntries = []TimeEntrySeed{{ID: "t1", ProjectID: "p1", Duration: -5, Date: "2025-01-01"}}
	s.Transactions = []TransactionSeed{{ID: "x1", Type: "gift", Amount: -1, Date: "2025-01-01"}}
	s.Settings.Theme = "neon"

	errs := Validate(s)

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	joined := strings.Join(msgs, "\n")
	assert.Contains(t, joined, `duplicate id "p1"`)
	assert.Contains(t, joined, `projects[1].status: invalid value "paused"`)
	assert.Contains(t, joined, "projects[1].title is required")
	assert.Contains(t, joined, "projects[1].created_at")
	assert.Contains(t, joined, `milestones[0].project_id "ghost" references unknown project`)
	assert.Contains(t, joined, `issues[0].milestone_id "ghost" references unknown milestone`)
	assert.Contains(t, joined, "does not match enclosing issue")
	assert.Contains(t, joined, "time_entries[0].duration must be >= 0")
	assert.Contains(t, joined, `transactions[0].type: invalid value "gift"`)
	assert.Contains(t, joined, "transactions[0].amount must be >= 0")
	assert.Contains(t, joined, "transactions[0].category_id is required")
	assert.Contains(t, joined, `settings.theme: invalid value "neon"`)
}

func TestValidate_CategoryTypeMustMatchList(t *testing.T) {
	s := validMinimalSchema()
	s.Settings.IncomeCategories = []CategorySeed{{ID: "c1", Name: "Food", Type: "expense"}}

	errs := Validate(s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "does not match list type")
}

func TestBuild_ReturnsAggregatedError(t *testing.T) {
	s := validMinimalSchema()
	s.Projects[0].Title = ""
	s.Accounts[0].Type = "crypto"

	_, err := Build(s)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errs, 2)
	assert.Contains(t, err.Error(), "seed validation failed (2 errors)")
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`{"projets": []}`))
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"user":{"name":"File User"},"settings":{"theme":"system"}}`), 0o644))

	schema, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "File User", schema.User.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-01-10", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"2025-01-08T10:30:00", time.Date(2025, 1, 8, 10, 30, 0, 0, time.UTC)},
		{"2025-01-08T10:30:00Z", time.Date(2025, 1, 8, 10, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}

	_, err := ParseDate("10/01/2025")
	assert.Error(t, err)
}
