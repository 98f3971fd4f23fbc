package testutil

import (
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithTags(tags ...string) ProjectOption {
	return func(p *domain.Project) {
		p.Tags = tags
	}
}

func WithBudget(b int64) ProjectOption {
	return func(p *domain.Project) {
		p.Budget = b
	}
}

func WithDescription(d string) ProjectOption {
	return func(p *domain.Project) {
		p.Description = d
	}
}

func WithLink(title, url string) ProjectOption {
	return func(p *domain.Project) {
		p.Links = append(p.Links, domain.Link{ID: uuid.New().String(), Title: title, URL: url})
	}
}

func NewTestProject(title string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Project{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    domain.ProjectActive,
		Tags:      []string{},
		Links:     []domain.Link{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Milestone options
type MilestoneOption func(*domain.Milestone)

func WithStage(s domain.MilestoneStage) MilestoneOption {
	return func(m *domain.Milestone) {
		m.Stage = s
	}
}

func WithMilestoneBudget(b int64) MilestoneOption {
	return func(m *domain.Milestone) {
		m.Budget = b
	}
}

func WithMilestoneDueDate(d time.Time) MilestoneOption {
	return func(m *domain.Milestone) {
		m.DueDate = &d
	}
}

func NewTestMilestone(projectID, title string, opts ...MilestoneOption) *domain.Milestone {
	m := &domain.Milestone{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Version:   "v1.0",
		Stage:     domain.StagePlanned,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Issue options
type IssueOption func(*domain.Issue)

func WithIssueStatus(s domain.IssueStatus) IssueOption {
	return func(i *domain.Issue) {
		i.Status = s
	}
}

func WithPriority(p domain.IssuePriority) IssueOption {
	return func(i *domain.Issue) {
		i.Priority = p
	}
}

func WithIssueDueDate(d time.Time) IssueOption {
	return func(i *domain.Issue) {
		i.DueDate = &d
	}
}

func WithMilestone(id string) IssueOption {
	return func(i *domain.Issue) {
		i.MilestoneID = &id
	}
}

func WithComment(author, content string) IssueOption {
	return func(i *domain.Issue) {
		i.Comments = append(i.Comments, domain.Comment{
			ID:        uuid.New().String(),
			IssueID:   i.ID,
			Author:    author,
			Content:   content,
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		})
	}
}

func NewTestIssue(projectID, title string, opts ...IssueOption) *domain.Issue {
	now := time.Now().UTC().Truncate(time.Second)
	i := &domain.Issue{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Tags:      []string{},
		Priority:  domain.PriorityMedium,
		Status:    domain.IssueOpen,
		CreatedAt: now,
		UpdatedAt: now,
		Comments:  []domain.Comment{},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Time entry options
type TimeEntryOption func(*domain.TimeEntry)

func WithEntryIssue(id string) TimeEntryOption {
	return func(e *domain.TimeEntry) {
		e.IssueID = &id
	}
}

func WithEntryDescription(d string) TimeEntryOption {
	return func(e *domain.TimeEntry) {
		e.Description = d
	}
}

func NewTestTimeEntry(projectID string, minutes int, date time.Time, opts ...TimeEntryOption) *domain.TimeEntry {
	e := &domain.TimeEntry{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Duration:  minutes,
		Date:      date,
		CreatedAt: date,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewTestAccount(name string, typ domain.AccountType, balance int64, isDefault bool) *domain.WalletAccount {
	return &domain.WalletAccount{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      typ,
		Balance:   balance,
		IsDefault: isDefault,
	}
}

// Transaction options
type TransactionOption func(*domain.Transaction)

func WithTxDescription(d string) TransactionOption {
	return func(t *domain.Transaction) {
		t.Description = d
	}
}

func WithTxMilestone(projectID, milestoneID string) TransactionOption {
	return func(t *domain.Transaction) {
		t.ProjectID = &projectID
		t.MilestoneID = &milestoneID
	}
}

func NewTestTransaction(typ domain.TransactionType, amount int64, categoryID, accountID string, date time.Time, opts ...TransactionOption) *domain.Transaction {
	t := &domain.Transaction{
		ID:         uuid.New().String(),
		Type:       typ,
		Amount:     amount,
		CategoryID: categoryID,
		AccountID:  accountID,
		Date:       date,
		CreatedAt:  date,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestSettings returns settings with one income and one expense category.
func NewTestSettings() domain.Settings {
	return domain.Settings{
		Theme: domain.ThemeSystem,
		IncomeCategories: []domain.TransactionCategory{
			{ID: "inc-1", Name: "Client Payment", Type: domain.TransactionIncome, Color: domain.DefaultIncomeColor},
		},
		ExpenseCategories: []domain.TransactionCategory{
			{ID: "exp-1", Name: "Software", Type: domain.TransactionExpense, Color: domain.DefaultExpenseColor},
		},
		Discord: domain.DiscordSettings{
			Notifications: domain.DiscordNotifications{ProjectCreated: true},
		},
	}
}
