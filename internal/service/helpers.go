package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/alexanderramin/bittrack/internal/repository"
	"github.com/alexanderramin/bittrack/internal/stats"
)

// loadDataset reads every entity list. Reads run one after another because
// the in-memory store serves a single connection.
func loadDataset(ctx context.Context, r repository.Repositories) (*domain.Dataset, error) {
	user, err := r.Profile.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading user profile: %w", err)
	}
	projects, err := r.Projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	milestones, err := r.Milestones.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading milestones: %w", err)
	}
	issues, err := r.Issues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading issues: %w", err)
	}
	entries, err := r.TimeEntries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading time entries: %w", err)
	}
	accounts, err := r.Accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading wallet accounts: %w", err)
	}
	txs, err := r.Transactions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	settings, err := r.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	return &domain.Dataset{
		User:         *user,
		Projects:     projects,
		Milestones:   milestones,
		Issues:       issues,
		TimeEntries:  entries,
		Accounts:     accounts,
		Transactions: txs,
		Settings:     *settings,
	}, nil
}

func countEntities(ds *domain.Dataset) contract.EntityCounts {
	c := contract.EntityCounts{
		Projects:     len(ds.Projects),
		Milestones:   len(ds.Milestones),
		Issues:       len(ds.Issues),
		TimeEntries:  len(ds.TimeEntries),
		Accounts:     len(ds.Accounts),
		Transactions: len(ds.Transactions),
		Categories:   len(ds.Categories()),
	}
	for _, i := range ds.Issues {
		c.Comments += len(i.Comments)
	}
	return c
}

func projectTitle(ds *domain.Dataset, id string) string {
	if p, ok := stats.ProjectByID(ds.Projects, id); ok {
		return p.Title
	}
	return contract.UnknownLabel
}

func milestoneTitle(ds *domain.Dataset, id *string) string {
	if id == nil {
		return ""
	}
	for _, m := range ds.Milestones {
		if m.ID == *id {
			return m.Title
		}
	}
	return contract.UnknownLabel
}

func issueTitle(ds *domain.Dataset, id *string) string {
	if id == nil {
		return ""
	}
	for _, i := range ds.Issues {
		if i.ID == *id {
			return i.Title
		}
	}
	return contract.UnknownLabel
}

func issueViews(ds *domain.Dataset, issues []*domain.Issue) []contract.IssueView {
	views := make([]contract.IssueView, 0, len(issues))
	for _, i := range issues {
		views = append(views, contract.IssueView{
			Issue:          i,
			ProjectTitle:   projectTitle(ds, i.ProjectID),
			MilestoneTitle: milestoneTitle(ds, i.MilestoneID),
		})
	}
	return views
}

func entryViews(ds *domain.Dataset, entries []*domain.TimeEntry) []contract.TimeEntryView {
	views := make([]contract.TimeEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, contract.TimeEntryView{
			Entry:        e,
			ProjectTitle: projectTitle(ds, e.ProjectID),
			IssueTitle:   issueTitle(ds, e.IssueID),
		})
	}
	return views
}

func transactionViews(ds *domain.Dataset, txs []*domain.Transaction) []contract.TransactionView {
	categories := ds.Categories()
	views := make([]contract.TransactionView, 0, len(txs))
	for _, t := range txs {
		v := contract.TransactionView{
			Transaction:  t,
			CategoryName: contract.UnknownLabel,
			AccountName:  contract.UnknownLabel,
		}
		if c, ok := stats.CategoryByID(categories, t.CategoryID); ok {
			v.CategoryName = c.Name
			v.CategoryColor = c.Color
		}
		if a, ok := stats.AccountByID(ds.Accounts, t.AccountID); ok {
			v.AccountName = a.Name
		}
		if t.ProjectID != nil {
			v.ProjectTitle = projectTitle(ds, *t.ProjectID)
		}
		views = append(views, v)
	}
	return views
}

func summarizeProject(ds *domain.Dataset, p *domain.Project) contract.ProjectSummary {
	issues := stats.IssuesForProject(ds.Issues, p.ID)
	return contract.ProjectSummary{
		Project:     p,
		OpenIssues:  stats.OpenIssueCount(issues),
		TotalIssues: len(issues),
		ProgressPct: stats.ProjectProgress(issues),
		Payments:    stats.PaymentSplit(stats.MilestonesForProject(ds.Milestones, p.ID)),
		LoggedMin:   stats.TotalDuration(stats.EntriesForProject(ds.TimeEntries, p.ID)),
	}
}

// recentEntries returns up to n entries, newest date first. Ties keep
// insertion order.
func recentEntries(entries []*domain.TimeEntry, n int) []*domain.TimeEntry {
	out := append([]*domain.TimeEntry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func recentTransactions(txs []*domain.Transaction, n int) []*domain.Transaction {
	out := stats.SortTransactionsByDateDesc(txs)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
