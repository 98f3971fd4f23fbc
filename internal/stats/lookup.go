package stats

import "github.com/alexanderramin/bittrack/internal/domain"

// CategoryByID finds a category by id. ok is false when it does not exist.
func CategoryByID(categories []domain.TransactionCategory, id string) (domain.TransactionCategory, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.TransactionCategory{}, false
}

func AccountByID(accounts []*domain.WalletAccount, id string) (*domain.WalletAccount, bool) {
	for _, a := range accounts {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

func ProjectByID(projects []*domain.Project, id string) (*domain.Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// DefaultAccount returns the first account flagged as default.
func DefaultAccount(accounts []*domain.WalletAccount) (*domain.WalletAccount, bool) {
	for _, a := range accounts {
		if a.IsDefault {
			return a, true
		}
	}
	return nil, false
}

// IssuesForProject returns the issues whose ProjectID is projectID.
func IssuesForProject(issues []*domain.Issue, projectID string) []*domain.Issue {
	out := make([]*domain.Issue, 0)
	for _, i := range issues {
		if i.ProjectID == projectID {
			out = append(out, i)
		}
	}
	return out
}

// MilestonesForProject returns the milestones whose ProjectID is projectID.
func MilestonesForProject(milestones []*domain.Milestone, projectID string) []*domain.Milestone {
	out := make([]*domain.Milestone, 0)
	for _, m := range milestones {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	return out
}

// EntriesForProject returns the time entries recorded against projectID.
func EntriesForProject(entries []*domain.TimeEntry, projectID string) []*domain.TimeEntry {
	out := make([]*domain.TimeEntry, 0)
	for _, e := range entries {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out
}
