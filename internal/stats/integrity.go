package stats

import (
	"fmt"

	"github.com/alexanderramin/bittrack/internal/domain"
)

// Violation is a broken referential or uniqueness rule in a dataset.
type Violation struct {
	Entity string
	ID     string
	Reason string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %s: %s", v.Entity, v.ID, v.Reason)
}

// CheckIntegrity lists every dataset rule violation. The rules are advisory;
// nothing in the dashboard depends on them holding.
func CheckIntegrity(ds *domain.Dataset) []Violation {
	var out []Violation

	projects := make(map[string]bool, len(ds.Projects))
	for _, p := range ds.Projects {
		projects[p.ID] = true
	}
	milestones := make(map[string]bool, len(ds.Milestones))
	for _, m := range ds.Milestones {
		milestones[m.ID] = true
		if !projects[m.ProjectID] {
			out = append(out, Violation{"milestone", m.ID, fmt.Sprintf("unknown project %q", m.ProjectID)})
		}
	}

	for _, i := range ds.Issues {
		if !projects[i.ProjectID] {
			out = append(out, Violation{"issue", i.ID, fmt.Sprintf("unknown project %q", i.ProjectID)})
		}
		if i.MilestoneID != nil && !milestones[*i.MilestoneID] {
			out = append(out, Violation{"issue", i.ID, fmt.Sprintf("unknown milestone %q", *i.MilestoneID)})
		}
		for _, c := range i.Comments {
			if c.IssueID != i.ID {
				out = append(out, Violation{"comment", c.ID, fmt.Sprintf("filed under issue %q but points at %q", i.ID, c.IssueID)})
			}
		}
	}

	for _, e := range ds.TimeEntries {
		if !projects[e.ProjectID] {
			out = append(out, Violation{"time entry", e.ID, fmt.Sprintf("unknown project %q", e.ProjectID)})
		}
		if e.Duration < 0 {
			out = append(out, Violation{"time entry", e.ID, "negative duration"})
		}
	}

	categories := ds.Categories()
	for _, t := range ds.Transactions {
		c, ok := CategoryByID(categories, t.CategoryID)
		switch {
		case !ok:
			out = append(out, Violation{"transaction", t.ID, fmt.Sprintf("unknown category %q", t.CategoryID)})
		case c.Type != t.Type:
			out = append(out, Violation{"transaction", t.ID,
				fmt.Sprintf("%s transaction uses %s category %q", t.Type, c.Type, c.Name)})
		}
		if _, ok := AccountByID(ds.Accounts, t.AccountID); !ok {
			out = append(out, Violation{"transaction", t.ID, fmt.Sprintf("unknown account %q", t.AccountID)})
		}
		if t.Amount < 0 {
			out = append(out, Violation{"transaction", t.ID, "negative amount"})
		}
	}

	defaults := 0
	for _, a := range ds.Accounts {
		if a.IsDefault {
			defaults++
		}
	}
	if defaults > 1 {
		out = append(out, Violation{"wallet", "accounts", fmt.Sprintf("%d accounts marked default", defaults)})
	}

	return out
}
