package seed

import (
	"fmt"

	"github.com/alexanderramin/bittrack/internal/domain"
)

// Validate checks the seed for errors before conversion and returns every
// problem found. Dangling project, milestone and issue references are
// rejected; category and account mismatches on transactions are left to
// the integrity check.
func Validate(s *Schema) []error {
	var errs []error

	errs = append(errs, validateUser(&s.User)...)

	projectIDs := make(map[string]bool)
	errs = append(errs, validateProjects(s.Projects, projectIDs)...)

	milestoneIDs := make(map[string]bool)
	errs = append(errs, validateMilestones(s.Milestones, projectIDs, milestoneIDs)...)

	issueIDs := make(map[string]bool)
	errs = append(errs, validateIssues(s.Issues, projectIDs, milestoneIDs, issueIDs)...)

	errs = append(errs, validateTimeEntries(s.TimeEntries, projectIDs, issueIDs)...)
	errs = append(errs, validateAccounts(s.Accounts)...)
	errs = append(errs, validateTransactions(s.Transactions)...)
	errs = append(errs, validateSettings(&s.Settings)...)

	return errs
}

func validateUser(u *UserSeed) []error {
	if u.BirthDate == "" {
		return nil
	}
	if _, err := ParseDate(u.BirthDate); err != nil {
		return []error{fmt.Errorf("user.birth_date: %w", err)}
	}
	return nil
}

// checkID reports a missing or repeated id and records it in seen.
func checkID(prefix, id string, seen map[string]bool) []error {
	if id == "" {
		return []error{fmt.Errorf("%s.id is required", prefix)}
	}
	if seen[id] {
		return []error{fmt.Errorf("%s: duplicate id %q", prefix, id)}
	}
	seen[id] = true
	return nil
}

func checkDate(field, value string, required bool) []error {
	if value == "" {
		if required {
			return []error{fmt.Errorf("%s is required", field)}
		}
		return nil
	}
	if _, err := ParseDate(value); err != nil {
		return []error{fmt.Errorf("%s: %w", field, err)}
	}
	return nil
}

func checkOptionalDate(field string, value *string) []error {
	if value == nil {
		return nil
	}
	return checkDate(field, *value, false)
}

func validateProjects(projects []ProjectSeed, ids map[string]bool) []error {
	var errs []error
	for i, p := range projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		errs = append(errs, checkID(prefix, p.ID, ids)...)
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if !domain.ValidProjectStatus(p.Status) {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, p.Status))
		}
		if p.Budget < 0 {
			errs = append(errs, fmt.Errorf("%s.budget must be >= 0, got %d", prefix, p.Budget))
		}
		errs = append(errs, checkDate(prefix+".created_at", p.CreatedAt, true)...)
		errs = append(errs, checkDate(prefix+".updated_at", p.UpdatedAt, false)...)
		for j, l := range p.Links {
			if l.Title == "" || l.URL == "" {
				errs = append(errs, fmt.Errorf("%s.links[%d]: title and url are required", prefix, j))
			}
		}
	}
	return errs
}

func validateMilestones(milestones []MilestoneSeed, projectIDs, ids map[string]bool) []error {
	var errs []error
	for i, m := range milestones {
		prefix := fmt.Sprintf("milestones[%d]", i)
		errs = append(errs, checkID(prefix, m.ID, ids)...)
		if !projectIDs[m.ProjectID] {
			errs = append(errs, fmt.Errorf("%s.project_id %q references unknown project", prefix, m.ProjectID))
		}
		if m.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if !domain.ValidMilestoneStage(m.Stage) {
			errs = append(errs, fmt.Errorf("%s.stage: invalid value %q", prefix, m.Stage))
		}
		if m.Budget < 0 {
			errs = append(errs, fmt.Errorf("%s.budget must be >= 0, got %d", prefix, m.Budget))
		}
		errs = append(errs, checkDate(prefix+".created_at", m.CreatedAt, true)...)
		errs = append(errs, checkOptionalDate(prefix+".due_date", m.DueDate)...)
	}
	return errs
}

func validateIssues(issues []IssueSeed, projectIDs, milestoneIDs, ids map[string]bool) []error {
	var errs []error
	commentIDs := make(map[string]bool)
	for i, is := range issues {
		prefix := fmt.Sprintf("issues[%d]", i)
		errs = append(errs, checkID(prefix, is.ID, ids)...)
		if !projectIDs[is.ProjectID] {
			errs = append(errs, fmt.Errorf("%s.project_id %q references unknown project", prefix, is.ProjectID))
		}
		if is.MilestoneID != nil && *is.MilestoneID != "" && !milestoneIDs[*is.MilestoneID] {
			errs = append(errs, fmt.Errorf("%s.milestone_id %q references unknown milestone", prefix, *is.MilestoneID))
		}
		if is.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if !domain.ValidIssuePriority(is.Priority) {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, is.Priority))
		}
		if !domain.ValidIssueStatus(is.Status) {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, is.Status))
		}
		errs = append(errs, checkDate(prefix+".created_at", is.CreatedAt, true)...)
		errs = append(errs, checkDate(prefix+".updated_at", is.UpdatedAt, false)...)
		errs = append(errs, checkOptionalDate(prefix+".due_date", is.DueDate)...)

		for j, c := range is.Comments {
			cp := fmt.Sprintf("%s.comments[%d]", prefix, j)
			errs = append(errs, checkID(cp, c.ID, commentIDs)...)
			if c.IssueID != "" && c.IssueID != is.ID {
				errs = append(errs, fmt.Errorf("%s.issue_id %q does not match enclosing issue %q", cp, c.IssueID, is.ID))
			}
			if c.Content == "" {
				errs = append(errs, fmt.Errorf("%s.content is required", cp))
			}
			errs = append(errs, checkDate(cp+".created_at", c.CreatedAt, true)...)
		}
	}
	return errs
}

func validateTimeEntries(entries []TimeEntrySeed, projectIDs, issueIDs map[string]bool) []error {
	var errs []error
	ids := make(map[string]bool)
	for i, e := range entries {
		prefix := fmt.Sprintf("time_entries[%d]", i)
		errs = append(errs, checkID(prefix, e.ID, ids)...)
		if !projectIDs[e.ProjectID] {
			errs = append(errs, fmt.Errorf("%s.project_id %q references unknown project", prefix, e.ProjectID))
		}
		if e.IssueID != nil && *e.IssueID != "" && !issueIDs[*e.IssueID] {
			errs = append(errs, fmt.Errorf("%s.issue_id %q references unknown issue", prefix, *e.IssueID))
		}
		if e.Duration < 0 {
			errs = append(errs, fmt.Errorf("%s.duration must be >= 0, got %d", prefix, e.Duration))
		}
		errs = append(errs, checkDate(prefix+".date", e.Date, true)...)
		errs = append(errs, checkDate(prefix+".created_at", e.CreatedAt, false)...)
	}
	return errs
}

func validateAccounts(accounts []AccountSeed) []error {
	var errs []error
	ids := make(map[string]bool)
	for i, a := range accounts {
		prefix := fmt.Sprintf("accounts[%d]", i)
		errs = append(errs, checkID(prefix, a.ID, ids)...)
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if !domain.ValidAccountType(a.Type) {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, a.Type))
		}
	}
	return errs
}

func validateTransactions(txs []TransactionSeed) []error {
	var errs []error
	ids := make(map[string]bool)
	for i, t := range txs {
		prefix := fmt.Sprintf("transactions[%d]", i)
		errs = append(errs, checkID(prefix, t.ID, ids)...)
		if !domain.ValidTransactionType(t.Type) {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, t.Type))
		}
		if t.Amount < 0 {
			errs = append(errs, fmt.Errorf("%s.amount must be >= 0, got %d", prefix, t.Amount))
		}
		if t.CategoryID == "" {
			errs = append(errs, fmt.Errorf("%s.category_id is required", prefix))
		}
		if t.AccountID == "" {
			errs = append(errs, fmt.Errorf("%s.account_id is required", prefix))
		}
		errs = append(errs, checkDate(prefix+".date", t.Date, true)...)
		errs = append(errs, checkDate(prefix+".created_at", t.CreatedAt, false)...)
	}
	return errs
}

func validateSettings(s *SettingsSeed) []error {
	var errs []error
	if s.Theme != "" && !domain.ValidTheme(s.Theme) {
		errs = append(errs, fmt.Errorf("settings.theme: invalid value %q", s.Theme))
	}
	ids := make(map[string]bool)
	check := func(field string, cats []CategorySeed, want domain.TransactionType) {
		for i, c := range cats {
			prefix := fmt.Sprintf("settings.%s[%d]", field, i)
			errs = append(errs, checkID(prefix, c.ID, ids)...)
			if c.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", prefix))
			}
			if c.Type != "" && c.Type != string(want) {
				errs = append(errs, fmt.Errorf("%s.type %q does not match list type %q", prefix, c.Type, want))
			}
		}
	}
	check("income_categories", s.IncomeCategories, domain.TransactionIncome)
	check("expense_categories", s.ExpenseCategories, domain.TransactionExpense)
	return errs
}
