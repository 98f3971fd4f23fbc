package seed

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bittrack/internal/domain"
)

// Convert transforms a validated Schema into a domain dataset.
// Call Validate first; Convert assumes the schema is valid.
func Convert(s *Schema) (*domain.Dataset, error) {
	ds := &domain.Dataset{}

	ds.User.Name = s.User.Name
	if s.User.BirthDate != "" {
		birth, err := ParseDate(s.User.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("parsing user.birth_date: %w", err)
		}
		ds.User.BirthDate = birth
	}

	for _, p := range s.Projects {
		project, err := convertProject(p)
		if err != nil {
			return nil, fmt.Errorf("project %s: %w", p.ID, err)
		}
		ds.Projects = append(ds.Projects, project)
	}

	for _, m := range s.Milestones {
		created, err := ParseDate(m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("milestone %s: %w", m.ID, err)
		}
		due, err := parseOptionalDate(m.DueDate)
		if err != nil {
			return nil, fmt.Errorf("milestone %s: %w", m.ID, err)
		}
		ds.Milestones = append(ds.Milestones, &domain.Milestone{
			ID:          m.ID,
			ProjectID:   m.ProjectID,
			Title:       m.Title,
			Version:     m.Version,
			Budget:      m.Budget,
			Stage:       domain.MilestoneStage(m.Stage),
			Description: m.Description,
			CreatedAt:   created,
			DueDate:     due,
		})
	}

	for _, is := range s.Issues {
		issue, err := convertIssue(is)
		if err != nil {
			return nil, fmt.Errorf("issue %s: %w", is.ID, err)
		}
		ds.Issues = append(ds.Issues, issue)
	}

	for _, e := range s.TimeEntries {
		date, err := ParseDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("time entry %s: %w", e.ID, err)
		}
		created, err := parseDateOr(e.CreatedAt, date)
		if err != nil {
			return nil, fmt.Errorf("time entry %s: %w", e.ID, err)
		}
		ds.TimeEntries = append(ds.TimeEntries, &domain.TimeEntry{
			ID:          e.ID,
			ProjectID:   e.ProjectID,
			IssueID:     optionalID(e.IssueID),
			Description: e.Description,
			Duration:    e.Duration,
			Date:        date,
			CreatedAt:   created,
		})
	}

	for _, a := range s.Accounts {
		ds.Accounts = append(ds.Accounts, &domain.WalletAccount{
			ID:        a.ID,
			Name:      a.Name,
			Type:      domain.AccountType(a.Type),
			Balance:   a.Balance,
			IsDefault: a.IsDefault,
		})
	}

	for _, t := range s.Transactions {
		date, err := ParseDate(t.Date)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		created, err := parseDateOr(t.CreatedAt, date)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		ds.Transactions = append(ds.Transactions, &domain.Transaction{
			ID:          t.ID,
			Type:        domain.TransactionType(t.Type),
			Amount:      t.Amount,
			CategoryID:  t.CategoryID,
			AccountID:   t.AccountID,
			Description: t.Description,
			Notes:       t.Notes,
			Date:        date,
			ProjectID:   optionalID(t.ProjectID),
			MilestoneID: optionalID(t.MilestoneID),
			CreatedAt:   created,
		})
	}

	ds.Settings = convertSettings(s.Settings)
	return ds, nil
}

func convertProject(p ProjectSeed) (*domain.Project, error) {
	created, err := ParseDate(p.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := parseDateOr(p.UpdatedAt, created)
	if err != nil {
		return nil, err
	}
	links := make([]domain.Link, 0, len(p.Links))
	for i, l := range p.Links {
		id := l.ID
		if id == "" {
			id = fmt.Sprintf("%s-link%d", p.ID, i+1)
		}
		links = append(links, domain.Link{ID: id, Title: l.Title, URL: l.URL, Description: l.Description})
	}
	return &domain.Project{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Status:         domain.ProjectStatus(p.Status),
		Tags:           nonNilTags(p.Tags),
		Budget:         p.Budget,
		CurrentVersion: p.CurrentVersion,
		Notes:          p.Notes,
		Links:          links,
		CreatedAt:      created,
		UpdatedAt:      updated,
	}, nil
}

func convertIssue(is IssueSeed) (*domain.Issue, error) {
	created, err := ParseDate(is.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := parseDateOr(is.UpdatedAt, created)
	if err != nil {
		return nil, err
	}
	due, err := parseOptionalDate(is.DueDate)
	if err != nil {
		return nil, err
	}
	comments := make([]domain.Comment, 0, len(is.Comments))
	for _, c := range is.Comments {
		at, err := ParseDate(c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("comment %s: %w", c.ID, err)
		}
		comments = append(comments, domain.Comment{
			ID:        c.ID,
			IssueID:   is.ID,
			Author:    c.Author,
			Content:   c.Content,
			CreatedAt: at,
		})
	}
	return &domain.Issue{
		ID:          is.ID,
		ProjectID:   is.ProjectID,
		MilestoneID: optionalID(is.MilestoneID),
		Title:       is.Title,
		Description: is.Description,
		Tags:        nonNilTags(is.Tags),
		Priority:    domain.IssuePriority(is.Priority),
		Status:      domain.IssueStatus(is.Status),
		DueDate:     due,
		CreatedAt:   created,
		UpdatedAt:   updated,
		Comments:    comments,
	}, nil
}

func convertSettings(s SettingsSeed) domain.Settings {
	theme := domain.Theme(s.Theme)
	if theme == "" {
		theme = domain.ThemeSystem
	}
	return domain.Settings{
		Theme:                 theme,
		DefaultPaymentAccount: s.DefaultPaymentAccount,
		IncomeCategories:      convertCategories(s.IncomeCategories, domain.TransactionIncome),
		ExpenseCategories:     convertCategories(s.ExpenseCategories, domain.TransactionExpense),
		Discord: domain.DiscordSettings{
			Enabled:    s.Discord.Enabled,
			WebhookURL: s.Discord.WebhookURL,
			Notifications: domain.DiscordNotifications{
				ProjectCreated:     s.Discord.Notifications.ProjectCreated,
				MilestoneCompleted: s.Discord.Notifications.MilestoneCompleted,
				PaymentReceived:    s.Discord.Notifications.PaymentReceived,
				DailySummary:       s.Discord.Notifications.DailySummary,
			},
		},
	}
}

// convertCategories fills in the list type and a default color.
func convertCategories(cats []CategorySeed, typ domain.TransactionType) []domain.TransactionCategory {
	color := domain.DefaultIncomeColor
	if typ == domain.TransactionExpense {
		color = domain.DefaultExpenseColor
	}
	out := make([]domain.TransactionCategory, 0, len(cats))
	for _, c := range cats {
		cc := c.Color
		if cc == "" {
			cc = color
		}
		out = append(out, domain.TransactionCategory{ID: c.ID, Name: strings.TrimSpace(c.Name), Type: typ, Color: cc})
	}
	return out
}

func optionalID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	v := *id
	return &v
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
