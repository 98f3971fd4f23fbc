package domain

import (
	"fmt"
	"strings"
)

// Default colors assigned to categories created from settings.
const (
	DefaultIncomeColor  = "#10b981"
	DefaultExpenseColor = "#ef4444"
)

type Settings struct {
	Theme                 Theme
	DefaultPaymentAccount string
	IncomeCategories      []TransactionCategory
	ExpenseCategories     []TransactionCategory
	Discord               DiscordSettings
}

type DiscordSettings struct {
	Enabled       bool
	WebhookURL    string
	Notifications DiscordNotifications
}

type DiscordNotifications struct {
	ProjectCreated     bool
	MilestoneCompleted bool
	PaymentReceived    bool
	DailySummary       bool
}

type NotificationKind string

const (
	NotifyProjectCreated     NotificationKind = "project-created"
	NotifyMilestoneCompleted NotificationKind = "milestone-completed"
	NotifyPaymentReceived    NotificationKind = "payment-received"
	NotifyDailySummary       NotificationKind = "daily-summary"
)

var NotificationKinds = []NotificationKind{
	NotifyProjectCreated, NotifyMilestoneCompleted, NotifyPaymentReceived, NotifyDailySummary,
}

// Categories returns income categories followed by expense categories.
func (s Settings) Categories() []TransactionCategory {
	out := make([]TransactionCategory, 0, len(s.IncomeCategories)+len(s.ExpenseCategories))
	out = append(out, s.IncomeCategories...)
	return append(out, s.ExpenseCategories...)
}

// Enabled reports the toggle state of a notification kind.
func (n DiscordNotifications) Enabled(kind NotificationKind) bool {
	switch kind {
	case NotifyProjectCreated:
		return n.ProjectCreated
	case NotifyMilestoneCompleted:
		return n.MilestoneCompleted
	case NotifyPaymentReceived:
		return n.PaymentReceived
	case NotifyDailySummary:
		return n.DailySummary
	}
	return false
}

// clone returns a copy whose category slices do not alias s.
func (s Settings) clone() Settings {
	out := s
	out.IncomeCategories = append([]TransactionCategory(nil), s.IncomeCategories...)
	out.ExpenseCategories = append([]TransactionCategory(nil), s.ExpenseCategories...)
	return out
}

func (s Settings) WithTheme(theme Theme) Settings {
	out := s.clone()
	out.Theme = theme
	return out
}

func (s Settings) WithDefaultPaymentAccount(accountID string) Settings {
	out := s.clone()
	out.DefaultPaymentAccount = accountID
	return out
}

// WithCategoryAdded appends a category of the given type. A blank name leaves
// the settings unchanged.
func (s Settings) WithCategoryAdded(id, name string, typ TransactionType) Settings {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.clone()
	}
	out := s.clone()
	c := TransactionCategory{ID: id, Name: name, Type: typ}
	if typ == TransactionIncome {
		c.Color = DefaultIncomeColor
		out.IncomeCategories = append(out.IncomeCategories, c)
	} else {
		c.Color = DefaultExpenseColor
		out.ExpenseCategories = append(out.ExpenseCategories, c)
	}
	return out
}

// WithCategoryRenamed replaces the name of the category with the given id.
func (s Settings) WithCategoryRenamed(id, name string) Settings {
	out := s.clone()
	for _, list := range [][]TransactionCategory{out.IncomeCategories, out.ExpenseCategories} {
		for i := range list {
			if list[i].ID == id {
				list[i].Name = name
			}
		}
	}
	return out
}

func (s Settings) WithCategoryRemoved(id string) Settings {
	out := s.clone()
	out.IncomeCategories = removeCategory(out.IncomeCategories, id)
	out.ExpenseCategories = removeCategory(out.ExpenseCategories, id)
	return out
}

func (s Settings) WithDiscordToggled() Settings {
	out := s.clone()
	out.Discord.Enabled = !out.Discord.Enabled
	return out
}

func (s Settings) WithNotificationToggled(kind NotificationKind) Settings {
	out := s.clone()
	n := &out.Discord.Notifications
	switch kind {
	case NotifyProjectCreated:
		n.ProjectCreated = !n.ProjectCreated
	case NotifyMilestoneCompleted:
		n.MilestoneCompleted = !n.MilestoneCompleted
	case NotifyPaymentReceived:
		n.PaymentReceived = !n.PaymentReceived
	case NotifyDailySummary:
		n.DailySummary = !n.DailySummary
	}
	return out
}

func removeCategory(list []TransactionCategory, id string) []TransactionCategory {
	out := list[:0]
	for _, c := range list {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

type ActionKind string

const (
	ActionSetTheme           ActionKind = "set-theme"
	ActionSetPaymentAccount  ActionKind = "set-payment-account"
	ActionAddCategory        ActionKind = "add-category"
	ActionRenameCategory     ActionKind = "rename-category"
	ActionRemoveCategory     ActionKind = "remove-category"
	ActionToggleDiscord      ActionKind = "toggle-discord"
	ActionToggleNotification ActionKind = "toggle-notification"
)

// Action is a single settings update. Only the fields relevant to Kind are read.
type Action struct {
	Kind         ActionKind
	Theme        Theme
	AccountID    string
	CategoryID   string
	CategoryName string
	CategoryType TransactionType
	Notification NotificationKind
}

// Apply returns the settings produced by a. The input is never modified.
func Apply(s Settings, a Action) (Settings, error) {
	switch a.Kind {
	case ActionSetTheme:
		if !ValidTheme(string(a.Theme)) {
			return s, fmt.Errorf("unknown theme %q", a.Theme)
		}
		return s.WithTheme(a.Theme), nil
	case ActionSetPaymentAccount:
		return s.WithDefaultPaymentAccount(a.AccountID), nil
	case ActionAddCategory:
		if !ValidTransactionType(string(a.CategoryType)) {
			return s, fmt.Errorf("unknown category type %q", a.CategoryType)
		}
		return s.WithCategoryAdded(a.CategoryID, a.CategoryName, a.CategoryType), nil
	case ActionRenameCategory:
		return s.WithCategoryRenamed(a.CategoryID, a.CategoryName), nil
	case ActionRemoveCategory:
		return s.WithCategoryRemoved(a.CategoryID), nil
	case ActionToggleDiscord:
		return s.WithDiscordToggled(), nil
	case ActionToggleNotification:
		if !contains(NotificationKinds, a.Notification) {
			return s, fmt.Errorf("unknown notification %q", a.Notification)
		}
		return s.WithNotificationToggled(a.Notification), nil
	}
	return s, fmt.Errorf("unknown settings action %q", a.Kind)
}
