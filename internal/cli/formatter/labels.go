package formatter

import (
	"strings"

	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label is the display form of an enum value.
type Label struct {
	Text  string
	Icon  string
	Style lipgloss.Style
}

func (l Label) Render() string {
	if l.Icon == "" {
		return l.Style.Render(l.Text)
	}
	return l.Style.Render(l.Icon + " " + l.Text)
}

var titleCaser = cases.Title(language.English)

// Title turns a kebab-case enum value into a title-cased label:
// "payment-received" becomes "Payment Received".
func Title(raw string) string {
	return titleCaser.String(strings.ReplaceAll(raw, "-", " "))
}

func label(raw, icon string, style lipgloss.Style) Label {
	return Label{Text: Title(raw), Icon: icon, Style: style}
}

var projectStatusLabels = map[domain.ProjectStatus]Label{
	domain.ProjectActive:    label(string(domain.ProjectActive), "●", StyleGreen),
	domain.ProjectCompleted: label(string(domain.ProjectCompleted), "✔", StyleBlue),
	domain.ProjectArchived:  label(string(domain.ProjectArchived), "✖", StyleDim),
}

var milestoneStageLabels = map[domain.MilestoneStage]Label{
	domain.StagePlanned:         label(string(domain.StagePlanned), "○", StyleDim),
	domain.StageWorking:         label(string(domain.StageWorking), "●", StyleBlue),
	domain.StageClosed:          label(string(domain.StageClosed), "✔", StyleYellow),
	domain.StagePaymentReceived: label(string(domain.StagePaymentReceived), "$", StyleGreen),
}

var issuePriorityLabels = map[domain.IssuePriority]Label{
	domain.PriorityLow:      label(string(domain.PriorityLow), "", StyleDim),
	domain.PriorityMedium:   label(string(domain.PriorityMedium), "", StyleBlue),
	domain.PriorityHigh:     label(string(domain.PriorityHigh), "", StyleOrange),
	domain.PriorityCritical: label(string(domain.PriorityCritical), "▲", StyleRed),
}

var issueStatusLabels = map[domain.IssueStatus]Label{
	domain.IssueOpen:       label(string(domain.IssueOpen), "○", StyleGreen),
	domain.IssueInProgress: label(string(domain.IssueInProgress), "●", StyleYellow),
	domain.IssueClosed:     label(string(domain.IssueClosed), "✔", StyleDim),
}

var accountTypeLabels = map[domain.AccountType]Label{
	domain.AccountCash:         label(string(domain.AccountCash), "", StyleGreen),
	domain.AccountBank:         label(string(domain.AccountBank), "", StyleBlue),
	domain.AccountMobileWallet: label(string(domain.AccountMobileWallet), "", StylePurple),
	domain.AccountWithPerson:   label(string(domain.AccountWithPerson), "", StyleYellow),
}

var transactionTypeLabels = map[domain.TransactionType]Label{
	domain.TransactionIncome:  label(string(domain.TransactionIncome), "↑", StyleGreen),
	domain.TransactionExpense: label(string(domain.TransactionExpense), "↓", StyleRed),
}

var themeLabels = map[domain.Theme]Label{
	domain.ThemeLight:  label(string(domain.ThemeLight), "☀", StyleYellow),
	domain.ThemeDark:   label(string(domain.ThemeDark), "☾", StylePurple),
	domain.ThemeSystem: label(string(domain.ThemeSystem), "◐", StyleBlue),
}

// lookupLabel falls back to the dimmed raw value for anything not in table.
func lookupLabel[K ~string](table map[K]Label, key K) Label {
	if l, ok := table[key]; ok {
		return l
	}
	return Label{Text: string(key), Style: StyleDim}
}

func ProjectStatusLabel(s domain.ProjectStatus) Label   { return lookupLabel(projectStatusLabels, s) }
func MilestoneStageLabel(s domain.MilestoneStage) Label { return lookupLabel(milestoneStageLabels, s) }
func IssuePriorityLabel(p domain.IssuePriority) Label   { return lookupLabel(issuePriorityLabels, p) }
func IssueStatusLabel(s domain.IssueStatus) Label       { return lookupLabel(issueStatusLabels, s) }
func AccountTypeLabel(t domain.AccountType) Label       { return lookupLabel(accountTypeLabels, t) }
func TransactionTypeLabel(t domain.TransactionType) Label {
	return lookupLabel(transactionTypeLabels, t)
}
func ThemeLabel(t domain.Theme) Label { return lookupLabel(themeLabels, t) }

// StatusPill returns a colored status indicator for project status.
func StatusPill(status domain.ProjectStatus) string {
	return ProjectStatusLabel(status).Render()
}

// Tags renders a tag list as dimmed #tag words.
func Tags(tags []string) string {
	if len(tags) == 0 {
		return Dim("--")
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "#" + t
	}
	return StylePurple.Render(strings.Join(parts, " "))
}
