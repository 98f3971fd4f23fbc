package domain

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)

// ProjectStatuses lists project statuses in display order.
var ProjectStatuses = []ProjectStatus{ProjectActive, ProjectCompleted, ProjectArchived}

type MilestoneStage string

const (
	StagePlanned         MilestoneStage = "planned"
	StageWorking         MilestoneStage = "working"
	StageClosed          MilestoneStage = "closed"
	StagePaymentReceived MilestoneStage = "payment-received"
)

// MilestoneStages is the stage progression. No transition order is enforced.
var MilestoneStages = []MilestoneStage{StagePlanned, StageWorking, StageClosed, StagePaymentReceived}

// Rank returns the position of the stage in the progression, or -1 when unknown.
func (s MilestoneStage) Rank() int {
	for i, st := range MilestoneStages {
		if st == s {
			return i
		}
	}
	return -1
}

type IssuePriority string

const (
	PriorityLow      IssuePriority = "low"
	PriorityMedium   IssuePriority = "medium"
	PriorityHigh     IssuePriority = "high"
	PriorityCritical IssuePriority = "critical"
)

// IssuePriorities lists priorities from least to most urgent.
var IssuePriorities = []IssuePriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

type IssueStatus string

const (
	IssueOpen       IssueStatus = "open"
	IssueInProgress IssueStatus = "in-progress"
	IssueClosed     IssueStatus = "closed"
)

var IssueStatuses = []IssueStatus{IssueOpen, IssueInProgress, IssueClosed}

type AccountType string

const (
	AccountCash         AccountType = "cash"
	AccountBank         AccountType = "bank"
	AccountMobileWallet AccountType = "mobile-wallet"
	AccountWithPerson   AccountType = "with-person"
)

var AccountTypes = []AccountType{AccountCash, AccountBank, AccountMobileWallet, AccountWithPerson}

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

var TransactionTypes = []TransactionType{TransactionIncome, TransactionExpense}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

var Themes = []Theme{ThemeLight, ThemeDark, ThemeSystem}

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s string) bool {
	return contains(ProjectStatuses, ProjectStatus(s))
}

// ValidMilestoneStage reports whether s is a known milestone stage.
func ValidMilestoneStage(s string) bool {
	return contains(MilestoneStages, MilestoneStage(s))
}

// ValidIssuePriority reports whether s is a known issue priority.
func ValidIssuePriority(s string) bool {
	return contains(IssuePriorities, IssuePriority(s))
}

// ValidIssueStatus reports whether s is a known issue status.
func ValidIssueStatus(s string) bool {
	return contains(IssueStatuses, IssueStatus(s))
}

// ValidAccountType reports whether s is a known wallet account type.
func ValidAccountType(s string) bool {
	return contains(AccountTypes, AccountType(s))
}

// ValidTransactionType reports whether s is income or expense.
func ValidTransactionType(s string) bool {
	return contains(TransactionTypes, TransactionType(s))
}

// ValidTheme reports whether s is a known theme.
func ValidTheme(s string) bool {
	return contains(Themes, Theme(s))
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
