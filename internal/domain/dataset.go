package domain

// Dataset is the full set of records the dashboard derives its views from.
type Dataset struct {
	User         User
	Projects     []*Project
	Milestones   []*Milestone
	Issues       []*Issue
	TimeEntries  []*TimeEntry
	Accounts     []*WalletAccount
	Transactions []*Transaction
	Settings     Settings
}

// Categories returns every transaction category known to the settings.
func (d *Dataset) Categories() []TransactionCategory {
	return d.Settings.Categories()
}
