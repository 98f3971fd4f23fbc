package repository

import "github.com/alexanderramin/bittrack/internal/db"

// Repositories groups one repository per entity over a shared connection.
// Inside a unit of work, build a fresh set from the tx handle.
type Repositories struct {
	Projects     ProjectRepo
	Milestones   MilestoneRepo
	Issues       IssueRepo
	TimeEntries  TimeEntryRepo
	Accounts     AccountRepo
	Transactions TransactionRepo
	Settings     SettingsRepo
	Profile      UserProfileRepo
}

func NewSQLiteRepositories(conn db.DBTX) Repositories {
	return Repositories{
		Projects:     NewSQLiteProjectRepo(conn),
		Milestones:   NewSQLiteMilestoneRepo(conn),
		Issues:       NewSQLiteIssueRepo(conn),
		TimeEntries:  NewSQLiteTimeEntryRepo(conn),
		Accounts:     NewSQLiteAccountRepo(conn),
		Transactions: NewSQLiteTransactionRepo(conn),
		Settings:     NewSQLiteSettingsRepo(conn),
		Profile:      NewSQLiteUserProfileRepo(conn),
	}
}
