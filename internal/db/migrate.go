package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates every table the dashboard reads from. Statements are
// idempotent so Migrate may run more than once against the same database.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Tables lists the tables created by Migrate, in creation order.
var Tables = []string{
	"projects",
	"project_links",
	"milestones",
	"issues",
	"issue_comments",
	"time_entries",
	"wallet_accounts",
	"transaction_categories",
	"transactions",
	"settings",
	"user_profile",
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'active'
		                CHECK(status IN ('active','completed','archived')),
		tags            TEXT NOT NULL DEFAULT '[]',
		budget          INTEGER NOT NULL DEFAULT 0,
		current_version TEXT NOT NULL DEFAULT '',
		notes           TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS project_links (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		url         TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_project_links_project ON project_links(project_id)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		version     TEXT NOT NULL DEFAULT '',
		budget      INTEGER NOT NULL DEFAULT 0,
		stage       TEXT NOT NULL DEFAULT 'planned'
		            CHECK(stage IN ('planned','working','closed','payment-received')),
		description TEXT NOT NULL DEFAULT '',
		due_date    TEXT,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_milestones_project ON milestones(project_id)`,

	`CREATE TABLE IF NOT EXISTS issues (
		id           TEXT PRIMARY KEY,
		project_id   TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		milestone_id TEXT REFERENCES milestones(id) ON DELETE SET NULL,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		tags         TEXT NOT NULL DEFAULT '[]',
		priority     TEXT NOT NULL DEFAULT 'medium'
		             CHECK(priority IN ('low','medium','high','critical')),
		status       TEXT NOT NULL DEFAULT 'open'
		             CHECK(status IN ('open','in-progress','closed')),
		due_date     TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_issues_project ON issues(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_issues_status ON issues(status)`,

	`CREATE TABLE IF NOT EXISTS issue_comments (
		id         TEXT PRIMARY KEY,
		issue_id   TEXT NOT NULL REFERENCES issues(id) ON DELETE CASCADE,
		author     TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_issue_comments_issue ON issue_comments(issue_id)`,

	`CREATE TABLE IF NOT EXISTS time_entries (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		issue_id    TEXT REFERENCES issues(id) ON DELETE SET NULL,
		description TEXT NOT NULL DEFAULT '',
		duration    INTEGER NOT NULL CHECK(duration >= 0),
		entry_date  TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_time_entries_date ON time_entries(entry_date)`,

	`CREATE TABLE IF NOT EXISTS wallet_accounts (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		type        TEXT NOT NULL
		            CHECK(type IN ('cash','bank','mobile-wallet','with-person')),
		balance     INTEGER NOT NULL DEFAULT 0,
		is_default  INTEGER NOT NULL DEFAULT 0,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS transaction_categories (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		type        TEXT NOT NULL CHECK(type IN ('income','expense')),
		color       TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS transactions (
		id           TEXT PRIMARY KEY,
		type         TEXT NOT NULL CHECK(type IN ('income','expense')),
		amount       INTEGER NOT NULL CHECK(amount >= 0),
		category_id  TEXT NOT NULL,
		account_id   TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		notes        TEXT NOT NULL DEFAULT '',
		tx_date      TEXT NOT NULL,
		project_id   TEXT,
		milestone_id TEXT,
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(tx_date)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id                       TEXT PRIMARY KEY CHECK(id = 'default'),
		theme                    TEXT NOT NULL DEFAULT 'system'
		                         CHECK(theme IN ('light','dark','system')),
		default_payment_account  TEXT NOT NULL DEFAULT '',
		discord_enabled          INTEGER NOT NULL DEFAULT 0,
		discord_webhook_url      TEXT NOT NULL DEFAULT '',
		notify_project_created   INTEGER NOT NULL DEFAULT 1,
		notify_milestone_done    INTEGER NOT NULL DEFAULT 1,
		notify_payment_received  INTEGER NOT NULL DEFAULT 1,
		notify_daily_summary     INTEGER NOT NULL DEFAULT 0
	)`,
	`INSERT OR IGNORE INTO settings (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id         TEXT PRIMARY KEY CHECK(id = 'default'),
		name       TEXT NOT NULL DEFAULT '',
		birth_date TEXT
	)`,
	`INSERT OR IGNORE INTO user_profile (id) VALUES ('default')`,
}
