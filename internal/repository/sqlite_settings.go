package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/bittrack/internal/db"
	"github.com/alexanderramin/bittrack/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo. The settings row is a
// singleton; categories are replaced wholesale on every Save.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT theme, default_payment_account, discord_enabled, discord_webhook_url,
		notify_project_created, notify_milestone_done, notify_payment_received, notify_daily_summary
		FROM settings WHERE id = 'default'`

	var s domain.Settings
	var theme string
	var enabled, created, milestone, payment, daily int
	err := r.db.QueryRowContext(ctx, query).Scan(
		&theme, &s.DefaultPaymentAccount, &enabled, &s.Discord.WebhookURL,
		&created, &milestone, &payment, &daily,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	s.Theme = domain.Theme(theme)
	s.Discord.Enabled = intToBool(enabled)
	s.Discord.Notifications = domain.DiscordNotifications{
		ProjectCreated:     intToBool(created),
		MilestoneCompleted: intToBool(milestone),
		PaymentReceived:    intToBool(payment),
		DailySummary:       intToBool(daily),
	}

	categories, err := r.listCategories(ctx)
	if err != nil {
		return nil, err
	}
	s.IncomeCategories = []domain.TransactionCategory{}
	s.ExpenseCategories = []domain.TransactionCategory{}
	for _, c := range categories {
		if c.Type == domain.TransactionIncome {
			s.IncomeCategories = append(s.IncomeCategories, c)
		} else {
			s.ExpenseCategories = append(s.ExpenseCategories, c)
		}
	}
	return &s, nil
}

func (r *SQLiteSettingsRepo) Save(ctx context.Context, s *domain.Settings) error {
	n := s.Discord.Notifications
	query := `INSERT OR REPLACE INTO settings (id, theme, default_payment_account, discord_enabled,
		discord_webhook_url, notify_project_created, notify_milestone_done, notify_payment_received,
		notify_daily_summary) VALUES ('default', ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(s.Theme),
		s.DefaultPaymentAccount,
		boolToInt(s.Discord.Enabled),
		s.Discord.WebhookURL,
		boolToInt(n.ProjectCreated),
		boolToInt(n.MilestoneCompleted),
		boolToInt(n.PaymentReceived),
		boolToInt(n.DailySummary),
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM transaction_categories`); err != nil {
		return fmt.Errorf("clearing categories: %w", err)
	}
	for i, c := range s.Categories() {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO transaction_categories (id, name, type, color, order_index) VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.Name, string(c.Type), c.Color, i,
		)
		if err != nil {
			return fmt.Errorf("saving category %q: %w", c.Name, err)
		}
	}
	return nil
}

func (r *SQLiteSettingsRepo) listCategories(ctx context.Context) ([]domain.TransactionCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, type, color FROM transaction_categories ORDER BY order_index`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var out []domain.TransactionCategory
	for rows.Next() {
		var c domain.TransactionCategory
		var typ string
		if err := rows.Scan(&c.ID, &c.Name, &typ, &c.Color); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		c.Type = domain.TransactionType(typ)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return out, nil
}
