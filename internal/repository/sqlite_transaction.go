package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/bittrack/internal/db"
	"github.com/alexanderramin/bittrack/internal/domain"
)

// SQLiteTransactionRepo implements TransactionRepo using a SQLite database.
// category_id carries no foreign key: removing a category from settings
// leaves its transactions in place.
type SQLiteTransactionRepo struct {
	db db.DBTX
}

func NewSQLiteTransactionRepo(conn db.DBTX) *SQLiteTransactionRepo {
	return &SQLiteTransactionRepo{db: conn}
}

const transactionColumns = `id, type, amount, category_id, account_id, description, notes, tx_date, project_id, milestone_id, created_at`

func (r *SQLiteTransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		string(t.Type),
		t.Amount,
		t.CategoryID,
		t.AccountID,
		t.Description,
		t.Notes,
		t.Date.Format(timeLayout),
		nullableString(t.ProjectID),
		nullableString(t.MilestoneID),
		t.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}
	return nil
}

func (r *SQLiteTransactionRepo) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`
	t, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTransactionRepo) List(ctx context.Context) ([]*domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var out []*domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}
	return out, nil
}

func scanTransaction(row scanner) (*domain.Transaction, error) {
	var t domain.Transaction
	var typ, date, createdAt string
	var projectID, milestoneID sql.NullString

	err := row.Scan(
		&t.ID, &typ, &t.Amount, &t.CategoryID, &t.AccountID, &t.Description, &t.Notes,
		&date, &projectID, &milestoneID, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning transaction: %w", err)
	}
	t.Type = domain.TransactionType(typ)
	t.ProjectID = stringPtr(projectID)
	t.MilestoneID = stringPtr(milestoneID)
	if t.Date, err = parseTime(date, "tx_date"); err != nil {
		return nil, err
	}
	if t.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &t, nil
}
