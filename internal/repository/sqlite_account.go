package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/bittrack/internal/db"
	"github.com/alexanderramin/bittrack/internal/domain"
)

// SQLiteAccountRepo implements AccountRepo using a SQLite database.
type SQLiteAccountRepo struct {
	db db.DBTX
}

func NewSQLiteAccountRepo(conn db.DBTX) *SQLiteAccountRepo {
	return &SQLiteAccountRepo{db: conn}
}

const accountColumns = `id, name, type, balance, is_default`

func (r *SQLiteAccountRepo) Create(ctx context.Context, a *domain.WalletAccount) error {
	query := `INSERT INTO wallet_accounts (` + accountColumns + `, order_index)
		VALUES (?, ?, ?, ?, ?, (SELECT COUNT(*) FROM wallet_accounts))`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.Name, string(a.Type), a.Balance, boolToInt(a.IsDefault))
	if err != nil {
		return fmt.Errorf("inserting wallet account: %w", err)
	}
	return nil
}

func (r *SQLiteAccountRepo) GetByID(ctx context.Context, id string) (*domain.WalletAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM wallet_accounts WHERE id = ?`
	a, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("wallet account %s: %w", id, ErrNotFound)
	}
	return a, err
}

func (r *SQLiteAccountRepo) List(ctx context.Context) ([]*domain.WalletAccount, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+accountColumns+` FROM wallet_accounts ORDER BY order_index, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing wallet accounts: %w", err)
	}
	defer rows.Close()

	var out []*domain.WalletAccount
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating wallet accounts: %w", err)
	}
	return out, nil
}

// AdjustBalance adds delta to the account balance. Balances may go negative.
func (r *SQLiteAccountRepo) AdjustBalance(ctx context.Context, id string, delta int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE wallet_accounts SET balance = balance + ? WHERE id = ?`, delta, id)
	if err != nil {
		return fmt.Errorf("adjusting wallet balance: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("wallet account %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanAccount(row scanner) (*domain.WalletAccount, error) {
	var a domain.WalletAccount
	var typ string
	var isDefault int
	if err := row.Scan(&a.ID, &a.Name, &typ, &a.Balance, &isDefault); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning wallet account: %w", err)
	}
	a.Type = domain.AccountType(typ)
	a.IsDefault = intToBool(isDefault)
	return &a, nil
}
