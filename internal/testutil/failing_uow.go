package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/bittrack/internal/db"
)

// FailOnNthExecUoW fails the FailOn-th write (counting from 1) of each
// transaction with Err and rolls the transaction back. Reads pass through.
// After a failure, FailedQuery holds the statement that was refused, so a
// test can pin which write of a multi-write use case broke.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error

	FailedQuery string
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingTx{DBTX: tx, uow: u}
	if err := fn(ctx, wrapped); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// failingTx counts writes on the single store connection, so no locking.
type failingTx struct {
	db.DBTX
	uow   *FailOnNthExecUoW
	execs int
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execs++
	if f.execs == f.uow.FailOn {
		f.uow.FailedQuery = query
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
