package db

import (
	"context"
	"database/sql"
)

// DBTX is what repositories run their SQL against. Services hand in the
// *sql.DB for reads and the *sql.Tx from UnitOfWork for writes, so the seed
// import and every mutation share one repository implementation.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
