package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/bittrack/internal/db"
	"github.com/alexanderramin/bittrack/internal/domain"
)

// SQLiteUserProfileRepo implements UserProfileRepo using a SQLite database.
type SQLiteUserProfileRepo struct {
	db db.DBTX
}

// NewSQLiteUserProfileRepo creates a new SQLiteUserProfileRepo.
func NewSQLiteUserProfileRepo(conn db.DBTX) *SQLiteUserProfileRepo {
	return &SQLiteUserProfileRepo{db: conn}
}

func (r *SQLiteUserProfileRepo) Get(ctx context.Context) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT name, birth_date FROM user_profile WHERE id = 'default'`)

	var u domain.User
	var birth sql.NullString
	if err := row.Scan(&u.Name, &birth); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	if b := parseNullableTime(birth); b != nil {
		u.BirthDate = *b
	}
	return &u, nil
}

func (r *SQLiteUserProfileRepo) Upsert(ctx context.Context, u *domain.User) error {
	var birth any
	if !u.BirthDate.IsZero() {
		birth = u.BirthDate.Format(timeLayout)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO user_profile (id, name, birth_date) VALUES ('default', ?, ?)`,
		u.Name, birth,
	)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
