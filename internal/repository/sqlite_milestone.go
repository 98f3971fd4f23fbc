package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/bittrack/internal/db"
	"github.com/alexanderramin/bittrack/internal/domain"
)

// SQLiteMilestoneRepo implements MilestoneRepo using a SQLite database.
type SQLiteMilestoneRepo struct {
	db db.DBTX
}

func NewSQLiteMilestoneRepo(conn db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: conn}
}

const milestoneColumns = `id, project_id, title, version, budget, stage, description, due_date, created_at`

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	query := `INSERT INTO milestones (` + milestoneColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.ProjectID,
		m.Title,
		m.Version,
		m.Budget,
		string(m.Stage),
		m.Description,
		nullableTimeToString(m.DueDate),
		m.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE id = ?`
	m, err := scanMilestone(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("milestone %s: %w", id, ErrNotFound)
	}
	return m, err
}

func (r *SQLiteMilestoneRepo) List(ctx context.Context) ([]*domain.Milestone, error) {
	return r.query(ctx, `SELECT `+milestoneColumns+` FROM milestones ORDER BY rowid`)
}

func (r *SQLiteMilestoneRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Milestone, error) {
	return r.query(ctx, `SELECT `+milestoneColumns+` FROM milestones WHERE project_id = ? ORDER BY rowid`, projectID)
}

func (r *SQLiteMilestoneRepo) UpdateStage(ctx context.Context, id string, stage domain.MilestoneStage) error {
	res, err := r.db.ExecContext(ctx, `UPDATE milestones SET stage = ? WHERE id = ?`, string(stage), id)
	if err != nil {
		return fmt.Errorf("updating milestone stage: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("milestone %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) query(ctx context.Context, query string, args ...any) ([]*domain.Milestone, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var out []*domain.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	return out, nil
}

func scanMilestone(row scanner) (*domain.Milestone, error) {
	var m domain.Milestone
	var stage, createdAt string
	var dueDate sql.NullString

	err := row.Scan(&m.ID, &m.ProjectID, &m.Title, &m.Version, &m.Budget, &stage, &m.Description, &dueDate, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning milestone: %w", err)
	}
	m.Stage = domain.MilestoneStage(stage)
	m.DueDate = parseNullableTime(dueDate)
	if m.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &m, nil
}
