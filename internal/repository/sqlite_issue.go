package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/bittrack/internal/db"
	"github.com/alexanderramin/bittrack/internal/domain"
)

// SQLiteIssueRepo implements IssueRepo. Comments live in issue_comments and
// are attached to every issue it returns.
type SQLiteIssueRepo struct {
	db db.DBTX
}

func NewSQLiteIssueRepo(conn db.DBTX) *SQLiteIssueRepo {
	return &SQLiteIssueRepo{db: conn}
}

const issueColumns = `id, project_id, milestone_id, title, description, tags, priority, status, due_date, created_at, updated_at`

func (r *SQLiteIssueRepo) Create(ctx context.Context, i *domain.Issue) error {
	tags, err := encodeTags(i.Tags)
	if err != nil {
		return err
	}
	query := `INSERT INTO issues (` + issueColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		i.ID,
		i.ProjectID,
		nullableString(i.MilestoneID),
		i.Title,
		i.Description,
		tags,
		string(i.Priority),
		string(i.Status),
		nullableTimeToString(i.DueDate),
		i.CreatedAt.Format(timeLayout),
		i.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting issue: %w", err)
	}
	for idx := range i.Comments {
		if err := r.AddComment(ctx, &i.Comments[idx]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteIssueRepo) GetByID(ctx context.Context, id string) (*domain.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issues WHERE id = ?`
	issue, err := scanIssue(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("issue %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if err := r.attachComments(ctx, []*domain.Issue{issue}); err != nil {
		return nil, err
	}
	return issue, nil
}

func (r *SQLiteIssueRepo) List(ctx context.Context) ([]*domain.Issue, error) {
	return r.query(ctx, `SELECT `+issueColumns+` FROM issues ORDER BY rowid`)
}

func (r *SQLiteIssueRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Issue, error) {
	return r.query(ctx, `SELECT `+issueColumns+` FROM issues WHERE project_id = ? ORDER BY rowid`, projectID)
}

func (r *SQLiteIssueRepo) UpdateStatus(ctx context.Context, id string, status domain.IssueStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE issues SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating issue status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("issue %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteIssueRepo) AddComment(ctx context.Context, c *domain.Comment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO issue_comments (id, issue_id, author, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.IssueID, c.Author, c.Content, c.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting comment: %w", err)
	}
	return nil
}

func (r *SQLiteIssueRepo) query(ctx context.Context, query string, args ...any) ([]*domain.Issue, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}
	defer rows.Close()

	var out []*domain.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating issues: %w", err)
	}
	// The in-memory store runs on one connection; release it before the
	// comment query.
	rows.Close()

	if err := r.attachComments(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachComments loads comments for the given issues in one query, oldest first.
func (r *SQLiteIssueRepo) attachComments(ctx context.Context, issues []*domain.Issue) error {
	if len(issues) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Issue, len(issues))
	for _, i := range issues {
		i.Comments = []domain.Comment{}
		byID[i.ID] = i
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, issue_id, author, content, created_at FROM issue_comments ORDER BY created_at, rowid`)
	if err != nil {
		return fmt.Errorf("listing comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Comment
		var createdAt string
		if err := rows.Scan(&c.ID, &c.IssueID, &c.Author, &c.Content, &createdAt); err != nil {
			return fmt.Errorf("scanning comment: %w", err)
		}
		issue, ok := byID[c.IssueID]
		if !ok {
			continue
		}
		if c.CreatedAt, err = parseTime(createdAt, "comment created_at"); err != nil {
			return err
		}
		issue.Comments = append(issue.Comments, c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating comments: %w", err)
	}
	return nil
}

func scanIssue(row scanner) (*domain.Issue, error) {
	var i domain.Issue
	var milestoneID, dueDate sql.NullString
	var tags, priority, status, createdAt, updatedAt string

	err := row.Scan(
		&i.ID, &i.ProjectID, &milestoneID, &i.Title, &i.Description, &tags,
		&priority, &status, &dueDate, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning issue: %w", err)
	}

	i.MilestoneID = stringPtr(milestoneID)
	i.Priority = domain.IssuePriority(priority)
	i.Status = domain.IssueStatus(status)
	i.DueDate = parseNullableTime(dueDate)
	if i.Tags, err = decodeTags(tags); err != nil {
		return nil, err
	}
	if i.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if i.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &i, nil
}
