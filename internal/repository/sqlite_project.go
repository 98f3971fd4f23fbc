package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/bittrack/internal/db"
	"github.com/alexanderramin/bittrack/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
// Links are stored in project_links and loaded with their project.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

const projectColumns = `id, title, description, status, tags, budget, current_version, notes, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	tags, err := encodeTags(p.Tags)
	if err != nil {
		return err
	}
	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Title,
		p.Description,
		string(p.Status),
		tags,
		p.Budget,
		p.CurrentVersion,
		p.Notes,
		p.CreatedAt.Format(timeLayout),
		p.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return r.insertLinks(ctx, p)
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	links, err := r.listLinks(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Links = links
	return p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	rows.Close()

	for _, p := range projects {
		if p.Links, err = r.listLinks(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	tags, err := encodeTags(p.Tags)
	if err != nil {
		return err
	}
	query := `UPDATE projects SET title = ?, description = ?, status = ?, tags = ?, budget = ?,
		current_version = ?, notes = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Title,
		p.Description,
		string(p.Status),
		tags,
		p.Budget,
		p.CurrentVersion,
		p.Notes,
		p.UpdatedAt.Format(timeLayout),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project %s: %w", p.ID, ErrNotFound)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM project_links WHERE project_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clearing project links: %w", err)
	}
	return r.insertLinks(ctx, p)
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) insertLinks(ctx context.Context, p *domain.Project) error {
	for i, l := range p.Links {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO project_links (id, project_id, title, url, description, order_index) VALUES (?, ?, ?, ?, ?, ?)`,
			l.ID, p.ID, l.Title, l.URL, l.Description, i,
		)
		if err != nil {
			return fmt.Errorf("inserting link %q: %w", l.Title, err)
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) listLinks(ctx context.Context, projectID string) ([]domain.Link, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, url, description FROM project_links WHERE project_id = ? ORDER BY order_index`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing project links: %w", err)
	}
	defer rows.Close()

	links := []domain.Link{}
	for rows.Next() {
		var l domain.Link
		if err := rows.Scan(&l.ID, &l.Title, &l.URL, &l.Description); err != nil {
			return nil, fmt.Errorf("scanning project link: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project links: %w", err)
	}
	return links, nil
}

// scanProject scans a single project row. sql.ErrNoRows is returned unwrapped
// so callers can translate it to ErrNotFound.
func scanProject(row scanner) (*domain.Project, error) {
	var p domain.Project
	var status, tags, createdAt, updatedAt string

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &status, &tags,
		&p.Budget, &p.CurrentVersion, &p.Notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Status = domain.ProjectStatus(status)
	if p.Tags, err = decodeTags(tags); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &p, nil
}
