package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/repository"
)

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	project_name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'Planning',
	body TEXT NOT NULL,
	is_active INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createProjectsTable); err != nil {
		return fmt.Errorf("create projects table: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	body, err := encodeJSON(project)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO projects (id, project_name, description, status, body, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		project.ID,
		project.ProjectName,
		project.Description,
		string(project.Status),
		body,
		project.IsActive,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	project.UpdatedAt = time.Now().UTC()

	body, err := encodeJSON(project)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE projects
SET project_name=?, description=?, status=?, body=?, is_active=?, updated_at=?
WHERE id=?`,
		project.ProjectName,
		project.Description,
		string(project.Status),
		body,
		project.IsActive,
		project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("project update rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("update project: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT body, created_at, updated_at FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

func (r *ProjectRepository) List(ctx context.Context, filter repository.ProjectFilter) ([]domain.Project, int, error) {
	conds := []string{"is_active = 1"}
	var args []any

	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		conds = append(conds, `(
			LOWER(project_name) LIKE ? ESCAPE '\'
			OR LOWER(description) LIKE ? ESCAPE '\'
		)`)
		args = append(args, pattern, pattern)
	}

	where := strings.Join(conds, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	_, limit, offset := normalizePage(filter.Page, filter.Limit, 10)
	rows, err := r.db.QueryContext(ctx, `
SELECT body, created_at, updated_at
FROM projects
WHERE `+where+`
ORDER BY created_at DESC
LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, total, nil
}

func scanProject(row interface {
	Scan(dest ...any) error
}) (*domain.Project, error) {
	var (
		body      string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&body, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	var project domain.Project
	if err := decodeJSON(body, &project); err != nil {
		return nil, err
	}
	project.CreatedAt = createdAt
	project.UpdatedAt = updatedAt
	return &project, nil
}
