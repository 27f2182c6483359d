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

const createLearningResourcesTable = `
CREATE TABLE IF NOT EXISTS learning_resources (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL,
	url TEXT NOT NULL,
	tags TEXT NOT NULL DEFAULT '[]',
	difficulty TEXT NOT NULL DEFAULT 'Beginner',
	created_by TEXT NOT NULL,
	updated_by TEXT NOT NULL DEFAULT 'null',
	is_active INTEGER NOT NULL DEFAULT 1,
	views INTEGER NOT NULL DEFAULT 0,
	likes INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type LearningResourceRepository struct {
	db *sql.DB
}

func NewLearningResourceRepository(db *sql.DB) repository.LearningResourceRepository {
	return &LearningResourceRepository{db: db}
}

func (r *LearningResourceRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createLearningResourcesTable); err != nil {
		return fmt.Errorf("create learning_resources table: %w", err)
	}
	return nil
}

func (r *LearningResourceRepository) Create(ctx context.Context, res *domain.LearningResource) error {
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now

	tags, err := encodeJSON(res.Tags)
	if err != nil {
		return err
	}
	createdBy, err := encodeJSON(res.CreatedBy)
	if err != nil {
		return err
	}
	updatedBy, err := encodeJSON(res.UpdatedBy)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO learning_resources (id, title, description, category, url, tags, difficulty, created_by, updated_by, is_active, views, likes, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID,
		res.Title,
		res.Description,
		string(res.Category),
		res.URL,
		tags,
		string(res.Difficulty),
		createdBy,
		updatedBy,
		res.IsActive,
		res.Views,
		res.Likes,
		res.CreatedAt,
		res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert learning resource: %w", err)
	}
	return nil
}

func (r *LearningResourceRepository) Update(ctx context.Context, res *domain.LearningResource) error {
	res.UpdatedAt = time.Now().UTC()

	tags, err := encodeJSON(res.Tags)
	if err != nil {
		return err
	}
	updatedBy, err := encodeJSON(res.UpdatedBy)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `
UPDATE learning_resources
SET title=?, description=?, category=?, url=?, tags=?, difficulty=?, updated_by=?, is_active=?, views=?, likes=?, updated_at=?
WHERE id=?`,
		res.Title,
		res.Description,
		string(res.Category),
		res.URL,
		tags,
		string(res.Difficulty),
		updatedBy,
		res.IsActive,
		res.Views,
		res.Likes,
		res.UpdatedAt,
		res.ID,
	)
	if err != nil {
		return fmt.Errorf("update learning resource: %w", err)
	}
	aff, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("learning resource rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("update learning resource: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *LearningResourceRepository) GetByID(ctx context.Context, id string) (*domain.LearningResource, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, description, category, url, tags, difficulty, created_by, updated_by, is_active, views, likes, created_at, updated_at
FROM learning_resources
WHERE id = ?`, id)
	return scanLearningResource(row)
}

func (r *LearningResourceRepository) List(ctx context.Context, filter repository.LearningResourceFilter) ([]domain.LearningResource, int, error) {
	conds := []string{"is_active = 1"}
	var args []any

	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, string(filter.Category))
	}
	if filter.Difficulty != "" {
		conds = append(conds, "difficulty = ?")
		args = append(args, string(filter.Difficulty))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		// tags matched as a substring of the serialized tag list
		conds = append(conds, `(
			LOWER(title) LIKE ? ESCAPE '\'
			OR LOWER(description) LIKE ? ESCAPE '\'
			OR LOWER(tags) LIKE ? ESCAPE '\'
		)`)
		args = append(args, pattern, pattern, pattern)
	}

	where := strings.Join(conds, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM learning_resources WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count learning resources: %w", err)
	}

	_, limit, offset := normalizePage(filter.Page, filter.Limit, 10)
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, description, category, url, tags, difficulty, created_by, updated_by, is_active, views, likes, created_at, updated_at
FROM learning_resources
WHERE `+where+`
ORDER BY created_at DESC
LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list learning resources: %w", err)
	}
	defer rows.Close()

	var resources []domain.LearningResource
	for rows.Next() {
		res, err := scanLearningResource(rows)
		if err != nil {
			return nil, 0, err
		}
		resources = append(resources, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate learning resources: %w", err)
	}
	return resources, total, nil
}

func scanLearningResource(row interface {
	Scan(dest ...any) error
}) (*domain.LearningResource, error) {
	var (
		res        domain.LearningResource
		category   string
		difficulty string
		tags       string
		createdBy  string
		updatedBy  string
	)
	if err := row.Scan(
		&res.ID,
		&res.Title,
		&res.Description,
		&category,
		&res.URL,
		&tags,
		&difficulty,
		&createdBy,
		&updatedBy,
		&res.IsActive,
		&res.Views,
		&res.Likes,
		&res.CreatedAt,
		&res.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan learning resource: %w", err)
	}
	res.Category = domain.ResourceCategory(category)
	res.Difficulty = domain.Difficulty(difficulty)
	if err := decodeJSON(tags, &res.Tags); err != nil {
		return nil, err
	}
	if err := decodeJSON(createdBy, &res.CreatedBy); err != nil {
		return nil, err
	}
	if err := decodeJSON(updatedBy, &res.UpdatedBy); err != nil {
		return nil, err
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}
	return &res, nil
}
