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

const createToolResourcesTable = `
CREATE TABLE IF NOT EXISTS tool_resources (
	id TEXT PRIMARY KEY,
	tool_name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL,
	official_url TEXT NOT NULL,
	documentation_url TEXT NOT NULL DEFAULT '',
	logo_url TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '[]',
	tech_stack TEXT NOT NULL DEFAULT '[]',
	pricing TEXT NOT NULL DEFAULT 'Free',
	features TEXT NOT NULL DEFAULT '[]',
	use_cases TEXT NOT NULL DEFAULT '[]',
	created_by TEXT NOT NULL,
	updated_by TEXT NOT NULL DEFAULT 'null',
	is_active INTEGER NOT NULL DEFAULT 1,
	rating INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type ToolResourceRepository struct {
	db *sql.DB
}

func NewToolResourceRepository(db *sql.DB) repository.ToolResourceRepository {
	return &ToolResourceRepository{db: db}
}

func (r *ToolResourceRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createToolResourcesTable); err != nil {
		return fmt.Errorf("create tool_resources table: %w", err)
	}
	return nil
}

func (r *ToolResourceRepository) Create(ctx context.Context, tool *domain.ToolResource) error {
	now := time.Now().UTC()
	tool.CreatedAt = now
	tool.UpdatedAt = now

	cols, err := encodeToolColumns(tool)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO tool_resources (id, tool_name, description, category, official_url, documentation_url, logo_url, tags, tech_stack, pricing, features, use_cases, created_by, updated_by, is_active, rating, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tool.ID,
		tool.ToolName,
		tool.Description,
		string(tool.Category),
		tool.OfficialURL,
		tool.DocumentationURL,
		tool.LogoURL,
		cols.tags,
		cols.techStack,
		string(tool.Pricing),
		cols.features,
		cols.useCases,
		cols.createdBy,
		cols.updatedBy,
		tool.IsActive,
		tool.Rating,
		tool.CreatedAt,
		tool.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tool resource: %w", err)
	}
	return nil
}

func (r *ToolResourceRepository) Update(ctx context.Context, tool *domain.ToolResource) error {
	tool.UpdatedAt = time.Now().UTC()

	cols, err := encodeToolColumns(tool)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `
UPDATE tool_resources
SET tool_name=?, description=?, category=?, official_url=?, documentation_url=?, logo_url=?, tags=?, tech_stack=?, pricing=?, features=?, use_cases=?, updated_by=?, is_active=?, rating=?, updated_at=?
WHERE id=?`,
		tool.ToolName,
		tool.Description,
		string(tool.Category),
		tool.OfficialURL,
		tool.DocumentationURL,
		tool.LogoURL,
		cols.tags,
		cols.techStack,
		string(tool.Pricing),
		cols.features,
		cols.useCases,
		cols.updatedBy,
		tool.IsActive,
		tool.Rating,
		tool.UpdatedAt,
		tool.ID,
	)
	if err != nil {
		return fmt.Errorf("update tool resource: %w", err)
	}
	aff, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("tool resource rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("update tool resource: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *ToolResourceRepository) GetByID(ctx context.Context, id string) (*domain.ToolResource, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, tool_name, description, category, official_url, documentation_url, logo_url, tags, tech_stack, pricing, features, use_cases, created_by, updated_by, is_active, rating, created_at, updated_at
FROM tool_resources
WHERE id = ?`, id)
	return scanToolResource(row)
}

func (r *ToolResourceRepository) List(ctx context.Context, filter repository.ToolResourceFilter) ([]domain.ToolResource, int, error) {
	conds := []string{"is_active = 1"}
	var args []any

	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, string(filter.Category))
	}
	if filter.Pricing != "" {
		conds = append(conds, "pricing = ?")
		args = append(args, string(filter.Pricing))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		conds = append(conds, `(
			LOWER(tool_name) LIKE ? ESCAPE '\'
			OR LOWER(description) LIKE ? ESCAPE '\'
			OR LOWER(tags) LIKE ? ESCAPE '\'
		)`)
		args = append(args, pattern, pattern, pattern)
	}

	where := strings.Join(conds, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tool_resources WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tool resources: %w", err)
	}

	_, limit, offset := normalizePage(filter.Page, filter.Limit, 10)
	rows, err := r.db.QueryContext(ctx, `
SELECT id, tool_name, description, category, official_url, documentation_url, logo_url, tags, tech_stack, pricing, features, use_cases, created_by, updated_by, is_active, rating, created_at, updated_at
FROM tool_resources
WHERE `+where+`
ORDER BY created_at DESC
LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tool resources: %w", err)
	}
	defer rows.Close()

	var tools []domain.ToolResource
	for rows.Next() {
		tool, err := scanToolResource(rows)
		if err != nil {
			return nil, 0, err
		}
		tools = append(tools, *tool)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate tool resources: %w", err)
	}
	return tools, total, nil
}

type toolColumns struct {
	tags      string
	techStack string
	features  string
	useCases  string
	createdBy string
	updatedBy string
}

func encodeToolColumns(tool *domain.ToolResource) (toolColumns, error) {
	var cols toolColumns
	var err error
	if cols.tags, err = encodeJSON(tool.Tags); err != nil {
		return cols, err
	}
	if cols.techStack, err = encodeJSON(tool.TechStack); err != nil {
		return cols, err
	}
	if cols.features, err = encodeJSON(tool.Features); err != nil {
		return cols, err
	}
	if cols.useCases, err = encodeJSON(tool.UseCases); err != nil {
		return cols, err
	}
	if cols.createdBy, err = encodeJSON(tool.CreatedBy); err != nil {
		return cols, err
	}
	if cols.updatedBy, err = encodeJSON(tool.UpdatedBy); err != nil {
		return cols, err
	}
	return cols, nil
}

func scanToolResource(row interface {
	Scan(dest ...any) error
}) (*domain.ToolResource, error) {
	var (
		tool      domain.ToolResource
		category  string
		pricing   string
		tags      string
		techStack string
		features  string
		useCases  string
		createdBy string
		updatedBy string
	)
	if err := row.Scan(
		&tool.ID,
		&tool.ToolName,
		&tool.Description,
		&category,
		&tool.OfficialURL,
		&tool.DocumentationURL,
		&tool.LogoURL,
		&tags,
		&techStack,
		&pricing,
		&features,
		&useCases,
		&createdBy,
		&updatedBy,
		&tool.IsActive,
		&tool.Rating,
		&tool.CreatedAt,
		&tool.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan tool resource: %w", err)
	}
	tool.Category = domain.ToolCategory(category)
	tool.Pricing = domain.Pricing(pricing)
	fields := []struct {
		raw string
		dst any
	}{
		{tags, &tool.Tags},
		{techStack, &tool.TechStack},
		{features, &tool.Features},
		{useCases, &tool.UseCases},
		{createdBy, &tool.CreatedBy},
		{updatedBy, &tool.UpdatedBy},
	}
	for _, f := range fields {
		if err := decodeJSON(f.raw, f.dst); err != nil {
			return nil, err
		}
	}
	if tool.Tags == nil {
		tool.Tags = []string{}
	}
	if tool.TechStack == nil {
		tool.TechStack = []string{}
	}
	if tool.Features == nil {
		tool.Features = []string{}
	}
	if tool.UseCases == nil {
		tool.UseCases = []string{}
	}
	return &tool, nil
}
