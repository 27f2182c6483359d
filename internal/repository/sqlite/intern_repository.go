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

// Interns persist as a hybrid document: searchable scalars are real
// columns, the nested sub-documents live in a single JSON body column
// so each mutation stays a one-row atomic write.
const createInternsTable = `
CREATE TABLE IF NOT EXISTS interns (
	id TEXT PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE COLLATE NOCASE,
	status TEXT NOT NULL DEFAULT 'Active',
	department TEXT NOT NULL DEFAULT '',
	body TEXT NOT NULL,
	is_active INTEGER NOT NULL DEFAULT 1,
	created_by TEXT NOT NULL DEFAULT '',
	updated_by TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type InternRepository struct {
	db *sql.DB
}

func NewInternRepository(db *sql.DB) repository.InternRepository {
	return &InternRepository{db: db}
}

func (r *InternRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createInternsTable); err != nil {
		return fmt.Errorf("create interns table: %w", err)
	}
	return nil
}

func (r *InternRepository) Create(ctx context.Context, intern *domain.Intern) error {
	now := time.Now().UTC()
	intern.CreatedAt = now
	intern.UpdatedAt = now

	body, err := encodeJSON(intern)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO interns (id, first_name, last_name, email, status, department, body, is_active, created_by, updated_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		intern.ID,
		intern.PersonalInfo.FirstName,
		intern.PersonalInfo.LastName,
		intern.PersonalInfo.Email,
		string(intern.InternshipDetails.Status),
		intern.InternshipDetails.Department,
		body,
		intern.IsActive,
		intern.CreatedByID,
		intern.UpdatedByID,
		intern.CreatedAt,
		intern.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return fmt.Errorf("insert intern: %w", repository.ErrDuplicate)
		}
		return fmt.Errorf("insert intern: %w", err)
	}
	return nil
}

func (r *InternRepository) Update(ctx context.Context, intern *domain.Intern) error {
	intern.UpdatedAt = time.Now().UTC()

	body, err := encodeJSON(intern)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE interns
SET first_name=?, last_name=?, email=?, status=?, department=?, body=?, is_active=?, updated_by=?, updated_at=?
WHERE id=?`,
		intern.PersonalInfo.FirstName,
		intern.PersonalInfo.LastName,
		intern.PersonalInfo.Email,
		string(intern.InternshipDetails.Status),
		intern.InternshipDetails.Department,
		body,
		intern.IsActive,
		intern.UpdatedByID,
		intern.UpdatedAt,
		intern.ID,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return fmt.Errorf("update intern: %w", repository.ErrDuplicate)
		}
		return fmt.Errorf("update intern: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("intern update rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("update intern: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *InternRepository) GetByID(ctx context.Context, id string) (*domain.Intern, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT body, created_at, updated_at FROM interns WHERE id = ?`, id)
	return scanIntern(row)
}

func (r *InternRepository) GetByEmail(ctx context.Context, email string) (*domain.Intern, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT body, created_at, updated_at FROM interns WHERE email = ?`, email)
	return scanIntern(row)
}

func (r *InternRepository) List(ctx context.Context, filter repository.InternFilter) ([]domain.Intern, int, error) {
	conds := []string{"is_active = 1"}
	var args []any

	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.Department != "" {
		conds = append(conds, "department = ?")
		args = append(args, filter.Department)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		conds = append(conds, `(
			LOWER(first_name) LIKE ? ESCAPE '\'
			OR LOWER(last_name) LIKE ? ESCAPE '\'
			OR LOWER(email) LIKE ? ESCAPE '\'
		)`)
		args = append(args, pattern, pattern, pattern)
	}

	where := strings.Join(conds, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM interns WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count interns: %w", err)
	}

	_, limit, offset := normalizePage(filter.Page, filter.Limit, 10)
	rows, err := r.db.QueryContext(ctx, `
SELECT body, created_at, updated_at
FROM interns
WHERE `+where+`
ORDER BY created_at DESC
LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list interns: %w", err)
	}
	defer rows.Close()

	var interns []domain.Intern
	for rows.Next() {
		intern, err := scanIntern(rows)
		if err != nil {
			return nil, 0, err
		}
		interns = append(interns, *intern)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate interns: %w", err)
	}
	return interns, total, nil
}

func scanIntern(row interface {
	Scan(dest ...any) error
}) (*domain.Intern, error) {
	var (
		body      string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&body, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan intern: %w", err)
	}
	var intern domain.Intern
	if err := decodeJSON(body, &intern); err != nil {
		return nil, err
	}
	// column timestamps are authoritative over the serialized body
	intern.CreatedAt = createdAt
	intern.UpdatedAt = updatedAt
	return &intern, nil
}
