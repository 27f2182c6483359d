package repository

import (
	"context"

	"admin-dashboard/internal/domain"
)

// InternFilter narrows List results. Search matches first name, last
// name and email, case-insensitively.
type InternFilter struct {
	Status     domain.InternshipStatus
	Department string
	Search     string
	Page       int
	Limit      int
}

// InternRepository defines persistence operations for interns.
type InternRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, intern *domain.Intern) error
	GetByID(ctx context.Context, id string) (*domain.Intern, error)
	GetByEmail(ctx context.Context, email string) (*domain.Intern, error)
	Update(ctx context.Context, intern *domain.Intern) error
	List(ctx context.Context, filter InternFilter) ([]domain.Intern, int, error)
}
