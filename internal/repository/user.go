package repository

import (
	"context"

	"admin-dashboard/internal/domain"
)

// UserFilter narrows List results. Search matches username, email and
// profile first/last name, case-insensitively.
type UserFilter struct {
	Search   string
	Role     domain.Role
	IsActive *bool
	Page     int
	Limit    int
}

// UserRepository defines persistence operations for User accounts.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, filter UserFilter) ([]domain.User, int, error)
}
