package repository

import (
	"context"

	"admin-dashboard/internal/domain"
)

// LearningResourceFilter narrows List results. Search matches title,
// description and tags, case-insensitively. Soft-deleted records are
// always excluded.
type LearningResourceFilter struct {
	Category   domain.ResourceCategory
	Difficulty domain.Difficulty
	Search     string
	Page       int
	Limit      int
}

// LearningResourceRepository defines persistence operations for
// learning resources.
type LearningResourceRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, res *domain.LearningResource) error
	GetByID(ctx context.Context, id string) (*domain.LearningResource, error)
	Update(ctx context.Context, res *domain.LearningResource) error
	List(ctx context.Context, filter LearningResourceFilter) ([]domain.LearningResource, int, error)
}
