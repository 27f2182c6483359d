package repository

import (
	"context"

	"admin-dashboard/internal/domain"
)

// ProjectFilter narrows List results. Search matches project name and
// description, case-insensitively.
type ProjectFilter struct {
	Status domain.ProjectStatus
	Search string
	Page   int
	Limit  int
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, int, error)
}
