package repository

import (
	"context"

	"admin-dashboard/internal/domain"
)

// ToolResourceFilter narrows List results. Search matches tool name,
// description and tags, case-insensitively.
type ToolResourceFilter struct {
	Category domain.ToolCategory
	Pricing  domain.Pricing
	Search   string
	Page     int
	Limit    int
}

// ToolResourceRepository defines persistence operations for tool resources.
type ToolResourceRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, tool *domain.ToolResource) error
	GetByID(ctx context.Context, id string) (*domain.ToolResource, error)
	Update(ctx context.Context, tool *domain.ToolResource) error
	List(ctx context.Context, filter ToolResourceFilter) ([]domain.ToolResource, int, error)
}
