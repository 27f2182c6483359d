package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/repository"
)

// CreateToolResourceInput carries the fields accepted at creation.
type CreateToolResourceInput struct {
	ToolName         string
	Description      string
	Category         domain.ToolCategory
	OfficialURL      string
	DocumentationURL string
	LogoURL          string
	Tags             []string
	TechStack        []string
	Pricing          domain.Pricing
	Features         []string
	UseCases         []string
	Rating           int
}

// UpdateToolResourceInput is a partial update; nil fields keep the
// stored value.
type UpdateToolResourceInput struct {
	ToolName         *string
	Description      *string
	Category         *domain.ToolCategory
	OfficialURL      *string
	DocumentationURL *string
	LogoURL          *string
	Tags             []string
	TechStack        []string
	Pricing          *domain.Pricing
	Features         []string
	UseCases         []string
	Rating           *int
}

// ToolResourceService manages the tool catalog.
type ToolResourceService interface {
	List(ctx context.Context, filter repository.ToolResourceFilter) ([]domain.ToolResource, int, error)
	Get(ctx context.Context, id string) (*domain.ToolResource, error)
	Create(ctx context.Context, actor domain.Identity, in CreateToolResourceInput) (*domain.ToolResource, error)
	Update(ctx context.Context, id string, actor domain.Identity, in UpdateToolResourceInput) (*domain.ToolResource, error)
	Delete(ctx context.Context, id string) error
	OwnerID(ctx context.Context, id string) (string, error)
}

type toolResourceService struct {
	tools repository.ToolResourceRepository
}

func NewToolResourceService(tools repository.ToolResourceRepository) ToolResourceService {
	return &toolResourceService{tools: tools}
}

func (s *toolResourceService) List(ctx context.Context, filter repository.ToolResourceFilter) ([]domain.ToolResource, int, error) {
	return s.tools.List(ctx, filter)
}

func (s *toolResourceService) Get(ctx context.Context, id string) (*domain.ToolResource, error) {
	return s.load(ctx, id)
}

func (s *toolResourceService) Create(ctx context.Context, actor domain.Identity, in CreateToolResourceInput) (*domain.ToolResource, error) {
	pricing := in.Pricing
	if pricing == "" {
		pricing = domain.PricingFree
	}

	tool := &domain.ToolResource{
		ID:               uuid.NewString(),
		ToolName:         in.ToolName,
		Description:      in.Description,
		Category:         in.Category,
		OfficialURL:      in.OfficialURL,
		DocumentationURL: in.DocumentationURL,
		LogoURL:          in.LogoURL,
		Tags:             orEmpty(in.Tags),
		TechStack:        orEmpty(in.TechStack),
		Pricing:          pricing,
		Features:         orEmpty(in.Features),
		UseCases:         orEmpty(in.UseCases),
		Rating:           in.Rating,
		CreatedBy:        actor.Owner(),
		IsActive:         true,
	}
	if err := s.tools.Create(ctx, tool); err != nil {
		return nil, err
	}
	return tool, nil
}

func (s *toolResourceService) Update(ctx context.Context, id string, actor domain.Identity, in UpdateToolResourceInput) (*domain.ToolResource, error) {
	tool, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ToolName != nil && *in.ToolName != "" {
		tool.ToolName = *in.ToolName
	}
	if in.Description != nil {
		tool.Description = *in.Description
	}
	if in.Category != nil && *in.Category != "" {
		tool.Category = *in.Category
	}
	if in.OfficialURL != nil && *in.OfficialURL != "" {
		tool.OfficialURL = *in.OfficialURL
	}
	if in.DocumentationURL != nil {
		tool.DocumentationURL = *in.DocumentationURL
	}
	if in.LogoURL != nil {
		tool.LogoURL = *in.LogoURL
	}
	if in.Tags != nil {
		tool.Tags = in.Tags
	}
	if in.TechStack != nil {
		tool.TechStack = in.TechStack
	}
	if in.Pricing != nil && *in.Pricing != "" {
		tool.Pricing = *in.Pricing
	}
	if in.Features != nil {
		tool.Features = in.Features
	}
	if in.UseCases != nil {
		tool.UseCases = in.UseCases
	}
	if in.Rating != nil {
		tool.Rating = *in.Rating
	}
	owner := actor.Owner()
	tool.UpdatedBy = &owner

	if err := s.tools.Update(ctx, tool); err != nil {
		return nil, err
	}
	return tool, nil
}

func (s *toolResourceService) Delete(ctx context.Context, id string) error {
	tool, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	tool.IsActive = false
	return s.tools.Update(ctx, tool)
}

// OwnerID resolves the creator of a tool for ownership checks.
func (s *toolResourceService) OwnerID(ctx context.Context, id string) (string, error) {
	tool, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	return tool.CreatedBy.UserID, nil
}

func (s *toolResourceService) load(ctx context.Context, id string) (*domain.ToolResource, error) {
	tool, err := s.tools.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !tool.IsActive {
		return nil, ErrNotFound
	}
	return tool, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
