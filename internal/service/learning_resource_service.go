package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/repository"
)

// CreateLearningResourceInput carries the fields accepted at creation.
type CreateLearningResourceInput struct {
	Title       string
	Description string
	Category    domain.ResourceCategory
	URL         string
	Tags        []string
	Difficulty  domain.Difficulty
}

// UpdateLearningResourceInput is a partial update; nil fields keep the
// stored value.
type UpdateLearningResourceInput struct {
	Title       *string
	Description *string
	Category    *domain.ResourceCategory
	URL         *string
	Tags        []string
	Difficulty  *domain.Difficulty
}

// LearningResourceService manages the learning resource catalog.
type LearningResourceService interface {
	List(ctx context.Context, filter repository.LearningResourceFilter) ([]domain.LearningResource, int, error)
	Get(ctx context.Context, id string) (*domain.LearningResource, error)
	Create(ctx context.Context, actor domain.Identity, in CreateLearningResourceInput) (*domain.LearningResource, error)
	Update(ctx context.Context, id string, actor domain.Identity, in UpdateLearningResourceInput) (*domain.LearningResource, error)
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, id string) (int64, error)
	OwnerID(ctx context.Context, id string) (string, error)
}

type learningResourceService struct {
	resources repository.LearningResourceRepository
}

func NewLearningResourceService(resources repository.LearningResourceRepository) LearningResourceService {
	return &learningResourceService{resources: resources}
}

func (s *learningResourceService) List(ctx context.Context, filter repository.LearningResourceFilter) ([]domain.LearningResource, int, error) {
	return s.resources.List(ctx, filter)
}

// Get returns an active resource and bumps its view counter.
func (s *learningResourceService) Get(ctx context.Context, id string) (*domain.LearningResource, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	res.Views++
	if err := s.resources.Update(ctx, res); err != nil {
		// losing a view bump is not worth failing the read
		res.Views--
	}
	return res, nil
}

func (s *learningResourceService) Create(ctx context.Context, actor domain.Identity, in CreateLearningResourceInput) (*domain.LearningResource, error) {
	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyBeginner
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	res := &domain.LearningResource{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		URL:         in.URL,
		Tags:        tags,
		Difficulty:  difficulty,
		CreatedBy:   actor.Owner(),
		IsActive:    true,
	}
	if err := s.resources.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *learningResourceService) Update(ctx context.Context, id string, actor domain.Identity, in UpdateLearningResourceInput) (*domain.LearningResource, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil && *in.Title != "" {
		res.Title = *in.Title
	}
	if in.Description != nil {
		res.Description = *in.Description
	}
	if in.Category != nil && *in.Category != "" {
		res.Category = *in.Category
	}
	if in.URL != nil && *in.URL != "" {
		res.URL = *in.URL
	}
	if in.Tags != nil {
		res.Tags = in.Tags
	}
	if in.Difficulty != nil && *in.Difficulty != "" {
		res.Difficulty = *in.Difficulty
	}
	owner := actor.Owner()
	res.UpdatedBy = &owner

	if err := s.resources.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *learningResourceService) Delete(ctx context.Context, id string) error {
	res, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	res.IsActive = false
	return s.resources.Update(ctx, res)
}

func (s *learningResourceService) Like(ctx context.Context, id string) (int64, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return 0, err
	}
	res.Likes++
	if err := s.resources.Update(ctx, res); err != nil {
		return 0, err
	}
	return res.Likes, nil
}

// OwnerID resolves the creator of a resource for ownership checks.
func (s *learningResourceService) OwnerID(ctx context.Context, id string) (string, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	return res.CreatedBy.UserID, nil
}

func (s *learningResourceService) load(ctx context.Context, id string) (*domain.LearningResource, error) {
	res, err := s.resources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !res.IsActive {
		return nil, ErrNotFound
	}
	return res, nil
}
