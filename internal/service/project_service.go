package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/repository"
)

// CreateProjectInput carries the fields accepted at project creation.
type CreateProjectInput struct {
	ProjectName      string
	Description      string
	Status           domain.ProjectStatus
	StartDate        *time.Time
	EndDate          *time.Time
	ProjectURL       string
	RepositoryURL    string
	DocumentationURL string
	Technologies     []string
	TeamMembers      []domain.TeamMember
	Manager          *domain.MentorRef
}

// UpdateProjectInput is a partial update; nil fields keep the stored value.
type UpdateProjectInput struct {
	ProjectName      *string
	Description      *string
	Status           *domain.ProjectStatus
	StartDate        *time.Time
	EndDate          *time.Time
	ProjectURL       *string
	RepositoryURL    *string
	DocumentationURL *string
	Technologies     []string
	TeamMembers      []domain.TeamMember
	Manager          *domain.MentorRef
}

// ProjectService manages team projects.
type ProjectService interface {
	List(ctx context.Context, filter repository.ProjectFilter) ([]domain.Project, int, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, actor domain.Identity, in CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, actor domain.Identity, in UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	projects repository.ProjectRepository
}

func NewProjectService(projects repository.ProjectRepository) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) List(ctx context.Context, filter repository.ProjectFilter) ([]domain.Project, int, error) {
	return s.projects.List(ctx, filter)
}

func (s *projectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.load(ctx, id)
}

func (s *projectService) Create(ctx context.Context, actor domain.Identity, in CreateProjectInput) (*domain.Project, error) {
	status := in.Status
	if status == "" {
		status = domain.ProjectPlanning
	}

	project := &domain.Project{
		ID:               uuid.NewString(),
		ProjectName:      in.ProjectName,
		Description:      in.Description,
		Status:           status,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		ProjectURL:       in.ProjectURL,
		RepositoryURL:    in.RepositoryURL,
		DocumentationURL: in.DocumentationURL,
		PDFDocuments:     []domain.PDFDocument{},
		Technologies:     orEmpty(in.Technologies),
		TeamMembers:      in.TeamMembers,
		Manager:          in.Manager,
		CreatedByID:      actor.ID,
		IsActive:         true,
	}
	if project.TeamMembers == nil {
		project.TeamMembers = []domain.TeamMember{}
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id string, actor domain.Identity, in UpdateProjectInput) (*domain.Project, error) {
	project, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ProjectName != nil && *in.ProjectName != "" {
		project.ProjectName = *in.ProjectName
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Status != nil && *in.Status != "" {
		project.Status = *in.Status
	}
	if in.StartDate != nil {
		project.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		project.EndDate = in.EndDate
	}
	if in.ProjectURL != nil {
		project.ProjectURL = *in.ProjectURL
	}
	if in.RepositoryURL != nil {
		project.RepositoryURL = *in.RepositoryURL
	}
	if in.DocumentationURL != nil {
		project.DocumentationURL = *in.DocumentationURL
	}
	if in.Technologies != nil {
		project.Technologies = in.Technologies
	}
	if in.TeamMembers != nil {
		project.TeamMembers = in.TeamMembers
	}
	if in.Manager != nil {
		project.Manager = in.Manager
	}
	project.UpdatedByID = actor.ID

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	project, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	project.IsActive = false
	return s.projects.Update(ctx, project)
}

func (s *projectService) load(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !project.IsActive {
		return nil, ErrNotFound
	}
	return project, nil
}
