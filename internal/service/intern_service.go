package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/repository"
)

// ErrInternExists is returned when an intern with the same email already exists.
var ErrInternExists = errors.New("intern with given email already exists")

// CreateInternInput carries the document accepted at intern creation.
type CreateInternInput struct {
	PersonalInfo      domain.PersonalInfo
	InternshipDetails domain.InternshipDetails
	Skills            domain.Skills
}

// UpdateInternInput replaces provided sub-documents wholesale; nil
// sections keep the stored value.
type UpdateInternInput struct {
	PersonalInfo      *domain.PersonalInfo
	InternshipDetails *domain.InternshipDetails
	Skills            *domain.Skills
	Performance       *domain.Performance
	Documents         []domain.InternDocument
}

// DailyCommentInput is appended to an intern's activity log.
type DailyCommentInput struct {
	Date            *time.Time
	Comment         string
	TaskDescription string
	HoursWorked     float64
	Status          string
}

// MeetingNoteInput is appended to an intern's meeting log.
type MeetingNoteInput struct {
	Date            *time.Time
	Title           string
	Agenda          string
	Notes           string
	Attendees       []string
	ActionItems     []string
	NextMeetingDate *time.Time
}

// InternService manages intern records and their append-only logs.
type InternService interface {
	List(ctx context.Context, filter repository.InternFilter) ([]domain.Intern, int, error)
	Get(ctx context.Context, id string) (*domain.Intern, error)
	Create(ctx context.Context, actor domain.Identity, in CreateInternInput) (*domain.Intern, error)
	Update(ctx context.Context, id string, actor domain.Identity, in UpdateInternInput) (*domain.Intern, error)
	Delete(ctx context.Context, id string) error
	AddDailyComment(ctx context.Context, id string, actor domain.Identity, in DailyCommentInput) (*domain.Intern, error)
	AddMeetingNote(ctx context.Context, id string, actor domain.Identity, in MeetingNoteInput) (*domain.Intern, error)
	AddProject(ctx context.Context, id string, actor domain.Identity, project domain.InternProject) (*domain.Intern, error)
}

type internService struct {
	interns repository.InternRepository
}

func NewInternService(interns repository.InternRepository) InternService {
	return &internService{interns: interns}
}

func (s *internService) List(ctx context.Context, filter repository.InternFilter) ([]domain.Intern, int, error) {
	return s.interns.List(ctx, filter)
}

func (s *internService) Get(ctx context.Context, id string) (*domain.Intern, error) {
	return s.load(ctx, id)
}

func (s *internService) Create(ctx context.Context, actor domain.Identity, in CreateInternInput) (*domain.Intern, error) {
	details := in.InternshipDetails
	if details.Status == "" {
		details.Status = domain.InternshipActive
	}

	intern := &domain.Intern{
		ID:                uuid.NewString(),
		PersonalInfo:      in.PersonalInfo,
		InternshipDetails: details,
		Projects:          []domain.InternProject{},
		DailyComments:     []domain.DailyComment{},
		MeetingNotes:      []domain.MeetingNote{},
		Skills:            in.Skills,
		Documents:         []domain.InternDocument{},
		IsActive:          true,
		CreatedByID:       actor.ID,
	}
	if err := s.interns.Create(ctx, intern); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrInternExists
		}
		return nil, err
	}
	return intern, nil
}

func (s *internService) Update(ctx context.Context, id string, actor domain.Identity, in UpdateInternInput) (*domain.Intern, error) {
	intern, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.PersonalInfo != nil {
		intern.PersonalInfo = *in.PersonalInfo
	}
	if in.InternshipDetails != nil {
		intern.InternshipDetails = *in.InternshipDetails
	}
	if in.Skills != nil {
		intern.Skills = *in.Skills
	}
	if in.Performance != nil {
		intern.Performance = *in.Performance
	}
	if in.Documents != nil {
		intern.Documents = in.Documents
	}
	intern.UpdatedByID = actor.ID

	if err := s.interns.Update(ctx, intern); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrInternExists
		}
		return nil, err
	}
	return intern, nil
}

func (s *internService) Delete(ctx context.Context, id string) error {
	intern, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	intern.IsActive = false
	return s.interns.Update(ctx, intern)
}

func (s *internService) AddDailyComment(ctx context.Context, id string, actor domain.Identity, in DailyCommentInput) (*domain.Intern, error) {
	intern, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	intern.DailyComments = append(intern.DailyComments, domain.DailyComment{
		Date:            date,
		Comment:         in.Comment,
		TaskDescription: in.TaskDescription,
		HoursWorked:     in.HoursWorked,
		Status:          in.Status,
		AddedBy:         actor.Actor(),
		CreatedAt:       now,
	})

	if err := s.interns.Update(ctx, intern); err != nil {
		return nil, err
	}
	return intern, nil
}

func (s *internService) AddMeetingNote(ctx context.Context, id string, actor domain.Identity, in MeetingNoteInput) (*domain.Intern, error) {
	intern, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	intern.MeetingNotes = append(intern.MeetingNotes, domain.MeetingNote{
		Date:            date,
		Title:           in.Title,
		Agenda:          in.Agenda,
		Notes:           in.Notes,
		Attendees:       in.Attendees,
		ActionItems:     in.ActionItems,
		NextMeetingDate: in.NextMeetingDate,
		AddedBy:         actor.Actor(),
		CreatedAt:       now,
	})

	if err := s.interns.Update(ctx, intern); err != nil {
		return nil, err
	}
	return intern, nil
}

func (s *internService) AddProject(ctx context.Context, id string, actor domain.Identity, project domain.InternProject) (*domain.Intern, error) {
	intern, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	intern.Projects = append(intern.Projects, project)
	intern.UpdatedByID = actor.ID

	if err := s.interns.Update(ctx, intern); err != nil {
		return nil, err
	}
	return intern, nil
}

func (s *internService) load(ctx context.Context, id string) (*domain.Intern, error) {
	intern, err := s.interns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !intern.IsActive {
		return nil, ErrNotFound
	}
	return intern, nil
}
