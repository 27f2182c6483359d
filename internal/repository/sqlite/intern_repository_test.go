package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/repository"
)

func newTestInternRepo(t *testing.T) repository.InternRepository {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewInternRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func makeIntern(first, last, email string) *domain.Intern {
	return &domain.Intern{
		ID: uuid.NewString(),
		PersonalInfo: domain.PersonalInfo{
			FirstName: first,
			LastName:  last,
			Email:     email,
		},
		InternshipDetails: domain.InternshipDetails{
			StartDate:  time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			Department: "Engineering",
			Status:     domain.InternshipActive,
		},
		IsActive: true,
	}
}

func TestInternRepositoryRoundtrip(t *testing.T) {
	repo := newTestInternRepo(t)
	ctx := context.Background()

	intern := makeIntern("Jane", "Doe", "jane@example.com")
	intern.Skills = domain.Skills{Technical: []string{"Go", "SQL"}}
	intern.DailyComments = []domain.DailyComment{{
		Date:    time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
		Comment: "Worked on onboarding tasks",
		AddedBy: domain.ActorRef{UserID: "u1", UserName: "mentor", Role: "admin"},
	}}
	require.NoError(t, repo.Create(ctx, intern))

	got, err := repo.GetByID(ctx, intern.ID)
	require.NoError(t, err)
	require.Equal(t, "Jane", got.PersonalInfo.FirstName)
	require.Equal(t, []string{"Go", "SQL"}, got.Skills.Technical)
	require.Len(t, got.DailyComments, 1)
	require.Equal(t, "mentor", got.DailyComments[0].AddedBy.UserName)
	require.Equal(t, domain.InternshipActive, got.InternshipDetails.Status)
}

func TestInternRepositoryDuplicateEmail(t *testing.T) {
	repo := newTestInternRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, makeIntern("Jane", "Doe", "jane@example.com")))

	err := repo.Create(ctx, makeIntern("Other", "Person", "JANE@example.com"))
	require.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestInternRepositoryListFilters(t *testing.T) {
	repo := newTestInternRepo(t)
	ctx := context.Background()

	jane := makeIntern("Jane", "Doe", "jane@example.com")
	require.NoError(t, repo.Create(ctx, jane))

	john := makeIntern("John", "Roe", "john@example.com")
	john.InternshipDetails.Status = domain.InternshipCompleted
	john.InternshipDetails.Department = "Design"
	require.NoError(t, repo.Create(ctx, john))

	gone := makeIntern("Gone", "Soon", "gone@example.com")
	gone.IsActive = false
	require.NoError(t, repo.Create(ctx, gone))

	// Soft-deleted interns do not appear in listings.
	interns, total, err := repo.List(ctx, repository.InternFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, interns, 2)

	_, total, err = repo.List(ctx, repository.InternFilter{Status: domain.InternshipCompleted, Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, total)

	_, total, err = repo.List(ctx, repository.InternFilter{Department: "Design", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, total)

	interns, total, err = repo.List(ctx, repository.InternFilter{Search: "doe", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "Jane", interns[0].PersonalInfo.FirstName)
}

func TestInternRepositoryUpdateAppendsLog(t *testing.T) {
	repo := newTestInternRepo(t)
	ctx := context.Background()

	intern := makeIntern("Jane", "Doe", "jane@example.com")
	require.NoError(t, repo.Create(ctx, intern))

	intern.MeetingNotes = append(intern.MeetingNotes, domain.MeetingNote{
		Date:    time.Now().UTC(),
		Notes:   "Weekly sync",
		AddedBy: domain.ActorRef{UserID: "u2"},
	})
	require.NoError(t, repo.Update(ctx, intern))

	got, err := repo.GetByID(ctx, intern.ID)
	require.NoError(t, err)
	require.Len(t, got.MeetingNotes, 1)

	missing := makeIntern("No", "One", "missing@example.com")
	err = repo.Update(ctx, missing)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
