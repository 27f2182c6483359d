package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/repository"
	"admin-dashboard/internal/repository/sqlite"
)

var testActor = domain.Identity{ID: "u1", Username: "alice", Email: "alice@example.com", Role: domain.RoleUser}

func newLearningService(t *testing.T) LearningResourceService {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewLearningResourceRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return NewLearningResourceService(repo)
}

func createTestResource(t *testing.T, svc LearningResourceService, title string) *domain.LearningResource {
	t.Helper()

	res, err := svc.Create(context.Background(), testActor, CreateLearningResourceInput{
		Title:    title,
		Category: domain.CategoryTutorial,
		URL:      "https://example.com/" + title,
		Tags:     []string{"golang"},
	})
	require.NoError(t, err)
	return res
}

func TestLearningResourceCreateDefaults(t *testing.T) {
	svc := newLearningService(t)

	res := createTestResource(t, svc, "intro")
	require.Equal(t, domain.DifficultyBeginner, res.Difficulty)
	require.Equal(t, testActor.ID, res.CreatedBy.UserID)
	require.Equal(t, "alice", res.CreatedBy.UserName)
	require.True(t, res.IsActive)
	require.Nil(t, res.UpdatedBy)
}

func TestLearningResourceGetBumpsViews(t *testing.T) {
	svc := newLearningService(t)
	ctx := context.Background()

	res := createTestResource(t, svc, "intro")

	got, err := svc.Get(ctx, res.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.Views)

	got, err = svc.Get(ctx, res.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, got.Views)

	_, err = svc.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLearningResourceUpdateRecordsActor(t *testing.T) {
	svc := newLearningService(t)
	ctx := context.Background()

	res := createTestResource(t, svc, "intro")

	admin := domain.Identity{ID: "admin-1", Username: "admin", Role: domain.RoleAdmin}
	title := "advanced"
	updated, err := svc.Update(ctx, res.ID, admin, UpdateLearningResourceInput{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "advanced", updated.Title)
	require.NotNil(t, updated.UpdatedBy)
	require.Equal(t, "admin-1", updated.UpdatedBy.UserID)
	// Untouched fields keep their stored values.
	require.Equal(t, domain.CategoryTutorial, updated.Category)
}

func TestLearningResourceLike(t *testing.T) {
	svc := newLearningService(t)
	ctx := context.Background()

	res := createTestResource(t, svc, "intro")

	likes, err := svc.Like(ctx, res.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, likes)

	likes, err = svc.Like(ctx, res.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, likes)
}

func TestLearningResourceSoftDelete(t *testing.T) {
	svc := newLearningService(t)
	ctx := context.Background()

	res := createTestResource(t, svc, "intro")
	require.NoError(t, svc.Delete(ctx, res.ID))

	_, err := svc.Get(ctx, res.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, total, err := svc.List(ctx, repository.LearningResourceFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 0, total)

	require.ErrorIs(t, svc.Delete(ctx, res.ID), ErrNotFound)
}

func TestLearningResourceSearch(t *testing.T) {
	svc := newLearningService(t)
	ctx := context.Background()

	createTestResource(t, svc, "Concurrency Patterns")
	createTestResource(t, svc, "SQL Basics")

	results, total, err := svc.List(ctx, repository.LearningResourceFilter{Search: "concurrency", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "Concurrency Patterns", results[0].Title)

	// Tag terms match too.
	_, total, err = svc.List(ctx, repository.LearningResourceFilter{Search: "golang", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 2, total)
}

func TestLearningResourceOwnerID(t *testing.T) {
	svc := newLearningService(t)
	ctx := context.Background()

	res := createTestResource(t, svc, "intro")

	ownerID, err := svc.OwnerID(ctx, res.ID)
	require.NoError(t, err)
	require.Equal(t, testActor.ID, ownerID)

	_, err = svc.OwnerID(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
