package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/app/models/dto"
	"github.com/tahsin/scholarfolio/internal/pkg/apperrors"
)

func validAchievementRequest() *dto.CreateAchievementRequest {
	return &dto.CreateAchievementRequest{
		Title:       "Best Paper Award",
		Description: "Awarded for work on distributed systems",
		Date:        "2024-06-01",
		Place:       "Dhaka",
		Event:       "National Conference",
		Position:    "1st",
		Category:    models.AchievementCategoryCompetition,
	}
}

func TestAchievementCreate(t *testing.T) {
	repo := newFakeAchievementRepo()
	store := &fakeStore{}
	svc := NewAchievementService(repo, store)

	created, err := svc.Create(context.Background(), validAchievementRequest(), fileHeader("photo.jpg"))
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, models.DefaultOwner, created.Owner)
	assert.Equal(t, "Best Paper Award", created.Title)
	assert.NotEmpty(t, created.Photo.PublicID)
	assert.Len(t, store.uploads, 1)
}

func TestAchievementCreateWithoutPhoto(t *testing.T) {
	repo := newFakeAchievementRepo()
	svc := NewAchievementService(repo, &fakeStore{})

	created, err := svc.Create(context.Background(), validAchievementRequest(), nil)
	require.NoError(t, err)
	assert.True(t, created.Photo.IsZero())
}

func TestAchievementCreateDefaultsCategory(t *testing.T) {
	repo := newFakeAchievementRepo()
	svc := NewAchievementService(repo, &fakeStore{})

	req := validAchievementRequest()
	req.Category = ""
	created, err := svc.Create(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, models.AchievementCategoryAcademic, created.Category)
}

func TestAchievementCreateValidation(t *testing.T) {
	svc := NewAchievementService(newFakeAchievementRepo(), &fakeStore{})

	req := validAchievementRequest()
	req.Title = ""
	req.Place = " "
	_, err := svc.Create(context.Background(), req, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	req = validAchievementRequest()
	req.Category = "cooking"
	_, err = svc.Create(context.Background(), req, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	req = validAchievementRequest()
	req.Date = "not-a-date"
	_, err = svc.Create(context.Background(), req, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAchievementUpdateMergesPresentFields(t *testing.T) {
	repo := newFakeAchievementRepo()
	svc := NewAchievementService(repo, &fakeStore{})

	created, err := svc.Create(context.Background(), validAchievementRequest(), nil)
	require.NoError(t, err)

	newTitle := "Updated Award"
	emptyPosition := ""
	updated, err := svc.Update(context.Background(), created.ID.Hex(), &dto.UpdateAchievementRequest{
		Title:    &newTitle,
		Position: &emptyPosition,
	}, nil)
	require.NoError(t, err)

	// Present fields overwrite; absent fields keep the stored value; an
	// explicit empty string clears the optional position.
	assert.Equal(t, "Updated Award", updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, "", updated.Position)
}

func TestAchievementUpdateEmptyRequiredKeepsStored(t *testing.T) {
	repo := newFakeAchievementRepo()
	svc := NewAchievementService(repo, &fakeStore{})

	created, err := svc.Create(context.Background(), validAchievementRequest(), nil)
	require.NoError(t, err)

	empty := ""
	updated, err := svc.Update(context.Background(), created.ID.Hex(), &dto.UpdateAchievementRequest{
		Title: &empty,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, created.Title, updated.Title)
}

func TestAchievementUpdateReplacesPhoto(t *testing.T) {
	repo := newFakeAchievementRepo()
	store := &fakeStore{}
	svc := NewAchievementService(repo, store)

	created, err := svc.Create(context.Background(), validAchievementRequest(), fileHeader("old.jpg"))
	require.NoError(t, err)
	oldID := created.Photo.PublicID

	updated, err := svc.Update(context.Background(), created.ID.Hex(), &dto.UpdateAchievementRequest{}, fileHeader("new.jpg"))
	require.NoError(t, err)
	assert.NotEqual(t, oldID, updated.Photo.PublicID)
	assert.Contains(t, store.removed, oldID)
}

func TestAchievementDeleteRemovesPhoto(t *testing.T) {
	repo := newFakeAchievementRepo()
	store := &fakeStore{}
	svc := NewAchievementService(repo, store)

	created, err := svc.Create(context.Background(), validAchievementRequest(), fileHeader("photo.jpg"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID.Hex()))
	assert.Contains(t, store.removed, created.Photo.PublicID)

	_, err = svc.GetByID(context.Background(), created.ID.Hex())
	assert.ErrorIs(t, err, apperrors.ErrAchievementNotFound)
}

func TestAchievementInvalidID(t *testing.T) {
	svc := NewAchievementService(newFakeAchievementRepo(), &fakeStore{})

	_, err := svc.GetByID(context.Background(), "not-hex")
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)

	err = svc.Delete(context.Background(), "not-hex")
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
}
