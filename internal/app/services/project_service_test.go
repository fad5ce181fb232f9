package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/app/models/dto"
	"github.com/tahsin/scholarfolio/internal/pkg/apperrors"
)

func validProjectRequest() *dto.CreateProjectRequest {
	return &dto.CreateProjectRequest{
		Title:               "Campus Navigator",
		Description:         "Indoor navigation for the university campus",
		DetailedDescription: "A longer write-up of the system architecture",
		Technologies:        []string{"Go", "MongoDB"},
		Category:            models.ProjectCategoryResearch,
		ProjectDate:         "2024-03-15",
		TeamMembers:         []models.TeamMember{{Name: "Alex", Role: "Backend"}},
		Featured:            true,
	}
}

func headers(n int) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, n)
	for i := range out {
		out[i] = fileHeader(fmt.Sprintf("img-%d.png", i))
	}
	return out
}

func TestProjectCreate(t *testing.T) {
	repo := &fakeProjectRepo{}
	store := &fakeStore{}
	svc := NewProjectService(repo, store)

	created, err := svc.Create(context.Background(), validProjectRequest(), headers(3))
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Len(t, created.Images, 3)
	assert.True(t, created.Featured)
	assert.Len(t, store.uploads, 3)
}

func TestProjectCreateTooManyImages(t *testing.T) {
	svc := NewProjectService(&fakeProjectRepo{}, &fakeStore{})

	_, err := svc.Create(context.Background(), validProjectRequest(), headers(models.MaxProjectImages+1))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestProjectCreateTitleTooLong(t *testing.T) {
	svc := NewProjectService(&fakeProjectRepo{}, &fakeStore{})

	req := validProjectRequest()
	req.Title = strings.Repeat("x", MaxProjectTitleLength+1)
	_, err := svc.Create(context.Background(), req, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestProjectListPagination(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewProjectService(repo, &fakeStore{})

	for i := 0; i < 15; i++ {
		req := validProjectRequest()
		req.Title = fmt.Sprintf("Project %d", i)
		req.ProjectDate = fmt.Sprintf("2024-01-%02d", i+1)
		req.Featured = i%2 == 0
		_, err := svc.Create(context.Background(), req, nil)
		require.NoError(t, err)
	}

	page1, info, err := svc.List(context.Background(), "", false, 1, 9)
	require.NoError(t, err)
	assert.Len(t, page1, 9)
	assert.Equal(t, int64(15), info.TotalCount)
	assert.Equal(t, 2, info.TotalPages)
	assert.True(t, info.HasNext)
	assert.False(t, info.HasPrev)

	page2, info, err := svc.List(context.Background(), "", false, 2, 9)
	require.NoError(t, err)
	assert.Len(t, page2, 6)
	assert.False(t, info.HasNext)
	assert.True(t, info.HasPrev)

	// Newest project date first.
	assert.Equal(t, "Project 14", page1[0].Title)
}

func TestProjectListFilters(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewProjectService(repo, &fakeStore{})

	personal := validProjectRequest()
	personal.Category = models.ProjectCategoryPersonal
	personal.Featured = false
	_, err := svc.Create(context.Background(), personal, nil)
	require.NoError(t, err)

	featured := validProjectRequest()
	featured.Featured = true
	_, err = svc.Create(context.Background(), featured, nil)
	require.NoError(t, err)

	byCategory, _, err := svc.List(context.Background(), models.ProjectCategoryPersonal, false, 1, 9)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	// "all" disables the category filter.
	all, _, err := svc.List(context.Background(), "all", false, 1, 9)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	featuredOnly, _, err := svc.List(context.Background(), "", true, 1, 9)
	require.NoError(t, err)
	assert.Len(t, featuredOnly, 1)
	assert.True(t, featuredOnly[0].Featured)
}

func TestProjectUpdateKeepsImagesWhenAbsent(t *testing.T) {
	repo := &fakeProjectRepo{}
	store := &fakeStore{}
	svc := NewProjectService(repo, store)

	created, err := svc.Create(context.Background(), validProjectRequest(), headers(2))
	require.NoError(t, err)

	newTitle := "Renamed"
	updated, err := svc.Update(context.Background(), created.ID.Hex(), &dto.UpdateProjectRequest{Title: &newTitle}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Len(t, updated.Images, 2)
	assert.Empty(t, store.removed)
}

func TestProjectUpdateExistingImagesSubset(t *testing.T) {
	repo := &fakeProjectRepo{}
	store := &fakeStore{}
	svc := NewProjectService(repo, store)

	created, err := svc.Create(context.Background(), validProjectRequest(), headers(3))
	require.NoError(t, err)

	// Keep only the first image, drop the other two, append one upload.
	keep := []models.MediaImage{created.Images[0]}
	updated, err := svc.Update(context.Background(), created.ID.Hex(), &dto.UpdateProjectRequest{
		ExistingImages: &keep,
	}, headers(1))
	require.NoError(t, err)

	require.Len(t, updated.Images, 2)
	assert.Equal(t, created.Images[0].PublicID, updated.Images[0].PublicID)
	assert.Contains(t, store.removed, created.Images[1].PublicID)
	assert.Contains(t, store.removed, created.Images[2].PublicID)
	assert.NotContains(t, store.removed, created.Images[0].PublicID)
}

func TestProjectUpdateImageCap(t *testing.T) {
	repo := &fakeProjectRepo{}
	store := &fakeStore{}
	svc := NewProjectService(repo, store)

	created, err := svc.Create(context.Background(), validProjectRequest(), headers(models.MaxProjectImages))
	require.NoError(t, err)

	// Cap is checked before any upload happens.
	uploadsBefore := len(store.uploads)
	_, err = svc.Update(context.Background(), created.ID.Hex(), &dto.UpdateProjectRequest{}, headers(1))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Len(t, store.uploads, uploadsBefore)
}

func TestProjectUpdateTeamMembersAndFeatured(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewProjectService(repo, &fakeStore{})

	created, err := svc.Create(context.Background(), validProjectRequest(), nil)
	require.NoError(t, err)

	team := []models.TeamMember{}
	notFeatured := false
	updated, err := svc.Update(context.Background(), created.ID.Hex(), &dto.UpdateProjectRequest{
		TeamMembers: &team,
		Featured:    &notFeatured,
	}, nil)
	require.NoError(t, err)

	// A present empty array replaces; a present false clears the flag.
	assert.Empty(t, updated.TeamMembers)
	assert.False(t, updated.Featured)
}

func TestProjectDeleteRemovesImages(t *testing.T) {
	repo := &fakeProjectRepo{}
	store := &fakeStore{}
	svc := NewProjectService(repo, store)

	created, err := svc.Create(context.Background(), validProjectRequest(), headers(2))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID.Hex()))
	assert.Len(t, store.removed, 2)

	_, err = svc.GetByID(context.Background(), created.ID.Hex())
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}
