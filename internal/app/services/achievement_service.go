package services

import (
	"context"
	"mime/multipart"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/app/models/dto"
	"github.com/tahsin/scholarfolio/internal/app/repositories"
	"github.com/tahsin/scholarfolio/internal/pkg/apperrors"
	"github.com/tahsin/scholarfolio/internal/pkg/mediastore"
	"github.com/tahsin/scholarfolio/internal/pkg/validation"
)

// AchievementService defines the interface for achievement operations
type AchievementService interface {
	List(ctx context.Context) ([]models.Achievement, error)
	GetByID(ctx context.Context, id string) (*models.Achievement, error)
	Create(ctx context.Context, req *dto.CreateAchievementRequest, photo *multipart.FileHeader) (*models.Achievement, error)
	Update(ctx context.Context, id string, req *dto.UpdateAchievementRequest, photo *multipart.FileHeader) (*models.Achievement, error)
	Delete(ctx context.Context, id string) error
}

// achievementServiceImpl implements AchievementService
type achievementServiceImpl struct {
	repo  repositories.IAchievementRepository
	media mediastore.Store
}

// NewAchievementService creates a new AchievementService
func NewAchievementService(repo repositories.IAchievementRepository, media mediastore.Store) AchievementService {
	return &achievementServiceImpl{repo: repo, media: media}
}

// List returns every achievement, newest first.
func (s *achievementServiceImpl) List(ctx context.Context) ([]models.Achievement, error) {
	return s.repo.List(ctx, models.DefaultOwner)
}

// GetByID returns one achievement.
func (s *achievementServiceImpl) GetByID(ctx context.Context, id string) (*models.Achievement, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, oid)
}

// Create validates the form, uploads the optional photo and persists the
// achievement.
func (s *achievementServiceImpl) Create(ctx context.Context, req *dto.CreateAchievementRequest, photo *multipart.FileHeader) (*models.Achievement, error) {
	var v validation.Violations
	v.Require(req.Title, "Title is required")
	v.Require(req.Description, "Description is required")
	v.Require(req.Date, "Date is required")
	v.Require(req.Place, "Place is required")
	v.Require(req.Event, "Event is required")
	v.RequireOneOf(req.Category, models.AchievementCategories,
		validation.OneOfMessage("category", models.AchievementCategories))
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message())
	}

	date, err := parseDate(req.Date, "achievement")
	if err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = models.AchievementCategoryAcademic
	}

	achievement := &models.Achievement{
		Owner:       models.DefaultOwner,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Place:       req.Place,
		Event:       req.Event,
		Position:    req.Position,
		Category:    category,
	}

	if photo != nil {
		asset, err := s.media.Upload(ctx, photo, mediastore.FolderAchievements, mediastore.AchievementPhotoRules)
		if err != nil {
			return nil, err
		}
		achievement.Photo = models.MediaAsset{URL: asset.URL, PublicID: asset.PublicID}
	}

	return s.repo.Create(ctx, achievement)
}

// Update merges the present fields into the stored achievement. A new photo
// replaces the old one; the old asset is removed best-effort.
func (s *achievementServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateAchievementRequest, photo *multipart.FileHeader) (*models.Achievement, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	achievement, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if req.Category != nil && *req.Category != "" {
		var v validation.Violations
		v.RequireOneOf(*req.Category, models.AchievementCategories,
			validation.OneOfMessage("category", models.AchievementCategories))
		if !v.OK() {
			return nil, apperrors.NewValidationError(v.Message())
		}
	}

	applyRequired(&achievement.Title, req.Title)
	applyRequired(&achievement.Description, req.Description)
	applyRequired(&achievement.Place, req.Place)
	applyRequired(&achievement.Event, req.Event)
	applyRequired(&achievement.Category, req.Category)
	applyOptional(&achievement.Position, req.Position)

	if req.Date != nil && *req.Date != "" {
		date, err := parseDate(*req.Date, "achievement")
		if err != nil {
			return nil, err
		}
		achievement.Date = date
	}

	if photo != nil {
		asset, err := s.media.Upload(ctx, photo, mediastore.FolderAchievements, mediastore.AchievementPhotoRules)
		if err != nil {
			return nil, err
		}
		oldID := achievement.Photo.PublicID
		achievement.Photo = models.MediaAsset{URL: asset.URL, PublicID: asset.PublicID}
		removeAssetQuietly(ctx, s.media, oldID)
	}

	return s.repo.Update(ctx, achievement)
}

// Delete removes the achievement and its photo. Media removal failures are
// logged only.
func (s *achievementServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	achievement, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		return err
	}

	removeAssetQuietly(ctx, s.media, achievement.Photo.PublicID)
	return nil
}
