package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/app/models/dto"
	"github.com/tahsin/scholarfolio/internal/app/repositories"
	"github.com/tahsin/scholarfolio/internal/pkg/apperrors"
	"github.com/tahsin/scholarfolio/internal/pkg/helpers"
	"github.com/tahsin/scholarfolio/internal/pkg/mediastore"
	"github.com/tahsin/scholarfolio/internal/pkg/validation"
)

// MaxProjectTitleLength caps the project title.
const MaxProjectTitleLength = 200

// ProjectService defines the interface for project operations
type ProjectService interface {
	List(ctx context.Context, category string, featuredOnly bool, page, limit int) ([]models.Project, *dto.PaginationInfo, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, req *dto.CreateProjectRequest, images []*multipart.FileHeader) (*models.Project, error)
	Update(ctx context.Context, id string, req *dto.UpdateProjectRequest, images []*multipart.FileHeader) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

// projectServiceImpl implements ProjectService
type projectServiceImpl struct {
	repo  repositories.IProjectRepository
	media mediastore.Store
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo repositories.IProjectRepository, media mediastore.Store) ProjectService {
	return &projectServiceImpl{repo: repo, media: media}
}

// List returns one page of projects, newest project date first. Category
// "all" (or empty) disables the category filter; list views omit the
// detailed description.
func (s *projectServiceImpl) List(ctx context.Context, category string, featuredOnly bool, page, limit int) ([]models.Project, *dto.PaginationInfo, error) {
	skip, capped := helpers.CalculateSkipLimit(page, limit)

	projects, total, err := s.repo.List(ctx, models.DefaultOwner, repositories.ContentFilter{
		Category:     category,
		FeaturedOnly: featuredOnly,
		Skip:         skip,
		Limit:        capped,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error listing projects: %w", err)
	}

	return projects, helpers.NewPaginationInfo(total, page, capped), nil
}

// GetByID returns one project including the detailed description.
func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*models.Project, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, oid)
}

// Create validates the form, uploads any images and persists the project.
func (s *projectServiceImpl) Create(ctx context.Context, req *dto.CreateProjectRequest, images []*multipart.FileHeader) (*models.Project, error) {
	var v validation.Violations
	v.Require(req.Title, "Title is required")
	v.RequireMax(req.Title, MaxProjectTitleLength, fmt.Sprintf("Title cannot exceed %d characters", MaxProjectTitleLength))
	v.Require(req.Description, "Description is required")
	v.Require(req.DetailedDescription, "Detailed description is required")
	v.Require(req.ProjectDate, "Project date is required")
	v.RequireOneOf(req.Category, models.ProjectCategories,
		validation.OneOfMessage("category", models.ProjectCategories))
	if len(images) > models.MaxProjectImages {
		v.Add(fmt.Sprintf("A project can have at most %d images", models.MaxProjectImages))
	}
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message())
	}

	projectDate, err := parseDate(req.ProjectDate, "project")
	if err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = models.ProjectCategoryUndergraduate
	}

	uploaded, err := s.uploadImages(ctx, images)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Owner:               models.DefaultOwner,
		Title:               req.Title,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Technologies:        req.Technologies,
		Category:            category,
		ProjectDate:         projectDate,
		TeamMembers:         req.TeamMembers,
		GithubLink:          req.GithubLink,
		LiveDemoLink:        req.LiveDemoLink,
		Images:              uploaded,
		Featured:            req.Featured,
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		for _, img := range uploaded {
			removeAssetQuietly(ctx, s.media, img.PublicID)
		}
		return nil, err
	}
	return created, nil
}

// Update merges the present fields into the stored project. When the
// request names surviving images, everything outside that subset is removed
// and new uploads are appended after it.
func (s *projectServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateProjectRequest, images []*multipart.FileHeader) (*models.Project, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	project, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	var v validation.Violations
	if req.Title != nil {
		v.RequireMax(*req.Title, MaxProjectTitleLength, fmt.Sprintf("Title cannot exceed %d characters", MaxProjectTitleLength))
	}
	if req.Category != nil {
		v.RequireOneOf(*req.Category, models.ProjectCategories,
			validation.OneOfMessage("category", models.ProjectCategories))
	}

	surviving := project.Images
	if req.ExistingImages != nil {
		surviving = *req.ExistingImages
	}
	if len(surviving)+len(images) > models.MaxProjectImages {
		v.Add(fmt.Sprintf("A project can have at most %d images", models.MaxProjectImages))
	}
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message())
	}

	applyRequired(&project.Title, req.Title)
	applyRequired(&project.Description, req.Description)
	applyRequired(&project.DetailedDescription, req.DetailedDescription)
	applyRequired(&project.Category, req.Category)
	applyOptional(&project.GithubLink, req.GithubLink)
	applyOptional(&project.LiveDemoLink, req.LiveDemoLink)
	if req.Technologies != nil {
		project.Technologies = req.Technologies
	}
	if req.TeamMembers != nil {
		project.TeamMembers = *req.TeamMembers
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}

	if req.ProjectDate != nil && *req.ProjectDate != "" {
		projectDate, err := parseDate(*req.ProjectDate, "project")
		if err != nil {
			return nil, err
		}
		project.ProjectDate = projectDate
	}

	uploaded, err := s.uploadImages(ctx, images)
	if err != nil {
		return nil, err
	}

	if req.ExistingImages != nil {
		for _, old := range project.Images {
			if !imageKept(old, surviving) {
				removeAssetQuietly(ctx, s.media, old.PublicID)
			}
		}
	}
	project.Images = append(surviving, uploaded...)

	return s.repo.Update(ctx, project)
}

// Delete removes the project and every referenced image. Media removal
// failures are logged only.
func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	project, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		return err
	}

	for _, img := range project.Images {
		removeAssetQuietly(ctx, s.media, img.PublicID)
	}
	return nil
}

func (s *projectServiceImpl) uploadImages(ctx context.Context, images []*multipart.FileHeader) ([]models.MediaImage, error) {
	uploaded := []models.MediaImage{}
	for _, fh := range images {
		asset, err := s.media.Upload(ctx, fh, mediastore.FolderProjects, mediastore.ProjectImageRules)
		if err != nil {
			for _, img := range uploaded {
				removeAssetQuietly(ctx, s.media, img.PublicID)
			}
			return nil, err
		}
		uploaded = append(uploaded, models.MediaImage{URL: asset.URL, PublicID: asset.PublicID})
	}
	return uploaded, nil
}

func imageKept(img models.MediaImage, kept []models.MediaImage) bool {
	for _, k := range kept {
		if k.PublicID == img.PublicID {
			return true
		}
	}
	return false
}
