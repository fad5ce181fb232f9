package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/app/models/dto"
	"github.com/tahsin/scholarfolio/internal/app/repositories"
	"github.com/tahsin/scholarfolio/internal/pkg/apperrors"
	"github.com/tahsin/scholarfolio/internal/pkg/helpers"
	"github.com/tahsin/scholarfolio/internal/pkg/mediastore"
	"github.com/tahsin/scholarfolio/internal/pkg/validation"
)

// MaxCertificateTitleLength caps the certificate title.
const MaxCertificateTitleLength = 200

// CertificateService defines the interface for certificate operations
type CertificateService interface {
	List(ctx context.Context, category string, featuredOnly bool, page, limit int) ([]models.Certificate, *dto.PaginationInfo, error)
	GetByID(ctx context.Context, id string) (*models.Certificate, error)
	Create(ctx context.Context, req *dto.CreateCertificateRequest, images []*multipart.FileHeader) (*models.Certificate, error)
	Update(ctx context.Context, id string, req *dto.UpdateCertificateRequest, images []*multipart.FileHeader) (*models.Certificate, error)
	Delete(ctx context.Context, id string) error
}

// certificateServiceImpl implements CertificateService
type certificateServiceImpl struct {
	repo  repositories.ICertificateRepository
	media mediastore.Store
}

// NewCertificateService creates a new CertificateService
func NewCertificateService(repo repositories.ICertificateRepository, media mediastore.Store) CertificateService {
	return &certificateServiceImpl{repo: repo, media: media}
}

// List returns one page of certificates, newest issue date first.
func (s *certificateServiceImpl) List(ctx context.Context, category string, featuredOnly bool, page, limit int) ([]models.Certificate, *dto.PaginationInfo, error) {
	skip, capped := helpers.CalculateSkipLimit(page, limit)

	certificates, total, err := s.repo.List(ctx, models.DefaultOwner, repositories.ContentFilter{
		Category:     category,
		FeaturedOnly: featuredOnly,
		Skip:         skip,
		Limit:        capped,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error listing certificates: %w", err)
	}

	return certificates, helpers.NewPaginationInfo(total, page, capped), nil
}

// GetByID returns one certificate.
func (s *certificateServiceImpl) GetByID(ctx context.Context, id string) (*models.Certificate, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, oid)
}

// Create validates the form, uploads any images and persists the
// certificate.
func (s *certificateServiceImpl) Create(ctx context.Context, req *dto.CreateCertificateRequest, images []*multipart.FileHeader) (*models.Certificate, error) {
	var v validation.Violations
	v.Require(req.Title, "Title is required")
	v.RequireMax(req.Title, MaxCertificateTitleLength, fmt.Sprintf("Title cannot exceed %d characters", MaxCertificateTitleLength))
	v.Require(req.Description, "Description is required")
	v.Require(req.IssuingOrganization, "Issuing organization is required")
	v.Require(req.IssueDate, "Issue date is required")
	v.RequireOneOf(req.Category, models.CertificateCategories,
		validation.OneOfMessage("category", models.CertificateCategories))
	if len(images) > models.MaxCertificateImages {
		v.Add(fmt.Sprintf("A certificate can have at most %d images", models.MaxCertificateImages))
	}
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message())
	}

	issueDate, err := parseDate(req.IssueDate, "issue")
	if err != nil {
		return nil, err
	}

	var expirationDate *time.Time
	if req.ExpirationDate != "" {
		parsed, err := parseDate(req.ExpirationDate, "expiration")
		if err != nil {
			return nil, err
		}
		expirationDate = &parsed
	}

	category := req.Category
	if category == "" {
		category = models.CertificateCategoryProfessional
	}

	uploaded, err := s.uploadImages(ctx, images)
	if err != nil {
		return nil, err
	}

	certificate := &models.Certificate{
		Owner:               models.DefaultOwner,
		Title:               req.Title,
		Description:         req.Description,
		IssuingOrganization: req.IssuingOrganization,
		IssueDate:           issueDate,
		ExpirationDate:      expirationDate,
		Category:            category,
		Skills:              req.Skills,
		CredentialID:        req.CredentialID,
		CredentialURL:       req.CredentialURL,
		Images:              uploaded,
		Featured:            req.Featured,
	}

	created, err := s.repo.Create(ctx, certificate)
	if err != nil {
		for _, img := range uploaded {
			removeAssetQuietly(ctx, s.media, img.PublicID)
		}
		return nil, err
	}
	return created, nil
}

// Update merges the present fields into the stored certificate, with the
// same surviving-images contract as projects. An explicit empty expiration
// date clears it.
func (s *certificateServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateCertificateRequest, images []*multipart.FileHeader) (*models.Certificate, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	certificate, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	var v validation.Violations
	if req.Title != nil {
		v.RequireMax(*req.Title, MaxCertificateTitleLength, fmt.Sprintf("Title cannot exceed %d characters", MaxCertificateTitleLength))
	}
	if req.Category != nil {
		v.RequireOneOf(*req.Category, models.CertificateCategories,
			validation.OneOfMessage("category", models.CertificateCategories))
	}

	surviving := certificate.Images
	if req.ExistingImages != nil {
		surviving = *req.ExistingImages
	}
	if len(surviving)+len(images) > models.MaxCertificateImages {
		v.Add(fmt.Sprintf("A certificate can have at most %d images", models.MaxCertificateImages))
	}
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message())
	}

	applyRequired(&certificate.Title, req.Title)
	applyRequired(&certificate.Description, req.Description)
	applyRequired(&certificate.IssuingOrganization, req.IssuingOrganization)
	applyRequired(&certificate.Category, req.Category)
	applyOptional(&certificate.CredentialID, req.CredentialID)
	applyOptional(&certificate.CredentialURL, req.CredentialURL)
	if req.Skills != nil {
		certificate.Skills = req.Skills
	}
	if req.Featured != nil {
		certificate.Featured = *req.Featured
	}

	if req.IssueDate != nil && *req.IssueDate != "" {
		issueDate, err := parseDate(*req.IssueDate, "issue")
		if err != nil {
			return nil, err
		}
		certificate.IssueDate = issueDate
	}
	if req.ExpirationDate != nil {
		if *req.ExpirationDate == "" {
			certificate.ExpirationDate = nil
		} else {
			parsed, err := parseDate(*req.ExpirationDate, "expiration")
			if err != nil {
				return nil, err
			}
			certificate.ExpirationDate = &parsed
		}
	}

	uploaded, err := s.uploadImages(ctx, images)
	if err != nil {
		return nil, err
	}

	if req.ExistingImages != nil {
		for _, old := range certificate.Images {
			if !imageKept(old, surviving) {
				removeAssetQuietly(ctx, s.media, old.PublicID)
			}
		}
	}
	certificate.Images = append(surviving, uploaded...)

	return s.repo.Update(ctx, certificate)
}

// Delete removes the certificate and every referenced image. Media removal
// failures are logged only.
func (s *certificateServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	certificate, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		return err
	}

	for _, img := range certificate.Images {
		removeAssetQuietly(ctx, s.media, img.PublicID)
	}
	return nil
}

func (s *certificateServiceImpl) uploadImages(ctx context.Context, images []*multipart.FileHeader) ([]models.MediaImage, error) {
	uploaded := []models.MediaImage{}
	for _, fh := range images {
		asset, err := s.media.Upload(ctx, fh, mediastore.FolderCertificates, mediastore.CertificateImageRules)
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
