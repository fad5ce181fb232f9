package services

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/app/models/dto"
	"github.com/tahsin/scholarfolio/internal/app/repositories"
	"github.com/tahsin/scholarfolio/internal/pkg/apperrors"
	"github.com/tahsin/scholarfolio/internal/pkg/helpers"
	"github.com/tahsin/scholarfolio/internal/pkg/mediastore"
	"github.com/tahsin/scholarfolio/internal/pkg/validation"
)

// ResearchService defines the interface for research paper operations
type ResearchService interface {
	List(ctx context.Context) ([]models.ResearchPaper, error)
	GetByID(ctx context.Context, id string) (*models.ResearchPaper, error)
	Create(ctx context.Context, req *dto.CreateResearchRequest, pdf *multipart.FileHeader) (*models.ResearchPaper, error)
	Update(ctx context.Context, id string, req *dto.UpdateResearchRequest, pdf *multipart.FileHeader) (*models.ResearchPaper, error)
	Delete(ctx context.Context, id string) error
	Download(ctx context.Context, id string) (io.ReadCloser, int64, string, error)
}

// researchServiceImpl implements ResearchService
type researchServiceImpl struct {
	repo  repositories.IResearchRepository
	media mediastore.Store
}

// NewResearchService creates a new ResearchService
func NewResearchService(repo repositories.IResearchRepository, media mediastore.Store) ResearchService {
	return &researchServiceImpl{repo: repo, media: media}
}

// List returns every research paper, newest publication first.
func (s *researchServiceImpl) List(ctx context.Context) ([]models.ResearchPaper, error) {
	return s.repo.List(ctx, models.DefaultOwner)
}

// GetByID returns one research paper.
func (s *researchServiceImpl) GetByID(ctx context.Context, id string) (*models.ResearchPaper, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, oid)
}

// Create validates the form and persists the paper. The PDF is mandatory.
func (s *researchServiceImpl) Create(ctx context.Context, req *dto.CreateResearchRequest, pdf *multipart.FileHeader) (*models.ResearchPaper, error) {
	var v validation.Violations
	v.Require(req.Title, "Title is required")
	v.Require(req.Description, "Description is required")
	v.Require(req.PublishedDate, "Published date is required")
	v.Require(req.Publisher, "Publisher is required")
	if pdf == nil {
		v.Add("PDF file is required")
	}
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message())
	}

	publishedDate, err := parseDate(req.PublishedDate, "published")
	if err != nil {
		return nil, err
	}

	asset, err := s.media.Upload(ctx, pdf, mediastore.FolderResearchPapers, mediastore.ResearchPDFRules)
	if err != nil {
		return nil, err
	}

	paper := &models.ResearchPaper{
		Owner:         models.DefaultOwner,
		Title:         req.Title,
		Description:   req.Description,
		PdfFile:       models.MediaAsset{URL: asset.URL, PublicID: asset.PublicID},
		PublishedDate: publishedDate,
		Publisher:     req.Publisher,
		Authors:       req.Authors,
		DOI:           req.DOI,
		Tags:          req.Tags,
	}

	created, err := s.repo.Create(ctx, paper)
	if err != nil {
		// the document never landed, so the uploaded PDF is orphaned
		removeAssetQuietly(ctx, s.media, asset.PublicID)
		return nil, err
	}
	return created, nil
}

// Update merges the present fields into the stored paper. A new PDF
// replaces the old one; the old asset is removed best-effort.
func (s *researchServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateResearchRequest, pdf *multipart.FileHeader) (*models.ResearchPaper, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	paper, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	applyRequired(&paper.Title, req.Title)
	applyRequired(&paper.Description, req.Description)
	applyRequired(&paper.Publisher, req.Publisher)
	applyOptional(&paper.DOI, req.DOI)
	if req.Authors != nil {
		paper.Authors = req.Authors
	}
	if req.Tags != nil {
		paper.Tags = req.Tags
	}

	if req.PublishedDate != nil && *req.PublishedDate != "" {
		publishedDate, err := parseDate(*req.PublishedDate, "published")
		if err != nil {
			return nil, err
		}
		paper.PublishedDate = publishedDate
	}

	if pdf != nil {
		asset, err := s.media.Upload(ctx, pdf, mediastore.FolderResearchPapers, mediastore.ResearchPDFRules)
		if err != nil {
			return nil, err
		}
		oldID := paper.PdfFile.PublicID
		paper.PdfFile = models.MediaAsset{URL: asset.URL, PublicID: asset.PublicID}
		removeAssetQuietly(ctx, s.media, oldID)
	}

	return s.repo.Update(ctx, paper)
}

// Delete removes the paper and its PDF. Media removal failures are logged
// only.
func (s *researchServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	paper, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		return err
	}

	removeAssetQuietly(ctx, s.media, paper.PdfFile.PublicID)
	return nil
}

// Download streams the stored PDF along with the attachment filename
// derived from the paper title.
func (s *researchServiceImpl) Download(ctx context.Context, id string) (io.ReadCloser, int64, string, error) {
	paper, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, 0, "", err
	}
	if paper.PdfFile.PublicID == "" {
		return nil, 0, "", apperrors.NewNotFoundError("No PDF attached to this research paper")
	}

	reader, size, err := s.media.Fetch(ctx, paper.PdfFile.PublicID)
	if err != nil {
		return nil, 0, "", err
	}

	filename := helpers.SanitizeFilename(paper.Title) + ".pdf"
	return reader, size, filename, nil
}
