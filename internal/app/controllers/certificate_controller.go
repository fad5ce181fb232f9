package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/app/models/dto"
	"github.com/tahsin/scholarfolio/internal/app/services"
	"github.com/tahsin/scholarfolio/internal/middleware"
	"github.com/tahsin/scholarfolio/internal/pkg/helpers"
)

// DefaultCertificatePageSize is the certificates list page size when the
// query does not say otherwise.
const DefaultCertificatePageSize = 12

// CertificateController handles certificate CRUD operations
type CertificateController struct {
	certificateService services.CertificateService
	logger             zerolog.Logger
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(certificateService services.CertificateService, logger zerolog.Logger) *CertificateController {
	return &CertificateController{
		certificateService: certificateService,
		logger:             logger,
	}
}

// List returns one page of certificates
// @Summary List certificates
// @Tags certificates
// @Produce json
// @Param category query string false "Category filter; 'all' disables it"
// @Param featured query bool false "Keep only featured certificates"
// @Param page query int false "1-based page"
// @Param limit query int false "Page size, default 12"
// @Success 200 {object} dto.APIResponse{data=[]models.Certificate}
// @Router /certificates [get]
func (c *CertificateController) List(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx, DefaultCertificatePageSize)
	category := ctx.Query("category")
	featured := ctx.Query("featured") == "true"

	certificates, pagination, err := c.certificateService.List(ctx.Request.Context(), category, featured, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(certificates, pagination))
}

// ListByCategory returns one page of certificates in a category
// @Summary List certificates by category
// @Tags certificates
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} dto.APIResponse{data=[]models.Certificate}
// @Router /certificates/category/{category} [get]
func (c *CertificateController) ListByCategory(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx, DefaultCertificatePageSize)
	featured := ctx.Query("featured") == "true"

	certificates, pagination, err := c.certificateService.List(ctx.Request.Context(), ctx.Param("category"), featured, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(certificates, pagination))
}

// GetByID returns one certificate
// @Summary Get certificate
// @Tags certificates
// @Produce json
// @Param id path string true "Certificate id"
// @Success 200 {object} dto.APIResponse{data=models.Certificate}
// @Failure 404 {object} dto.APIResponse
// @Router /certificates/{id} [get]
func (c *CertificateController) GetByID(ctx *gin.Context) {
	certificate, err := c.certificateService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(certificate))
}

// Create adds a new certificate
// @Summary Create certificate
// @Tags certificates
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param images formData file false "Up to 5 images, max 8MB each"
// @Success 201 {object} dto.APIResponse{data=models.Certificate}
// @Failure 400 {object} dto.APIResponse
// @Router /certificates [post]
func (c *CertificateController) Create(ctx *gin.Context) {
	var req dto.CreateCertificateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	certificate, err := c.certificateService.Create(ctx.Request.Context(), &req, formFiles(ctx, "images"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("title", certificate.Title).Msg("Certificate created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(certificate))
}

// Update modifies an existing certificate with the same surviving-images
// contract as projects.
// @Summary Update certificate
// @Tags certificates
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate id"
// @Success 200 {object} dto.APIResponse{data=models.Certificate}
// @Failure 404 {object} dto.APIResponse
// @Router /certificates/{id} [put]
func (c *CertificateController) Update(ctx *gin.Context) {
	var req dto.UpdateCertificateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	var existingImages []models.MediaImage
	present, err := decodeJSONField(ctx, "existingImages", &existingImages)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("existingImages must be valid JSON"))
		return
	}
	if present {
		req.ExistingImages = &existingImages
	}

	certificate, err := c.certificateService.Update(ctx.Request.Context(), ctx.Param("id"), &req, formFiles(ctx, "images"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(certificate))
}

// Delete removes a certificate
// @Summary Delete certificate
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate id"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /certificates/{id} [delete]
func (c *CertificateController) Delete(ctx *gin.Context) {
	if err := c.certificateService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Certificate deleted successfully"))
}
