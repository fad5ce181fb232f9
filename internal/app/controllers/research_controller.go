package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tahsin/scholarfolio/internal/app/models/dto"
	"github.com/tahsin/scholarfolio/internal/app/services"
	"github.com/tahsin/scholarfolio/internal/middleware"
)

// ResearchController handles research paper CRUD and the download proxy
type ResearchController struct {
	researchService services.ResearchService
	logger          zerolog.Logger
}

// NewResearchController creates a new ResearchController
func NewResearchController(researchService services.ResearchService, logger zerolog.Logger) *ResearchController {
	return &ResearchController{
		researchService: researchService,
		logger:          logger,
	}
}

// List returns all research papers, newest publication first
// @Summary List research papers
// @Tags research
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.ResearchPaper}
// @Router /researchAchievement/research [get]
func (c *ResearchController) List(ctx *gin.Context) {
	papers, err := c.researchService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(papers))
}

// GetByID returns one research paper
// @Summary Get research paper
// @Tags research
// @Produce json
// @Param id path string true "Research paper id"
// @Success 200 {object} dto.APIResponse{data=models.ResearchPaper}
// @Failure 404 {object} dto.APIResponse
// @Router /researchAchievement/research/{id} [get]
func (c *ResearchController) GetByID(ctx *gin.Context) {
	paper, err := c.researchService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(paper))
}

// Create adds a new research paper
// @Summary Create research paper
// @Tags research
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param pdfFile formData file true "PDF, max 20MB"
// @Success 201 {object} dto.APIResponse{data=models.ResearchPaper}
// @Failure 400 {object} dto.APIResponse
// @Router /researchAchievement/research [post]
func (c *ResearchController) Create(ctx *gin.Context) {
	var req dto.CreateResearchRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	pdf, _ := ctx.FormFile("pdfFile")

	paper, err := c.researchService.Create(ctx.Request.Context(), &req, pdf)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("title", paper.Title).Msg("Research paper created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(paper))
}

// Update modifies an existing research paper
// @Summary Update research paper
// @Tags research
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Research paper id"
// @Success 200 {object} dto.APIResponse{data=models.ResearchPaper}
// @Failure 404 {object} dto.APIResponse
// @Router /researchAchievement/research/{id} [put]
func (c *ResearchController) Update(ctx *gin.Context) {
	var req dto.UpdateResearchRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	pdf, _ := ctx.FormFile("pdfFile")

	paper, err := c.researchService.Update(ctx.Request.Context(), ctx.Param("id"), &req, pdf)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(paper))
}

// Delete removes a research paper
// @Summary Delete research paper
// @Tags research
// @Produce json
// @Security BearerAuth
// @Param id path string true "Research paper id"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /researchAchievement/research/{id} [delete]
func (c *ResearchController) Delete(ctx *gin.Context) {
	if err := c.researchService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Research paper deleted successfully"))
}

// Download streams the stored PDF through the server so the response can
// carry a clean attachment filename
// @Summary Download research PDF
// @Tags research
// @Produce application/pdf
// @Param id path string true "Research paper id"
// @Success 200 {file} binary
// @Failure 404 {object} dto.APIResponse
// @Router /researchAchievement/research/{id}/download [get]
func (c *ResearchController) Download(ctx *gin.Context) {
	reader, size, filename, err := c.researchService.Download(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer reader.Close()

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.DataFromReader(http.StatusOK, size, "application/pdf", reader, nil)
}
