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

// DefaultProjectPageSize is the projects list page size when the query does
// not say otherwise.
const DefaultProjectPageSize = 9

// ProjectController handles project CRUD operations
type ProjectController struct {
	projectService services.ProjectService
	logger         zerolog.Logger
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService, logger zerolog.Logger) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		logger:         logger,
	}
}

// List returns one page of projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Param category query string false "Category filter; 'all' disables it"
// @Param featured query bool false "Keep only featured projects"
// @Param page query int false "1-based page"
// @Param limit query int false "Page size, default 9"
// @Success 200 {object} dto.APIResponse{data=[]models.Project}
// @Router /projects [get]
func (c *ProjectController) List(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx, DefaultProjectPageSize)
	category := ctx.Query("category")
	featured := ctx.Query("featured") == "true"

	projects, pagination, err := c.projectService.List(ctx.Request.Context(), category, featured, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(projects, pagination))
}

// ListByCategory returns one page of projects in a category
// @Summary List projects by category
// @Tags projects
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} dto.APIResponse{data=[]models.Project}
// @Router /projects/category/{category} [get]
func (c *ProjectController) ListByCategory(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx, DefaultProjectPageSize)
	featured := ctx.Query("featured") == "true"

	projects, pagination, err := c.projectService.List(ctx.Request.Context(), ctx.Param("category"), featured, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(projects, pagination))
}

// GetByID returns one project including the detailed description
// @Summary Get project
// @Tags projects
// @Produce json
// @Param id path string true "Project id"
// @Success 200 {object} dto.APIResponse{data=models.Project}
// @Failure 404 {object} dto.APIResponse
// @Router /projects/{id} [get]
func (c *ProjectController) GetByID(ctx *gin.Context) {
	project, err := c.projectService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(project))
}

// Create adds a new project
// @Summary Create project
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param images formData file false "Up to 10 images, max 10MB each"
// @Success 201 {object} dto.APIResponse{data=models.Project}
// @Failure 400 {object} dto.APIResponse
// @Router /projects [post]
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	if _, err := decodeJSONField(ctx, "teamMembers", &req.TeamMembers); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("teamMembers must be valid JSON"))
		return
	}

	project, err := c.projectService.Create(ctx.Request.Context(), &req, formFiles(ctx, "images"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("title", project.Title).Msg("Project created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(project))
}

// Update modifies an existing project. The request names the surviving
// images via the existingImages JSON field; new uploads are appended.
// @Summary Update project
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project id"
// @Success 200 {object} dto.APIResponse{data=models.Project}
// @Failure 404 {object} dto.APIResponse
// @Router /projects/{id} [put]
func (c *ProjectController) Update(ctx *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	var teamMembers []models.TeamMember
	present, err := decodeJSONField(ctx, "teamMembers", &teamMembers)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("teamMembers must be valid JSON"))
		return
	}
	if present {
		req.TeamMembers = &teamMembers
	}

	var existingImages []models.MediaImage
	present, err = decodeJSONField(ctx, "existingImages", &existingImages)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("existingImages must be valid JSON"))
		return
	}
	if present {
		req.ExistingImages = &existingImages
	}

	project, err := c.projectService.Update(ctx.Request.Context(), ctx.Param("id"), &req, formFiles(ctx, "images"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(project))
}

// Delete removes a project
// @Summary Delete project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project id"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /projects/{id} [delete]
func (c *ProjectController) Delete(ctx *gin.Context) {
	if err := c.projectService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Project deleted successfully"))
}
