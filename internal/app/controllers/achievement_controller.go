package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tahsin/scholarfolio/internal/app/models/dto"
	"github.com/tahsin/scholarfolio/internal/app/services"
	"github.com/tahsin/scholarfolio/internal/middleware"
)

// AchievementController handles achievement CRUD operations
type AchievementController struct {
	achievementService services.AchievementService
	logger             zerolog.Logger
}

// NewAchievementController creates a new AchievementController
func NewAchievementController(achievementService services.AchievementService, logger zerolog.Logger) *AchievementController {
	return &AchievementController{
		achievementService: achievementService,
		logger:             logger,
	}
}

// List returns all achievements, newest first
// @Summary List achievements
// @Tags achievements
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Achievement}
// @Router /researchAchievement/achievements [get]
func (c *AchievementController) List(ctx *gin.Context) {
	achievements, err := c.achievementService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(achievements))
}

// GetByID returns one achievement
// @Summary Get achievement
// @Tags achievements
// @Produce json
// @Param id path string true "Achievement id"
// @Success 200 {object} dto.APIResponse{data=models.Achievement}
// @Failure 404 {object} dto.APIResponse
// @Router /researchAchievement/achievements/{id} [get]
func (c *AchievementController) GetByID(ctx *gin.Context) {
	achievement, err := c.achievementService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(achievement))
}

// Create adds a new achievement
// @Summary Create achievement
// @Tags achievements
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file false "Image, max 10MB"
// @Success 201 {object} dto.APIResponse{data=models.Achievement}
// @Failure 400 {object} dto.APIResponse
// @Router /researchAchievement/achievements [post]
func (c *AchievementController) Create(ctx *gin.Context) {
	var req dto.CreateAchievementRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	photo, _ := ctx.FormFile("photo")

	achievement, err := c.achievementService.Create(ctx.Request.Context(), &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("title", achievement.Title).Msg("Achievement created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(achievement))
}

// Update modifies an existing achievement
// @Summary Update achievement
// @Tags achievements
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Achievement id"
// @Success 200 {object} dto.APIResponse{data=models.Achievement}
// @Failure 404 {object} dto.APIResponse
// @Router /researchAchievement/achievements/{id} [put]
func (c *AchievementController) Update(ctx *gin.Context) {
	var req dto.UpdateAchievementRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	photo, _ := ctx.FormFile("photo")

	achievement, err := c.achievementService.Update(ctx.Request.Context(), ctx.Param("id"), &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(achievement))
}

// Delete removes an achievement
// @Summary Delete achievement
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Achievement id"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /researchAchievement/achievements/{id} [delete]
func (c *AchievementController) Delete(ctx *gin.Context) {
	if err := c.achievementService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Achievement deleted successfully"))
}
