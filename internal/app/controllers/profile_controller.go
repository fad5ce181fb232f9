package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tahsin/scholarfolio/internal/app/models/dto"
	"github.com/tahsin/scholarfolio/internal/app/services"
	"github.com/tahsin/scholarfolio/internal/middleware"
)

// ProfileController handles the profile singleton and its sub-resources
type ProfileController struct {
	profileService services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfileData returns the whole profile singleton
// @Summary Profile data
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Router /users/profile-data [get]
func (c *ProfileController) GetProfileData(ctx *gin.Context) {
	profile, err := c.profileService.GetProfile(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateProfile updates the hero section
// @Summary Update hero profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateHeroRequest true "Hero fields"
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Router /users/update-profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateHeroRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	profile, err := c.profileService.UpdateHero(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UploadProfilePicture replaces the profile picture
// @Summary Upload profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param profilePicture formData file true "Image, max 5MB"
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Router /users/upload-profile [post]
func (c *ProfileController) UploadProfilePicture(ctx *gin.Context) {
	file, err := ctx.FormFile("profilePicture")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Profile picture file is required"))
		return
	}

	profile, err := c.profileService.UploadProfilePicture(ctx.Request.Context(), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Msg("Profile picture updated")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// GetAcademicProfile returns the academic section
// @Summary Academic profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /users/academic-profile [get]
func (c *ProfileController) GetAcademicProfile(ctx *gin.Context) {
	profile, err := c.profileService.GetProfile(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"education": profile.Education,
		"cvUrl":     profile.CvURL,
	}))
}

// UpdateAcademicProfile rewrites the education list
// @Summary Update academic profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAcademicRequest true "Education entries"
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Router /users/academic-profile [put]
func (c *ProfileController) UpdateAcademicProfile(ctx *gin.Context) {
	var req dto.UpdateAcademicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	profile, err := c.profileService.UpdateAcademic(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// GetAbout returns the about section
// @Summary About section
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /users/about [get]
func (c *ProfileController) GetAbout(ctx *gin.Context) {
	profile, err := c.profileService.GetProfile(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"about":        profile.About,
		"philosophies": profile.Philosophies,
		"cvUrl":        profile.CvURL,
	}))
}

// UpdateAbout updates the about section
// @Summary Update about section
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAboutRequest true "About fields"
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Router /users/about [put]
func (c *ProfileController) UpdateAbout(ctx *gin.Context) {
	var req dto.UpdateAboutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	profile, err := c.profileService.UpdateAbout(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// GetNews returns the news feed
// @Summary News items
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /users/news [get]
func (c *ProfileController) GetNews(ctx *gin.Context) {
	profile, err := c.profileService.GetProfile(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile.NewsItems))
}

// UpdateNews replaces the news feed wholesale
// @Summary Update news items
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateNewsRequest true "News items"
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Router /users/news [put]
func (c *ProfileController) UpdateNews(ctx *gin.Context) {
	var req dto.UpdateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("newsItems array is required"))
		return
	}

	profile, err := c.profileService.UpdateNews(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// DeleteNewsItem removes one news item by id
// @Summary Delete news item
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "News item id"
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Router /users/news/{id} [delete]
func (c *ProfileController) DeleteNewsItem(ctx *gin.Context) {
	profile, err := c.profileService.DeleteNewsItem(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// GetCourses returns the courses list
// @Summary Courses
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /users/courses [get]
func (c *ProfileController) GetCourses(ctx *gin.Context) {
	profile, err := c.profileService.GetProfile(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile.Courses))
}

// UpdateCourses replaces the courses list wholesale
// @Summary Update courses
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateCoursesRequest true "Courses"
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Router /users/courses [put]
func (c *ProfileController) UpdateCourses(ctx *gin.Context) {
	var req dto.UpdateCoursesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("courses array is required"))
		return
	}

	profile, err := c.profileService.UpdateCourses(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// DeleteCourse removes one course by id
// @Summary Delete course
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course id"
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Router /users/courses/{id} [delete]
func (c *ProfileController) DeleteCourse(ctx *gin.Context) {
	profile, err := c.profileService.DeleteCourse(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// GetContactInfo returns the contact section
// @Summary Contact info
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /users/contact [get]
func (c *ProfileController) GetContactInfo(ctx *gin.Context) {
	profile, err := c.profileService.GetProfile(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"phone":          profile.Phone,
		"adminEmail":     profile.AdminEmail,
		"msgEmail":       profile.MsgEmail,
		"officeLocation": profile.OfficeLocation,
		"officeHours":    profile.OfficeHours,
	}))
}

// UpdateContactInfo updates the contact section
// @Summary Update contact info
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateContactInfoRequest true "Contact fields"
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Router /users/contact [put]
func (c *ProfileController) UpdateContactInfo(ctx *gin.Context) {
	var req dto.UpdateContactInfoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	profile, err := c.profileService.UpdateContactInfo(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// SubmitMessage stores a visitor contact message. Public.
// @Summary Submit contact message
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.ContactMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /users/messages [post]
func (c *ProfileController) SubmitMessage(ctx *gin.Context) {
	var req dto.ContactMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	if err := c.profileService.SubmitContactMessage(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("subject", req.Subject).Msg("Contact message received")
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Message sent successfully"))
}

// ListMessages returns stored visitor messages, newest first
// @Summary List contact messages
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /users/messages [get]
func (c *ProfileController) ListMessages(ctx *gin.Context) {
	messages, err := c.profileService.ListMessages(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages))
}

// DeleteMessage removes one visitor message by id
// @Summary Delete contact message
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message id"
// @Success 200 {object} dto.APIResponse
// @Router /users/messages/{id} [delete]
func (c *ProfileController) DeleteMessage(ctx *gin.Context) {
	if err := c.profileService.DeleteMessage(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Message deleted successfully"))
}
