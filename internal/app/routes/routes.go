package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tahsin/scholarfolio/internal/app/controllers"
	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/middleware"
)

// SetupRouter configures all API routes. Public GETs skip both gates; every
// mutation runs behind JWTAuth + RoleRequired(admin). The contact form POST
// is deliberately public.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	achievementController *controllers.AchievementController,
	researchController *controllers.ResearchController,
	projectController *controllers.ProjectController,
	certificateController *controllers.CertificateController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	adminOnly := []gin.HandlerFunc{
		authMiddleware.JWTAuth(),
		authMiddleware.RoleRequired(string(models.RoleAdmin)),
	}

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// --- Profile routes ---
	users := api.Group("/users")
	{
		users.GET("/profile-data", profileController.GetProfileData)
		users.GET("/academic-profile", profileController.GetAcademicProfile)
		users.GET("/about", profileController.GetAbout)
		users.GET("/news", profileController.GetNews)
		users.GET("/courses", profileController.GetCourses)
		users.GET("/contact", profileController.GetContactInfo)

		// public contact form
		users.POST("/messages", profileController.SubmitMessage)

		users.GET("/user-data", authMiddleware.JWTAuth(), authController.GetUserData)

		usersAdmin := users.Group("", adminOnly...)
		{
			usersAdmin.PUT("/update-profile", profileController.UpdateProfile)
			usersAdmin.POST("/upload-profile", profileController.UploadProfilePicture)
			usersAdmin.PUT("/academic-profile", profileController.UpdateAcademicProfile)
			usersAdmin.PUT("/about", profileController.UpdateAbout)
			usersAdmin.PUT("/news", profileController.UpdateNews)
			usersAdmin.DELETE("/news/:id", profileController.DeleteNewsItem)
			usersAdmin.PUT("/courses", profileController.UpdateCourses)
			usersAdmin.DELETE("/courses/:id", profileController.DeleteCourse)
			usersAdmin.PUT("/contact", profileController.UpdateContactInfo)
			usersAdmin.GET("/messages", profileController.ListMessages)
			usersAdmin.DELETE("/messages/:id", profileController.DeleteMessage)
		}
	}

	// --- Achievement and research routes ---
	researchAchievement := api.Group("/researchAchievement")
	{
		achievements := researchAchievement.Group("/achievements")
		{
			achievements.GET("", achievementController.List)
			achievements.GET("/:id", achievementController.GetByID)

			achievementsAdmin := achievements.Group("", adminOnly...)
			{
				achievementsAdmin.POST("", achievementController.Create)
				achievementsAdmin.PUT("/:id", achievementController.Update)
				achievementsAdmin.DELETE("/:id", achievementController.Delete)
			}
		}

		research := researchAchievement.Group("/research")
		{
			research.GET("", researchController.List)
			research.GET("/:id", researchController.GetByID)
			research.GET("/:id/download", researchController.Download)

			researchAdmin := research.Group("", adminOnly...)
			{
				researchAdmin.POST("", researchController.Create)
				researchAdmin.PUT("/:id", researchController.Update)
				researchAdmin.DELETE("/:id", researchController.Delete)
			}
		}
	}

	// --- Project routes ---
	projects := api.Group("/projects")
	{
		projects.GET("", projectController.List)
		projects.GET("/category/:category", projectController.ListByCategory)
		projects.GET("/:id", projectController.GetByID)

		projectsAdmin := projects.Group("", adminOnly...)
		{
			projectsAdmin.POST("", projectController.Create)
			projectsAdmin.PUT("/:id", projectController.Update)
			projectsAdmin.DELETE("/:id", projectController.Delete)
		}
	}

	// --- Certificate routes ---
	certificates := api.Group("/certificates")
	{
		certificates.GET("", certificateController.List)
		certificates.GET("/category/:category", certificateController.ListByCategory)
		certificates.GET("/:id", certificateController.GetByID)

		certificatesAdmin := certificates.Group("", adminOnly...)
		{
			certificatesAdmin.POST("", certificateController.Create)
			certificatesAdmin.PUT("/:id", certificateController.Update)
			certificatesAdmin.DELETE("/:id", certificateController.Delete)
		}
	}

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
