// Package bootstrap wires configuration, storage, services and the router
// into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/tahsin/scholarfolio/internal/app/controllers"
	appRepos "github.com/tahsin/scholarfolio/internal/app/repositories"
	appRoutes "github.com/tahsin/scholarfolio/internal/app/routes"
	appServices "github.com/tahsin/scholarfolio/internal/app/services"
	"github.com/tahsin/scholarfolio/internal/config"
	"github.com/tahsin/scholarfolio/internal/db"
	appMiddleware "github.com/tahsin/scholarfolio/internal/middleware"
	pkgAuth "github.com/tahsin/scholarfolio/internal/pkg/auth"
	"github.com/tahsin/scholarfolio/internal/pkg/email"
	"github.com/tahsin/scholarfolio/internal/pkg/logger"
	"github.com/tahsin/scholarfolio/internal/pkg/mediastore"
	"github.com/tahsin/scholarfolio/internal/seed"
	"github.com/tahsin/scholarfolio/internal/web"
)

// Dependencies holds every constructed application component.
type Dependencies struct {
	AuthService           appServices.AuthService
	ProfileService        appServices.ProfileService
	AchievementService    appServices.AchievementService
	ResearchService       appServices.ResearchService
	ProjectService        appServices.ProjectService
	CertificateService    appServices.CertificateService
	AuthController        *appControllers.AuthController
	ProfileController     *appControllers.ProfileController
	AchievementController *appControllers.AchievementController
	ResearchController    *appControllers.ResearchController
	ProjectController     *appControllers.ProjectController
	CertificateController *appControllers.CertificateController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	MediaStore            mediastore.Store
	Notifier              *email.Notifier
	Pages                 *web.Pages
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A missing .env file is not an error; config.yaml and real environment
// variables still apply.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: cfg.Logging.Pretty,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Bool("pretty", cfg.Logging.Pretty).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to MongoDB, ensures indexes and seeds the admin
// account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	lgr.Info().Str("database", cfg.MongoDB.Database).Msg("Connecting to MongoDB...")
	database, err := db.Connect(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.PoolSize)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
		return nil, err
	}
	lgr.Info().Msg("MongoDB connection established")

	if err := appRepos.EnsureIndexes(ctx, database); err != nil {
		lgr.Error().Err(err).Msg("Failed to ensure indexes")
		database.Close()
		return nil, err
	}

	repos := appRepos.NewRepositories(database)
	if err := seed.CreateAdminUser(ctx, repos, cfg, lgr); err != nil {
		// Startup proceeds; the admin can be seeded on the next boot.
		lgr.Error().Err(err).Msg("Failed to seed admin user, proceeding anyway")
	}

	return database, nil
}

// BuildDependencies constructs repositories, the media store, services,
// controllers and page handlers.
func BuildDependencies(cfg *config.Config, database *db.Mongo, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	store, err := mediastore.NewMinioStore(ctx, mediastore.Options{
		Endpoint:      cfg.Media.Endpoint,
		AccessKey:     cfg.Media.AccessKey,
		SecretKey:     cfg.Media.SecretKey,
		Bucket:        cfg.Media.Bucket,
		UseSSL:        cfg.Media.UseSSL,
		PublicBaseURL: cfg.Media.PublicBaseURL,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize media store")
		return nil, fmt.Errorf("failed to initialize media store: %w", err)
	}
	deps.MediaStore = store

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExpiry(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Notifier = email.NewNotifier(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		ToEmail:   cfg.SMTP.ToEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.ProfileRepository, deps.MediaStore, deps.Notifier)
	deps.AchievementService = appServices.NewAchievementService(deps.Repos.AchievementRepository, deps.MediaStore)
	deps.ResearchService = appServices.NewResearchService(deps.Repos.ResearchRepository, deps.MediaStore)
	deps.ProjectService = appServices.NewProjectService(deps.Repos.ProjectRepository, deps.MediaStore)
	deps.CertificateService = appServices.NewCertificateService(deps.Repos.CertificateRepository, deps.MediaStore)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.JWTService, logger.WithField("component", "auth"))
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService, logger.WithField("component", "profile"))
	deps.AchievementController = appControllers.NewAchievementController(deps.AchievementService, logger.WithField("component", "achievement"))
	deps.ResearchController = appControllers.NewResearchController(deps.ResearchService, logger.WithField("component", "research"))
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService, logger.WithField("component", "project"))
	deps.CertificateController = appControllers.NewCertificateController(deps.CertificateService, logger.WithField("component", "certificate"))

	renderer, err := web.NewRenderer(filepath.Join("web", "templates"))
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load page templates")
		return nil, fmt.Errorf("failed to load page templates: %w", err)
	}
	deps.Pages = web.NewPages(
		renderer,
		deps.ProfileService,
		deps.AchievementService,
		deps.ResearchService,
		deps.ProjectService,
		deps.CertificateService,
		deps.JWTService,
	)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware, the API routes and
// the server-rendered pages.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS(cfg.Server.AllowedOrigin))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProfileController,
		deps.AchievementController,
		deps.ResearchController,
		deps.ProjectController,
		deps.CertificateController,
		deps.AuthMiddleware,
	)

	deps.Pages.RegisterRoutes(router)
	router.Static("/static", filepath.Join("web", "static"))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
