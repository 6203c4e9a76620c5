package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/deepam/hostelmess/internal/app/controllers"
	appMigrations "github.com/deepam/hostelmess/internal/app/migrations"
	"github.com/deepam/hostelmess/internal/app/models/dto"
	appRepos "github.com/deepam/hostelmess/internal/app/repositories"
	appRoutes "github.com/deepam/hostelmess/internal/app/routes"
	appServices "github.com/deepam/hostelmess/internal/app/services"
	"github.com/deepam/hostelmess/internal/config"
	"github.com/deepam/hostelmess/internal/db"
	appMiddleware "github.com/deepam/hostelmess/internal/middleware"
	"github.com/deepam/hostelmess/internal/pkg/logger"
	"github.com/deepam/hostelmess/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos *appRepos.Repositories

	StudentService   *appServices.StudentService
	MenuService      *appServices.MenuService
	FeedbackService  *appServices.FeedbackService
	ComplaintService *appServices.ComplaintService
	DashboardService *appServices.DashboardService

	StudentController   *appControllers.StudentController
	MenuController      *appControllers.MenuController
	FeedbackController  *appControllers.FeedbackController
	ComplaintController *appControllers.ComplaintController
	DashboardController *appControllers.DashboardController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	return database, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, database)
	deps.MenuService = appServices.NewMenuService(deps.Repos.MenuRepository, database)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository, deps.Repos.StudentRepository, deps.Repos.MenuRepository, database)
	deps.ComplaintService = appServices.NewComplaintService(deps.Repos.ComplaintRepository, deps.Repos.StudentRepository, database)
	deps.DashboardService = appServices.NewDashboardService(deps.StudentService, deps.MenuService, deps.FeedbackService, deps.ComplaintService)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.MenuController = appControllers.NewMenuController(deps.MenuService, deps.FeedbackService)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService)
	deps.ComplaintController = appControllers.NewComplaintController(deps.ComplaintService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(deps.StudentService, deps.MenuService, deps.FeedbackService, deps.ComplaintService)
		seeder.Run(context.Background())
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterCustomValidators(v); err != nil {
			lgr.Fatal().Err(err).Msg("Failed to register custom validators")
		}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.ErrorHandlerMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, appMiddleware.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.MenuController,
		deps.FeedbackController,
		deps.ComplaintController,
		deps.DashboardController,
	)

	return router
}
