package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/university/advisorfinder/internal/app/controllers"
	appMigrations "github.com/university/advisorfinder/internal/app/migrations"
	appRepos "github.com/university/advisorfinder/internal/app/repositories"
	appRoutes "github.com/university/advisorfinder/internal/app/routes"
	appServices "github.com/university/advisorfinder/internal/app/services"
	"github.com/university/advisorfinder/internal/config"
	"github.com/university/advisorfinder/internal/db"
	appMiddleware "github.com/university/advisorfinder/internal/middleware"
	pkgAuth "github.com/university/advisorfinder/internal/pkg/auth"
	"github.com/university/advisorfinder/internal/pkg/logger"
	"github.com/university/advisorfinder/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService     appServices.StudentService
	LecturerService    appServices.LecturerService
	ResearchService    appServices.ResearchService
	StudentController  *appControllers.StudentController
	LecturerController *appControllers.LecturerController
	ResearchController *appControllers.ResearchController
	Repos              *appRepos.Repositories
	Logger             zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			// Seeding failure is not fatal; the API works on an empty catalog.
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	hasher := pkgAuth.NewBcryptHasher()

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, hasher)
	deps.ResearchService = appServices.NewResearchService(
		deps.Repos.ResearchCategoryRepository,
		deps.Repos.ResearchInterestRepository,
	)
	deps.LecturerService = appServices.NewLecturerService(
		deps.Repos.LecturerRepository,
		deps.Repos.StudentRepository,
		deps.ResearchService,
	)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.LecturerController = appControllers.NewLecturerController(deps.LecturerService)
	deps.ResearchController = appControllers.NewResearchController(deps.ResearchService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger())
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.LecturerController,
		deps.ResearchController,
	)

	return router
}
