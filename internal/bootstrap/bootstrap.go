// Package bootstrap wires configuration, storage, services and routes
// into a runnable application.
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

	appControllers "github.com/placementcell/online-mocks-api/internal/app/controllers"
	appMigrations "github.com/placementcell/online-mocks-api/internal/app/migrations"
	appRepos "github.com/placementcell/online-mocks-api/internal/app/repositories"
	appRoutes "github.com/placementcell/online-mocks-api/internal/app/routes"
	appServices "github.com/placementcell/online-mocks-api/internal/app/services"
	"github.com/placementcell/online-mocks-api/internal/config"
	"github.com/placementcell/online-mocks-api/internal/db"
	appMiddleware "github.com/placementcell/online-mocks-api/internal/middleware"
	pkgAuth "github.com/placementcell/online-mocks-api/internal/pkg/auth"
	"github.com/placementcell/online-mocks-api/internal/pkg/helpers"
	"github.com/placementcell/online-mocks-api/internal/pkg/logger"
	"github.com/placementcell/online-mocks-api/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	DirectoryService    *appServices.DirectoryService
	AllocationService   *appServices.AllocationService
	StudentService      *appServices.StudentService
	ReportService       *appServices.ReportService
	FeedbackService     *appServices.FeedbackService
	AdminController     *appControllers.AdminController
	HRController        *appControllers.HRController
	VolunteerController *appControllers.VolunteerController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Logger              zerolog.Logger
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
// imports seed students.
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

	if err := seed.ImportStudents(context.Background(), dbPool, cfg.Seed.StudentsFile, lgr); err != nil {
		// Startup proceeds without the import: the admin dashboard works
		// against an empty student table.
		lgr.Error().Err(err).Msg("Student import failed, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.VolunteerRepository,
		deps.Repos.HRRepository,
		deps.JWTService,
		appServices.AdminCredentials{
			Username: cfg.Admin.Username,
			Password: cfg.Admin.Password,
		},
		lgr,
	)

	deps.DirectoryService = appServices.NewDirectoryService(
		deps.Repos.VolunteerRepository,
		deps.Repos.HRRepository,
		lgr,
	)
	deps.AllocationService = appServices.NewAllocationService(
		deps.Repos.VolunteerRepository,
		deps.Repos.HRRepository,
		deps.Repos.StudentRepository,
		deps.Repos.ReportRepository,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.StudentRepository,
		deps.Repos.ReportRepository,
		lgr,
	)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AdminController = appControllers.NewAdminController(
		deps.AuthService,
		deps.DirectoryService,
		deps.AllocationService,
		deps.StudentService,
		deps.FeedbackService,
		lgr,
	)
	deps.HRController = appControllers.NewHRController(
		deps.AuthService,
		deps.StudentService,
		deps.ReportService,
		deps.FeedbackService,
		lgr,
	)
	deps.VolunteerController = appControllers.NewVolunteerController(
		deps.AuthService,
		deps.DirectoryService,
		deps.AllocationService,
		deps.StudentService,
		lgr,
	)

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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AdminController,
		deps.HRController,
		deps.VolunteerController,
		deps.AuthMiddleware,
	)

	return router
}
