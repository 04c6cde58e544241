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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/schoollink/schoollink-api/docs" // Import generated swagger docs
	appControllers "github.com/schoollink/schoollink-api/internal/app/controllers"
	appMigrations "github.com/schoollink/schoollink-api/internal/app/migrations"
	appRepos "github.com/schoollink/schoollink-api/internal/app/repositories"
	appRoutes "github.com/schoollink/schoollink-api/internal/app/routes"
	appServices "github.com/schoollink/schoollink-api/internal/app/services"
	"github.com/schoollink/schoollink-api/internal/config"
	"github.com/schoollink/schoollink-api/internal/db"
	appMiddleware "github.com/schoollink/schoollink-api/internal/middleware"
	"github.com/schoollink/schoollink-api/internal/pkg/filestorage"
	"github.com/schoollink/schoollink-api/internal/pkg/logger"
	"github.com/schoollink/schoollink-api/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services          *appServices.Services
	StudentController *appControllers.StudentController
	ScanController    *appControllers.ScanController
	SchoolController  *appControllers.SchoolController
	PhotoController   *appControllers.PhotoController
	Repos             *appRepos.Repositories
	Storage           filestorage.ObjectStorage
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

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

	// Development sample data; failures are logged but never fatal.
	if strings.ToLower(cfg.Server.Mode) != "production" {
		if err := seed.CreateSampleData(context.Background(), dbPool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create sample data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	storage, err := buildStorage(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize photo storage")
		return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
	}
	deps.Storage = storage

	displayLoc, err := time.LoadLocation(cfg.Attendance.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid display timezone: %w", err)
	}

	deps.Services = appServices.NewServices(deps.Repos, deps.Storage, cfg.Attendance.ScanBatchLimit, displayLoc)

	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.ScanController = appControllers.NewScanController(deps.Services.ScanService)
	deps.SchoolController = appControllers.NewSchoolController(deps.Services.SchoolService)
	deps.PhotoController = appControllers.NewPhotoController(deps.Services.PhotoService)

	return deps, nil
}

// buildStorage selects the photo store backend from configuration.
func buildStorage(cfg *config.Config) (filestorage.ObjectStorage, error) {
	switch strings.ToLower(cfg.Storage.Backend) {
	case "s3":
		return filestorage.NewS3Storage(cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.PublicBaseURL)
	case "local", "":
		baseURL := cfg.Storage.PublicBaseURL
		if baseURL == "" {
			// Must match the static file route registered by the server.
			baseURL = "http://localhost:" + cfg.Server.Port + "/uploads"
		}
		return filestorage.NewLocalStorage(cfg.Storage.LocalPath, baseURL)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	// The legacy clients are browser apps served from other origins.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", appMiddleware.RequestIDHeader}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.ScanController,
		deps.SchoolController,
		deps.PhotoController,
	)

	return router
}
