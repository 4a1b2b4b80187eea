package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ozan/alumnisphere/internal/app/controllers"
	appMigrations "github.com/ozan/alumnisphere/internal/app/migrations"
	appRepos "github.com/ozan/alumnisphere/internal/app/repositories"
	appRoutes "github.com/ozan/alumnisphere/internal/app/routes"
	appServices "github.com/ozan/alumnisphere/internal/app/services"
	"github.com/ozan/alumnisphere/internal/config"
	"github.com/ozan/alumnisphere/internal/db"
	pkgAuth "github.com/ozan/alumnisphere/internal/pkg/auth"
	"github.com/ozan/alumnisphere/internal/pkg/helpers"
	"github.com/ozan/alumnisphere/internal/pkg/logger"
	"github.com/ozan/alumnisphere/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	MembershipService     appServices.MembershipService
	InteractionService    appServices.InteractionService
	UniversityService     appServices.UniversityService
	UserService           appServices.UserService
	AuthController        *appControllers.AuthController
	UniversityController  *appControllers.UniversityController
	InteractionController *appControllers.InteractionController
	UserController        *appControllers.UserController
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Logger                zerolog.Logger
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

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding is best-effort; a missing default admin is not fatal.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 720*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.MembershipService = appServices.NewMembershipService(deps.Repos.MembershipRepository)
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.MembershipService,
		deps.JWTService,
		lgr,
	)
	deps.InteractionService = appServices.NewInteractionService(
		deps.Repos.InteractionRepository,
		deps.Repos.UserRepository,
		deps.MembershipService,
		lgr,
	)
	deps.UniversityService = appServices.NewUniversityService(deps.Repos.UniversityRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UniversityController = appControllers.NewUniversityController(deps.UniversityService)
	deps.InteractionController = appControllers.NewInteractionController(deps.InteractionService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

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
		deps.AuthController,
		deps.UniversityController,
		deps.InteractionController,
		deps.UserController,
		deps.JWTService,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
