package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ozgurweb/sitepanel/internal/app/controllers"
	"github.com/ozgurweb/sitepanel/internal/app/migrations"
	"github.com/ozgurweb/sitepanel/internal/app/repositories"
	"github.com/ozgurweb/sitepanel/internal/app/routes"
	"github.com/ozgurweb/sitepanel/internal/app/services"
	"github.com/ozgurweb/sitepanel/internal/config"
	"github.com/ozgurweb/sitepanel/internal/db"
	"github.com/ozgurweb/sitepanel/internal/pkg/auth"
	"github.com/ozgurweb/sitepanel/internal/pkg/filestorage"
	"github.com/ozgurweb/sitepanel/internal/pkg/logger"
	"github.com/ozgurweb/sitepanel/internal/seed"
)

// blacklistSweepInterval is how often expired revocations are dropped.
const blacklistSweepInterval = 10 * time.Minute

// Dependencies holds everything the server needs to run.
type Dependencies struct {
	Config      *config.Config
	DB          *db.PostgresDB
	JWTService  *auth.JWTService
	Blacklist   *auth.TokenBlacklist
	Storage     filestorage.Storage
	Controllers *controllers.Controllers
}

// LoadConfigAndSetupLogger loads the configuration and configures logging
// from it.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	return cfg, nil
}

// SetupDatabase connects to PostgreSQL, applies migrations and seeds the
// admin account.
func SetupDatabase(ctx context.Context, cfg *config.Config, migrationsDir string) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	users := repositories.NewUserRepository(database.Pool)
	if err := seed.EnsureAdminUser(ctx, users, cfg); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// BuildDependencies wires repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) (*Dependencies, error) {
	storage, err := filestorage.NewLocalStorage(cfg.Upload.StoragePath, cfg.Upload.PublicBase)
	if err != nil {
		return nil, fmt.Errorf("failed to set up file storage: %w", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	blacklist := auth.NewTokenBlacklist(blacklistSweepInterval)

	repos := repositories.NewRepositories(database.Pool)
	svcs := services.NewServices(repos, storage, jwtService, blacklist, cfg.Upload.DefaultImage)

	return &Dependencies{
		Config:      cfg,
		DB:          database,
		JWTService:  jwtService,
		Blacklist:   blacklist,
		Storage:     storage,
		Controllers: controllers.NewControllers(svcs),
	}, nil
}

// SetupRouter builds the gin engine with CORS, static upload serving and
// all API routes mounted.
func SetupRouter(deps *Dependencies) *gin.Engine {
	if deps.Config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.Static(deps.Config.Upload.PublicBase, deps.Config.Upload.StoragePath)

	routes.SetupRoutes(router, deps.Controllers, deps.JWTService, deps.Blacklist)

	return router
}
