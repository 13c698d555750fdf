package main

import (
	"context"
	"flag"

	_ "github.com/joho/godotenv/autoload"

	"github.com/ozgurweb/sitepanel/internal/bootstrap"
	"github.com/ozgurweb/sitepanel/internal/pkg/logger"
	"github.com/ozgurweb/sitepanel/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	migrationsDir := flag.String("migrations", "migrations", "path to the SQL migrations directory")
	flag.Parse()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	database, err := bootstrap.SetupDatabase(context.Background(), cfg, *migrationsDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up database")
	}
	defer database.Close()

	deps, err := bootstrap.BuildDependencies(cfg, database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build dependencies")
	}

	router := bootstrap.SetupRouter(deps)
	srv := server.New(cfg, router)

	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server error")
	}
}
