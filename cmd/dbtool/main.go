package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"poi-viewer/internal/adapters/repositories"
	"poi-viewer/internal/config"
	"poi-viewer/internal/platform/db"
	"poi-viewer/internal/platform/logging"
	"strings"

	"github.com/rs/zerolog"
)

// dbtool initializes the Postgres schema and loads the seed markers.
func main() {
	var cfg config.Server
	found, err := config.Load(&cfg)
	logger := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		logger.Error().Err(err).Msg("load config")
		os.Exit(1)
	}
	if !found {
		logger.Info().Msg("No .env file found (using environment variables)")
	}

	if err := run(logger.WithContext(context.Background()), cfg, logger); err != nil {
		logger.Error().Err(err).Msg("dbtool failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, logger zerolog.Logger) error {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return errors.New("DATABASE_URL is required")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	logger.Info().Msg("Initializing database schema...")
	if err := repositories.InitPostgresSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	logger.Info().Msg("Schema ready.")

	logger.Info().Str("seed_path", cfg.SeedPath).Msg("Seeding database...")
	if err := repositories.Seed(ctx, repositories.NewSQLMarkerRepository(conn), cfg.SeedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	logger.Info().Msg("Seeding complete.")

	return nil
}
