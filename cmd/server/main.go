package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"poi-viewer/internal/adapters/repositories"
	"poi-viewer/internal/api"
	"poi-viewer/internal/config"
	"poi-viewer/internal/platform/db"
	"poi-viewer/internal/platform/logging"
	"poi-viewer/internal/ports"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// main is the application composition root for the category backend.
// It wires a marker repository (SQLite, or Postgres when DATABASE_URL is set)
// behind the MarkerRepository port and serves GET /api/:category.
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

	if err := serve(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

// serve owns the signal context so it is released before main exits.
func serve(cfg config.Server, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(logger.WithContext(ctx), cfg, logger)
}

func run(ctx context.Context, cfg config.Server, logger zerolog.Logger) error {
	conn, repo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Seed demo data on startup for local runs.
	if err := repositories.Seed(ctx, repo, cfg.SeedPath); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(repo, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openRepository(ctx context.Context, cfg config.Server) (*sql.DB, ports.MarkerRepository, error) {
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitPostgresSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return conn, repositories.NewSQLMarkerRepository(conn), nil
	}

	conn, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.InitSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, repositories.NewSqliteMarkerRepository(conn), nil
}
