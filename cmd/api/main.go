// Package main is the entry point for the Trip Dashboard API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/pkordes/trip-dashboard/backend/api"
	"github.com/pkordes/trip-dashboard/backend/data"
	"github.com/pkordes/trip-dashboard/backend/internal/cache"
	"github.com/pkordes/trip-dashboard/backend/internal/config"
	"github.com/pkordes/trip-dashboard/backend/internal/domain"
	"github.com/pkordes/trip-dashboard/backend/internal/handler"
	"github.com/pkordes/trip-dashboard/backend/internal/handler/gen"
	"github.com/pkordes/trip-dashboard/backend/internal/middleware"
	"github.com/pkordes/trip-dashboard/backend/internal/repo"
	"github.com/pkordes/trip-dashboard/backend/internal/service"
	"github.com/pkordes/trip-dashboard/backend/migrations"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env", "error", err)
	}

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Document store ---------------------------------------------------
	// Without DATABASE_URL the documents compiled into the binary are served.
	var docs repo.DocumentRepo = repo.NewEmbeddedDocumentRepo(data.FS)
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}

		sqlDB := stdlib.OpenDBFromPool(pool)
		applied, err := migrations.Up(ctx, sqlDB)
		_ = sqlDB.Close()
		if err != nil {
			slog.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}

		pgDocs := repo.NewDocumentRepo(pool)
		seeded, err := repo.Seed(ctx, pgDocs, docs)
		if err != nil {
			slog.Error("failed to seed documents", "error", err)
			os.Exit(1)
		}
		slog.Info("database connection established", "migrations", applied, "seeded", len(seeded))
		docs = pgDocs
	}

	// --- Cache ------------------------------------------------------------
	if cfg.RedisURL != "" {
		client, err := cache.NewClient(cfg.RedisURL)
		if err != nil {
			slog.Error("invalid redis url", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		// An unreachable cache is not fatal: reads fall through to the store.
		if err := cache.Ping(ctx, client); err != nil {
			slog.Warn("redis unreachable, serving uncached until it answers", "error", err)
		}
		docs = cache.NewDocumentRepo(docs, client, cfg.DocumentCacheTTL, logger)
		slog.Info("document cache enabled", "ttl", cfg.DocumentCacheTTL.String())
	}

	// --- Services ---------------------------------------------------------
	countdownSvc := service.NewCountdownService(domain.DefaultSchedule(time.Local), nil)
	refresher := service.NewCountdownRefresher(countdownSvc, cfg.CountdownInterval, logger)
	if err := refresher.Start(); err != nil {
		slog.Error("failed to start countdown refresher", "error", err)
		os.Exit(1)
	}
	defer refresher.Stop()

	tripSvc := service.NewTripService(docs)
	tipsSvc := service.NewTipsService(docs)

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → Logger → Recoverer → CORS.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.OpenAPI)
	})

	server := handler.NewServer(refresher, tripSvc, tipsSvc)
	r.Mount("/", gen.Handler(gen.NewStrictHandler(server, nil)))

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-stop:
		slog.Info("shutting down server")
	case err := <-serveErr:
		slog.Error("server error", "error", err)
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		return
	}
	slog.Info("server stopped")
}
