package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-booking/internal/db"
	"github.com/BruksfildServices01/salon-booking/internal/handlers"
	"github.com/BruksfildServices01/salon-booking/internal/routes"
	"github.com/BruksfildServices01/salon-booking/internal/storage"
	"github.com/BruksfildServices01/salon-booking/internal/style"
	"github.com/BruksfildServices01/salon-booking/internal/telemetry"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

func main() {
	configPath := flag.String("config", "", "optional path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	if !timezone.SetDefault(cfg.App.Timezone) {
		logger.Warn("unknown timezone, using UTC", "timezone", cfg.App.Timezone)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	// ======================================================
	// INFRA
	// ======================================================
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	if err := dbpkg.Migrate(db); err != nil {
		return err
	}
	logger.Info("database ready", "driver", cfg.Database.Driver)

	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		rdb, err = dbpkg.NewRedis(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Warn("redis unavailable, rate limiting is process-local", "error", err)
			rdb = nil
		} else {
			logger.Info("redis connected")
		}
	}

	tel, err := telemetry.New(ctx, cfg.Otel, cfg.App)
	if err != nil {
		return err
	}

	var previews style.Uploader
	if storage.Enabled(cfg.Storage) {
		store, err := storage.NewS3Store(cfg.Storage)
		if err != nil {
			return err
		}
		previews = store
		logger.Info("preview storage enabled", "bucket", cfg.Storage.Bucket)
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	checkers := map[string]handlers.Checker{
		"database": dbpkg.Pinger{DB: db},
	}
	if rdb != nil {
		checkers["redis"] = dbpkg.RedisPinger{Client: rdb}
	}
	healthHandler := handlers.NewHealthHandler(cfg.App.Environment, checkers)

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Context:  ctx,
		DB:       db,
		Config:   cfg,
		Audit:    auditDispatcher,
		Health:   healthHandler,
		Redis:    rdb,
		Tracer:   tel.Tracer,
		Previews: previews,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	// ======================================================
	// SHUTDOWN
	// ======================================================
	healthHandler.MarkShuttingDown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := auditDispatcher.Close(shutdownCtx); err != nil {
		logger.Error("audit drain error", "error", err)
	}

	if err := tel.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	if err := dbpkg.Close(db); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
