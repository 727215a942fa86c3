package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/attune-health/attune/internal/api"
	"github.com/attune-health/attune/internal/config"
	"github.com/attune-health/attune/internal/domain"
	"github.com/attune-health/attune/internal/library"
	"github.com/attune-health/attune/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := config.Load(); err != nil {
		panic(err)
	}

	logger := newLogger(config.LogLevel())
	defer func() { _ = logger.Sync() }()

	if err := library.Validate(); err != nil {
		logger.Fatal("pattern library invalid", zap.Error(err))
	}

	ctx := context.Background()

	contexts, cleanup, err := newContextStore(ctx, logger)
	if err != nil {
		logger.Fatal("failed to initialize context store", zap.Error(err))
	}
	defer cleanup()

	app := api.NewApp(contexts, logger)
	app.Janitor.Start()

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:    addr,
		Handler: app.Router,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	app.Janitor.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

// newContextStore builds the configured context store backend. The cleanup
// function releases any underlying connections.
func newContextStore(ctx context.Context, logger *zap.Logger) (domain.ContextStore, func(), error) {
	ttl := config.ContextTTL()

	switch backend := config.ContextStoreBackend(); backend {
	case "redis":
		rs, err := store.NewRedisStore(ctx, config.RedisURL(), ttl)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("context store ready", zap.String("backend", backend))
		return rs, func() { _ = rs.Close() }, nil

	case "postgres":
		pool, err := pgxpool.New(ctx, config.DatabaseURL())
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("context store ready", zap.String("backend", backend))
		return store.NewPostgresStore(pool, ttl), pool.Close, nil

	default:
		logger.Info("context store ready",
			zap.String("backend", "memory"),
			zap.Duration("ttl", ttl),
			zap.Int("max_sessions", config.ContextMaxSessions()))
		return store.NewMemoryStore(ttl, config.ContextMaxSessions()), func() {}, nil
	}
}
