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

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"stockwatch/internal/app/di"
	"stockwatch/internal/app/router"
	"stockwatch/internal/platform/config"
	"stockwatch/internal/platform/db"
	"stockwatch/internal/platform/http/handler"
	infraredis "stockwatch/internal/platform/redis"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	if cfg.SlogLevel() != slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.OpenDB(cfg.Database, di.Models()...)
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()
	checks := map[string]handler.Check{"database": sqlDB.PingContext}

	// Redis
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr != "" {
		if tmp, err := infraredis.NewRedisClient(ctx, addr, cfg.Redis.Password); err != nil {
			slog.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
			checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
	}

	// NATS
	events, closeEvents := di.NewAlertPublisher(ctx, cfg.NATS.URL, cfg.NATS.Stream)
	defer func() {
		if err := closeEvents(); err != nil {
			slog.Error("failed to close NATS connection", "error", err)
		}
	}()

	// JWT_SECRETチェック
	if cfg.JWT.Secret == "" {
		slog.Warn("JWT_SECRET is not set. Protected routes will answer 500 until it is configured.")
	}

	handlers := di.NewHandlers(di.Deps{
		DB:        gdb,
		Redis:     rdb,
		CacheTTL:  cfg.Redis.CacheTTL,
		JWTSecret: cfg.JWT.Secret,
		JWTExpiry: cfg.JWT.Expiration,
		Events:    events,
	})
	engine := router.NewRouter(handlers, router.Options{JWTSecret: cfg.JWT.Secret, ReadyChecks: checks})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", cfg.HTTP.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
