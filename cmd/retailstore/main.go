// Package main запускает HTTP-сервер сервиса розничного магазина.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/retail-store/internal/cache"
	"github.com/mmeshcher/retail-store/internal/config"
	"github.com/mmeshcher/retail-store/internal/handler"
	"github.com/mmeshcher/retail-store/internal/logger"
	"github.com/mmeshcher/retail-store/internal/metrics"
	"github.com/mmeshcher/retail-store/internal/middleware"
	"github.com/mmeshcher/retail-store/internal/repository"
	"github.com/mmeshcher/retail-store/internal/service"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger initialization error: %v\n", err)
		os.Exit(1)
	}
	defer zl.Sync()

	sugar := zl.Sugar()

	repo, err := repository.NewPostgresRepository(cfg.DatabaseURI)
	if err != nil {
		sugar.Fatalw("database initialization error", "error", err.Error())
	}

	m := metrics.New()
	opts := []service.Option{
		service.WithLogger(zl.Named("service")),
		service.WithBillObserver(m),
	}

	if cfg.RedisAddress != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			sugar.Warnw("redis is not reachable, product lookups fall back to database", "addr", cfg.RedisAddress, "error", err.Error())
		}
		cancel()

		opts = append(opts, service.WithProductCache(cache.NewProductCache(rdb, cfg.ProductCacheTTL)))
		sugar.Infow("product cache enabled", "addr", cfg.RedisAddress, "ttl", cfg.ProductCacheTTL)
	}

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTTTL)
	if cfg.JWTSecret == "" {
		sugar.Warn("JWT secret is not set, tokens will not survive a restart")
	}

	svc := service.NewService(repo, authMiddleware, opts...)
	defer svc.Close()

	h := handler.NewHandler(svc, zl.Named("http"), authMiddleware, m.Handler())

	server := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           h.SetupRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("starting retail store server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка сервера)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Errorw("application terminated with error", "error", err)
		zl.Sync()
		os.Exit(1)
	}
}
