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

	"hd2api/internal/middleware"
	"hd2api/internal/planet"
	"hd2api/internal/server"
	"hd2api/internal/shared/config"
	"hd2api/internal/shared/logger"
	"hd2api/internal/shared/redis"
	"hd2api/internal/static"
	"hd2api/internal/tracker"
	"hd2api/internal/upstream"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	logger.Init()

	cfg := config.GlobalConfig
	log := slog.With("component", "main")
	log.Info("Starting hd2api",
		"environment", cfg.Server.Environment,
		"provider", cfg.Upstream.Provider,
		"upstream_url", cfg.ProviderURL(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	statics, err := static.Load(cfg.Statics.Path)
	if err != nil {
		log.Error("Failed to load static reference data", "error", err, "path", cfg.Statics.Path)
		os.Exit(1)
	}

	rdb, err := redis.Connect(ctx)
	if err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn("Redis close failed", "error", err)
		}
	}()

	provider, err := upstream.New(cfg.Upstream, cfg.RateLimit)
	if err != nil {
		log.Error("Failed to create upstream provider", "error", err)
		os.Exit(1)
	}

	var store upstream.Store = upstream.NewMemoryStore()
	if rdb != nil {
		redisStore, err := upstream.NewRedisStore(rdb)
		if err != nil {
			log.Error("Failed to create Redis snapshot store", "error", err)
			os.Exit(1)
		}
		store = redisStore
	}
	cached := upstream.NewCached(provider, store, cfg.Redis.CacheTTL)

	t := tracker.New(cached, statics, planet.NewBuilder(cfg.Upstream.Language), cfg.Tracker.History)
	go t.Run(ctx, cfg.Tracker.PollInterval)

	routes := server.NewRoutes(t, rdb, provider.Name())
	mux := routes.Setup()

	rateLimiter := middleware.NewRateLimiter(ctx, cfg.RateLimit)
	corsMiddleware := middleware.NewCORS(cfg.Frontend)
	handler := corsMiddleware.Middleware(rateLimiter.Middleware(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
	}
}
