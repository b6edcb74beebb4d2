package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sellerhub/sellerhub-api/internal/api"
	"github.com/sellerhub/sellerhub-api/internal/infrastructure/config"
	mongodb "github.com/sellerhub/sellerhub-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sellerhub/sellerhub-api/internal/infrastructure/db/redis"
	"github.com/sellerhub/sellerhub-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
