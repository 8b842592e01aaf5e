// @title       CoopBat Intake API
// @version     1.0
// @description Lead intake and distribution service for a building-trade cooperative.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coopbat/intake-api/internal/api"
	"github.com/coopbat/intake-api/internal/infrastructure/config"
	mongodb "github.com/coopbat/intake-api/internal/infrastructure/db/mongo"
	redisdb "github.com/coopbat/intake-api/internal/infrastructure/db/redis"
	"github.com/coopbat/intake-api/pkg/logger"
)

const shutdownPeriod = 30 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		return err
	}

	e := api.NewRouter(db, rdb, cfg, log)

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
		defer cancel()
		shutdownErr <- e.Shutdown(shutdownCtx)
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")

	if err := e.Start(":" + cfg.Port); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-shutdownErr
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := mongodb.NewAccountRepository(db).EnsureIndexes(indexCtx); err != nil {
		return err
	}
	if err := mongodb.NewRequestRepository(db).EnsureIndexes(indexCtx); err != nil {
		return err
	}
	return mongodb.NewStatusRepository(db).EnsureIndexes(indexCtx)
}
