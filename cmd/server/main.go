package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/launchhub/business-portal/internal/api"
	"github.com/launchhub/business-portal/internal/infrastructure/config"
	"github.com/launchhub/business-portal/internal/infrastructure/db/mysql"
	"github.com/launchhub/business-portal/internal/infrastructure/db/redis"
	"github.com/launchhub/business-portal/internal/worker"
	"github.com/launchhub/business-portal/pkg/logger"
)

func main() {
	ctx := context.Background()

	// Config first: a missing JWT_SECRET must stop the process before it
	// can serve a single request.
	cfg, err := config.Load(ctx)
	if err != nil {
		log := logger.Init(logger.Options{})
		log.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := mysql.Open(cfg.MySQL.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("mysql init")
	}
	if err := mysql.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("mysql migrate")
	}

	rdb, err := redis.Connect(ctx, redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis init")
	}
	defer rdb.Close()

	e, competitionService, err := api.NewRouter(api.Deps{
		DB:     db,
		Redis:  rdb,
		Config: cfg,
		Log:    log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router init")
	}

	closer := worker.NewDeadlineCloser(competitionService, log)
	if err := closer.Start(); err != nil {
		log.Fatal().Err(err).Msg("deadline worker init")
	}
	defer closer.Stop()

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
