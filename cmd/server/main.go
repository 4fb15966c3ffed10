package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oggyb/jobmatch/internal/app"
	"github.com/oggyb/jobmatch/internal/cache"
	"github.com/oggyb/jobmatch/internal/config"
	"github.com/oggyb/jobmatch/internal/db"
	"github.com/oggyb/jobmatch/internal/logger"
	"github.com/oggyb/jobmatch/internal/server"
	"github.com/oggyb/jobmatch/internal/service/catalog"
	"github.com/oggyb/jobmatch/internal/service/company"
	"github.com/oggyb/jobmatch/internal/service/jobad"
	"github.com/oggyb/jobmatch/internal/service/jobapplication"
	"github.com/oggyb/jobmatch/internal/service/match"
	"github.com/oggyb/jobmatch/internal/service/professional"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)

	if err := run(cfg); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log := logger.With("env", cfg.App.ENV)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to init db: %w", err)
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	appCtx := app.New(database, redisCache, log)

	registrars := []server.Registrar{
		catalog.NewRegistrar(appCtx),
		company.NewRegistrar(appCtx),
		professional.NewRegistrar(appCtx),
		jobad.NewRegistrar(appCtx),
		jobapplication.NewRegistrar(appCtx),
		match.NewRegistrar(appCtx),
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database, log); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	log.Info("starting gRPC server", "addr", cfg.GRPC.Host+":"+cfg.GRPC.Port)

	if err := server.StartGRPCServer(ctx, cfg, log, registrars...); err != nil {
		return fmt.Errorf("failed to start gRPC server: %w", err)
	}
	return nil
}
