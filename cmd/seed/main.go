package main

import (
	"os"

	"github.com/oggyb/jobmatch/internal/config"
	"github.com/oggyb/jobmatch/internal/db"
	"github.com/oggyb/jobmatch/internal/logger"
)

func main() {
	// Load configuration
	cfg := config.New()
	logger.InitFromConfig(cfg)

	database, err := db.NewDB(cfg)
	if err != nil {
		logger.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	if err := db.SeedTestData(database, logger.L()); err != nil {
		logger.Error("failed to seed", "err", err)
		os.Exit(1)
	}

	logger.Info("Seeding completed.")
}
