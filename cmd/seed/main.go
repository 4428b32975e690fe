package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/printventory/printventory-backend/pkg/config"
	"github.com/printventory/printventory-backend/pkg/db"
	"github.com/printventory/printventory-backend/pkg/logger"
	"github.com/printventory/printventory-backend/pkg/migrate"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	sqlDB, err := dbClient.DB().DB()
	if err != nil {
		logg.Error(ctx, "failed to unwrap sql database", err)
		os.Exit(1)
	}
	if err := migrate.Run(ctx, sqlDB, migrate.DefaultDir, "up"); err != nil {
		logg.Error(ctx, "failed to apply migrations", err)
		os.Exit(1)
	}

	if err := Seed(ctx, dbClient.DB(), cfg.Password, logg); err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}

	logg.Info(ctx, "seeding complete")
}
