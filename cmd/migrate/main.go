package main

import (
	"context"
	"os"

	"github.com/TuancoderLo/perfume-api/pkg/config"
	"github.com/TuancoderLo/perfume-api/pkg/logger"
	"github.com/TuancoderLo/perfume-api/pkg/migrate"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "migrate"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	if cfg.DB.IsSQLite() {
		logg.Warn(context.Background(), "sqlite uses auto-migration at boot, nothing to do")
		return
	}

	if err := migrate.Run(context.Background(), cfg.DB.DSN); err != nil {
		logg.Error(context.Background(), "migration failed", err)
		os.Exit(1)
	}

	logg.Info(context.Background(), "migrations applied")
}
