package main

import (
	"context"
	"os"
	"time"

	"go-emprecords/internal/app"
	"go-emprecords/internal/config"
	"go-emprecords/internal/database"
	"go-emprecords/internal/shared/connection"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := app.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("migration failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("migration finished")
}

func run(cfg *config.Config) error {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := database.EnsureSchema(ctx, sqlDB); err != nil {
		return err
	}
	return database.SeedAdmin(ctx, sqlDB, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
}
