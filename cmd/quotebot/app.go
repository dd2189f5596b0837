package main

import (
	"context"
	"fmt"

	"autoquote-bot/internal/config"
	"autoquote-bot/internal/storage"
	"autoquote-bot/pkg/logger"

	"go.uber.org/zap"
)

// bootstrap loads configuration and the logger shared by every command.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return nil, nil, err
	}
	return cfg, zapLogger, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (*storage.PostgresStorage, error) {
	pg, err := storage.NewPostgresStorage(ctx, storage.Config{
		DSN:             cfg.DSN(),
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
		ConnectTimeout:  cfg.DBConnectTimeout,
	}, zapLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to init PostgreSQL storage: %w", err)
	}
	return pg, nil
}
