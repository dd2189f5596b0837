package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autoquote-bot/internal/bot"
	"autoquote-bot/internal/httpapi"
	"autoquote-bot/internal/pricing"
	"autoquote-bot/internal/storage"
	"autoquote-bot/internal/storage/redis"
	"autoquote-bot/pkg/api"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot and the HTTP quote API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", true, "apply database migrations on startup")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, zapLogger, err := bootstrap()
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := pricing.New(zapLogger)

	redisStorage := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisTTL)
	defer redisStorage.Close()
	if err := redisStorage.Ping(ctx); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}

	pgStorage, err := openPostgres(ctx, cfg, zapLogger)
	if err != nil {
		return err
	}
	defer pgStorage.Close()

	if serveMigrate {
		if err := storage.RunMigrations(ctx, pgStorage.DB(), zapLogger); err != nil {
			return err
		}
	}

	crm := api.NewClient(cfg.CRMBaseURL, cfg.CRMAPIKey, cfg.HTTPRequestTimeout, zapLogger)
	if !crm.Enabled() {
		zapLogger.Warn("CRM_BASE_URL is not set, leads will only be stored locally")
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewHandler(engine, zapLogger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zapLogger.Info("HTTP API listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if cfg.TelegramToken != "" {
		tgBot, err := bot.New(cfg.TelegramToken, engine, redisStorage, pgStorage, crm, zapLogger, cfg)
		if err != nil {
			cancel()
			_ = g.Wait()
			return err
		}
		g.Go(func() error {
			return tgBot.Start(ctx)
		})
	} else {
		zapLogger.Warn("TELEGRAM_TOKEN is not set, running HTTP API only")
	}

	if err := g.Wait(); err != nil {
		zapLogger.Error("Stopped with error", zap.Error(err))
		return err
	}

	zapLogger.Info("Shutdown gracefully")
	return nil
}
