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

	"cleaning-quote/internal/config"
	"cleaning-quote/internal/httpapi"
	"cleaning-quote/internal/lookup"
	"cleaning-quote/internal/notify"
	"cleaning-quote/internal/quote"
	"cleaning-quote/internal/storage"
	redisstore "cleaning-quote/internal/storage/redis"
	"cleaning-quote/internal/submission"
	"cleaning-quote/pkg/api"
	"cleaning-quote/pkg/logger"
	"cleaning-quote/pkg/redis"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	if err := run(ctx, cfg, zapLogger); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.Error(err))
	}
	zapLogger.Info("Server shutdown gracefully")
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	// One pool serves quote sessions, submit locks and the address cache
	cache := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisTTL)
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	quotes := redisstore.New(cache, cfg.SubmitLockTTL)

	pgStorage, err := storage.NewPostgresStorage(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pgStorage.Close()

	if err := storage.RunMigrations(ctx, pgStorage.DB(), log); err != nil {
		return err
	}

	apiClient := api.NewClient(cfg.APIBaseURL, cfg.APIKey, cfg.HTTPRequestTimeout, log)

	followers := []submission.Named{{Name: "postgres", Sink: pgStorage}}
	if cfg.TelegramChannelID != 0 {
		tg, err := notify.NewBotTelegram(cfg.TelegramToken, cfg.TelegramChannelID, log)
		if err != nil {
			return fmt.Errorf("telegram: %w", err)
		}
		followers = append(followers, submission.Named{Name: "telegram", Sink: tg})
	}
	sink := submission.NewDispatcher(
		submission.Named{Name: "webhook", Sink: submission.NewWebhook(apiClient)},
		log,
		followers...,
	)

	svc := quote.NewService(quote.Deps{
		Store:         quotes,
		Locker:        quotes,
		Address:       lookup.NewCachedAddress(apiClient, cache, cfg.AddressTTL, log),
		Availability:  apiClient,
		Classifier:    lookup.NewClassifier(apiClient),
		Sink:          sink,
		Logger:        log,
		CallTimeout:   cfg.CollaboratorTimeout,
		SubmitTimeout: cfg.SubmitTimeout,
	})
	defer svc.Wait()

	handler := httpapi.NewServer(svc, quotes, httpapi.Options{
		RatePerSecond: cfg.RateLimitPerSecond,
		RateBurst:     cfg.RateLimitBurst,
		SubmitLimit:   cfg.SubmitLimit,
		SubmitWindow:  cfg.SubmitWindow,
	}, log)
	go handler.Sweep(ctx)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
